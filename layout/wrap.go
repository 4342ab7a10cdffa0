// addressplate - generate address plate signage as vector PDF files
// Copyright (C) 2026  The addressplate authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Wrap breaks text into lines of at most width characters.
//
// Lines are filled greedily.  Runs of white space are replaced by a single
// space, and lines neither start nor end with a space.  Hyphenated words
// may be broken after a hyphen.  Words longer than width are not broken and
// are placed on a line of their own.
//
// If width is not positive, the whole text is returned as a single line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var chunks []string
	for i, w := range words {
		if i > 0 {
			chunks = append(chunks, " ")
		}
		chunks = append(chunks, splitHyphens(w)...)
	}

	var lines []string
	for len(chunks) > 0 {
		if len(lines) > 0 && chunks[0] == " " {
			chunks = chunks[1:]
		}

		var line []string
		n := 0
		for len(chunks) > 0 {
			l := utf8.RuneCountInString(chunks[0])
			if n+l > width {
				break
			}
			line = append(line, chunks[0])
			n += l
			chunks = chunks[1:]
		}
		if len(line) == 0 && len(chunks) > 0 {
			// a chunk which is too long on its own
			line = append(line, chunks[0])
			chunks = chunks[1:]
		}

		if k := len(line); k > 0 && line[k-1] == " " {
			line = line[:k-1]
		}
		if len(line) > 0 {
			lines = append(lines, strings.Join(line, ""))
		}
	}
	return lines
}

// splitHyphens splits a word after every hyphen which joins two words.
// A hyphen is a break point if it follows two letters, or a letter, a
// hyphen and a letter, and if it is followed by a letter and by another
// letter or a hyphen.
func splitHyphens(word string) []string {
	rr := []rune(word)
	isLetter := func(i int) bool {
		return i >= 0 && i < len(rr) && unicode.IsLetter(rr[i])
	}

	var res []string
	start := 0
	for i, r := range rr {
		if r != '-' {
			continue
		}
		if !isLetter(i-1) || !isLetter(i+1) {
			continue
		}
		if !isLetter(i-2) && !(i >= 3 && rr[i-2] == '-' && isLetter(i-3)) {
			continue
		}
		if !isLetter(i+2) && !(i+2 < len(rr) && rr[i+2] == '-' && isLetter(i+3)) {
			continue
		}
		res = append(res, string(rr[start:i+1]))
		start = i + 1
	}
	return append(res, string(rr[start:]))
}
