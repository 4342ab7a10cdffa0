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

// Package housenum splits house numbers into their typed components.
//
// A house number consists of a main number, which may be a range like
// "12-14", optionally followed by one of
//
//   - a letter suffix in upper case Cyrillic letters ("25А"),
//   - a fraction: a slash, a second number and an optional letter
//     suffix ("25/3А"),
//   - a corpus number ("25 к2").
//
// The small labels next to the arrows on house number plates use a
// reduced grammar, consisting of a main number and an optional letter
// suffix.
package housenum

import (
	"regexp"

	"golang.org/x/text/unicode/norm"

	"github.com/addressplate/addressplate/config"
)

// Fields holds the components of a house number.
// Empty strings denote absent components.
type Fields struct {
	Main string

	// LetterSuffix is either a run of upper case letters, or a corpus
	// suffix of the form " к<digits>".
	LetterSuffix string

	HasSlash             bool
	FractionNumber       string
	FractionLetterSuffix string
}

// ArrowFields holds the components of an arrow label.
type ArrowFields struct {
	Main         string
	LetterSuffix string
}

// Item is one present component of a house number.
type Item struct {
	Field config.Field
	Text  string // empty for the slash
}

// Items returns the present components in layout order: main number,
// slash, letter suffix, fraction number, fraction letter suffix.
func (f *Fields) Items() []Item {
	res := []Item{{config.Main, f.Main}}
	if f.HasSlash {
		res = append(res, Item{Field: config.Slash})
	}
	for _, it := range []Item{
		{config.LetterSuffix, f.LetterSuffix},
		{config.FractionNumber, f.FractionNumber},
		{config.FractionLetterSuffix, f.FractionLetterSuffix},
	} {
		if it.Text != "" {
			res = append(res, it)
		}
	}
	return res
}

// Items returns the present components of an arrow label, in layout order.
func (f *ArrowFields) Items() []Item {
	res := []Item{{config.ArrowMain, f.Main}}
	if f.LetterSuffix != "" {
		res = append(res, Item{config.ArrowLetterSuffix, f.LetterSuffix})
	}
	return res
}

// Group names used in the patterns below.
const (
	grpMain     = "main"
	grpLetter   = "letter"
	grpSlash    = "slash"
	grpFraction = "fraction"
	grpFracLet  = "fracletter"
)

// The character class [А-Я] is U+0410 to U+042F.
const mainNumber = `(?P<main>[1-9][0-9]*(?:-[1-9][0-9]*)?)`

// Ruleset is an ordered list of patterns.  The first pattern which matches
// the whole input determines the result.
type Ruleset []*regexp.Regexp

// Plate is the grammar for house numbers on plates.
var Plate = Ruleset{
	regexp.MustCompile(`^` + mainNumber + `$`),
	regexp.MustCompile(`^` + mainNumber + `(?P<letter>[А-Я]+)$`),
	regexp.MustCompile(`^` + mainNumber + `(?P<slash>/)(?P<fraction>[1-9][0-9]*)(?P<fracletter>[А-Я]*)$`),
	regexp.MustCompile(`^` + mainNumber + `(?P<letter> к[1-9][0-9]*)$`),
}

// Arrow is the grammar for the labels next to the arrows.
var Arrow = Ruleset{
	regexp.MustCompile(`^` + mainNumber + `(?P<letter>[А-Я]+)?$`),
}

// Match tries the patterns of rs in order and returns the named groups of
// the first match.  Groups which did not participate in the match map to
// the empty string.  If no pattern matches, nil is returned.
func (rs Ruleset) Match(s string) map[string]string {
	s = Normalize(s)
	for _, re := range rs {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		res := make(map[string]string)
		for i, name := range re.SubexpNames() {
			if name != "" {
				res[name] = m[i]
			}
		}
		return res
	}
	return nil
}

// Parse splits a house number into its components.
// The second return value is false if s is not a valid house number.
func Parse(s string) (*Fields, bool) {
	m := Plate.Match(s)
	if m == nil {
		return nil, false
	}
	return &Fields{
		Main:                 m[grpMain],
		LetterSuffix:         m[grpLetter],
		HasSlash:             m[grpSlash] != "",
		FractionNumber:       m[grpFraction],
		FractionLetterSuffix: m[grpFracLet],
	}, true
}

// ParseArrow splits an arrow label into its components.
// The second return value is false if s is not a valid arrow label.
func ParseArrow(s string) (*ArrowFields, bool) {
	m := Arrow.Match(s)
	if m == nil {
		return nil, false
	}
	return &ArrowFields{
		Main:         m[grpMain],
		LetterSuffix: m[grpLetter],
	}, true
}

// Normalize returns the form of s which is matched against the patterns.
// Combining characters are composed (NFC), so that "И" followed by a
// combining breve is read as "Й".
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Valid reports whether s is a valid house number.
func Valid(s string) bool {
	return Plate.Match(s) != nil
}
