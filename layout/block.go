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
	"math"
	"unicode/utf8"

	"github.com/addressplate/addressplate/canvas"
	"github.com/addressplate/addressplate/config"
	"github.com/addressplate/addressplate/face"
	"github.com/addressplate/addressplate/outline"
)

// Block is a stack of left-aligned lines, scaled uniformly so that the
// widest line fits the available width.
type Block struct {
	Lines   []outline.Item
	Leading float64 // distance between baselines, before scaling
	Scale   float64
}

// NewBlock returns a block for the given lines.  The scale is chosen such
// that the right edge of every line lies within avail.  Blocks are never
// scaled up.
func NewBlock(lines []outline.Item, avail, leading float64) *Block {
	var widest float64
	for _, l := range lines {
		widest = max(widest, l.BBox().URx)
	}
	scale := 1.0
	if widest > 0 {
		scale = min(1, avail/widest)
	}
	return &Block{
		Lines:   lines,
		Leading: leading,
		Scale:   scale,
	}
}

// Paragraph typesets text for a field of width avail.
//
// If the text fits into avail on a single line, the block has one line
// and is not scaled.  Otherwise the text is wrapped after at most maxChars
// characters per line, and the block is scaled down if the widest line is
// still too wide.
func Paragraph(text string, spec config.FontSpec, faces face.Set, maxChars int, avail float64) (*Block, error) {
	single, err := TextPath(text, spec, faces)
	if err != nil {
		return nil, err
	}
	if single.BBox().URx < avail {
		return NewBlock([]outline.Item{single}, avail, spec.Leading), nil
	}

	var lines []outline.Item
	for _, s := range Wrap(text, maxChars) {
		p, err := TextPath(s, spec, faces)
		if err != nil {
			return nil, err
		}
		lines = append(lines, p)
	}
	return NewBlock(lines, avail, spec.Leading), nil
}

// Draw draws the block with the first baseline at the origin.
func (b *Block) Draw(c canvas.Canvas, fg canvas.CMYK) {
	c.PushGraphicsState()
	defer c.PopGraphicsState()

	canvas.Scale(c, b.Scale)
	for i, l := range b.Lines {
		if i > 0 {
			canvas.Translate(c, 0, b.Leading)
		}
		l.Draw(c, fg)
	}
}

// Height returns the distance between the first and the last baseline of
// the block, after scaling.
func (b *Block) Height() float64 {
	if len(b.Lines) < 2 {
		return 0
	}
	return float64(len(b.Lines)-1) * b.Leading * b.Scale
}

// StreetWidth returns the width of a street name plate showing the given
// items, which are all drawn starting at the left margin.
//
// The right edge of the widest item, plus 70% of a margin, is rounded
// down to a multiple of the margin, and three margins are added.
func StreetWidth(items []outline.Item, margin float64) float64 {
	var right float64
	for _, it := range items {
		right = max(right, it.BBox().URx)
	}
	return (math.Floor((right+0.7*margin)/margin) + 3) * margin
}

// TableWidth selects a plate width from a table, by the number of
// characters of the house number.
func TableWidth(table [5]float64, number string) float64 {
	i := utf8.RuneCountInString(number) - 1
	return table[max(0, min(i, len(table)-1))]
}
