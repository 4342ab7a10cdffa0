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

// Package outline converts text into filled vector outlines.
//
// Text on the plates is not stored as PDF text, but as glyph outlines.
// This allows to measure the exact extent of the ink, and makes the output
// independent of font embedding.
//
// All coordinates are in PDF points, relative to the pen position at the
// start of the text on the baseline.  The y-axis points down.
package outline

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/addressplate/addressplate/canvas"
)

// Item is a measured, drawable element of a line of text.
type Item interface {
	// BBox returns the bounding box of the ink.  Since y grows downward,
	// LLy is the top edge and URy the bottom edge of the box.
	BBox() rect.Rect

	// Advance returns the pen position after the item.
	Advance() vec.Vec2

	// Draw paints the item at the origin of the current coordinate
	// system.  The graphics state of c is unchanged on return.
	Draw(c canvas.Canvas, fg canvas.CMYK)
}
