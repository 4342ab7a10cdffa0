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

// Package canvas defines the drawing surface the plates are rendered onto.
//
// The [Canvas] interface mirrors the PDF graphics operators.  All
// implementations use a coordinate system with the origin in the top-left
// corner of the page and y growing downward.
package canvas

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// Canvas is a vector drawing surface.
//
// Errors are sticky: implementations record the first error and report
// it when the output is finalised.
type Canvas interface {
	// PushGraphicsState saves the current transformation, colours and line
	// width.  Every call must be matched by a call to PopGraphicsState.
	PushGraphicsState()
	PopGraphicsState()

	// Transform applies m to user coordinates before the current
	// transformation.
	Transform(m matrix.Matrix)

	SetFillColor(c CMYK)
	SetStrokeColor(c CMYK)
	SetLineWidth(w float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()

	// Fill fills the current path using the nonzero winding number rule
	// and starts a new path.
	Fill()

	// Stroke strokes the current path and starts a new path.
	Stroke()
}

// CMYK is a colour given by its cyan, magenta, yellow and black
// components, each in the range from 0 to 1.
type CMYK [4]float64

// CMYKPercent returns the colour with the given components in percent.
func CMYKPercent(c, m, y, k float64) CMYK {
	return CMYK{c / 100, m / 100, y / 100, k / 100}
}

// PDF returns the colour in the DeviceCMYK colour space.
func (c CMYK) PDF() pdfcolor.Color {
	return pdfcolor.DeviceCMYK(c[0], c[1], c[2], c[3])
}

// RGBA implements the [color.Color] interface, using the naive conversion
// of the Go standard library.
func (c CMYK) RGBA() (r, g, b, a uint32) {
	return color.CMYK{
		C: to8(c[0]),
		M: to8(c[1]),
		Y: to8(c[2]),
		K: to8(c[3]),
	}.RGBA()
}

func to8(x float64) uint8 {
	return uint8(math.Round(max(0, min(1, x)) * 255))
}

// The plate colours.
var (
	DarkBlue = CMYKPercent(75, 65, 0, 75)
	White    = CMYKPercent(0, 0, 0, 0)
)

// Translate moves the origin of the coordinate system to (dx, dy).
func Translate(c Canvas, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	c.Transform(matrix.Translate(dx, dy))
}

// Scale scales the coordinate system uniformly by s.
func Scale(c Canvas, s float64) {
	if s == 1 {
		return
	}
	c.Transform(matrix.Scale(s, s))
}

// Line appends a straight line segment from (x1, y1) to (x2, y2) to the
// current path, as a new subpath.
func Line(c Canvas, x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
}

// RoundedRect appends a rectangle with rounded corners to the current
// path, as a closed subpath.  The rectangle has its top-left corner at (x,
// y).  The radius is reduced if necessary, so that the corners fit.
func RoundedRect(c Canvas, x, y, width, height, radius float64) {
	r := min(radius, width/2, height/2)
	if r <= 0 {
		c.MoveTo(x, y)
		c.LineTo(x+width, y)
		c.LineTo(x+width, y+height)
		c.LineTo(x, y+height)
		c.ClosePath()
		return
	}

	// control point distance for a quarter circle,
	// see https://pomax.github.io/bezierinfo/#circles_cubic
	k := r * 4 / 3 * (math.Sqrt2 - 1)

	x1, y1 := x+width, y+height
	c.MoveTo(x+r, y)
	c.LineTo(x1-r, y)
	c.CurveTo(x1-r+k, y, x1, y+r-k, x1, y+r)
	c.LineTo(x1, y1-r)
	c.CurveTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	c.LineTo(x+r, y1)
	c.CurveTo(x+r-k, y1, x, y1-r+k, x, y1-r)
	c.LineTo(x, y+r)
	c.CurveTo(x, y+r-k, x+r-k, y, x+r, y)
	c.ClosePath()
}
