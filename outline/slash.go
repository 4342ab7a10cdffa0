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

package outline

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/addressplate/addressplate/canvas"
	"github.com/addressplate/addressplate/config"
)

// Slash is the diagonal stroke between a house number and its fraction.
// It is drawn as a line, not taken from a font.
type Slash struct {
	spec  config.SlashSpec
	start vec.Vec2
	end   vec.Vec2
}

var _ Item = (*Slash)(nil)

// NewSlash returns the slash with the given geometry.  The stroke starts on
// the baseline, Margin to the right of the origin, and rises at the given
// angle.
func NewSlash(spec config.SlashSpec) *Slash {
	phi := spec.Angle * math.Pi / 180
	return &Slash{
		spec:  spec,
		start: vec.Vec2{X: spec.Margin},
		end: vec.Vec2{
			X: spec.Margin + spec.Length*math.Cos(phi),
			Y: -spec.Length * math.Sin(phi),
		},
	}
}

// BBox implements the [Item] interface.
//
// The box covers the stroke and the margins on both sides.  It starts at
// x=0, so the slash has no leading bearing.
func (s *Slash) BBox() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: min(0, s.end.Y),
		URx: s.end.X + s.spec.Margin,
		URy: max(0, s.end.Y),
	}
}

// Advance implements the [Item] interface.
func (s *Slash) Advance() vec.Vec2 {
	return vec.Vec2{X: s.end.X + s.spec.Margin}
}

// End returns the upper end point of the stroke.
func (s *Slash) End() vec.Vec2 {
	return s.end
}

// Draw implements the [Item] interface.
func (s *Slash) Draw(c canvas.Canvas, fg canvas.CMYK) {
	c.PushGraphicsState()
	defer c.PopGraphicsState()

	c.SetStrokeColor(fg)
	c.SetLineWidth(s.spec.LineWidth)
	canvas.Line(c, s.start.X, s.start.Y, s.end.X, s.end.Y)
	c.Stroke()
}
