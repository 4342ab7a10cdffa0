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

// Package layout places text outlines on a plate.
//
// The main tool is the [Run], a left-to-right sequence of typed house
// number components.  A run is measured, fitted into the available width
// using [Fit], and drawn using [DrawAt].
package layout

import (
	"fmt"

	"github.com/addressplate/addressplate/canvas"
	"github.com/addressplate/addressplate/config"
	"github.com/addressplate/addressplate/face"
	"github.com/addressplate/addressplate/housenum"
	"github.com/addressplate/addressplate/outline"
)

// Entry is one component of a run.
type Entry struct {
	Field config.Field
	Item  outline.Item
}

// Run is a line of house number components.
//
// The component which directly follows the slash is moved left by its
// left side bearing, so that it sits close to the slash.
type Run struct {
	Entries []Entry

	width    float64
	afterSep bool
}

// Add appends an item to the run.
func (r *Run) Add(f config.Field, it outline.Item) {
	w := it.Advance().X
	if r.afterSep {
		w -= it.BBox().LLx
		r.afterSep = false
	}
	if f == config.Slash {
		r.afterSep = true
	}
	r.width += w
	r.Entries = append(r.Entries, Entry{Field: f, Item: it})
}

// Width returns the natural width of the run.
func (r *Run) Width() float64 {
	return r.width
}

// Draw draws the run with the pen starting at the origin.
func (r *Run) Draw(c canvas.Canvas, fg canvas.CMYK) {
	c.PushGraphicsState()
	defer c.PopGraphicsState()

	afterSep := false
	for i, e := range r.Entries {
		if afterSep {
			canvas.Translate(c, -e.Item.BBox().LLx, 0)
		}
		e.Item.Draw(c, fg)
		if i < len(r.Entries)-1 {
			canvas.Translate(c, e.Item.Advance().X, 0)
		}
		afterSep = e.Field == config.Slash
	}
}

// NumberRun converts the components of a house number into a run, using
// the given fonts.
func NumberRun(items []housenum.Item, fonts *config.NumberFonts, faces face.Set) (*Run, error) {
	r := &Run{}
	for _, it := range items {
		if it.Field == config.Slash {
			r.Add(it.Field, outline.NewSlash(fonts.Slash))
			continue
		}
		if it.Text == "" {
			continue
		}
		spec, ok := fonts.Font(it.Field)
		if !ok {
			return nil, fmt.Errorf("no font for house number %s", it.Field)
		}
		p, err := TextPath(it.Text, spec, faces)
		if err != nil {
			return nil, err
		}
		r.Add(it.Field, p)
	}
	return r, nil
}

// TextPath returns the outline of text in the font described by spec.
func TextPath(text string, spec config.FontSpec, faces face.Set) (*outline.Path, error) {
	F, err := faces.Get(spec.Face)
	if err != nil {
		return nil, err
	}
	return outline.NewPath(text, F, spec.Size)
}

// Placement describes where a run is drawn: the pen starts at X, and the
// run is scaled uniformly by Scale around its starting point.
type Placement struct {
	X     float64
	Scale float64
}

// Fit places a run into the horizontal space of width avail which starts
// at margin.  A run which fits is centred.  A wider run is scaled down to
// fill the space exactly.
func Fit(r *Run, margin, avail float64) Placement {
	w := r.Width()
	if w <= avail {
		return Placement{X: margin + (avail-w)/2, Scale: 1}
	}
	return Placement{X: margin, Scale: avail / w}
}

// DrawAt draws a run at the given placement, with the baseline at the
// given y coordinate.
func DrawAt(c canvas.Canvas, r *Run, p Placement, baseline float64, fg canvas.CMYK) {
	c.PushGraphicsState()
	defer c.PopGraphicsState()

	canvas.Translate(c, p.X, baseline)
	canvas.Scale(c, p.Scale)
	r.Draw(c, fg)
}

// LeftAligned draws items left to right, starting at x.
func LeftAligned(c canvas.Canvas, x, baseline float64, fg canvas.CMYK, items ...outline.Item) {
	c.PushGraphicsState()
	defer c.PopGraphicsState()

	canvas.Translate(c, x, baseline)
	for i, it := range items {
		it.Draw(c, fg)
		if i < len(items)-1 {
			canvas.Translate(c, it.Advance().X, 0)
		}
	}
}

// RightAligned draws items left to right, such that the advance of the
// last item ends at x.
func RightAligned(c canvas.Canvas, x, baseline float64, fg canvas.CMYK, items ...outline.Item) {
	c.PushGraphicsState()
	defer c.PopGraphicsState()

	canvas.Translate(c, x, baseline)
	for i := len(items) - 1; i >= 0; i-- {
		canvas.Translate(c, -items[i].Advance().X, 0)
		items[i].Draw(c, fg)
	}
}
