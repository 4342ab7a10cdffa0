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

package canvas

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// A Recorder is a Canvas which keeps a log of all drawing operations.
// Painted paths are stored in device coordinates, so that the final
// position of every mark on the page can be inspected.
type Recorder struct {
	State

	Width, Height float64

	// Ops lists all operations, in the order they were issued.
	Ops []Op

	// Marks lists the painted paths.
	Marks []Mark

	path []vec.Vec2
}

var _ Canvas = (*Recorder)(nil)

// Op is one recorded drawing operation.
type Op struct {
	Name string
	Args []float64
}

// MarkKind distinguishes filled and stroked paths.
type MarkKind int

// Values for MarkKind.
const (
	Filled MarkKind = iota
	Stroked
)

// Mark is a path painted onto the page.
type Mark struct {
	Kind  MarkKind
	Color CMYK

	// LineWidth is the stroke width in device space.
	// This is zero for filled paths.
	LineWidth float64

	// Points are all points of the path, including Bézier control
	// points, in device space.
	Points []vec.Vec2
}

// BBox returns the smallest rectangle which contains all points of the
// mark.  The LLy field holds the smallest y value, i.e. the top edge.
func (m *Mark) BBox() rect.Rect {
	return pointsBBox(m.Points)
}

// NewRecorder returns a Recorder for a page of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		State:  NewState(),
		Width:  width,
		Height: height,
	}
}

// Close checks that the graphics state stack is balanced and that no
// path is left unpainted.
func (r *Recorder) Close() error {
	if r.Err != nil {
		return r.Err
	}
	if r.Depth() != 0 {
		return errors.New("unbalanced PushGraphicsState")
	}
	if len(r.path) != 0 {
		return errors.New("unpainted path")
	}
	return nil
}

func (r *Recorder) record(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}

// PushGraphicsState implements the [Canvas] interface.
func (r *Recorder) PushGraphicsState() {
	r.record("q")
	r.Push()
}

// PopGraphicsState implements the [Canvas] interface.
func (r *Recorder) PopGraphicsState() {
	r.record("Q")
	r.Pop()
}

// Transform implements the [Canvas] interface.
func (r *Recorder) Transform(m matrix.Matrix) {
	r.record("cm", m[:]...)
	r.State.Transform(m)
}

// SetFillColor implements the [Canvas] interface.
func (r *Recorder) SetFillColor(c CMYK) {
	r.record("k", c[:]...)
	r.FillColor = c
}

// SetStrokeColor implements the [Canvas] interface.
func (r *Recorder) SetStrokeColor(c CMYK) {
	r.record("K", c[:]...)
	r.StrokeColor = c
}

// SetLineWidth implements the [Canvas] interface.
func (r *Recorder) SetLineWidth(w float64) {
	r.record("w", w)
	r.LineWidth = w
}

// MoveTo implements the [Canvas] interface.
func (r *Recorder) MoveTo(x, y float64) {
	r.record("m", x, y)
	r.path = append(r.path, r.ToDevice(x, y))
}

// LineTo implements the [Canvas] interface.
func (r *Recorder) LineTo(x, y float64) {
	r.record("l", x, y)
	r.path = append(r.path, r.ToDevice(x, y))
}

// CurveTo implements the [Canvas] interface.
func (r *Recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.record("c", x1, y1, x2, y2, x3, y3)
	r.path = append(r.path,
		r.ToDevice(x1, y1), r.ToDevice(x2, y2), r.ToDevice(x3, y3))
}

// ClosePath implements the [Canvas] interface.
func (r *Recorder) ClosePath() {
	r.record("h")
}

// Fill implements the [Canvas] interface.
func (r *Recorder) Fill() {
	r.record("f")
	r.paint(Mark{Kind: Filled, Color: r.FillColor})
}

// Stroke implements the [Canvas] interface.
func (r *Recorder) Stroke() {
	r.record("S")
	r.paint(Mark{
		Kind:      Stroked,
		Color:     r.StrokeColor,
		LineWidth: r.LineWidth * r.LineScale(),
	})
}

func (r *Recorder) paint(m Mark) {
	if len(r.path) == 0 {
		return
	}
	m.Points = r.path
	r.Marks = append(r.Marks, m)
	r.path = nil
}

// Ink returns the bounding box of all marks painted in the given colour.
func (r *Recorder) Ink(c CMYK) rect.Rect {
	var pts []vec.Vec2
	for i := range r.Marks {
		if r.Marks[i].Color == c {
			pts = append(pts, r.Marks[i].Points...)
		}
	}
	return pointsBBox(pts)
}

func pointsBBox(pts []vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range pts {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}
