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
	"bytes"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func nearPoint(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func nearRect(a, b rect.Rect) bool {
	return math.Abs(a.LLx-b.LLx) < 1e-9 && math.Abs(a.LLy-b.LLy) < 1e-9 &&
		math.Abs(a.URx-b.URx) < 1e-9 && math.Abs(a.URy-b.URy) < 1e-9
}

func TestRecorderTransform(t *testing.T) {
	r := NewRecorder(100, 100)
	r.PushGraphicsState()
	Translate(r, 10, 20)
	Scale(r, 2)
	r.MoveTo(1, 1)
	r.LineTo(5, 1)
	r.Stroke()
	r.PopGraphicsState()

	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if len(r.Marks) != 1 {
		t.Fatalf("got %d marks, want 1", len(r.Marks))
	}
	want := []vec.Vec2{{X: 12, Y: 22}, {X: 20, Y: 22}}
	got := r.Marks[0].Points
	if len(got) != len(want) || !nearPoint(got[0], want[0]) || !nearPoint(got[1], want[1]) {
		t.Errorf("points = %v, want %v", got, want)
	}
	if lw := r.Marks[0].LineWidth; math.Abs(lw-2) > 1e-9 {
		t.Errorf("device line width = %g, want 2", lw)
	}

	// after the pop, the transformation is back to the identity
	r.MoveTo(1, 1)
	r.LineTo(2, 2)
	r.Fill()
	if p := r.Marks[1].Points[0]; !nearPoint(p, vec.Vec2{X: 1, Y: 1}) {
		t.Errorf("point after pop = %v, want (1, 1)", p)
	}
}

func TestRecorderUnbalanced(t *testing.T) {
	r := NewRecorder(10, 10)
	r.PushGraphicsState()
	if err := r.Close(); err == nil {
		t.Error("missing PopGraphicsState not detected")
	}

	r = NewRecorder(10, 10)
	r.PopGraphicsState()
	if err := r.Close(); err == nil {
		t.Error("extra PopGraphicsState not detected")
	}

	r = NewRecorder(10, 10)
	r.MoveTo(0, 0)
	if err := r.Close(); err == nil {
		t.Error("unpainted path not detected")
	}
}

func TestRecorderColors(t *testing.T) {
	r := NewRecorder(10, 10)
	r.PushGraphicsState()
	r.SetFillColor(White)
	Line(r, 0, 0, 1, 1)
	r.Fill()
	r.PopGraphicsState()
	Line(r, 2, 2, 3, 4)
	r.Fill()

	if r.Marks[0].Color != White {
		t.Errorf("first mark has colour %v", r.Marks[0].Color)
	}
	if r.Marks[1].Color != (CMYK{0, 0, 0, 1}) {
		t.Errorf("second mark has colour %v, want black", r.Marks[1].Color)
	}
	want := rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}
	if got := r.Ink(White); !nearRect(got, want) {
		t.Errorf("white ink = %v, want %v", got, want)
	}
}

func TestRoundedRect(t *testing.T) {
	r := NewRecorder(200, 100)
	RoundedRect(r, 0, 0, 200, 100, 15)
	r.Fill()

	want := rect.Rect{LLx: 0, LLy: 0, URx: 200, URy: 100}
	if got := r.Marks[0].BBox(); !nearRect(got, want) {
		t.Errorf("bbox = %v, want %v", got, want)
	}
	// 4 straight edges and 4 corners
	n := map[string]int{}
	for _, op := range r.Ops {
		n[op.Name]++
	}
	if n["c"] != 4 || n["l"] != 4 || n["m"] != 1 || n["h"] != 1 {
		t.Errorf("unexpected operators %v", n)
	}
}

func TestRoundedRectLargeRadius(t *testing.T) {
	r := NewRecorder(50, 20)
	RoundedRect(r, 5, 5, 40, 10, 100)
	r.Fill()
	want := rect.Rect{LLx: 5, LLy: 5, URx: 45, URy: 15}
	if got := r.Marks[0].BBox(); !nearRect(got, want) {
		t.Errorf("bbox = %v, want %v", got, want)
	}
}

func TestCMYK(t *testing.T) {
	got := color.NRGBAModel.Convert(White).(color.NRGBA)
	if got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("white = %v", got)
	}
	got = color.NRGBAModel.Convert(CMYK{0, 0, 0, 1}).(color.NRGBA)
	if got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("black = %v", got)
	}
	if c := CMYKPercent(75, 65, 0, 75); c != DarkBlue {
		t.Errorf("dark blue = %v", c)
	}
}

func TestPDF(t *testing.T) {
	buf := &bytes.Buffer{}
	p, err := NewPDF(buf, 300, 200, &Info{Title: "25/3А"})
	if err != nil {
		t.Fatal(err)
	}
	p.PushGraphicsState()
	p.SetFillColor(DarkBlue)
	RoundedRect(p, 0, 0, 300, 200, 20)
	p.Fill()
	p.SetStrokeColor(White)
	p.SetLineWidth(4)
	Line(p, 10, 10, 290, 10)
	p.Stroke()
	p.PopGraphicsState()

	err = p.Close()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-1.7")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(20, buf.Len())])
	}
	if !bytes.Contains(buf.Bytes(), []byte("x:xmpmeta")) {
		t.Error("XMP metadata missing")
	}
	if err := p.Close(); err == nil {
		t.Error("second Close succeeded")
	}
}

func TestNewPDFInvalidSize(t *testing.T) {
	_, err := NewPDF(&bytes.Buffer{}, 0, 100, nil)
	if err == nil {
		t.Error("zero width accepted")
	}
}
