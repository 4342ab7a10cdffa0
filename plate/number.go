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

package plate

import (
	"github.com/addressplate/addressplate/canvas"
	"github.com/addressplate/addressplate/config"
	"github.com/addressplate/addressplate/face"
	"github.com/addressplate/addressplate/housenum"
	"github.com/addressplate/addressplate/layout"
	"github.com/addressplate/addressplate/outline"
)

// NumberInput holds the text of a house number plate.
type NumberInput struct {
	Number string

	// Left and Right are the house numbers of the neighbouring houses.
	// If one of them is set, an arrow pointing in that direction is
	// drawn below the house number, labelled with the neighbour's number.
	Left, Right string
}

// PlanHouseNumber lays out a house number plate.
//
// The width of the plate is taken from a table, based on the length of
// the house number.  The house number is centred on the plate, and is
// scaled down if it does not fit.
func PlanHouseNumber(opt *Options, in NumberInput) (*Plan, error) {
	err := required("number", in.Number)
	if err != nil {
		return nil, err
	}
	number := housenum.Normalize(in.Number)
	fields, ok := housenum.Parse(number)
	if !ok {
		return nil, &InputError{Field: "number", Value: in.Number, Err: ErrInvalidHouseNumber}
	}
	left, err := parseLabel("left", in.Left)
	if err != nil {
		return nil, err
	}
	right, err := parseLabel("right", in.Right)
	if err != nil {
		return nil, err
	}

	size, err := opt.size()
	if err != nil {
		return nil, err
	}
	faces, err := opt.faces()
	if err != nil {
		return nil, err
	}
	arrows := config.ArrowsFor(in.Left, in.Right)
	L := config.HouseNumber(size, arrows)

	run, err := layout.NumberRun(fields.Items(), &L.NumberFonts, faces)
	if err != nil {
		return nil, err
	}
	width := layout.TableWidth(L.Widths, number)
	place := layout.Fit(run, L.Margin, width-2*L.Margin)

	leftItems, err := labelItems(left, L, faces)
	if err != nil {
		return nil, err
	}
	rightItems, err := labelItems(right, L, faces)
	if err != nil {
		return nil, err
	}

	body := func(c canvas.Canvas, fg canvas.CMYK) {
		layout.DrawAt(c, run, place, L.Baseline, fg)
		if arrows == config.ArrowNone {
			return
		}
		drawArrows(c, width, L, arrows, fg)
		if leftItems != nil {
			layout.LeftAligned(c, L.Margin, L.LabelBaseline, fg, leftItems...)
		}
		if rightItems != nil {
			layout.RightAligned(c, width-L.Margin, L.LabelBaseline, fg, rightItems...)
		}
	}

	return &Plan{
		Kind:     arrows.Kind(),
		Width:    width,
		Height:   L.Height,
		FileName: numberFileName(number),
		Title:    number,
		radius:   L.Radius,
		colors:   opt.colors(),
		body:     body,
	}, nil
}

// parseLabel parses an optional arrow label.  For an empty label,
// nil is returned.
func parseLabel(name, label string) (*housenum.ArrowFields, error) {
	if label == "" {
		return nil, nil
	}
	f, ok := housenum.ParseArrow(label)
	if !ok {
		return nil, &InputError{Field: name, Value: label, Err: ErrInvalidArrowLabel}
	}
	return f, nil
}

func labelItems(f *housenum.ArrowFields, L *config.NumberLayout, faces face.Set) ([]outline.Item, error) {
	if f == nil {
		return nil, nil
	}
	var res []outline.Item
	for _, it := range f.Items() {
		spec, _ := L.LabelFont(it.Field)
		p, err := layout.TextPath(it.Text, spec, faces)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

// drawArrows draws the rule below the house number, with arrow heads at
// the ends given by arrows.  The rule has a gap in the middle, where the
// two arrows meet.
func drawArrows(c canvas.Canvas, width float64, L *config.NumberLayout, arrows config.ArrowFlags, fg canvas.CMYK) {
	a := &L.Arrow
	m := L.Margin
	y := L.ArrowBaseline
	mid := width / 2

	c.PushGraphicsState()
	defer c.PopGraphicsState()

	c.SetFillColor(fg)
	c.SetStrokeColor(fg)
	c.SetLineWidth(a.LineWidth)

	if arrows&config.ArrowLeft != 0 {
		arrowHead(c, m, y, a, 1)
		canvas.Line(c, m+a.Length, y, mid-a.HalfSpace, y)
	} else {
		canvas.Line(c, m, y, mid+a.HalfSpace, y)
	}
	c.Stroke()

	if arrows&config.ArrowRight != 0 {
		arrowHead(c, width-m, y, a, -1)
		canvas.Line(c, mid+a.HalfSpace, y, width-m-a.Length, y)
	} else {
		canvas.Line(c, mid-a.HalfSpace, y, width-m, y)
	}
	c.Stroke()
}

// arrowHead fills a triangle with its tip at (x, y).  The triangle points
// left for dir=1 and right for dir=-1.
func arrowHead(c canvas.Canvas, x, y float64, a *config.ArrowSpec, dir float64) {
	c.MoveTo(x, y)
	c.LineTo(x+dir*a.Length, y+a.HalfHeight)
	c.LineTo(x+dir*a.Length, y-a.HalfHeight)
	c.ClosePath()
	c.Fill()
}
