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
	"github.com/addressplate/addressplate/housenum"
	"github.com/addressplate/addressplate/layout"
)

// VerticalInput holds the text of a vertical plate.
type VerticalInput struct {
	Type     string
	Name     string
	Translit string
	Number   string
}

// PlanVertical lays out a vertical plate.
//
// The street part is at the top of the plate.  Street names and
// transliterations which are too long for one line are wrapped, and are
// scaled down if necessary.  The house number fills the bottom part.
func PlanVertical(opt *Options, in VerticalInput) (*Plan, error) {
	err := required("type", in.Type, "name", in.Name, "translit", in.Translit, "number", in.Number)
	if err != nil {
		return nil, err
	}
	number := housenum.Normalize(in.Number)
	fields, ok := housenum.Parse(number)
	if !ok {
		return nil, &InputError{Field: "number", Value: in.Number, Err: ErrInvalidHouseNumber}
	}

	size, err := opt.size()
	if err != nil {
		return nil, err
	}
	faces, err := opt.faces()
	if err != nil {
		return nil, err
	}
	V := config.Vertical(size)
	avail := V.Width - 2*V.Margin

	streetType, err := layout.TextPath(in.Type, V.TypeFont, faces)
	if err != nil {
		return nil, err
	}
	name, err := layout.Paragraph(in.Name, V.NameFont, faces, V.NameMaxChars, avail)
	if err != nil {
		return nil, err
	}
	translit, err := layout.Paragraph(in.Translit, V.TranslitFont, faces, V.TranslitMaxChars, avail)
	if err != nil {
		return nil, err
	}
	run, err := layout.NumberRun(fields.Items(), &V.NumberFonts, faces)
	if err != nil {
		return nil, err
	}
	place := layout.Fit(run, V.Margin, avail)

	body := func(c canvas.Canvas, fg canvas.CMYK) {
		y := V.TypeBaseline
		layout.LeftAligned(c, V.Margin, y, fg, streetType)

		y += V.NameTranslate
		drawBlock(c, name, V.Margin, y, fg)
		y += name.Height()

		y += V.LineTranslate
		c.PushGraphicsState()
		c.SetStrokeColor(fg)
		c.SetLineWidth(V.LineWidth)
		canvas.Line(c, V.Margin, y, V.Margin+avail, y)
		c.Stroke()
		c.PopGraphicsState()

		y += V.TranslitTranslate
		drawBlock(c, translit, V.Margin, y, fg)

		layout.DrawAt(c, run, place, V.NumberBaseline, fg)
	}

	return &Plan{
		Kind:     config.KindVertical,
		Width:    V.Width,
		Height:   V.Height,
		FileName: streetFileName(in.Type, in.Name),
		Title:    in.Type + " " + in.Name + ", " + number,
		radius:   V.Radius,
		colors:   opt.colors(),
		body:     body,
	}, nil
}

func drawBlock(c canvas.Canvas, b *layout.Block, x, y float64, fg canvas.CMYK) {
	c.PushGraphicsState()
	defer c.PopGraphicsState()

	canvas.Translate(c, x, y)
	b.Draw(c, fg)
}
