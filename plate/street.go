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
	"github.com/addressplate/addressplate/layout"
	"github.com/addressplate/addressplate/outline"
)

// StreetInput holds the text of a street name plate.
type StreetInput struct {
	Type     string // e.g. "вулиця"
	Name     string
	Translit string // the name in Latin script
}

// PlanStreetName lays out a street name plate.
//
// The plate is as wide as needed for the longest of the three lines of
// text.  A rule separates the street name from the transliteration.
func PlanStreetName(opt *Options, in StreetInput) (*Plan, error) {
	err := required("type", in.Type, "name", in.Name, "translit", in.Translit)
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
	L := config.Street(size)

	streetType, err := layout.TextPath(in.Type, L.TypeFont, faces)
	if err != nil {
		return nil, err
	}
	name, err := layout.TextPath(in.Name, L.NameFont, faces)
	if err != nil {
		return nil, err
	}
	translit, err := layout.TextPath(in.Translit, L.TranslitFont, faces)
	if err != nil {
		return nil, err
	}

	width := layout.StreetWidth([]outline.Item{streetType, name, translit}, L.Margin)
	body := func(c canvas.Canvas, fg canvas.CMYK) {
		c.PushGraphicsState()
		c.SetStrokeColor(fg)
		c.SetLineWidth(L.LineWidth)
		canvas.Line(c, L.Margin, L.LineBaseline, width-L.Margin, L.LineBaseline)
		c.Stroke()
		c.PopGraphicsState()

		layout.LeftAligned(c, L.Margin, L.TypeBaseline, fg, streetType)
		layout.LeftAligned(c, L.Margin, L.NameBaseline, fg, name)
		layout.LeftAligned(c, L.Margin, L.TranslitBaseline, fg, translit)
	}

	return &Plan{
		Kind:     config.KindStreetName,
		Width:    width,
		Height:   L.Height,
		FileName: streetFileName(in.Type, in.Name),
		Title:    in.Type + " " + in.Name,
		radius:   L.Radius,
		colors:   opt.colors(),
		body:     body,
	}, nil
}
