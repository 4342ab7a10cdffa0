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
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
)

// Info holds the values for the PDF document information dictionary.
type Info struct {
	Title    string
	Subject  string
	Producer string
}

// PDF is a Canvas which writes a single-page PDF file.
type PDF struct {
	page   *document.Page
	closed bool
}

var _ Canvas = (*PDF)(nil)

// NewPDF starts a new PDF file with one page of the given size, in PDF
// points.  The file is written to w when Close is called.
func NewPDF(w io.Writer, width, height float64, info *Info) (*PDF, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("invalid page size")
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	if info != nil {
		page.Out.GetMeta().Info = &pdf.Info{
			Title:    pdf.TextString(info.Title),
			Subject:  pdf.TextString(info.Subject),
			Producer: pdf.TextString(info.Producer),
		}
		err = writeMetadata(page.Out, info)
		if err != nil {
			return nil, err
		}
	}

	// PDF uses a bottom-up coordinate system; flip the y-axis once, so
	// that all drawing code can use a top-left origin.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	return &PDF{page: page}, nil
}

// Close finishes the page and writes the PDF file.
// Drawing errors which occurred earlier are reported here.
func (p *PDF) Close() error {
	if p.closed {
		return errors.New("PDF canvas already closed")
	}
	p.closed = true
	return p.page.Close()
}

// PushGraphicsState implements the [Canvas] interface.
func (p *PDF) PushGraphicsState() {
	p.page.PushGraphicsState()
}

// PopGraphicsState implements the [Canvas] interface.
func (p *PDF) PopGraphicsState() {
	p.page.PopGraphicsState()
}

// Transform implements the [Canvas] interface.
func (p *PDF) Transform(m matrix.Matrix) {
	p.page.Transform(m)
}

// SetFillColor implements the [Canvas] interface.
func (p *PDF) SetFillColor(c CMYK) {
	p.page.SetFillColor(c.PDF())
}

// SetStrokeColor implements the [Canvas] interface.
func (p *PDF) SetStrokeColor(c CMYK) {
	p.page.SetStrokeColor(c.PDF())
}

// SetLineWidth implements the [Canvas] interface.
func (p *PDF) SetLineWidth(w float64) {
	p.page.SetLineWidth(w)
}

// MoveTo implements the [Canvas] interface.
func (p *PDF) MoveTo(x, y float64) {
	p.page.MoveTo(x, y)
}

// LineTo implements the [Canvas] interface.
func (p *PDF) LineTo(x, y float64) {
	p.page.LineTo(x, y)
}

// CurveTo implements the [Canvas] interface.
func (p *PDF) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.page.CurveTo(x1, y1, x2, y2, x3, y3)
}

// ClosePath implements the [Canvas] interface.
func (p *PDF) ClosePath() {
	p.page.ClosePath()
}

// Fill implements the [Canvas] interface.
func (p *PDF) Fill() {
	p.page.Fill()
}

// Stroke implements the [Canvas] interface.
func (p *PDF) Stroke() {
	p.page.Stroke()
}
