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

// Package plate generates the address plates.
//
// There are three kinds of plates: street name plates, house number plates
// (optionally with arrows pointing to the neighbouring houses), and
// vertical plates which show both the street name and the house number.
//
// Every plate is first laid out into a [Plan], which knows the size of the
// plate and holds all measured text outlines.  The plan can then be drawn
// on any [canvas.Canvas].  The functions [StreetName], [HouseNumber] and
// [Vertical] combine both steps and return a PDF file.
package plate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/addressplate/addressplate/canvas"
	"github.com/addressplate/addressplate/config"
	"github.com/addressplate/addressplate/face"
)

// Colors gives the colours of a plate.
type Colors struct {
	Background canvas.CMYK
	Foreground canvas.CMYK
}

// DefaultColors are white letters on a dark blue background.
var DefaultColors = Colors{
	Background: canvas.DarkBlue,
	Foreground: canvas.White,
}

// Options control the generation of a plate.
type Options struct {
	Size config.SizeVariant

	// Faces are the fonts to use.  If this is nil, the Go fonts are
	// used.
	Faces face.Set

	// Colors, if set, overrides [DefaultColors].
	Colors *Colors

	// Producer is stored in the document information dictionary of the
	// generated PDF files.
	Producer string
}

func (opt *Options) faces() (face.Set, error) {
	if opt != nil && opt.Faces != nil {
		return opt.Faces, nil
	}
	return face.Default()
}

func (opt *Options) colors() Colors {
	if opt != nil && opt.Colors != nil {
		return *opt.Colors
	}
	return DefaultColors
}

func (opt *Options) size() (config.SizeVariant, error) {
	if opt == nil {
		return config.Thin, nil
	}
	if !opt.Size.IsValid() {
		return 0, &InputError{Field: "size", Value: opt.Size.String(), Err: ErrInvalidSize}
	}
	return opt.Size, nil
}

// Result is a generated plate.
type Result struct {
	PDF      []byte
	FileName string // suggested file name

	// Width and Height give the plate size in PDF points.
	Width, Height float64
}

// Plan is a plate which has been laid out, but not yet drawn.
type Plan struct {
	Kind          config.PlateKind
	Width, Height float64

	// FileName is the suggested name for the output file.
	FileName string

	// Title is used as the document title.
	Title string

	radius float64
	colors Colors
	body   func(c canvas.Canvas, fg canvas.CMYK)
}

// Draw draws the plate onto c.  The page of c must have the size given by
// p.Width and p.Height.
func (p *Plan) Draw(c canvas.Canvas) {
	c.PushGraphicsState()
	c.SetFillColor(p.colors.Background)
	canvas.RoundedRect(c, 0, 0, p.Width, p.Height, p.radius)
	c.Fill()
	c.PopGraphicsState()

	p.body(c, p.colors.Foreground)
}

// Render draws the plate into a new PDF file.
func (p *Plan) Render(producer string) (*Result, error) {
	buf := &bytes.Buffer{}
	page, err := canvas.NewPDF(buf, p.Width, p.Height, &canvas.Info{
		Title:    p.Title,
		Subject:  p.Kind.String() + " plate",
		Producer: producer,
	})
	if err != nil {
		return nil, fmt.Errorf("%s plate: %w", p.Kind, err)
	}
	p.Draw(page)
	err = page.Close()
	if err != nil {
		return nil, fmt.Errorf("%s plate: %w", p.Kind, err)
	}

	return &Result{
		PDF:      buf.Bytes(),
		FileName: p.FileName,
		Width:    p.Width,
		Height:   p.Height,
	}, nil
}

func render(ctx context.Context, opt *Options, plan func(*Options) (*Plan, error)) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := plan(opt)
	if err != nil {
		return nil, err
	}
	var producer string
	if opt != nil {
		producer = opt.Producer
	}
	return p.Render(producer)
}

// StreetName generates a street name plate.
func StreetName(ctx context.Context, opt *Options, in StreetInput) (*Result, error) {
	return render(ctx, opt, func(opt *Options) (*Plan, error) {
		return PlanStreetName(opt, in)
	})
}

// HouseNumber generates a house number plate.
func HouseNumber(ctx context.Context, opt *Options, in NumberInput) (*Result, error) {
	return render(ctx, opt, func(opt *Options) (*Plan, error) {
		return PlanHouseNumber(opt, in)
	})
}

// Vertical generates a vertical plate.
func Vertical(ctx context.Context, opt *Options, in VerticalInput) (*Result, error) {
	return render(ctx, opt, func(opt *Options) (*Plan, error) {
		return PlanVertical(opt, in)
	})
}

// The errors wrapped by [InputError].
var (
	ErrInvalidHouseNumber = errors.New("invalid house number")
	ErrInvalidArrowLabel  = errors.New("invalid arrow label")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidSize        = errors.New("invalid plate size")
)

// InputError is returned when one of the inputs of a plate is invalid.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (err *InputError) Error() string {
	if err.Value == "" {
		return fmt.Sprintf("%s: %v", err.Field, err.Err)
	}
	return fmt.Sprintf("%s %q: %v", err.Field, err.Value, err.Err)
}

func (err *InputError) Unwrap() error {
	return err.Err
}

// required checks that none of the named values is empty or blank.
// The arguments alternate between field names and values.
func required(nameValue ...string) error {
	for i := 0; i+1 < len(nameValue); i += 2 {
		if strings.TrimSpace(nameValue[i+1]) == "" {
			return &InputError{Field: nameValue[i], Err: ErrMissingField}
		}
	}
	return nil
}

// separators are replaced in suggested file names, so that a file name
// never names a different directory.
var separators = strings.NewReplacer("/", "_", "\\", "_")

// streetFileName returns the suggested file name for plates which show a
// street name.
func streetFileName(streetType, name string) string {
	return separators.Replace(streetType + "_" + name + ".pdf")
}

// numberFileName returns the suggested file name for house number plates.
func numberFileName(number string) string {
	return separators.Replace(number) + ".pdf"
}
