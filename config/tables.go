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

package config

import "fmt"

// Field identifies one typed component of a house number.
//
// The numeric order of the constants Main to FractionLetterSuffix is the
// order in which the components are laid out from left to right.
type Field int

// The house number components.
const (
	Main Field = iota
	Slash
	LetterSuffix
	FractionNumber
	FractionLetterSuffix

	// Components of the small labels next to the arrows.
	ArrowMain
	ArrowLetterSuffix
)

func (f Field) String() string {
	switch f {
	case Main:
		return "main"
	case Slash:
		return "slash"
	case LetterSuffix:
		return "letter suffix"
	case FractionNumber:
		return "fraction number"
	case FractionLetterSuffix:
		return "fraction letter suffix"
	case ArrowMain:
		return "arrow main"
	case ArrowLetterSuffix:
		return "arrow letter suffix"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Common holds the values shared by the street name and house number
// plates of one size.
type Common struct {
	Margin float64
	Height float64
	Radius float64 // corner radius of the background
}

// StreetLayout describes a street name plate.
// The plate width depends on the text, see [layout.StreetWidth].
type StreetLayout struct {
	*Common

	TypeFont     FontSpec
	TypeBaseline float64

	NameFont     FontSpec
	NameBaseline float64

	LineWidth    float64
	LineBaseline float64

	TranslitFont     FontSpec
	TranslitBaseline float64
}

// NumberFonts gives the fonts and the slash geometry used to typeset a
// house number.
type NumberFonts struct {
	Main                 FontSpec
	LetterSuffix         FontSpec
	FractionNumber       FontSpec
	FractionLetterSuffix FontSpec

	Slash SlashSpec
}

// Font returns the font for the given house number component.
// The second return value is false for fields which are not rendered as
// text.
func (n *NumberFonts) Font(f Field) (FontSpec, bool) {
	switch f {
	case Main:
		return n.Main, true
	case LetterSuffix:
		return n.LetterSuffix, true
	case FractionNumber:
		return n.FractionNumber, true
	case FractionLetterSuffix:
		return n.FractionLetterSuffix, true
	}
	return FontSpec{}, false
}

// NumberLayout describes a house number plate, with or without arrows.
type NumberLayout struct {
	*Common
	NumberFonts

	// Widths gives the plate width, indexed by the length of the house
	// number string minus one, capped at 4.
	Widths [5]float64

	Baseline float64

	// The remaining fields are only used on plates with arrows.

	ArrowBaseline float64
	Arrow         ArrowSpec

	LabelBaseline     float64
	LabelMain         FontSpec
	LabelLetterSuffix FontSpec
}

// LabelFont returns the font for a component of an arrow label.
func (l *NumberLayout) LabelFont(f Field) (FontSpec, bool) {
	switch f {
	case ArrowMain:
		return l.LabelMain, true
	case ArrowLetterSuffix:
		return l.LabelLetterSuffix, true
	}
	return FontSpec{}, false
}

// VerticalLayout describes a vertical plate, which combines the street name
// and the house number.
//
// The street part is laid out top to bottom by moving the baseline
// down by the various Translate amounts.
type VerticalLayout struct {
	Width  float64
	Height float64
	Margin float64
	Radius float64

	TypeFont     FontSpec
	TypeBaseline float64

	NameFont      FontSpec
	NameTranslate float64
	NameMaxChars  int

	LineWidth     float64
	LineTranslate float64

	TranslitFont      FontSpec
	TranslitTranslate float64
	TranslitMaxChars  int

	NumberBaseline float64
	NumberFonts
}

// The lookup functions below panic if v is not valid, see
// [SizeVariant.IsValid].

// Plate returns the values shared by all horizontal plates of size v.
func Plate(v SizeVariant) *Common {
	return &common[v]
}

// Street returns the street name plate layout for size v.
func Street(v SizeVariant) *StreetLayout {
	return &street[v]
}

// HouseNumber returns the house number plate layout for size v.
// Plates with at least one arrow use a separate, more compact layout.
func HouseNumber(v SizeVariant, arrows ArrowFlags) *NumberLayout {
	if arrows == ArrowNone {
		return &houseNumber[v]
	}
	return &houseNumberArrow[v]
}

// Vertical returns the vertical plate layout for size v.
func Vertical(v SizeVariant) *VerticalLayout {
	return &vertical[v]
}

var common = [2]Common{
	Thin: {Margin: MM(40), Height: MM(215), Radius: MM(15)},
	Wide: {Margin: MM(60), Height: MM(320), Radius: MM(22.5)},
}

var street = [2]StreetLayout{
	Thin: {
		Common:           &common[Thin],
		TypeFont:         FontSpec{Face: Regular, Size: 90},
		TypeBaseline:     MM(215 - 173),
		NameFont:         FontSpec{Face: SemiBold, Size: 220},
		NameBaseline:     MM(215 - 94),
		LineWidth:        4,
		LineBaseline:     MM(215 - 62),
		TranslitFont:     FontSpec{Face: Regular, Size: 90},
		TranslitBaseline: MM(215 - 24),
	},
	Wide: {
		Common:           &common[Wide],
		TypeFont:         FontSpec{Face: Regular, Size: 135},
		TypeBaseline:     MM(320 - 260),
		NameFont:         FontSpec{Face: SemiBold, Size: 330},
		NameBaseline:     MM(320 - 140),
		LineWidth:        6,
		LineBaseline:     MM(320 - 92),
		TranslitFont:     FontSpec{Face: Regular, Size: 135},
		TranslitBaseline: MM(320 - 36),
	},
}

var houseNumber = [2]NumberLayout{
	Thin: {
		Common: &common[Thin],
		NumberFonts: NumberFonts{
			Main:                 FontSpec{Face: SemiBold, Size: 480},
			LetterSuffix:         FontSpec{Face: Bold, Size: 300},
			FractionNumber:       FontSpec{Face: SemiBold, Size: 300},
			FractionLetterSuffix: FontSpec{Face: SemiBold, Size: 220},
			Slash:                SlashSpec{Margin: MM(12), Angle: 75, Length: MM(80), LineWidth: MM(6)},
		},
		Widths:   [5]float64{MM(215), MM(280), MM(380), MM(440), MM(520)},
		Baseline: MM(215 - 50),
	},
	Wide: {
		Common: &common[Wide],
		NumberFonts: NumberFonts{
			Main:                 FontSpec{Face: SemiBold, Size: 720},
			LetterSuffix:         FontSpec{Face: Bold, Size: 450},
			FractionNumber:       FontSpec{Face: Bold, Size: 450},
			FractionLetterSuffix: FontSpec{Face: Bold, Size: 330},
			Slash:                SlashSpec{Margin: MM(20), Angle: 75, Length: MM(125), LineWidth: MM(9)},
		},
		Widths:   [5]float64{MM(320), MM(420), MM(565), MM(640), MM(720)},
		Baseline: MM(320 - 75),
	},
}

var houseNumberArrow = [2]NumberLayout{
	Thin: {
		Common: &common[Thin],
		NumberFonts: NumberFonts{
			Main:                 FontSpec{Face: SemiBold, Size: 380},
			LetterSuffix:         FontSpec{Face: Bold, Size: 240},
			FractionNumber:       FontSpec{Face: Bold, Size: 240},
			FractionLetterSuffix: FontSpec{Face: SemiBold, Size: 140},
			Slash:                SlashSpec{Margin: MM(10), Angle: 75, Length: MM(65), LineWidth: MM(5)},
		},
		Widths:        [5]float64{MM(215), MM(215), MM(280), MM(340), MM(440)},
		Baseline:      MM(215 - 90),
		ArrowBaseline: MM(215 - 62),
		Arrow: ArrowSpec{
			LineWidth:  4,
			Length:     MM(9.8),
			HalfHeight: MM(8.5 / 2),
			HalfSpace:  MM(15. / 2),
		},
		LabelBaseline:     MM(215 - 24),
		LabelMain:         FontSpec{Face: Regular, Size: 90},
		LabelLetterSuffix: FontSpec{Face: SemiBold, Size: 50},
	},
	Wide: {
		Common: &common[Wide],
		NumberFonts: NumberFonts{
			Main:                 FontSpec{Face: SemiBold, Size: 570},
			LetterSuffix:         FontSpec{Face: Bold, Size: 330},
			FractionNumber:       FontSpec{Face: Bold, Size: 330},
			FractionLetterSuffix: FontSpec{Face: Bold, Size: 210},
			Slash:                SlashSpec{Margin: MM(12), Angle: 75, Length: MM(98), LineWidth: MM(7.5)},
		},
		Widths:        [5]float64{MM(320), MM(320), MM(420), MM(510), MM(660)},
		Baseline:      MM(320 - 135),
		ArrowBaseline: MM(320 - 94),
		Arrow: ArrowSpec{
			LineWidth:  6,
			Length:     MM(18.8),
			HalfHeight: MM(14.8 / 2),
			HalfSpace:  MM(22.5 / 2),
		},
		LabelBaseline:     MM(320 - 37),
		LabelMain:         FontSpec{Face: Regular, Size: 135},
		LabelLetterSuffix: FontSpec{Face: SemiBold, Size: 75},
	},
}

var vertical = [2]VerticalLayout{
	Thin: {
		Width:  MM(360),
		Height: MM(480),
		Margin: MM(36),
		Radius: MM(15),

		TypeFont:     FontSpec{Face: Regular, Size: 65},
		TypeBaseline: MM(36) + 32.625,

		NameFont:      FontSpec{Face: SemiBold, Size: 110, Leading: 120},
		NameTranslate: MM(18) + 77.984375,
		NameMaxChars:  15,

		LineWidth:     MM(2),
		LineTranslate: MM(24),

		TranslitFont:      FontSpec{Face: Regular, Size: 65, Leading: 78},
		TranslitTranslate: MM(24) + 32.625,
		TranslitMaxChars:  30,

		NumberBaseline: MM(480 - 48),
		NumberFonts: NumberFonts{
			Main:                 FontSpec{Face: SemiBold, Size: 540},
			LetterSuffix:         FontSpec{Face: Bold, Size: 312},
			FractionNumber:       FontSpec{Face: Bold, Size: 312},
			FractionLetterSuffix: FontSpec{Face: Bold, Size: 220},
			Slash:                SlashSpec{Margin: MM(12), Angle: 75, Length: MM(80), LineWidth: MM(6)},
		},
	},
	Wide: {
		Width:  MM(540),
		Height: MM(720),
		Margin: MM(54),
		Radius: MM(22.5),

		TypeFont:     FontSpec{Face: Regular, Size: 100},
		TypeBaseline: MM(54) + 50.203125,

		NameFont:      FontSpec{Face: SemiBold, Size: 165, Leading: 180},
		NameTranslate: MM(18) + 116.984375,
		NameMaxChars:  15,

		LineWidth:     MM(3),
		LineTranslate: MM(36),

		TranslitFont:      FontSpec{Face: Regular, Size: 100, Leading: 120},
		TranslitTranslate: MM(57),
		TranslitMaxChars:  30,

		NumberBaseline: MM(720 - 72),
		NumberFonts: NumberFonts{
			Main:                 FontSpec{Face: SemiBold, Size: 810},
			LetterSuffix:         FontSpec{Face: Bold, Size: 470},
			FractionNumber:       FontSpec{Face: Bold, Size: 470},
			FractionLetterSuffix: FontSpec{Face: Bold, Size: 330},
			Slash:                SlashSpec{Margin: MM(12), Angle: 75, Length: MM(80), LineWidth: MM(6)},
		},
	},
}
