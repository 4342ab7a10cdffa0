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

// Package config holds the fixed geometry of the address plates.
//
// All plate dimensions, font sizes and baselines are kept in typed tables,
// indexed by [SizeVariant] and, for house number plates, by [ArrowFlags].
// The tables are initialised once and never modified, so that lookups are
// safe for concurrent use.
//
// All lengths are given in PDF points, with the origin in the top-left
// corner of the plate and y growing downward.
package config

import (
	"fmt"
	"strings"
)

// MM converts a length in millimetres to PDF points.
func MM(x float64) float64 {
	return x * 72 / 25.4
}

// SizeVariant selects one of the two physical plate sizes.
type SizeVariant int

// These are the supported plate sizes.
const (
	Thin SizeVariant = iota
	Wide
)

func (v SizeVariant) String() string {
	switch v {
	case Thin:
		return "thin"
	case Wide:
		return "wide"
	default:
		return fmt.Sprintf("SizeVariant(%d)", int(v))
	}
}

// IsValid reports whether v is one of the supported plate sizes.
func (v SizeVariant) IsValid() bool {
	return v == Thin || v == Wide
}

// ParseSizeVariant converts the name of a plate size into a SizeVariant.
func ParseSizeVariant(s string) (SizeVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thin", "":
		return Thin, nil
	case "wide":
		return Wide, nil
	}
	return 0, fmt.Errorf("unknown plate size %q", s)
}

// PlateKind identifies one of the plate layouts.
type PlateKind int

// These are the supported plate layouts.
const (
	KindStreetName PlateKind = iota
	KindHouseNumber
	KindHouseNumberArrow
	KindVertical
)

func (k PlateKind) String() string {
	switch k {
	case KindStreetName:
		return "street name"
	case KindHouseNumber:
		return "house number"
	case KindHouseNumberArrow:
		return "house number with arrows"
	case KindVertical:
		return "vertical"
	default:
		return fmt.Sprintf("PlateKind(%d)", int(k))
	}
}

// ArrowFlags records which directional arrows are shown on a house number
// plate.
type ArrowFlags uint8

// Values for ArrowFlags.
const (
	ArrowNone  ArrowFlags = 0b00
	ArrowRight ArrowFlags = 0b01
	ArrowLeft  ArrowFlags = 0b10
	ArrowBoth             = ArrowLeft | ArrowRight
)

// ArrowsFor returns the arrows needed for the given arrow labels.
// An empty label means that the corresponding arrow is not shown.
func ArrowsFor(left, right string) ArrowFlags {
	var a ArrowFlags
	if left != "" {
		a |= ArrowLeft
	}
	if right != "" {
		a |= ArrowRight
	}
	return a
}

// Kind returns the plate layout used for a house number plate with the
// given arrows.
func (a ArrowFlags) Kind() PlateKind {
	if a == ArrowNone {
		return KindHouseNumber
	}
	return KindHouseNumberArrow
}

func (a ArrowFlags) String() string {
	switch a {
	case ArrowNone:
		return "none"
	case ArrowLeft:
		return "left"
	case ArrowRight:
		return "right"
	case ArrowBoth:
		return "both"
	default:
		return fmt.Sprintf("ArrowFlags(%#b)", uint8(a))
	}
}

// FaceID identifies one of the three typefaces used on the plates.
type FaceID int

// These are the typefaces used on the plates.
const (
	Regular FaceID = iota
	SemiBold
	Bold
)

// AllFaces lists all typefaces, in the order of their FaceID.
var AllFaces = []FaceID{Regular, SemiBold, Bold}

func (f FaceID) String() string {
	switch f {
	case Regular:
		return "regular"
	case SemiBold:
		return "semi-bold"
	case Bold:
		return "bold"
	default:
		return fmt.Sprintf("FaceID(%d)", int(f))
	}
}

// ParseFaceID converts a typeface name, as used in configuration files,
// into a FaceID.
func ParseFaceID(s string) (FaceID, error) {
	for _, f := range AllFaces {
		if s == f.String() {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown typeface %q", s)
}

// FontSpec describes the font used for one text field.
type FontSpec struct {
	Face FaceID
	Size float64

	// Leading is the distance between baselines when the field is
	// broken into several lines.  This is zero for single-line fields.
	Leading float64
}

// SlashSpec gives the geometry of the slash drawn between a house number
// and its fraction.
type SlashSpec struct {
	// Margin is the horizontal space on both sides of the stroke.
	Margin float64

	// Angle is the angle between the stroke and the baseline, in degrees.
	Angle float64

	Length    float64
	LineWidth float64
}

// ArrowSpec gives the geometry of the direction arrows on house number
// plates.
type ArrowSpec struct {
	LineWidth  float64
	Length     float64 // length of the arrow head
	HalfHeight float64 // half the height of the arrow head

	// HalfSpace is half the gap left in the middle of the rule when both
	// arrows are shown.
	HalfSpace float64
}
