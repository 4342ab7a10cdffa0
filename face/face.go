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

// Package face provides the typefaces used on the plates.
//
// A [Set] maps the three typefaces of the plate design (regular, semi-bold
// and bold) to parsed font files.  The fonts are loaded once, before any
// plate is generated, and are then shared read-only between all calls.
// By default, the Go font family is used.
package face

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	seesfnt "seehuhn.de/go/sfnt"

	"github.com/addressplate/addressplate/config"
)

// Face is a parsed TrueType or OpenType font.
// A Face is safe for concurrent use.
type Face struct {
	// Name is the PostScript name of the font.
	Name string

	// FullName and Weight describe the font, for diagnostic messages.
	FullName string
	Weight   string

	font       *sfnt.Font
	unitsPerEm int
}

// Parse parses a font file.
func Parse(data []byte) (*Face, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}

	info, err := seesfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf sfnt.Buffer
	name, err := f.Name(&buf, sfnt.NameIDPostScript)
	if err != nil || name == "" {
		name = info.FamilyName
	}

	upem := int(f.UnitsPerEm())
	if upem <= 0 {
		return nil, fmt.Errorf("font %q: invalid units per em %d", name, upem)
	}

	return &Face{
		Name:       name,
		FullName:   info.FullName(),
		Weight:     info.Weight.String(),
		font:       f,
		unitsPerEm: upem,
	}, nil
}

// Load reads a font file from disk.
func Load(fname string) (*Face, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	F, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return F, nil
}

func (F *Face) String() string {
	return F.Name
}

// Segment is one element of a glyph outline.
type Segment = sfnt.Segment

// Glyph is the outline and advance width of a single glyph, in font units.
// The y-axis points down, so that the parts of the glyph above the
// baseline have negative y coordinates.
type Glyph struct {
	Rune    rune
	Outline []Segment
	Advance fixed.Int26_6
}

// Glyphs maps the runes of text to glyphs.  An error is returned if the
// font has no glyph for one of the runes.
//
// Glyphs are laid out without kerning.
func (F *Face) Glyphs(text string) ([]Glyph, error) {
	var buf sfnt.Buffer

	// Asking for a size of one em in font units gives the outlines in
	// unscaled font units.
	ppem := fixed.I(F.unitsPerEm)

	var res []Glyph
	for _, r := range text {
		gid, err := F.font.GlyphIndex(&buf, r)
		if err != nil {
			return nil, err
		}
		if gid == 0 {
			return nil, &MissingGlyphError{Font: F.Name, Rune: r}
		}

		segs, err := F.font.LoadGlyph(&buf, gid, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("font %q: glyph for %q: %w", F.Name, r, err)
		}
		adv, err := F.font.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("font %q: advance for %q: %w", F.Name, r, err)
		}

		// The buffer is reused for the next glyph, so the segments
		// must be copied.
		res = append(res, Glyph{
			Rune:    r,
			Outline: append([]Segment(nil), segs...),
			Advance: adv,
		})
	}
	return res, nil
}

// Scale returns the factor which converts font units into PDF points, for
// the given font size.
func (F *Face) Scale(size float64) float64 {
	return size / float64(F.unitsPerEm)
}

// MissingGlyphError is returned when a font has no glyph for a character.
type MissingGlyphError struct {
	Font string
	Rune rune
}

func (err *MissingGlyphError) Error() string {
	return fmt.Sprintf("font %q has no glyph for %q (U+%04X)", err.Font, err.Rune, err.Rune)
}

// Set maps the typefaces of the plate design to fonts.
type Set map[config.FaceID]*Face

// Get returns the font for the given typeface.
func (s Set) Get(id config.FaceID) (*Face, error) {
	F := s[id]
	if F == nil {
		return nil, fmt.Errorf("no font for typeface %s", id)
	}
	return F, nil
}

// Default returns the Go fonts: Go Regular, Go Medium and Go Bold stand in
// for the regular, semi-bold and bold typefaces.
//
// The fonts are parsed on the first call, the returned set is shared
// between all callers and must not be modified.
func Default() (Set, error) {
	return defaultSet()
}

var defaultSet = sync.OnceValues(func() (Set, error) {
	res := make(Set, len(config.AllFaces))
	for id, data := range map[config.FaceID][]byte{
		config.Regular:  goregular.TTF,
		config.SemiBold: gomedium.TTF,
		config.Bold:     gobold.TTF,
	} {
		F, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("Go font %s: %w", id, err)
		}
		res[id] = F
	}
	return res, nil
})

// LoadSet returns a set which uses the given font files, and the Go fonts
// for all typefaces not listed in files.
func LoadSet(files map[config.FaceID]string) (Set, error) {
	def, err := Default()
	if err != nil {
		return nil, err
	}

	res := make(Set, len(config.AllFaces))
	for _, id := range config.AllFaces {
		res[id] = def[id]
		fname, ok := files[id]
		if !ok {
			continue
		}
		F, err := Load(fname)
		if err != nil {
			return nil, err
		}
		res[id] = F
	}
	return res, nil
}
