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

package face

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/sfnt"

	"github.com/addressplate/addressplate/config"
)

func TestDefault(t *testing.T) {
	set, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range config.AllFaces {
		F, err := set.Get(id)
		if err != nil {
			t.Fatal(err)
		}
		if F.Name == "" {
			t.Errorf("%s: empty font name", id)
		}
	}
	if set[config.Regular] == set[config.Bold] {
		t.Error("regular and bold typefaces are the same font")
	}

	again, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if again[config.Regular] != set[config.Regular] {
		t.Error("Default parsed the fonts twice")
	}
}

func TestGlyphs(t *testing.T) {
	set, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	F := set[config.SemiBold]

	// digits, Cyrillic and Latin letters are all covered by the Go fonts
	glyphs, err := F.Glyphs("25/3А Khoryva")
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 13 {
		t.Fatalf("got %d glyphs, want 13", len(glyphs))
	}
	for _, g := range glyphs {
		if g.Advance <= 0 {
			t.Errorf("%q: advance %v", g.Rune, g.Advance)
		}
		if g.Rune == ' ' {
			if len(g.Outline) != 0 {
				t.Errorf("space has an outline")
			}
			continue
		}
		if len(g.Outline) == 0 {
			t.Errorf("%q: empty outline", g.Rune)
		}
		if g.Outline[0].Op != sfnt.SegmentOpMoveTo {
			t.Errorf("%q: outline does not start with MoveTo", g.Rune)
		}
	}

	// The "2" lies above the baseline, so in the y-down convention its
	// top has a negative y coordinate.
	minY := 0
	for _, s := range glyphs[0].Outline {
		minY = min(minY, int(s.Args[0].Y))
	}
	if minY >= 0 {
		t.Error("glyph outline is not in y-down coordinates")
	}
}

func TestMissingGlyph(t *testing.T) {
	set, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	_, err = set[config.Regular].Glyphs("улица 中")
	var missing *MissingGlyphError
	if !errors.As(err, &missing) {
		t.Fatalf("got error %v, want MissingGlyphError", err)
	}
	if missing.Rune != '中' {
		t.Errorf("missing rune = %q", missing.Rune)
	}
}

func TestScale(t *testing.T) {
	set, _ := Default()
	F := set[config.Regular]
	if s := F.Scale(float64(F.unitsPerEm)); s != 1 {
		t.Errorf("Scale(upem) = %g, want 1", s)
	}
}

func TestLoadSet(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "mono.ttf")
	if err := os.WriteFile(fname, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadSet(map[config.FaceID]string{config.Bold: fname})
	if err != nil {
		t.Fatal(err)
	}
	def, _ := Default()
	if set[config.Regular] != def[config.Regular] {
		t.Error("regular typeface was replaced")
	}
	if set[config.Bold] == def[config.Bold] {
		t.Error("bold typeface was not replaced")
	}
	mono, err := Parse(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if set[config.Bold].Name != mono.Name {
		t.Errorf("bold font is %q, want %q", set[config.Bold].Name, mono.Name)
	}

	_, err = LoadSet(map[config.FaceID]string{config.Bold: filepath.Join(dir, "missing.ttf")})
	if err == nil {
		t.Error("missing font file not reported")
	}
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse([]byte("not a font"))
	if err == nil {
		t.Error("garbage parsed as a font")
	}
}

func TestSetGet(t *testing.T) {
	_, err := Set{}.Get(config.Regular)
	if err == nil {
		t.Error("empty set returned a font")
	}
}
