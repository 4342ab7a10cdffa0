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

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMM(t *testing.T) {
	if d := math.Abs(MM(25.4) - 72); d > 1e-12 {
		t.Errorf("MM(25.4) = %g, want 72", MM(25.4))
	}
	// the plate tables were measured with the factor 2.834645669
	if d := math.Abs(MM(40) - 40*2.834645669); d > 1e-6 {
		t.Errorf("MM(40) = %g", MM(40))
	}
}

func TestArrowsFor(t *testing.T) {
	cases := []struct {
		left, right string
		want        ArrowFlags
		kind        PlateKind
	}{
		{"", "", ArrowNone, KindHouseNumber},
		{"14", "", ArrowLeft, KindHouseNumberArrow},
		{"", "12А", ArrowRight, KindHouseNumberArrow},
		{"14", "12А", ArrowBoth, KindHouseNumberArrow},
	}
	for _, c := range cases {
		got := ArrowsFor(c.left, c.right)
		if got != c.want {
			t.Errorf("ArrowsFor(%q, %q) = %s, want %s", c.left, c.right, got, c.want)
		}
		if k := got.Kind(); k != c.kind {
			t.Errorf("%s.Kind() = %s, want %s", got, k, c.kind)
		}
	}
}

func TestWidthTablesMonotone(t *testing.T) {
	for _, v := range []SizeVariant{Thin, Wide} {
		for _, a := range []ArrowFlags{ArrowNone, ArrowLeft, ArrowBoth} {
			w := HouseNumber(v, a).Widths
			for i := 1; i < len(w); i++ {
				if w[i] < w[i-1] {
					t.Errorf("%s/%s: width table decreases at %d: %v", v, a, i, w)
				}
			}
		}
	}
}

func TestHouseNumberLayoutSelection(t *testing.T) {
	for _, v := range []SizeVariant{Thin, Wide} {
		plain := HouseNumber(v, ArrowNone)
		if plain.Arrow != (ArrowSpec{}) {
			t.Errorf("%s: plate without arrows has arrow geometry", v)
		}
		for _, a := range []ArrowFlags{ArrowLeft, ArrowRight, ArrowBoth} {
			l := HouseNumber(v, a)
			if l == plain {
				t.Errorf("%s/%s: got the layout without arrows", v, a)
			}
			if l.Arrow.Length <= 0 || l.LabelMain.Size <= 0 {
				t.Errorf("%s/%s: incomplete arrow layout", v, a)
			}
		}
		if plain.Margin != Plate(v).Margin || plain.Height != Plate(v).Height {
			t.Errorf("%s: house number plate does not share the common values", v)
		}
	}
}

func TestNumberFonts(t *testing.T) {
	n := &HouseNumber(Thin, ArrowNone).NumberFonts
	for _, f := range []Field{Main, LetterSuffix, FractionNumber, FractionLetterSuffix} {
		spec, ok := n.Font(f)
		if !ok || spec.Size <= 0 {
			t.Errorf("no font for %s", f)
		}
	}
	if _, ok := n.Font(Slash); ok {
		t.Error("slash must not have a font")
	}
	spec, _ := n.Font(Main)
	if diff := cmp.Diff(FontSpec{Face: SemiBold, Size: 480}, spec); diff != "" {
		t.Errorf("main font (-want +got):\n%s", diff)
	}
}

func TestParseSizeVariant(t *testing.T) {
	for _, s := range []string{"thin", "Thin", " wide ", ""} {
		if _, err := ParseSizeVariant(s); err != nil {
			t.Errorf("ParseSizeVariant(%q): %v", s, err)
		}
	}
	if _, err := ParseSizeVariant("narrow"); err == nil {
		t.Error("ParseSizeVariant(\"narrow\") succeeded")
	}
}

func TestSizeVariantIsValid(t *testing.T) {
	for _, v := range []SizeVariant{Thin, Wide} {
		if !v.IsValid() {
			t.Errorf("%s is not valid", v)
		}
	}
	for _, v := range []SizeVariant{-1, 2, 100} {
		if v.IsValid() {
			t.Errorf("%s is valid", v)
		}
	}
}

func TestReadFile(t *testing.T) {
	in := `
fonts:
  regular: a.ttf
  bold: /fonts/b.ttf
colors:
  background: [75, 65, 0, 75]
`
	f, err := ReadFile(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := map[FaceID]string{Regular: "a.ttf", Bold: "/fonts/b.ttf"}
	if diff := cmp.Diff(want, f.FontFiles()); diff != "" {
		t.Errorf("font files (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{75, 65, 0, 75}, f.Colors.Background); diff != "" {
		t.Errorf("background (-want +got):\n%s", diff)
	}
	if f.Colors.Foreground != nil {
		t.Errorf("unexpected foreground %v", f.Colors.Foreground)
	}
}

func TestReadFileErrors(t *testing.T) {
	cases := []string{
		"fonts:\n  italic: x.ttf\n",
		"colors:\n  background: [1, 2, 3]\n",
		"colors:\n  foreground: [0, 0, 0, 101]\n",
		"colour: red\n",
	}
	for _, in := range cases {
		if _, err := ReadFile(strings.NewReader(in)); err == nil {
			t.Errorf("ReadFile(%q) succeeded", in)
		}
	}
}

func TestReadFileEmpty(t *testing.T) {
	f, err := ReadFile(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.FontFiles()) != 0 {
		t.Errorf("unexpected fonts %v", f.FontFiles())
	}
}

func TestLoadFileRelativePaths(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "plate.yaml")
	err := os.WriteFile(fname, []byte("fonts:\n  semi-bold: fonts/sb.ttf\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	f, err := LoadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "fonts", "sb.ttf")
	if got := f.FontFiles()[SemiBold]; got != want {
		t.Errorf("semi-bold font = %q, want %q", got, want)
	}
}
