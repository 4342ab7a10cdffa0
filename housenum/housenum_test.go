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

package housenum

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/addressplate/addressplate/config"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want *Fields
	}{
		{"7", &Fields{Main: "7"}},
		{"25", &Fields{Main: "25"}},
		{"12-14", &Fields{Main: "12-14"}},
		{"25А", &Fields{Main: "25", LetterSuffix: "А"}},
		{"12-14БВ", &Fields{Main: "12-14", LetterSuffix: "БВ"}},
		{"25/3", &Fields{Main: "25", HasSlash: true, FractionNumber: "3"}},
		{"25/3А", &Fields{Main: "25", HasSlash: true, FractionNumber: "3", FractionLetterSuffix: "А"}},
		{"1-3/17Я", &Fields{Main: "1-3", HasSlash: true, FractionNumber: "17", FractionLetterSuffix: "Я"}},
		{"25 к2", &Fields{Main: "25", LetterSuffix: " к2"}},
		{"4-6 к10", &Fields{Main: "4-6", LetterSuffix: " к10"}},
	}
	for _, c := range cases {
		got, ok := Parse(c.in)
		if !ok {
			t.Errorf("Parse(%q) failed", c.in)
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", c.in, diff)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"",
		"0",
		"07",
		"12-",
		"-12",
		"12-07",
		"25а",     // lower case letter
		"25A",     // Latin A
		"25//3",   // double slash
		"25/3/4",  // two slashes
		"25/0",    // leading zero in fraction
		"25/",     // missing fraction
		"25А/3",   // letter before slash
		"25к2",    // corpus without space
		"25 К2",   // upper case corpus marker
		"25 к",    // corpus without number
		"25А к2",  // letter and corpus
		"7К3",     // neither letter suffix nor corpus
		"25 ",     // trailing space
		" 25",     // leading space
		"25\n",    // trailing newline
		"25Ё",     // outside А-Я
		"٢٥",      // non-ASCII digits
		"25/3 к2", // fraction and corpus
	}
	for _, in := range cases {
		if f, ok := Parse(in); ok {
			t.Errorf("Parse(%q) = %+v, want failure", in, f)
		}
		if Valid(in) {
			t.Errorf("Valid(%q) = true", in)
		}
	}
}

// Bare numbers and ranges parse into the main field only.
func TestParseBareNumbers(t *testing.T) {
	for a := 1; a < 200; a += 7 {
		for _, s := range []string{fmt.Sprint(a), fmt.Sprintf("%d-%d", a, a+2)} {
			got, ok := Parse(s)
			if !ok {
				t.Fatalf("Parse(%q) failed", s)
			}
			if diff := cmp.Diff(&Fields{Main: s}, got); diff != "" {
				t.Errorf("Parse(%q) (-want +got):\n%s", s, diff)
			}
		}
	}
}

func TestParseFractions(t *testing.T) {
	for _, num := range []string{"1", "25", "3-5"} {
		for _, frac := range []string{"1", "3", "120"} {
			for _, letters := range []string{"", "А", "БЯ"} {
				s := num + "/" + frac + letters
				got, ok := Parse(s)
				if !ok {
					t.Errorf("Parse(%q) failed", s)
					continue
				}
				want := &Fields{
					Main:                 num,
					HasSlash:             true,
					FractionNumber:       frac,
					FractionLetterSuffix: letters,
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("Parse(%q) (-want +got):\n%s", s, diff)
				}
			}
		}
	}
}

// At most one of the patterns matches any input.
func TestPatternsExclusive(t *testing.T) {
	var inputs []string
	for _, main := range []string{"1", "25", "12-14"} {
		for _, tail := range []string{"", "А", "ЯЯ", "/3", "/3А", " к1", " к12", "А к1", "/3 к1"} {
			inputs = append(inputs, main+tail)
		}
	}
	for _, s := range inputs {
		n := 0
		for _, re := range Plate {
			if re.MatchString(s) {
				n++
			}
		}
		if n > 1 {
			t.Errorf("%q matches %d patterns", s, n)
		}
	}
}

func TestParseNormalizes(t *testing.T) {
	// "Й" written as "И" followed by a combining breve
	got, ok := Parse("5И\u0306")
	if !ok {
		t.Fatal("decomposed letter rejected")
	}
	if got.LetterSuffix != "Й" {
		t.Errorf("letter suffix = %q, want %q", got.LetterSuffix, "Й")
	}
}

func TestParseArrow(t *testing.T) {
	cases := []struct {
		in   string
		want *ArrowFields
	}{
		{"14", &ArrowFields{Main: "14"}},
		{"12А", &ArrowFields{Main: "12", LetterSuffix: "А"}},
		{"2-10", &ArrowFields{Main: "2-10"}},
		{"2-10ВГ", &ArrowFields{Main: "2-10", LetterSuffix: "ВГ"}},
	}
	for _, c := range cases {
		got, ok := ParseArrow(c.in)
		if !ok {
			t.Errorf("ParseArrow(%q) failed", c.in)
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("ParseArrow(%q) (-want +got):\n%s", c.in, diff)
		}
	}

	for _, in := range []string{"", "0", "12/3", "12 к1", "12а", "x"} {
		if _, ok := ParseArrow(in); ok {
			t.Errorf("ParseArrow(%q) succeeded", in)
		}
	}
}

func TestItems(t *testing.T) {
	cases := []struct {
		in   string
		want []Item
	}{
		{"25", []Item{{config.Main, "25"}}},
		{"25А", []Item{{config.Main, "25"}, {config.LetterSuffix, "А"}}},
		{"25 к2", []Item{{config.Main, "25"}, {config.LetterSuffix, " к2"}}},
		{"25/3", []Item{{config.Main, "25"}, {Field: config.Slash}, {config.FractionNumber, "3"}}},
		{"25/3А", []Item{
			{config.Main, "25"},
			{Field: config.Slash},
			{config.FractionNumber, "3"},
			{config.FractionLetterSuffix, "А"},
		}},
	}
	for _, c := range cases {
		f, ok := Parse(c.in)
		if !ok {
			t.Fatalf("Parse(%q) failed", c.in)
		}
		if diff := cmp.Diff(c.want, f.Items()); diff != "" {
			t.Errorf("%q: items (-want +got):\n%s", c.in, diff)
		}
	}

	a, _ := ParseArrow("12А")
	want := []Item{{config.ArrowMain, "12"}, {config.ArrowLetterSuffix, "А"}}
	if diff := cmp.Diff(want, a.Items()); diff != "" {
		t.Errorf("arrow items (-want +got):\n%s", diff)
	}
}

func TestMatchGroups(t *testing.T) {
	got := Plate.Match("25/3")
	want := map[string]string{
		"main":       "25",
		"slash":      "/",
		"fraction":   "3",
		"fracletter": "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Match (-want +got):\n%s", diff)
	}
	if m := Plate.Match("abc"); m != nil {
		t.Errorf("Match(\"abc\") = %v", m)
	}
}
