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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File holds the settings which can be changed without recompiling:
// the font files and the plate colours.
//
// A typical file looks as follows:
//
//	fonts:
//	  regular: fonts/probanav2-regular-webfont.ttf
//	  semi-bold: fonts/probanav2-semibold-webfont.ttf
//	  bold: fonts/probanav2-bold-webfont.ttf
//	colors:
//	  background: [75, 65, 0, 75]
//	  foreground: [0, 0, 0, 0]
//
// Relative font paths are resolved against the directory of the
// configuration file.  Colours are CMYK percentages.
type File struct {
	Fonts  map[string]string `yaml:"fonts"`
	Colors struct {
		Background []float64 `yaml:"background"`
		Foreground []float64 `yaml:"foreground"`
	} `yaml:"colors"`
}

// LoadFile reads and validates a configuration file.
func LoadFile(fname string) (*File, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := ReadFile(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	dir := filepath.Dir(fname)
	for name, path := range f.Fonts {
		if path != "" && !filepath.IsAbs(path) {
			f.Fonts[name] = filepath.Join(dir, path)
		}
	}
	return f, nil
}

// ReadFile decodes a configuration file from r.
// Unknown keys are reported as errors.
func ReadFile(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	f := &File{}
	err := dec.Decode(f)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	err = f.Validate()
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks that all typeface names are known and that the
// colours have four components in the range 0 to 100.
func (f *File) Validate() error {
	for name := range f.Fonts {
		if _, err := ParseFaceID(name); err != nil {
			return err
		}
	}
	if err := checkCMYK("background", f.Colors.Background); err != nil {
		return err
	}
	return checkCMYK("foreground", f.Colors.Foreground)
}

// FontFiles returns the font file names, indexed by typeface.
func (f *File) FontFiles() map[FaceID]string {
	res := make(map[FaceID]string, len(f.Fonts))
	for name, path := range f.Fonts {
		id, err := ParseFaceID(name)
		if err != nil || path == "" {
			continue
		}
		res[id] = path
	}
	return res
}

func checkCMYK(name string, c []float64) error {
	if c == nil {
		return nil
	}
	if len(c) != 4 {
		return fmt.Errorf("%s colour: expected 4 CMYK values, got %d", name, len(c))
	}
	for _, x := range c {
		if x < 0 || x > 100 {
			return fmt.Errorf("%s colour: value %g outside 0..100", name, x)
		}
	}
	return nil
}
