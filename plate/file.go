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
	"github.com/addressplate/addressplate/face"
)

// OptionsFromFile returns options which use the fonts and colours of a
// configuration file.  Settings missing from the file keep their default
// values.  The fonts are loaded immediately.
func OptionsFromFile(f *config.File, size config.SizeVariant) (*Options, error) {
	faces, err := face.LoadSet(f.FontFiles())
	if err != nil {
		return nil, err
	}

	colors := DefaultColors
	if c := f.Colors.Background; len(c) == 4 {
		colors.Background = canvas.CMYKPercent(c[0], c[1], c[2], c[3])
	}
	if c := f.Colors.Foreground; len(c) == 4 {
		colors.Foreground = canvas.CMYKPercent(c[0], c[1], c[2], c[3])
	}

	return &Options{
		Size:   size,
		Faces:  faces,
		Colors: &colors,
	}, nil
}
