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

// Address-plate generates address plates as PDF files.
//
// Usage:
//
//	address-plate [options] name -type T -name N -translit X
//	address-plate [options] number -number N [-left L] [-right R]
//	address-plate [options] vertical -type T -name N -translit X -number N
//
// The PDF file is written to standard output, unless the -o option is
// given.  If the argument of -o is a directory, the file is written into
// this directory, using a file name derived from the plate text.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/addressplate/addressplate/canvas/raster"
	"github.com/addressplate/addressplate/config"
	"github.com/addressplate/addressplate/plate"
)

const producer = "address-plate"

func main() {
	log.SetPrefix("address-plate: ")
	log.SetFlags(0)

	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

var errUsage = errors.New("usage: address-plate [options] name|number|vertical [plate options]")

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("address-plate", flag.ContinueOnError)
	wide := flags.Bool("wide", false, "generate the wide variant of the plate")
	out := flags.String("o", "-", "output file or directory, \"-\" for standard output")
	preview := flags.String("preview", "", "also write a PNG preview to this file")
	previewWidth := flags.Int("preview-width", 800, "width of the PNG preview in pixels")
	configFile := flags.String("config", "", "YAML file with font and colour settings")
	verbose := flags.Bool("v", false, "report the plate size and file name")
	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if flags.NArg() < 1 {
		flags.Usage()
		return errUsage
	}

	size := config.Thin
	if *wide {
		size = config.Wide
	}
	opt := &plate.Options{Size: size}
	if *configFile != "" {
		f, err := config.LoadFile(*configFile)
		if err != nil {
			return err
		}
		opt, err = plate.OptionsFromFile(f, size)
		if err != nil {
			return err
		}
	}

	p, err := planPlate(opt, flags.Arg(0), flags.Args()[1:])
	if err != nil {
		return err
	}
	res, err := p.Render(producer)
	if err != nil {
		return err
	}

	fname, err := writeOutput(*out, res, stdout)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("%s plate, %.1f×%.1f mm, %s", p.Kind, toMM(res.Width), toMM(res.Height), fname)
	}

	if *preview != "" {
		err = writePreview(*preview, p, *previewWidth)
		if err != nil {
			return err
		}
	}
	return nil
}

// planPlate parses the arguments of a subcommand and lays out the plate.
func planPlate(opt *plate.Options, cmd string, args []string) (*plate.Plan, error) {
	flags := flag.NewFlagSet(cmd, flag.ContinueOnError)
	streetType := flags.String("type", "", "street type, e.g. \"вулиця\"")
	name := flags.String("name", "", "street name")
	translit := flags.String("translit", "", "transliterated street name")
	number := flags.String("number", "", "house number")
	left := flags.String("left", "", "house number to the left")
	right := flags.String("right", "", "house number to the right")

	switch cmd {
	case "name", "number", "vertical":
		// pass
	default:
		return nil, fmt.Errorf("unknown plate kind %q", cmd)
	}
	err := flags.Parse(args)
	if err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}

	switch cmd {
	case "name":
		return plate.PlanStreetName(opt, plate.StreetInput{
			Type:     *streetType,
			Name:     *name,
			Translit: *translit,
		})
	case "number":
		return plate.PlanHouseNumber(opt, plate.NumberInput{
			Number: *number,
			Left:   *left,
			Right:  *right,
		})
	default:
		return plate.PlanVertical(opt, plate.VerticalInput{
			Type:     *streetType,
			Name:     *name,
			Translit: *translit,
			Number:   *number,
		})
	}
}

// writeOutput stores the PDF file and returns the name of the file
// written.
func writeOutput(out string, res *plate.Result, stdout io.Writer) (string, error) {
	if out == "-" {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return "", errors.New("not writing PDF data to a terminal, use -o to name an output file")
		}
		_, err := stdout.Write(res.PDF)
		return "-", err
	}

	fname := out
	if strings.HasSuffix(out, string(filepath.Separator)) || isDir(out) {
		base := filepath.Base(res.FileName)
		if base != res.FileName || base == "." || base == ".." {
			return "", fmt.Errorf("invalid output file name %q", res.FileName)
		}
		fname = filepath.Join(out, base)
	}
	err := os.WriteFile(fname, res.PDF, 0o644)
	if err != nil {
		return "", err
	}
	return fname, nil
}

func writePreview(fname string, p *plate.Plan, width int) error {
	if width <= 0 {
		return fmt.Errorf("invalid preview width %d", width)
	}

	// render at twice the resolution, and scale down for anti-aliasing
	c, err := raster.New(p.Width, p.Height, 2*float64(width)/p.Width)
	if err != nil {
		return err
	}
	p.Draw(c)
	err = c.Close()
	if err != nil {
		return err
	}

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = c.WritePNG(fd, width)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func isDir(fname string) bool {
	fi, err := os.Stat(fname)
	return err == nil && fi.IsDir()
}

func toMM(x float64) float64 {
	return x / config.MM(1)
}
