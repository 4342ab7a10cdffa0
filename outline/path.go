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

package outline

import (
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/addressplate/addressplate/canvas"
	"github.com/addressplate/addressplate/face"
)

type cmd uint8

const (
	cmdMoveTo cmd = iota
	cmdLineTo
	cmdCurveTo
	cmdClose
)

type segment struct {
	cmd cmd
	pts [3]vec.Vec2
}

// Path is the outline of a string of text, set in one font.
// A Path is immutable once it has been constructed.
type Path struct {
	Text string

	segs    []segment
	bbox    rect.Rect
	advance vec.Vec2
}

var _ Item = (*Path)(nil)

// NewPath converts text into its outline, using font F at the given size
// in points.  The glyphs are placed next to each other without kerning.
func NewPath(text string, F *face.Face, size float64) (*Path, error) {
	glyphs, err := F.Glyphs(text)
	if err != nil {
		return nil, err
	}

	q := F.Scale(size)
	p := &Path{Text: text}

	var pen float64 // in font units
	var cur vec.Vec2
	open := false
	toPoint := func(a fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{
			X: (pen + fromFixed(a.X)) * q,
			Y: fromFixed(a.Y) * q,
		}
	}
	for _, g := range glyphs {
		for _, s := range g.Outline {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					p.segs = append(p.segs, segment{cmd: cmdClose})
				}
				cur = toPoint(s.Args[0])
				p.segs = append(p.segs, segment{cmd: cmdMoveTo, pts: [3]vec.Vec2{cur}})
				open = true
			case sfnt.SegmentOpLineTo:
				cur = toPoint(s.Args[0])
				p.segs = append(p.segs, segment{cmd: cmdLineTo, pts: [3]vec.Vec2{cur}})
			case sfnt.SegmentOpQuadTo:
				// PDF has no quadratic Bézier curves, see
				// https://pomax.github.io/bezierinfo/#reordering
				ctrl := toPoint(s.Args[0])
				end := toPoint(s.Args[1])
				c1 := vec.Vec2{X: cur.X + 2*(ctrl.X-cur.X)/3, Y: cur.Y + 2*(ctrl.Y-cur.Y)/3}
				c2 := vec.Vec2{X: end.X + 2*(ctrl.X-end.X)/3, Y: end.Y + 2*(ctrl.Y-end.Y)/3}
				p.segs = append(p.segs, segment{cmd: cmdCurveTo, pts: [3]vec.Vec2{c1, c2, end}})
				cur = end
			case sfnt.SegmentOpCubeTo:
				end := toPoint(s.Args[2])
				p.segs = append(p.segs, segment{
					cmd: cmdCurveTo,
					pts: [3]vec.Vec2{toPoint(s.Args[0]), toPoint(s.Args[1]), end},
				})
				cur = end
			}
		}
		if open {
			p.segs = append(p.segs, segment{cmd: cmdClose})
			open = false
		}
		pen += fromFixed(g.Advance)
	}

	p.advance = vec.Vec2{X: pen * q}
	p.bbox = p.extents()
	return p, nil
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// extents computes the bounding box of all points of the path, including
// the control points of curves.  For an empty path, the zero rectangle is
// returned.
func (p *Path) extents() rect.Rect {
	b := rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	n := 0
	for _, s := range p.segs {
		var k int
		switch s.cmd {
		case cmdMoveTo, cmdLineTo:
			k = 1
		case cmdCurveTo:
			k = 3
		}
		for _, pt := range s.pts[:k] {
			b.LLx = min(b.LLx, pt.X)
			b.LLy = min(b.LLy, pt.Y)
			b.URx = max(b.URx, pt.X)
			b.URy = max(b.URy, pt.Y)
			n++
		}
	}
	if n == 0 {
		return rect.Rect{}
	}
	return b
}

// BBox implements the [Item] interface.
func (p *Path) BBox() rect.Rect {
	return p.bbox
}

// Advance implements the [Item] interface.
func (p *Path) Advance() vec.Vec2 {
	return p.advance
}

// IsEmpty reports whether the path contains no ink.
func (p *Path) IsEmpty() bool {
	return len(p.segs) == 0
}

// Draw implements the [Item] interface.
// The outline is filled with the colour fg.
func (p *Path) Draw(c canvas.Canvas, fg canvas.CMYK) {
	if p.IsEmpty() {
		return
	}

	c.PushGraphicsState()
	defer c.PopGraphicsState()

	c.SetFillColor(fg)
	for _, s := range p.segs {
		switch s.cmd {
		case cmdMoveTo:
			c.MoveTo(s.pts[0].X, s.pts[0].Y)
		case cmdLineTo:
			c.LineTo(s.pts[0].X, s.pts[0].Y)
		case cmdCurveTo:
			c.CurveTo(s.pts[0].X, s.pts[0].Y, s.pts[1].X, s.pts[1].Y, s.pts[2].X, s.pts[2].Y)
		case cmdClose:
			c.ClosePath()
		}
	}
	c.Fill()
}
