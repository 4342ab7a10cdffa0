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

// Package raster draws plates into a bitmap, for previews.
package raster

import (
	"errors"
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/addressplate/addressplate/canvas"
)

// Canvas renders into an RGBA image.
// Pixels outside all painted paths stay transparent.
type Canvas struct {
	canvas.State

	img    *image.RGBA
	raster *vector.Rasterizer
	res    float64 // pixels per point

	path []pathOp
}

var _ canvas.Canvas = (*Canvas)(nil)

type pathOp struct {
	op  byte // 'm', 'l', 'c' or 'h'
	pts [3]vec.Vec2
}

// New returns a canvas for a page of the given size in points, rendered at
// res pixels per point.
func New(width, height, res float64) (*Canvas, error) {
	if !(width > 0 && height > 0 && res > 0) {
		return nil, errors.New("invalid raster size")
	}
	w := int(math.Ceil(width * res))
	h := int(math.Ceil(height * res))
	return &Canvas{
		State:  canvas.NewState(),
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		raster: vector.NewRasterizer(w, h),
		res:    res,
	}, nil
}

// Image returns the rendered image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Close checks that the drawing operations were well-formed.
func (c *Canvas) Close() error {
	if c.Err != nil {
		return c.Err
	}
	if c.Depth() != 0 {
		return errors.New("unbalanced PushGraphicsState")
	}
	return nil
}

// WritePNG encodes the image as PNG.  If maxWidth is positive and the
// image is wider, it is scaled down to maxWidth pixels first.
func (c *Canvas) WritePNG(w io.Writer, maxWidth int) error {
	var img image.Image = c.img
	if maxWidth > 0 && c.img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(c.img, maxWidth, 0, imaging.Lanczos)
	}
	return imaging.Encode(w, img, imaging.PNG)
}

func (c *Canvas) PushGraphicsState() {
	c.Push()
}

func (c *Canvas) PopGraphicsState() {
	c.Pop()
}

func (c *Canvas) Transform(m matrix.Matrix) {
	c.State.Transform(m)
}

func (c *Canvas) SetFillColor(col canvas.CMYK) {
	c.FillColor = col
}

func (c *Canvas) SetStrokeColor(col canvas.CMYK) {
	c.StrokeColor = col
}

func (c *Canvas) SetLineWidth(w float64) {
	c.LineWidth = w
}

// device maps user space coordinates to pixels.
func (c *Canvas) device(x, y float64) vec.Vec2 {
	p := c.ToDevice(x, y)
	return vec.Vec2{X: p.X * c.res, Y: p.Y * c.res}
}

func (c *Canvas) MoveTo(x, y float64) {
	c.path = append(c.path, pathOp{op: 'm', pts: [3]vec.Vec2{c.device(x, y)}})
}

func (c *Canvas) LineTo(x, y float64) {
	c.path = append(c.path, pathOp{op: 'l', pts: [3]vec.Vec2{c.device(x, y)}})
}

func (c *Canvas) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	c.path = append(c.path, pathOp{op: 'c', pts: [3]vec.Vec2{
		c.device(x1, y1), c.device(x2, y2), c.device(x3, y3),
	}})
}

func (c *Canvas) ClosePath() {
	c.path = append(c.path, pathOp{op: 'h'})
}

// Fill fills the current path.  Overlapping parts of the path are painted
// once.
func (c *Canvas) Fill() {
	c.raster.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	for _, p := range c.path {
		switch p.op {
		case 'm':
			c.raster.MoveTo(f32(p.pts[0]))
		case 'l':
			c.raster.LineTo(f32(p.pts[0]))
		case 'c':
			x1, y1 := f32(p.pts[0])
			x2, y2 := f32(p.pts[1])
			x3, y3 := f32(p.pts[2])
			c.raster.CubeTo(x1, y1, x2, y2, x3, y3)
		case 'h':
			c.raster.ClosePath()
		}
	}
	c.paint(c.FillColor)
}

// Stroke strokes the current path with butt caps and without line joins.
// Curves are approximated by straight segments.
func (c *Canvas) Stroke() {
	c.raster.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())

	hw := c.LineWidth * c.LineScale() * c.res / 2
	hw = max(hw, 0.5)

	var start, cur vec.Vec2
	for _, p := range c.path {
		switch p.op {
		case 'm':
			start, cur = p.pts[0], p.pts[0]
		case 'l':
			c.segment(cur, p.pts[0], hw)
			cur = p.pts[0]
		case 'c':
			const n = 8
			for i := 1; i <= n; i++ {
				next := bezier(cur, p.pts, float64(i)/n)
				c.segment(cur, next, hw)
				cur = next
			}
			cur = p.pts[2]
		case 'h':
			c.segment(cur, start, hw)
			cur = start
		}
	}
	c.paint(c.StrokeColor)
}

// segment adds the rectangle covered by a stroked straight line to the
// rasterizer.
func (c *Canvas) segment(a, b vec.Vec2, hw float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	c.raster.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	c.raster.LineTo(float32(b.X+nx), float32(b.Y+ny))
	c.raster.LineTo(float32(b.X-nx), float32(b.Y-ny))
	c.raster.LineTo(float32(a.X-nx), float32(a.Y-ny))
	c.raster.ClosePath()
}

func (c *Canvas) paint(col canvas.CMYK) {
	if len(c.path) > 0 {
		c.raster.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	}
	c.path = c.path[:0]
}

// bezier evaluates the cubic Bézier curve from p0 with control points
// pts[0], pts[1] and end point pts[2] at parameter t.
func bezier(p0 vec.Vec2, pts [3]vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	a, b, c, d := s*s*s, 3*s*s*t, 3*s*t*t, t*t*t
	return vec.Vec2{
		X: a*p0.X + b*pts[0].X + c*pts[1].X + d*pts[2].X,
		Y: a*p0.Y + b*pts[0].Y + c*pts[1].Y + d*pts[2].Y,
	}
}

func f32(p vec.Vec2) (float32, float32) {
	return float32(p.X), float32(p.Y)
}
