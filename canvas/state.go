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

package canvas

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// GState is the part of the graphics state which is saved and restored
// by PushGraphicsState and PopGraphicsState.
type GState struct {
	CTM         matrix.Matrix
	FillColor   CMYK
	StrokeColor CMYK
	LineWidth   float64
}

// State tracks the graphics state of a canvas implementation which
// does not have a PDF content stream to do this.
type State struct {
	GState
	stack []GState

	// Err is the first error which occurred.
	Err error
}

var errUnbalanced = errors.New("PopGraphicsState without PushGraphicsState")

// NewState returns the initial graphics state of a page.
func NewState() State {
	return State{
		GState: GState{
			CTM:         matrix.Identity,
			FillColor:   CMYK{0, 0, 0, 1},
			StrokeColor: CMYK{0, 0, 0, 1},
			LineWidth:   1,
		},
	}
}

// Push saves the graphics state.
func (s *State) Push() {
	s.stack = append(s.stack, s.GState)
}

// Pop restores the most recently saved graphics state.
func (s *State) Pop() {
	n := len(s.stack)
	if n == 0 {
		if s.Err == nil {
			s.Err = errUnbalanced
		}
		return
	}
	s.GState = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

// Depth returns the number of saved graphics states.
func (s *State) Depth() int {
	return len(s.stack)
}

// Transform applies m before the current transformation.
func (s *State) Transform(m matrix.Matrix) {
	s.CTM = m.Mul(s.CTM)
}

// ToDevice maps a point from user space to device space.
func (s *State) ToDevice(x, y float64) vec.Vec2 {
	m := s.CTM
	return vec.Vec2{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	}
}

// LineScale returns the factor by which the current transformation
// scales lengths.  Only uniform scaling, as used for the plates, is
// represented exactly.
func (s *State) LineScale() float64 {
	m := s.CTM
	det := m[0]*m[3] - m[1]*m[2]
	if det < 0 {
		det = -det
	}
	return math.Sqrt(det)
}
