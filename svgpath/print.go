// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package svgpath

import (
	"math"
	"strconv"

	"honnef.co/go/outline/encoding"
	"honnef.co/go/outline/jmath"
)

// Printer is an input path consumer that produces SVG path data with
// absolute commands. Rational quadratic segments print as elliptical
// arcs; hyperbolic ones, which SVG can't express, are flattened.
type Printer struct {
	// Tolerance for flattening hyperbolic segments. Zero selects 0.1.
	Tolerance float32

	buf []byte
}

var _ encoding.InputPath = (*Printer)(nil)

func (p *Printer) String() string { return string(p.buf) }
func (p *Printer) Bytes() []byte  { return p.buf }
func (p *Printer) Reset()         { p.buf = p.buf[:0] }

// Print returns the path data of t.
func Print(t *encoding.Tape) string {
	var p Printer
	t.Iterate(&p)
	return p.String()
}

func (p *Printer) cmd(c byte, args ...float32) {
	if len(p.buf) > 0 {
		p.buf = append(p.buf, ' ')
	}
	p.buf = append(p.buf, c)
	for i, v := range args {
		if i > 0 {
			p.buf = append(p.buf, ' ')
		}
		p.buf = strconv.AppendFloat(p.buf, float64(v), 'f', -1, 32)
	}
}

func (p *Printer) BeginContour(x0, y0 float32)     { p.cmd('M', x0, y0) }
func (p *Printer) EndOpenContour(x0, y0 float32)   {}
func (p *Printer) EndClosedContour(x0, y0 float32) { p.cmd('Z') }

func (p *Printer) LinearSegment(x0, y0, x1, y1 float32) { p.cmd('L', x1, y1) }

func (p *Printer) QuadraticSegment(x0, y0, x1, y1, x2, y2 float32) {
	p.cmd('Q', x1, y1, x2, y2)
}

func (p *Printer) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	p.cmd('C', x1, y1, x2, y2, x3, y3)
}

func flag(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// RationalQuadraticSegment finds the ellipse through the control points from
// the projective map that takes the unit circle onto it. The SVD of its
// linear part gives the radii and rotation.
func (p *Printer) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float32) {
	const eps = 1e-6
	X0, Y0, X1, Y1, W1, X2, Y2 := float64(x0), float64(y0), float64(x1), float64(y1), float64(w1), float64(x2), float64(y2)

	s2 := 1 - W1*W1
	if math.Abs(s2) < eps {
		if x0 == x1 && x1 == x2 && y0 == y1 && y1 == y2 {
			p.cmd('L', x2, y2)
		} else {
			// A parabola.
			p.cmd('Q', x1/w1, y1/w1, x2, y2)
		}
		return
	}
	if s2 < 0 {
		tol := p.Tolerance
		if tol <= 0 {
			tol = 0.1
		}
		encoding.FlattenRationalQuadratic(x0, y0, x1, y1, w1, x2, y2, tol, func(x, y float32) {
			p.cmd('L', x, y)
		})
		return
	}

	s := math.Sqrt(s2)
	a := 2*X1 - W1*(X0+X2)
	b := s * (X2 - X0)
	c := 2*Y1 - W1*(Y0+Y2)
	d := s * (Y2 - Y0)
	phi, sx, sy, _ := jmath.SVD2(a, b, c, d)
	rx := math.Abs(sx) / (2 * s2)
	ry := math.Abs(sy) / (2 * s2)
	if rx < eps || ry < eps {
		p.cmd('L', x2, y2)
		return
	}

	large := w1 < 0
	// Orientation of the control triangle.
	det := X0*(Y1-W1*Y2) - Y0*(X1-W1*X2) + (X1*Y2 - Y1*X2)
	sweep := det > 0
	p.cmd('A', float32(rx), float32(ry), float32(jmath.Deg(phi)), flag(large), flag(sweep), x2, y2)
}
