// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"iter"
	"slices"

	"honnef.co/go/curve"
	"honnef.co/go/outline/encoding"
	"honnef.co/go/outline/jmath"
)

const (
	// DefaultTolerance is the flattening tolerance, in device units, for
	// shapes that have to approximate curves.
	DefaultTolerance = 0.1
	// DefaultStrokeTolerance is the tolerance used when outlining strokes.
	DefaultStrokeTolerance = 0.01
)

// Shape is anything that can describe its outline as an input path.
type Shape interface {
	// PathData returns the outline in the shape's own coordinates. post is
	// the transform the outline will be drawn under; shapes that
	// approximate use it to pick a tolerance.
	PathData(post jmath.Transform) *encoding.Tape
}

var (
	_ Shape = (*Circle)(nil)
	_ Shape = (*Rect)(nil)
	_ Shape = (*Triangle)(nil)
	_ Shape = (*Polygon)(nil)
	_ Shape = (*Path)(nil)
	_ Shape = (*Stroke)(nil)
	_ Shape = (*Blend)(nil)
	_ Shape = (*Transformed)(nil)
	_ Shape = (*CurveShape)(nil)
)

// userTolerance converts a device space tolerance into one for the space
// that post maps from.
func userTolerance(tol, def float64, post jmath.Transform) float64 {
	if tol <= 0 {
		tol = def
	}
	if s := post.ScaleFactor(); s > jmath.Epsilon {
		tol /= s
	}
	return tol
}

type Circle struct {
	Cx, Cy, R float32
}

// PathData returns the circle as three rational quadratic arcs, each
// covering a third of it.
func (c *Circle) PathData(post jmath.Transform) *encoding.Tape {
	const (
		s = 0.5                // sin(pi/6)
		k = 0.8660254037844386 // cos(pi/6)
		w = s
	)
	r, cx, cy := c.R, c.Cx, c.Cy
	x1, y1 := cx, r+cy
	x2, y2 := -k*r+cx*w, s*r+cy*w
	x3, y3 := -k*r+cx, -s*r+cy
	x4, y4 := cx*w, -r+cy*w
	x5, y5 := k*r+cx, -s*r+cy
	x6, y6 := k*r+cx*w, s*r+cy*w

	var t encoding.Tape
	t.BeginContour(x1, y1)
	t.RationalQuadraticSegment(x1, y1, x2, y2, w, x3, y3)
	t.RationalQuadraticSegment(x3, y3, x4, y4, w, x5, y5)
	t.RationalQuadraticSegment(x5, y5, x6, y6, w, x1, y1)
	t.EndClosedContour(x1, y1)
	return &t
}

type Rect struct {
	X, Y, Width, Height float32
}

func (r *Rect) PathData(post jmath.Transform) *encoding.Tape {
	x2, y2 := r.X+r.Width, r.Y+r.Height
	var t encoding.Tape
	t.BeginContour(r.X, r.Y)
	t.LinearSegment(r.X, r.Y, x2, r.Y)
	t.LinearSegment(x2, r.Y, x2, y2)
	t.LinearSegment(x2, y2, r.X, y2)
	t.LinearSegment(r.X, y2, r.X, r.Y)
	t.EndClosedContour(r.X, r.Y)
	return &t
}

type Triangle struct {
	X1, Y1, X2, Y2, X3, Y3 float32
}

func (tr *Triangle) PathData(post jmath.Transform) *encoding.Tape {
	var t encoding.Tape
	t.BeginContour(tr.X1, tr.Y1)
	t.LinearSegment(tr.X1, tr.Y1, tr.X2, tr.Y2)
	t.LinearSegment(tr.X2, tr.Y2, tr.X3, tr.Y3)
	t.LinearSegment(tr.X3, tr.Y3, tr.X1, tr.Y1)
	t.EndClosedContour(tr.X1, tr.Y1)
	return &t
}

// Polygon is a closed polygon given by interleaved x and y coordinates.
type Polygon struct {
	Coordinates []float32
}

func (p *Polygon) PathData(post jmath.Transform) *encoding.Tape {
	var t encoding.Tape
	n := len(p.Coordinates) / 2
	if n == 0 {
		return &t
	}
	c := p.Coordinates
	f := encoding.CloseContours{Sink: &t}
	f.BeginContour(c[0], c[1])
	for i := range n - 1 {
		f.LinearSegment(c[2*i], c[2*i+1], c[2*i+2], c[2*i+3])
	}
	f.EndClosedContour(c[2*(n-1)], c[2*(n-1)+1])
	return &t
}

// Path is a shape backed directly by a tape.
type Path struct {
	Tape *encoding.Tape
}

func (p *Path) PathData(post jmath.Transform) *encoding.Tape {
	if p.Tape == nil {
		return &encoding.Tape{}
	}
	return p.Tape
}

// Stroke is the outline of another shape's stroke.
type Stroke struct {
	Shape Shape
	Style curve.Stroke
	// Device space tolerance; zero selects DefaultStrokeTolerance.
	Tolerance float64
}

func (s *Stroke) PathData(post jmath.Transform) *encoding.Tape {
	tol := userTolerance(s.Tolerance, DefaultStrokeTolerance, post)
	sink := encoding.BezPathSink{Tolerance: tol}
	s.Shape.PathData(post).Iterate(&sink)

	var seq iter.Seq[curve.PathElement] = sink.Path.PathElements(tol)
	if len(s.Style.DashPattern) > 0 {
		seq = curve.Dash(seq, s.Style.DashOffset, s.Style.DashPattern)
	}
	stroked := curve.StrokePath(seq, s.Style, curve.StrokeOpts{}, tol)

	var t encoding.Tape
	encoding.AppendPathElements(&t, stroked)
	return &t
}

// Blend interpolates between two shapes whose outlines have the same
// structure. Outlines that differ in structure blend to nothing.
type Blend struct {
	From, To Shape
	T        float32
}

func (b *Blend) PathData(post jmath.Transform) *encoding.Tape {
	from := b.From.PathData(post)
	to := b.To.PathData(post)
	if !slices.Equal(from.Instructions, to.Instructions) || len(from.Data) != len(to.Data) {
		return &encoding.Tape{}
	}
	out := from.Clone()
	for i, instr := range from.Instructions {
		if instr.IsParameter() {
			out.Offsets[i] = encoding.FloatOffset(lerp(from.Offsets[i].Float(), to.Offsets[i].Float(), b.T))
		} else if from.Offsets[i] != to.Offsets[i] {
			return &encoding.Tape{}
		}
	}
	for i := range out.Data {
		out.Data[i] = lerp(from.Data[i], to.Data[i], b.T)
	}
	return out
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

// Transformed is another shape mapped through a transform.
type Transformed struct {
	Shape     Shape
	Transform jmath.Transform
}

func (s *Transformed) PathData(post jmath.Transform) *encoding.Tape {
	src := s.Shape.PathData(s.Transform.Transformed(post))
	var t encoding.Tape
	src.Iterate(encoding.NewTransformFilter(s.Transform, &t))
	return &t
}

// CurveShape adapts any [curve.Shape].
type CurveShape struct {
	Shape curve.Shape
	// Device space tolerance; zero selects DefaultTolerance.
	Tolerance float64
}

func (s *CurveShape) PathData(post jmath.Transform) *encoding.Tape {
	var t encoding.Tape
	encoding.AppendPathElements(&t, s.Shape.PathElements(userTolerance(s.Tolerance, DefaultTolerance, post)))
	return &t
}
