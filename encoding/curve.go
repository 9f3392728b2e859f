// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import (
	"iter"
	"math"

	"honnef.co/go/curve"
)

type pathState int

const (
	pathStateStart pathState = iota
	pathStateMoveTo
	pathStateNonemptySubpath
)

// PathEncoder turns move/line/curve/close commands into input path
// instructions. A contour is only begun once it has a segment, so lone
// move-tos produce nothing. Segments issued before any move-to start at the
// origin.
type PathEncoder struct {
	Sink InputPath

	state      pathState
	firstPoint [2]float32
	lastPoint  [2]float32
}

func NewPathEncoder(sink InputPath) *PathEncoder {
	return &PathEncoder{Sink: sink}
}

func (enc *PathEncoder) MoveTo(x, y float32) {
	if enc.state == pathStateNonemptySubpath {
		enc.Sink.EndOpenContour(enc.lastPoint[0], enc.lastPoint[1])
	}
	enc.firstPoint = [2]float32{x, y}
	enc.lastPoint = enc.firstPoint
	enc.state = pathStateMoveTo
}

func (enc *PathEncoder) ensureBegun() {
	switch enc.state {
	case pathStateStart:
		enc.firstPoint = [2]float32{}
		enc.lastPoint = enc.firstPoint
		fallthrough
	case pathStateMoveTo:
		enc.Sink.BeginContour(enc.firstPoint[0], enc.firstPoint[1])
		enc.state = pathStateNonemptySubpath
	}
}

func (enc *PathEncoder) LineTo(x, y float32) {
	enc.ensureBegun()
	p0 := enc.lastPoint
	enc.Sink.LinearSegment(p0[0], p0[1], x, y)
	enc.lastPoint = [2]float32{x, y}
}

func (enc *PathEncoder) QuadTo(x1, y1, x2, y2 float32) {
	enc.ensureBegun()
	p0 := enc.lastPoint
	enc.Sink.QuadraticSegment(p0[0], p0[1], x1, y1, x2, y2)
	enc.lastPoint = [2]float32{x2, y2}
}

// RationalQuadTo takes the middle control point in homogeneous form.
func (enc *PathEncoder) RationalQuadTo(x1, y1, w1, x2, y2 float32) {
	enc.ensureBegun()
	p0 := enc.lastPoint
	enc.Sink.RationalQuadraticSegment(p0[0], p0[1], x1, y1, w1, x2, y2)
	enc.lastPoint = [2]float32{x2, y2}
}

func (enc *PathEncoder) CubicTo(x1, y1, x2, y2, x3, y3 float32) {
	enc.ensureBegun()
	p0 := enc.lastPoint
	enc.Sink.CubicSegment(p0[0], p0[1], x1, y1, x2, y2, x3, y3)
	enc.lastPoint = [2]float32{x3, y3}
}

// Close ends the current contour as closed. The closing edge back to the
// first point is implied, not emitted. The current point moves back to the
// contour's first point.
func (enc *PathEncoder) Close() {
	if enc.state == pathStateNonemptySubpath {
		enc.Sink.EndClosedContour(enc.lastPoint[0], enc.lastPoint[1])
	}
	if enc.state != pathStateStart {
		enc.lastPoint = enc.firstPoint
		enc.state = pathStateMoveTo
	}
}

// CurrentPoint returns the point the next segment will start at.
func (enc *PathEncoder) CurrentPoint() (x, y float32) {
	return enc.lastPoint[0], enc.lastPoint[1]
}

// StartPoint returns the first point of the current contour.
func (enc *PathEncoder) StartPoint() (x, y float32) {
	return enc.firstPoint[0], enc.firstPoint[1]
}

// Finish ends a contour that is still open.
func (enc *PathEncoder) Finish() {
	if enc.state == pathStateNonemptySubpath {
		enc.Sink.EndOpenContour(enc.lastPoint[0], enc.lastPoint[1])
	}
	enc.state = pathStateStart
}

func (enc *PathEncoder) PathElements(path iter.Seq[curve.PathElement]) {
	for el := range path {
		switch el.Kind {
		case curve.MoveToKind:
			enc.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.LineToKind:
			enc.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.QuadToKind:
			p0 := el.P0
			p1 := el.P1
			enc.QuadTo(float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y))
		case curve.CubicToKind:
			p0 := el.P0
			p1 := el.P1
			p2 := el.P2
			enc.CubicTo(
				float32(p0.X),
				float32(p0.Y),
				float32(p1.X),
				float32(p1.Y),
				float32(p2.X),
				float32(p2.Y),
			)
		case curve.ClosePathKind:
			enc.Close()
		}
	}
}

// AppendPathElements encodes a curve path into t.
func AppendPathElements(t *Tape, path iter.Seq[curve.PathElement]) {
	enc := NewPathEncoder(t)
	enc.PathElements(path)
	enc.Finish()
}

// BezPathSink collects input path instructions into a [curve.BezPath].
// Rational quadratic segments have no counterpart there and are flattened
// into lines, or kept as quadratics when their weight is one.
type BezPathSink struct {
	Path      curve.BezPath
	Tolerance float64
}

var _ InputPath = (*BezPathSink)(nil)

func pt(x, y float32) curve.Point {
	return curve.Point{X: float64(x), Y: float64(y)}
}

func (s *BezPathSink) BeginContour(x0, y0 float32)     { s.Path.MoveTo(pt(x0, y0)) }
func (s *BezPathSink) EndOpenContour(x0, y0 float32)   {}
func (s *BezPathSink) EndClosedContour(x0, y0 float32) { s.Path.ClosePath() }

func (s *BezPathSink) LinearSegment(x0, y0, x1, y1 float32) {
	s.Path.LineTo(pt(x1, y1))
}

func (s *BezPathSink) QuadraticSegment(x0, y0, x1, y1, x2, y2 float32) {
	s.Path.QuadTo(pt(x1, y1), pt(x2, y2))
}

func (s *BezPathSink) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float32) {
	if w1 == 1 {
		s.Path.QuadTo(pt(x1, y1), pt(x2, y2))
		return
	}
	tol := s.Tolerance
	if tol <= 0 {
		tol = 0.1
	}
	FlattenRationalQuadratic(x0, y0, x1, y1, w1, x2, y2, float32(tol), func(x, y float32) {
		s.Path.LineTo(pt(x, y))
	})
}

func (s *BezPathSink) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	s.Path.CubicTo(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// FlattenRationalQuadratic approximates a rational quadratic with lines,
// calling fn with each line's end point. The first point is not reported.
// Weights must be greater than -1.
func FlattenRationalQuadratic(x0, y0, x1, y1, w1, x2, y2, tol float32, fn func(x, y float32)) {
	n := RationalQuadraticSubdivisions(x0, y0, x1, y1, w1, x2, y2, tol)
	for i := 1; i < n; i++ {
		t := float32(i) / float32(n)
		x, y := EvalRationalQuadratic(x0, y0, x1, y1, w1, x2, y2, t)
		fn(x, y)
	}
	fn(x2, y2)
}

// EvalRationalQuadratic evaluates the segment at t.
func EvalRationalQuadratic(x0, y0, x1, y1, w1, x2, y2, t float32) (x, y float32) {
	mt := 1 - t
	b0 := mt * mt
	b1 := 2 * t * mt
	b2 := t * t
	d := b0 + b1*w1 + b2
	return (b0*x0 + b1*x1 + b2*x2) / d, (b0*y0 + b1*y1 + b2*y2) / d
}

// RationalQuadraticSubdivisions estimates how many lines are needed to stay
// within tol of the segment. It uses the quadratic bound on the projected
// control polygon, scaled up for sharp (small or negative weight) segments.
func RationalQuadraticSubdivisions(x0, y0, x1, y1, w1, x2, y2, tol float32) int {
	const maxSubdivisions = 1 << 10
	if tol <= 0 {
		return maxSubdivisions
	}
	var ddx, ddy float64
	if math.Abs(float64(w1)) > 1e-3 {
		px, py := float64(x1/w1), float64(y1/w1)
		ddx = float64(x0) - 2*px + float64(x2)
		ddy = float64(y0) - 2*py + float64(y2)
	} else {
		ddx = float64(x2 - x0)
		ddy = float64(y2 - y0)
	}
	dd := math.Hypot(ddx, ddy)
	sharpness := 1.0
	if w1 < 1 {
		sharpness = 1 / math.Max(float64(w1+1)/2, 1.0/maxSubdivisions)
	}
	n := math.Ceil(math.Sqrt(dd * sharpness / (4 * float64(tol))))
	return int(max(1, min(n, maxSubdivisions)))
}
