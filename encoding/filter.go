// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import (
	"math"

	"honnef.co/go/outline/jmath"
)

// TransformFilter forwards an input path to Sink with every point mapped
// through Transform.
//
// Under a projective transform quadratic segments become rational
// quadratics. Cubic segments have their control points mapped, which is
// exact for affine transforms only.
type TransformFilter struct {
	Transform jmath.Transform
	Sink      InputPath

	x, y float32
}

var _ InputPath = (*TransformFilter)(nil)

func NewTransformFilter(t jmath.Transform, sink InputPath) *TransformFilter {
	return &TransformFilter{Transform: t, Sink: sink}
}

func (f *TransformFilter) point(x, y float32) (float32, float32) {
	return f.Transform.ApplyPoint(x, y)
}

func (f *TransformFilter) BeginContour(x0, y0 float32) {
	f.x, f.y = f.point(x0, y0)
	f.Sink.BeginContour(f.x, f.y)
}

func (f *TransformFilter) EndOpenContour(x0, y0 float32) {
	f.Sink.EndOpenContour(f.x, f.y)
}

func (f *TransformFilter) EndClosedContour(x0, y0 float32) {
	f.Sink.EndClosedContour(f.x, f.y)
}

func (f *TransformFilter) LinearSegment(x0, y0, x1, y1 float32) {
	x1, y1 = f.point(x1, y1)
	f.Sink.LinearSegment(f.x, f.y, x1, y1)
	f.x, f.y = x1, y1
}

func (f *TransformFilter) QuadraticSegment(x0, y0, x1, y1, x2, y2 float32) {
	if !f.Transform.IsAffine() {
		f.RationalQuadraticSegment(x0, y0, x1, y1, 1, x2, y2)
		return
	}
	x1, y1 = f.point(x1, y1)
	x2, y2 = f.point(x2, y2)
	f.Sink.QuadraticSegment(f.x, f.y, x1, y1, x2, y2)
	f.x, f.y = x2, y2
}

func (f *TransformFilter) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float32) {
	_, _, w0 := f.Transform.Apply(x0, y0, 1)
	x1, y1, w1 = f.Transform.Apply(x1, y1, w1)
	x2, y2, w2 := f.Transform.Apply(x2, y2, 1)
	// Bring the end weights back to one.
	if w0 != 1 || w2 != 1 {
		x2, y2 = x2/w2, y2/w2
		s := float32(1 / math.Sqrt(float64(w0)*float64(w2)))
		x1, y1, w1 = x1*s, y1*s, w1*s
	}
	f.Sink.RationalQuadraticSegment(f.x, f.y, x1, y1, w1, x2, y2)
	f.x, f.y = x2, y2
}

func (f *TransformFilter) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	x1, y1 = f.point(x1, y1)
	x2, y2 = f.point(x2, y2)
	x3, y3 = f.point(x3, y3)
	f.Sink.CubicSegment(f.x, f.y, x1, y1, x2, y2, x3, y3)
	f.x, f.y = x3, y3
}

// CloseContours forwards an input path to Sink, inserting the linear
// segment that returns a closed contour to its first point when the
// contour doesn't already end there. With All set, open contours are closed
// as well, which is what filling expects.
type CloseContours struct {
	Sink InputPath
	All  bool

	firstX, firstY float32
}

var _ InputPath = (*CloseContours)(nil)

func (c *CloseContours) BeginContour(x0, y0 float32) {
	c.firstX, c.firstY = x0, y0
	c.Sink.BeginContour(x0, y0)
}

func (c *CloseContours) close(x0, y0 float32) {
	if x0 != c.firstX || y0 != c.firstY {
		c.Sink.LinearSegment(x0, y0, c.firstX, c.firstY)
	}
	c.Sink.EndClosedContour(c.firstX, c.firstY)
}

func (c *CloseContours) EndOpenContour(x0, y0 float32) {
	if c.All {
		c.close(x0, y0)
	} else {
		c.Sink.EndOpenContour(x0, y0)
	}
}

func (c *CloseContours) EndClosedContour(x0, y0 float32) { c.close(x0, y0) }

func (c *CloseContours) LinearSegment(x0, y0, x1, y1 float32) {
	c.Sink.LinearSegment(x0, y0, x1, y1)
}

func (c *CloseContours) QuadraticSegment(x0, y0, x1, y1, x2, y2 float32) {
	c.Sink.QuadraticSegment(x0, y0, x1, y1, x2, y2)
}

func (c *CloseContours) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float32) {
	c.Sink.RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2)
}

func (c *CloseContours) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	c.Sink.CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3)
}
