// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package outline

import (
	"math"

	"honnef.co/go/curve"
	"honnef.co/go/outline/encoding"
	"honnef.co/go/outline/jmath"
)

// FlattenEstimator conservatively estimates how many line segments the
// shapes of a scene flatten to. It relies on heuristics and naturally
// overestimates.
//
// Explicit lines are counted exactly and stay constant under scaling.
// Curves are estimated with Wang's formula and scale with the square root
// of the scale factor applied at tally time.
type FlattenEstimator struct {
	lines estimateLineSoup
}

func (e *FlattenEstimator) Reset() {
	*e = FlattenEstimator{}
}

// Append adds the counts of other after scaling them by scale.
func (e *FlattenEstimator) Append(other *FlattenEstimator, scale float64) {
	e.lines.add(&other.lines, scale)
}

// CountPath adds the lines of path, drawn under xf. A non-nil stroke
// counts the outline of the stroke instead of the fill.
func (e *FlattenEstimator) CountPath(path *encoding.Tape, xf jmath.Transform, stroke *curve.Stroke) {
	c := pathCounter{xf: xf, fudge: 1}
	var scaledWidth float64
	if stroke != nil {
		scaledWidth = stroke.Width * xf.ScaleFactor()
		c.fudge = max(1, math.Sqrt(scaledWidth))
	}
	path.Iterate(&c)

	if stroke == nil {
		e.lines.linetos += c.linetos + c.fillCloses
		e.lines.curves += c.curveLines
		e.lines.curveCount += c.curveCount
		return
	}

	// Both sides of the stroke get offset.
	e.lines.linetos += 2 * c.linetos
	e.lines.curves += 2 * c.curveLines
	e.lines.curveCount += 2 * c.curveCount

	e.countCaps(stroke.StartCap, scaledWidth, c.caps)
	e.countCaps(stroke.EndCap, scaledWidth, c.caps)
	e.countJoins(stroke.Join, scaledWidth, c.joins)
}

// Tally returns the estimated number of lines with all content scaled by
// scale.
func (e *FlattenEstimator) Tally(scale float64) uint32 {
	return e.lines.tally(scale)
}

func (e *FlattenEstimator) countCaps(style curve.Cap, scaledWidth float64, count uint32) {
	switch style {
	case curve.ButtCap:
		e.lines.linetos += count
	case curve.SquareCap:
		e.lines.linetos += 3 * count
	case curve.RoundCap:
		arcLines := estimateArcLines(scaledWidth)
		e.lines.curves += count * arcLines
		e.lines.curveCount += 1
	}
}

func (e *FlattenEstimator) countJoins(style curve.Join, scaledWidth float64, count uint32) {
	switch style {
	case curve.BevelJoin:
		e.lines.linetos += count
	case curve.MiterJoin:
		e.lines.linetos += 2 * count
	case curve.RoundJoin:
		arcLines := estimateArcLines(scaledWidth)
		e.lines.curves += count * arcLines
		e.lines.curveCount += 1
	}

	// Inner join lines
	e.lines.linetos += count
}

func estimateArcLines(scaledStrokeWidth float64) uint32 {
	const minTheta = 1e-6
	const tol = 0.25
	radius := max(tol, scaledStrokeWidth*0.5)
	theta := max(2*math.Acos(1-tol/radius), minTheta)
	return max(2, uint32(math.Ceil(math.Pi/2/theta)))
}

type estimateLineSoup struct {
	// Explicit lines (line segments, non-round caps and joins) and curves
	// are tracked separately so that explicit lines remain scale
	// invariant.
	linetos uint32
	curves  uint32

	// Used to count a minimum number of lines per curve at very small
	// scales.
	curveCount uint32
}

func (ls *estimateLineSoup) tally(scale float64) uint32 {
	curves := max(ls.scaledCurveLineCount(scale), 5*ls.curveCount)
	return ls.linetos + curves
}

func (ls *estimateLineSoup) scaledCurveLineCount(scale float64) uint32 {
	return uint32(math.Ceil(float64(ls.curves) * math.Sqrt(scale)))
}

func (ls *estimateLineSoup) add(other *estimateLineSoup, scale float64) {
	ls.linetos += other.linetos
	ls.curves += other.scaledCurveLineCount(scale)
	ls.curveCount += other.curveCount
}

// pathCounter counts the lines of a single path.
type pathCounter struct {
	xf    jmath.Transform
	fudge float64

	first, last option[curve.Point]

	caps, joins         uint32
	linetos, fillCloses uint32
	curveLines          uint32
	curveCount          uint32
}

var _ encoding.InputPath = (*pathCounter)(nil)

func pt(x, y float32) curve.Point { return curve.Point{X: float64(x), Y: float64(y)} }

func (c *pathCounter) BeginContour(x0, y0 float32) {
	c.first.set(pt(x0, y0))
	c.last.set(pt(x0, y0))
}

func (c *pathCounter) EndOpenContour(x0, y0 float32) {
	c.caps++
	// Filling closes open contours.
	c.fillCloses++
	// An open contour has one join fewer than it has segments.
	if c.joins > 0 {
		c.joins--
	}
	c.first.clear()
	c.last.clear()
}

func (c *pathCounter) EndClosedContour(x0, y0 float32) {
	if c.last.unwrapOr(c.first.unwrap()) != c.first.unwrap() {
		c.linetos++
		c.joins++
	}
	c.first.clear()
	c.last.clear()
}

func (c *pathCounter) LinearSegment(x0, y0, x1, y1 float32) {
	c.last.set(pt(x1, y1))
	c.linetos++
	c.joins++
}

func (c *pathCounter) curve(lines float64) {
	c.curveLines += uint32(math.Ceil(c.fudge * lines))
	c.curveCount++
	c.joins++
}

func (c *pathCounter) QuadraticSegment(x0, y0, x1, y1, x2, y2 float32) {
	c.last.set(pt(x2, y2))
	c.curve(wangQuadratic(rsqrtOfTol, vec(x0, y0), vec(x1, y1), vec(x2, y2), c.xf))
}

// RationalQuadraticSegment estimates the rational quadratic as the
// polynomial quadratic through its projected control point.
func (c *pathCounter) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float32) {
	c.last.set(pt(x2, y2))
	p1 := vec(x1, y1)
	if w1 > jmath.SmallestNormal32 {
		p1 = p1.Mul(1 / float64(w1))
	} else {
		// Infinite control point: the arc is at least half a circle, so
		// estimate it as two.
		p1 = vec(x0, y0).Lerp(vec(x2, y2), 0.5).Add(p1)
		c.curve(wangQuadratic(rsqrtOfTol, vec(x0, y0), p1, vec(x2, y2), c.xf))
	}
	c.curve(wangQuadratic(rsqrtOfTol, vec(x0, y0), p1, vec(x2, y2), c.xf))
}

func (c *pathCounter) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	c.last.set(pt(x3, y3))
	c.curve(wangCubic(rsqrtOfTol, vec(x0, y0), vec(x1, y1), vec(x2, y2), vec(x3, y3), c.xf))
}

func vec(x, y float32) curve.Vec2 { return curve.Vec(float64(x), float64(y)) }

// transformVector applies the linear part of t, which is all that matters
// for second differences.
func transformVector(t jmath.Transform, v curve.Vec2) curve.Vec2 {
	m := &t.M
	return curve.Vec(m[0]*v.X+m[1]*v.Y, m[3]*v.X+m[4]*v.Y)
}

// 1/sqrt(tol) for tol = 0.2
const rsqrtOfTol = 2.2360679775

// Wang's formula (Ron Goldman, Pyramid Algorithms, 2003, section 5.6.3)
// bounds the number of recursive subdivisions needed to approximate a
// Bézier curve of degree n within tol:
//
//	m = max(length(p[k+2] - 2*p[k+1] + p[k]) for 0 <= k <= n-2)
//	segments >= sqrt(n*(n-1)*m / (8*tol))
//
// Since it bounds the second derivative it overshoots for curves whose
// curvature varies a lot.

// sqrt(n*(n-1)/8) for cubics
const sqrtOfDegreeTermCubic = 0.86602540378

// sqrt(n*(n-1)/8) for quadratics
const sqrtOfDegreeTermQuad = 0.5

func wangQuadratic(rsqrtOfTol float64, p0, p1, p2 curve.Vec2, t jmath.Transform) float64 {
	v := p1.Mul(-2).Add(p0).Add(p2)
	v = transformVector(t, v) // transform is distributive
	m := v.Hypot()
	return math.Ceil(sqrtOfDegreeTermQuad * math.Sqrt(m) * rsqrtOfTol)
}

func wangCubic(rsqrtOfTol float64, p0, p1, p2, p3 curve.Vec2, t jmath.Transform) float64 {
	v1 := p1.Mul(-2).Add(p0).Add(p2)
	v2 := p2.Mul(-2).Add(p1).Add(p3)
	v1 = transformVector(t, v1)
	v2 = transformVector(t, v2)
	m := max(v1.Hypot(), v2.Hypot())
	return math.Ceil(sqrtOfDegreeTermCubic * math.Sqrt(m) * rsqrtOfTol)
}
