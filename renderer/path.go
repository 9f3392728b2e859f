// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package renderer

import (
	"math"
	"slices"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/outline/encoding"
)

func fixedPoint(x, y float32) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(x), float64(y))
}

// fillerSink feeds a device space input path to a rasterx filler. Open
// contours are closed, as filling requires.
type fillerSink struct {
	filler *rasterx.Filler
	// Tolerance for flattening rational quadratics, which rasterx has no
	// primitive for.
	tol float32
}

var _ encoding.InputPath = (*fillerSink)(nil)

func (s *fillerSink) BeginContour(x0, y0 float32)     { s.filler.Start(fixedPoint(x0, y0)) }
func (s *fillerSink) EndOpenContour(x0, y0 float32)   { s.filler.Stop(true) }
func (s *fillerSink) EndClosedContour(x0, y0 float32) { s.filler.Stop(true) }

func (s *fillerSink) LinearSegment(x0, y0, x1, y1 float32) {
	s.filler.Line(fixedPoint(x1, y1))
}

func (s *fillerSink) QuadraticSegment(x0, y0, x1, y1, x2, y2 float32) {
	s.filler.QuadBezier(fixedPoint(x1, y1), fixedPoint(x2, y2))
}

func (s *fillerSink) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float32) {
	encoding.FlattenRationalQuadratic(x0, y0, x1, y1, w1, x2, y2, s.tol, func(x, y float32) {
		s.filler.Line(fixedPoint(x, y))
	})
}

func (s *fillerSink) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	s.filler.CubeBezier(fixedPoint(x1, y1), fixedPoint(x2, y2), fixedPoint(x3, y3))
}

type edge struct {
	x0, y0, x1, y1 float32
}

type crossing struct {
	x   float32
	dir int
}

// edgeList flattens a device space input path into the closed polygon
// scanned by [edgeList.scan].
type edgeList struct {
	tol   float32
	edges []edge

	firstX, firstY float32
	x, y           float32

	// reused by scan
	crossings []crossing
	acc       []float32
}

var _ encoding.InputPath = (*edgeList)(nil)

func (el *edgeList) reset() { el.edges = el.edges[:0] }

func (el *edgeList) lineTo(x, y float32) {
	if el.y != y {
		el.edges = append(el.edges, edge{el.x, el.y, x, y})
	}
	el.x, el.y = x, y
}

func (el *edgeList) BeginContour(x0, y0 float32) {
	el.firstX, el.firstY = x0, y0
	el.x, el.y = x0, y0
}

func (el *edgeList) EndOpenContour(x0, y0 float32)   { el.lineTo(el.firstX, el.firstY) }
func (el *edgeList) EndClosedContour(x0, y0 float32) { el.lineTo(el.firstX, el.firstY) }

func (el *edgeList) LinearSegment(x0, y0, x1, y1 float32) { el.lineTo(x1, y1) }

// subdivisions is Wang's formula for a curve of the given degree whose
// largest second difference has length dd.
func (el *edgeList) subdivisions(degree int, dd float64) int {
	n := math.Ceil(math.Sqrt(float64(degree*(degree-1)) * dd / (8 * float64(el.tol))))
	return int(min(max(n, 1), 1<<10))
}

func (el *edgeList) QuadraticSegment(x0, y0, x1, y1, x2, y2 float32) {
	dd := math.Hypot(float64(x0-2*x1+x2), float64(y0-2*y1+y2))
	n := el.subdivisions(2, dd)
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		mt := 1 - t
		el.lineTo(mt*mt*x0+2*mt*t*x1+t*t*x2, mt*mt*y0+2*mt*t*y1+t*t*y2)
	}
}

func (el *edgeList) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float32) {
	encoding.FlattenRationalQuadratic(x0, y0, x1, y1, w1, x2, y2, el.tol, el.lineTo)
}

func (el *edgeList) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	dd := max(
		math.Hypot(float64(x0-2*x1+x2), float64(y0-2*y1+y2)),
		math.Hypot(float64(x1-2*x2+x3), float64(y1-2*y2+y3)),
	)
	n := el.subdivisions(3, dd)
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		el.lineTo(a*x0+b*x1+c*x2+d*x3, a*y0+b*y1+c*y2+d*y3)
	}
}

const subScanlines = 4

// scan writes the coverage of the polygon under inside, which decides from
// a winding number, to the coverage mask of width w. Each pixel row is
// sampled at subScanlines heights; horizontal coverage is exact.
func (el *edgeList) scan(pix []uint8, stride, w, h int, inside func(winding int) bool) {
	if len(el.edges) == 0 {
		return
	}
	minY, maxY := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, e := range el.edges {
		minY = min(minY, e.y0, e.y1)
		maxY = max(maxY, e.y0, e.y1)
	}
	y0 := max(int(math.Floor(float64(minY))), 0)
	y1 := min(int(math.Ceil(float64(maxY))), h)

	if cap(el.acc) < w {
		el.acc = make([]float32, w)
	}
	acc := el.acc[:w]
	for y := y0; y < y1; y++ {
		clear(acc)
		for s := range subScanlines {
			sy := float32(y) + (float32(s)+0.5)/subScanlines
			el.crossings = el.crossings[:0]
			for _, e := range el.edges {
				if (e.y0 <= sy) == (e.y1 <= sy) {
					continue
				}
				dir := 1
				if e.y1 < e.y0 {
					dir = -1
				}
				x := e.x0 + (sy-e.y0)*(e.x1-e.x0)/(e.y1-e.y0)
				el.crossings = append(el.crossings, crossing{x, dir})
			}
			slices.SortFunc(el.crossings, func(a, b crossing) int {
				switch {
				case a.x < b.x:
					return -1
				case a.x > b.x:
					return 1
				default:
					return 0
				}
			})
			winding := 0
			for i := 0; i+1 < len(el.crossings); i++ {
				winding += el.crossings[i].dir
				if inside(winding) {
					addSpan(acc, el.crossings[i].x, el.crossings[i+1].x, 1.0/subScanlines)
				}
			}
		}
		row := pix[y*stride : y*stride+w]
		for x, a := range acc {
			row[x] = uint8(min(a, 1)*255 + 0.5)
		}
	}
}

// addSpan adds weight times the covered fraction of each pixel between x0
// and x1.
func addSpan(acc []float32, x0, x1, weight float32) {
	x0 = max(x0, 0)
	x1 = min(x1, float32(len(acc)))
	if x1 <= x0 {
		return
	}
	for px := int(x0); px < len(acc) && float32(px) < x1; px++ {
		lo := max(x0, float32(px))
		hi := min(x1, float32(px+1))
		if hi > lo {
			acc[px] += (hi - lo) * weight
		}
	}
}
