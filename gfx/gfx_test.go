// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"image"
	stdcolor "image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"
	"honnef.co/go/outline/encoding"
	"honnef.co/go/outline/jmath"
)

// points collects the end points of every input path instruction.
type points struct {
	encoding.Null
	contours int
	closed   int
	pts      [][2]float32
}

func (p *points) add(x, y float32) { p.pts = append(p.pts, [2]float32{x, y}) }

func (p *points) BeginContour(x0, y0 float32) {
	p.contours++
	p.add(x0, y0)
}

func (p *points) EndClosedContour(x0, y0 float32)      { p.closed++ }
func (p *points) LinearSegment(x0, y0, x1, y1 float32) { p.add(x1, y1) }

func (p *points) QuadraticSegment(x0, y0, x1, y1, x2, y2 float32) {
	p.add(x2, y2)
}

func (p *points) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float32) {
	p.add(x2, y2)
}

func (p *points) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	p.add(x3, y3)
}

func (p *points) bounds() (minX, minY, maxX, maxY float32) {
	minX, minY = float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY = float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, pt := range p.pts {
		minX, maxX = min(minX, pt[0]), max(maxX, pt[0])
		minY, maxY = min(minY, pt[1]), max(maxY, pt[1])
	}
	return
}

func TestUnorm8(t *testing.T) {
	assert.Equal(t, Unorm8(0), Unorm8FromFloat(-1))
	assert.Equal(t, Unorm8(0), Unorm8FromFloat(float32(math.NaN())))
	assert.Equal(t, Unorm8(255), Unorm8FromFloat(2))
	assert.Equal(t, Unorm8(128), Unorm8FromFloat(0.5))
	assert.InDelta(t, 0.5, Unorm8(128).Float(), 0.01)

	assert.Equal(t, Unorm8(255), Opaque.Mul(Opaque))
	assert.Equal(t, Unorm8(0), Opaque.Mul(0))
	assert.Equal(t, Unorm8(64), Unorm8(128).Mul(128))
	assert.Equal(t, Unorm8(77), Opaque.Mul(77))
}

func TestRGBA8(t *testing.T) {
	c := RGBA8{255, 0, 0, 128}
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0x8080), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0x8080), a)

	assert.Equal(t, RGBA8{255, 0, 0, 64}, c.WithOpacity(128))
	assert.Equal(t, RGBA8{128, 128, 128, 255}, RGB8(0, 0, 0).Lerp(RGB8(255, 255, 255), 0.5))

	got := RGBA8Model.Convert(stdcolor.NRGBA{R: 1, G: 2, B: 3, A: 4})
	assert.Equal(t, RGBA8{1, 2, 3, 4}, got)
}

func TestSpread(t *testing.T) {
	cases := []struct {
		spread Spread
		in     float32
		out    float32
		ok     bool
	}{
		{Pad, -0.5, 0, true},
		{Pad, 1.5, 1, true},
		{Repeat, 1.25, 0.25, true},
		{Repeat, -0.25, 0.75, true},
		{Reflect, 1.25, 0.75, true},
		{Reflect, -0.25, 0.25, true},
		{Reflect, 2.25, 0.25, true},
		{Transparent, 0.5, 0.5, true},
		{Transparent, 1.5, 1.5, false},
	}
	for _, tc := range cases {
		got, ok := tc.spread.Apply(tc.in)
		assert.InDelta(t, tc.out, got, 1e-6, "%s(%v)", tc.spread, tc.in)
		assert.Equal(t, tc.ok, ok, "%s(%v)", tc.spread, tc.in)
	}
}

func TestColorRamp(t *testing.T) {
	black, white := RGB8(0, 0, 0), RGB8(255, 255, 255)
	ramp := NewColorRamp(Pad,
		ColorStop{1, white},
		ColorStop{0, black},
	)
	assert.Equal(t, black, ramp.Stops[0].Color)
	assert.Equal(t, black, ramp.At(-1))
	assert.Equal(t, white, ramp.At(2))
	assert.Equal(t, RGB8(128, 128, 128), ramp.At(0.5))

	ramp.Spread = Transparent
	assert.Equal(t, RGBA8{}, ramp.At(2))
	assert.Equal(t, RGBA8{}, ColorRamp{}.At(0.5))
}

func TestGradientPaints(t *testing.T) {
	ramp := NewColorRamp(Pad, ColorStop{0, RGB8(0, 0, 0)}, ColorStop{1, RGB8(200, 0, 0)})

	lin := NewLinearGradientPaint(ramp, 0, 0, 10, 0)
	assert.Equal(t, RGB8(100, 0, 0), lin.At(5, 123))
	assert.Equal(t, RGB8(200, 0, 0), lin.At(20, 0))
	assert.Equal(t, Opaque, lin.Opacity())
	assert.True(t, lin.Transform().IsIdentity())

	rad := NewRadialGradientPaint(ramp, 0, 0, 0, 0, 10)
	assert.Equal(t, RGB8(100, 0, 0), rad.At(0, 5))
	assert.Equal(t, RGB8(0, 0, 0), rad.At(0, 0))
	assert.Equal(t, RGB8(200, 0, 0), rad.At(30, 0))

	var p Paint = NewSolidPaint(RGB8(1, 2, 3))
	assert.Equal(t, RGB8(1, 2, 3), p.At(99, 99))
}

func TestTexture(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, stdcolor.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(1, 0, stdcolor.NRGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(0, 1, stdcolor.NRGBA{R: 0, G: 0, B: 255, A: 255})
	img.Set(1, 1, stdcolor.NRGBA{R: 255, G: 255, B: 255, A: 255})

	p := NewTexturePaint(&Texture{Image: img, Spread: Repeat})
	assert.Equal(t, RGB8(255, 0, 0), p.At(0.25, 0.25))
	assert.Equal(t, RGB8(0, 255, 0), p.At(0.75, 0.25))
	assert.Equal(t, RGB8(255, 255, 255), p.At(1.75, 0.75))
	assert.Equal(t, RGB8(255, 0, 0), p.At(1, 1))

	var nilTex *Texture
	assert.Equal(t, RGBA8{}, nilTex.At(0, 0))
}

func TestWindingRule(t *testing.T) {
	for w := -3; w <= 3; w++ {
		assert.Equal(t, w != 0, NonZero.Inside(w))
		assert.Equal(t, w%2 != 0, Odd.Inside(w))
		assert.Equal(t, w == 0, Zero.Inside(w))
		assert.Equal(t, w%2 == 0, Even.Inside(w))
	}
	assert.Equal(t, "even", Even.String())
	assert.True(t, Zero.IsComplement())
	assert.False(t, Odd.IsComplement())
	assert.Panics(t, func() { WindingRule(9).Inside(0) })
}

func TestRectPathData(t *testing.T) {
	tape := (&Rect{1, 2, 3, 4}).PathData(jmath.Identity)
	var p points
	tape.Iterate(&p)
	assert.Equal(t, [][2]float32{{1, 2}, {4, 2}, {4, 6}, {1, 6}, {1, 2}}, p.pts)
	assert.Equal(t, 1, p.closed)
}

func TestCirclePathData(t *testing.T) {
	c := &Circle{Cx: 3, Cy: -2, R: 5}
	tape := c.PathData(jmath.Identity)
	require.Equal(t, 5, tape.Len())

	var r encoding.BezPathSink
	r.Tolerance = 0.01
	tape.Iterate(&r)
	for el := range r.Path.PathElements(0.01) {
		if el.Kind != curve.LineToKind {
			continue
		}
		d := math.Hypot(el.P0.X-3, el.P0.Y+2)
		assert.InDelta(t, 5, d, 1e-4)
	}
}

func TestPolygonCloses(t *testing.T) {
	tape := (&Polygon{Coordinates: []float32{0, 0, 10, 0, 10, 10}}).PathData(jmath.Identity)
	var p points
	tape.Iterate(&p)
	assert.Equal(t, [][2]float32{{0, 0}, {10, 0}, {10, 10}, {0, 0}}, p.pts)
	assert.Equal(t, 1, p.closed)

	assert.True(t, (&Polygon{}).PathData(jmath.Identity).IsEmpty())
}

func TestTrianglePathData(t *testing.T) {
	tape := (&Triangle{0, 0, 10, 0, 5, 10}).PathData(jmath.Identity)
	var p points
	tape.Iterate(&p)
	assert.Equal(t, [][2]float32{{0, 0}, {10, 0}, {5, 10}, {0, 0}}, p.pts)
}

func TestBlend(t *testing.T) {
	a := &Rect{0, 0, 10, 10}
	b := &Rect{10, 10, 20, 20}
	tape := (&Blend{From: a, To: b, T: 0.5}).PathData(jmath.Identity)
	var p points
	tape.Iterate(&p)
	assert.Equal(t, [2]float32{5, 5}, p.pts[0])
	assert.Equal(t, [2]float32{20, 5}, p.pts[1])

	mismatched := (&Blend{From: a, To: &Triangle{}, T: 0.5}).PathData(jmath.Identity)
	assert.True(t, mismatched.IsEmpty())
}

func TestTransformed(t *testing.T) {
	s := &Transformed{Shape: &Rect{0, 0, 1, 1}, Transform: jmath.Scale(2, 3)}
	var p points
	s.PathData(jmath.Identity).Iterate(&p)
	assert.Equal(t, [2]float32{2, 3}, p.pts[2])
}

func TestStroke(t *testing.T) {
	var line encoding.Tape
	line.BeginContour(0, 0)
	line.LinearSegment(0, 0, 10, 0)
	line.EndOpenContour(10, 0)

	s := &Stroke{
		Shape: &Path{Tape: &line},
		Style: curve.Stroke{
			Width:      2,
			Join:       curve.MiterJoin,
			MiterLimit: 4,
			StartCap:   curve.ButtCap,
			EndCap:     curve.ButtCap,
		},
	}
	var p points
	s.PathData(jmath.Identity).Iterate(&p)
	require.NotEmpty(t, p.pts)
	minX, minY, maxX, maxY := p.bounds()
	assert.InDelta(t, 0, minX, 1e-3)
	assert.InDelta(t, 10, maxX, 1e-3)
	assert.InDelta(t, -1, minY, 1e-3)
	assert.InDelta(t, 1, maxY, 1e-3)

	s.Style.DashPattern = []float64{2, 2}
	var dashed points
	s.PathData(jmath.Identity).Iterate(&dashed)
	assert.Greater(t, dashed.contours, 1)
}

func TestCurveShape(t *testing.T) {
	var bp curve.BezPath
	bp.MoveTo(curve.Point{X: 1, Y: 1})
	bp.LineTo(curve.Point{X: 5, Y: 1})
	bp.LineTo(curve.Point{X: 5, Y: 4})
	bp.ClosePath()

	var p points
	(&CurveShape{Shape: &bp}).PathData(jmath.Identity).Iterate(&p)
	assert.Equal(t, [][2]float32{{1, 1}, {5, 1}, {5, 4}}, p.pts)
	assert.Equal(t, 1, p.closed)
}

func TestPatchOutline(t *testing.T) {
	var pts [16]curve.Point
	for i := range pts {
		pts[i] = curve.Point{X: float64(i % 4), Y: float64(i / 4)}
	}
	colors := [4]RGBA8{RGB8(0, 0, 0), RGB8(255, 0, 0), RGB8(0, 255, 0), RGB8(0, 0, 255)}
	tp := NewTensorProductPatch(pts, colors, Opaque)
	var p points
	tp.Outline().Iterate(&p)
	assert.Equal(t, [][2]float32{{0, 0}, {3, 0}, {3, 3}, {0, 3}, {0, 0}}, p.pts)
	assert.Equal(t, RGBA8{64, 64, 64, 255}, tp.AverageColor())

	g := NewGouraudTriangle(
		[3]curve.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}},
		[3]RGBA8{},
		128,
	)
	var q points
	g.Outline().Iterate(&q)
	assert.Equal(t, [][2]float32{{0, 0}, {4, 0}, {0, 4}, {0, 0}}, q.pts)
	assert.Equal(t, "gouraud_triangle", g.Kind.String())

	var cp [12]curve.Point
	for i := range cp {
		cp[i] = curve.Point{X: float64(i), Y: 0}
	}
	c := NewCoonsPatch(cp, colors, Opaque)
	var r points
	c.Outline().Iterate(&r)
	assert.Equal(t, 4, len(r.pts)-1)
}
