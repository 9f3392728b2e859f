// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package renderer

import (
	"image"
	"image/color"

	"honnef.co/go/outline/gfx"
	"honnef.co/go/outline/jmath"
)

// sampledImage colors each device pixel by sampling a paint at the
// pixel's center.
type sampledImage struct {
	rect    image.Rectangle
	inv     jmath.Transform
	sample  func(x, y float32) gfx.RGBA8
	opacity gfx.Unorm8
}

func (s *sampledImage) ColorModel() color.Model { return gfx.RGBA8Model }
func (s *sampledImage) Bounds() image.Rectangle { return s.rect }

func (s *sampledImage) At(x, y int) color.Color {
	u, v := s.inv.ApplyPoint(float32(x)+0.5, float32(y)+0.5)
	return s.sample(u, v).WithOpacity(s.opacity)
}

// paintSource returns the image that colors device pixels with paint
// drawn under xf.
func (r *Renderer) paintSource(paint gfx.Paint, xf jmath.Transform) image.Image {
	op := paint.Opacity()
	sample := paint.At
	switch p := paint.(type) {
	case *gfx.SolidPaint:
		return image.NewUniform(p.Color.WithOpacity(op))
	case *gfx.LinearGradientPaint:
		rp := r.ramps.get(p.Ramp)
		sample = func(x, y float32) gfx.RGBA8 { return rp.at(p.Param(x, y)) }
	case *gfx.RadialGradientPaint:
		rp := r.ramps.get(p.Ramp)
		sample = func(x, y float32) gfx.RGBA8 { return rp.at(p.Param(x, y)) }
	}
	return &sampledImage{
		rect:    r.rect,
		inv:     xf.Mul(paint.Transform()).Inverse(),
		sample:  sample,
		opacity: op,
	}
}

// gouraudImage interpolates the vertex colors of a device space triangle.
// Pixels outside of it take the color of the nearest point on the
// triangle's plane, clamped to the triangle.
type gouraudImage struct {
	rect    image.Rectangle
	x, y    [3]float32
	colors  [3]gfx.RGBA8
	opacity gfx.Unorm8
	det     float32
}

func newGouraudImage(rect image.Rectangle, p *gfx.Patch, xf jmath.Transform) image.Image {
	g := &gouraudImage{rect: rect, opacity: p.Opacity}
	for i := range 3 {
		g.x[i], g.y[i] = xf.ApplyPoint(float32(p.Points[i].X), float32(p.Points[i].Y))
		g.colors[i] = p.Colors[i]
	}
	g.det = (g.y[1]-g.y[2])*(g.x[0]-g.x[2]) + (g.x[2]-g.x[1])*(g.y[0]-g.y[2])
	if jmath.IsAlmostZero32(g.det) {
		return image.NewUniform(p.AverageColor().WithOpacity(p.Opacity))
	}
	return g
}

func (g *gouraudImage) ColorModel() color.Model { return gfx.RGBA8Model }
func (g *gouraudImage) Bounds() image.Rectangle { return g.rect }

func (g *gouraudImage) At(x, y int) color.Color {
	px, py := float32(x)+0.5, float32(y)+0.5
	l0 := ((g.y[1]-g.y[2])*(px-g.x[2]) + (g.x[2]-g.x[1])*(py-g.y[2])) / g.det
	l1 := ((g.y[2]-g.y[0])*(px-g.x[2]) + (g.x[0]-g.x[2])*(py-g.y[2])) / g.det
	l2 := 1 - l0 - l1
	l0, l1, l2 = max(l0, 0), max(l1, 0), max(l2, 0)
	sum := l0 + l1 + l2
	mix := func(a, b, c gfx.Unorm8) gfx.Unorm8 {
		return gfx.Unorm8FromFloat((a.Float()*l0 + b.Float()*l1 + c.Float()*l2) / sum)
	}
	c0, c1, c2 := g.colors[0], g.colors[1], g.colors[2]
	out := gfx.RGBA8{
		R: mix(c0.R, c1.R, c2.R),
		G: mix(c0.G, c1.G, c2.G),
		B: mix(c0.B, c1.B, c2.B),
		A: mix(c0.A, c1.A, c2.A),
	}
	return out.WithOpacity(g.opacity)
}
