// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"math"

	"honnef.co/go/color"
	"honnef.co/go/outline/jmath"
)

// Paint is how a painted shape is colored. Colors are sampled in paint
// space; Transform maps paint space into the shape's coordinates.
type Paint interface {
	// At returns the color at the paint space point (x, y), opacity not
	// applied.
	At(x, y float32) RGBA8
	Transform() jmath.Transform
	Opacity() Unorm8

	isPaint()
}

type paintBase struct {
	// Maps paint space into shape space.
	Xform jmath.Transform
	Alpha Unorm8
}

func (p paintBase) Transform() jmath.Transform { return p.Xform }
func (p paintBase) Opacity() Unorm8            { return p.Alpha }
func (paintBase) isPaint()                     {}

type SolidPaint struct {
	paintBase
	Color RGBA8
}

func NewSolidPaint(c RGBA8) *SolidPaint {
	return &SolidPaint{paintBase{jmath.Identity, Opaque}, c}
}

// NewSolidPaintFromColor converts c to sRGB.
func NewSolidPaintFromColor(c *color.Color) *SolidPaint {
	return NewSolidPaint(RGBA8FromColor(c))
}

func (p *SolidPaint) At(x, y float32) RGBA8 { return p.Color }

// LinearGradientPaint varies along the line from (X1, Y1) to (X2, Y2).
type LinearGradientPaint struct {
	paintBase
	Ramp           ColorRamp
	X1, Y1, X2, Y2 float32
}

func NewLinearGradientPaint(ramp ColorRamp, x1, y1, x2, y2 float32) *LinearGradientPaint {
	return &LinearGradientPaint{paintBase{jmath.Identity, Opaque}, ramp, x1, y1, x2, y2}
}

func (p *LinearGradientPaint) At(x, y float32) RGBA8 { return p.Ramp.At(p.Param(x, y)) }

// Param returns the ramp parameter at (x, y), before spreading.
func (p *LinearGradientPaint) Param(x, y float32) float32 {
	dx, dy := p.X2-p.X1, p.Y2-p.Y1
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	return ((x-p.X1)*dx + (y-p.Y1)*dy) / l2
}

// RadialGradientPaint varies along rays from the focus (Fx, Fy) to the
// circle of radius R around (Cx, Cy).
type RadialGradientPaint struct {
	paintBase
	Ramp           ColorRamp
	Cx, Cy, Fx, Fy float32
	R              float32
}

func NewRadialGradientPaint(ramp ColorRamp, cx, cy, fx, fy, r float32) *RadialGradientPaint {
	return &RadialGradientPaint{paintBase{jmath.Identity, Opaque}, ramp, cx, cy, fx, fy, r}
}

func (p *RadialGradientPaint) At(x, y float32) RGBA8 { return p.Ramp.At(p.Param(x, y)) }

// Param returns the ramp parameter at (x, y), before spreading.
func (p *RadialGradientPaint) Param(x, y float32) float32 {
	dx, dy := float64(x-p.Fx), float64(y-p.Fy)
	ox, oy := float64(p.Fx-p.Cx), float64(p.Fy-p.Cy)
	a := dx*dx + dy*dy
	if a == 0 {
		return 0
	}
	b := dx*ox + dy*oy
	c := ox*ox + oy*oy - float64(p.R)*float64(p.R)
	disc := b*b - a*c
	if disc < 0 {
		return 1
	}
	// s scales d so that f + s d lies on the circle.
	s := (-b + math.Sqrt(disc)) / a
	if s <= 0 {
		return 1
	}
	return float32(1 / s)
}

// TexturePaint maps a texture onto the paint space unit square.
type TexturePaint struct {
	paintBase
	Texture *Texture
}

func NewTexturePaint(tex *Texture) *TexturePaint {
	return &TexturePaint{paintBase{jmath.Identity, Opaque}, tex}
}

func (p *TexturePaint) At(x, y float32) RGBA8 { return p.Texture.At(x, y) }
