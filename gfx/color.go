// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	stdcolor "image/color"
	"math"

	"honnef.co/go/color"
)

// Unorm8 is a value in [0, 1] stored in eight bits.
type Unorm8 uint8

const Opaque Unorm8 = 255

func Unorm8FromFloat(f float32) Unorm8 {
	if !(f > 0) {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return Unorm8(f*255 + 0.5)
}

func (u Unorm8) Float() float32 { return float32(u) / 255 }

// Mul multiplies two normalized values, rounding to nearest.
func (u Unorm8) Mul(o Unorm8) Unorm8 {
	v := uint32(u)*uint32(o) + 128
	return Unorm8((v + v>>8) >> 8)
}

// RGBA8 is a straight, non-premultiplied sRGB color.
type RGBA8 struct {
	R, G, B, A Unorm8
}

var _ stdcolor.Color = RGBA8{}

func RGB8(r, g, b uint8) RGBA8 {
	return RGBA8{Unorm8(r), Unorm8(g), Unorm8(b), Opaque}
}

// RGBA8FromColor converts c to 8-bit sRGB, clamping out of gamut values.
func RGBA8FromColor(c *color.Color) RGBA8 {
	cc := c.Convert(color.LinearSRGB)
	return RGBA8{
		R: Unorm8FromFloat(encodeSRGB(cc.Values[0])),
		G: Unorm8FromFloat(encodeSRGB(cc.Values[1])),
		B: Unorm8FromFloat(encodeSRGB(cc.Values[2])),
		A: Unorm8FromFloat(float32(cc.Values[3])),
	}
}

func encodeSRGB(v float64) float32 {
	if v <= 0.0031308 {
		return float32(12.92 * v)
	}
	return float32(1.055*math.Pow(v, 1/2.4) - 0.055)
}

// RGBA implements [image/color.Color] and returns premultiplied components.
func (c RGBA8) RGBA() (r, g, b, a uint32) {
	return stdcolor.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: uint8(c.A)}.RGBA()
}

// WithOpacity scales the color's alpha by op.
func (c RGBA8) WithOpacity(op Unorm8) RGBA8 {
	c.A = c.A.Mul(op)
	return c
}

// Lerp interpolates between c and o in straight sRGB.
func (c RGBA8) Lerp(o RGBA8, t float32) RGBA8 {
	mix := func(a, b Unorm8) Unorm8 {
		return Unorm8FromFloat(a.Float() + (b.Float()-a.Float())*t)
	}
	return RGBA8{mix(c.R, o.R), mix(c.G, o.G), mix(c.B, o.B), mix(c.A, o.A)}
}

// RGBA8Model converts any color to a straight RGBA8.
var RGBA8Model = stdcolor.ModelFunc(func(c stdcolor.Color) stdcolor.Color {
	if c, ok := c.(RGBA8); ok {
		return c
	}
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RGBA8{Unorm8(n.R), Unorm8(n.G), Unorm8(n.B), Unorm8(n.A)}
})
