// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"fmt"

	"honnef.co/go/curve"
	"honnef.co/go/outline/encoding"
)

type PatchKind uint8

const (
	TensorProductPatch PatchKind = iota + 1
	CoonsPatch
	GouraudTriangle
)

func (k PatchKind) String() string {
	switch k {
	case TensorProductPatch:
		return "tensor_product_patch"
	case CoonsPatch:
		return "coons_patch"
	case GouraudTriangle:
		return "gouraud_triangle"
	default:
		return fmt.Sprintf("PatchKind(%d)", uint8(k))
	}
}

// Patch is a color-interpolating surface element. A tensor product patch
// has 16 control points in row-major order, a Coons patch has the 12
// boundary points in counter-clockwise order starting at a corner, and a
// Gouraud triangle has 3 vertices. Colors belong to the corners.
type Patch struct {
	Kind    PatchKind
	Points  []curve.Point
	Colors  []RGBA8
	Opacity Unorm8
}

func NewTensorProductPatch(points [16]curve.Point, colors [4]RGBA8, opacity Unorm8) *Patch {
	return &Patch{TensorProductPatch, points[:], colors[:], opacity}
}

func NewCoonsPatch(points [12]curve.Point, colors [4]RGBA8, opacity Unorm8) *Patch {
	return &Patch{CoonsPatch, points[:], colors[:], opacity}
}

func NewGouraudTriangle(points [3]curve.Point, colors [3]RGBA8, opacity Unorm8) *Patch {
	return &Patch{GouraudTriangle, points[:], colors[:], opacity}
}

// boundary returns the control points of the patch's outline as a closed
// chain of cubics, or of lines for triangles.
func (p *Patch) boundary() []curve.Point {
	pts := p.Points
	switch p.Kind {
	case TensorProductPatch:
		return []curve.Point{
			pts[0], pts[1], pts[2], pts[3],
			pts[7], pts[11], pts[15],
			pts[14], pts[13], pts[12],
			pts[8], pts[4], pts[0],
		}
	case CoonsPatch:
		return append(pts[:12:12], pts[0])
	case GouraudTriangle:
		return pts[:3]
	default:
		panic(fmt.Sprintf("invalid patch kind %s", p.Kind))
	}
}

// Outline returns the patch's boundary as a closed path.
func (p *Patch) Outline() *encoding.Tape {
	var t encoding.Tape
	enc := encoding.NewPathEncoder(&t)
	pts := p.boundary()
	f := func(i int) (float32, float32) { return float32(pts[i].X), float32(pts[i].Y) }
	enc.MoveTo(f(0))
	if p.Kind == GouraudTriangle {
		for i := 1; i < len(pts); i++ {
			enc.LineTo(f(i))
		}
		enc.LineTo(f(0))
	} else {
		for i := 1; i+2 < len(pts); i += 3 {
			x1, y1 := f(i)
			x2, y2 := f(i + 1)
			x3, y3 := f(i + 2)
			enc.CubicTo(x1, y1, x2, y2, x3, y3)
		}
	}
	enc.Close()
	enc.Finish()
	return &t
}

// AverageColor returns the mean of the corner colors.
func (p *Patch) AverageColor() RGBA8 {
	if len(p.Colors) == 0 {
		return RGBA8{}
	}
	var r, g, b, a int
	for _, c := range p.Colors {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
		a += int(c.A)
	}
	n := len(p.Colors)
	avg := func(v int) Unorm8 { return Unorm8((v + n/2) / n) }
	return RGBA8{avg(r), avg(g), avg(b), avg(a)}
}
