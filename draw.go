// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package outline

import (
	"fmt"

	"honnef.co/go/outline/gfx"
	"honnef.co/go/outline/jmath"
)

type BracketKind uint8

const (
	BracketBeginClip BracketKind = iota + 1
	BracketActivateClip
	BracketEndClip
	BracketBeginFade
	BracketEndFade
	BracketBeginBlur
	BracketEndBlur
	BracketBeginTransform
	BracketEndTransform
)

func (k BracketKind) String() string {
	switch k {
	case BracketBeginClip:
		return "begin_clip"
	case BracketActivateClip:
		return "activate_clip"
	case BracketEndClip:
		return "end_clip"
	case BracketBeginFade:
		return "begin_fade"
	case BracketEndFade:
		return "end_fade"
	case BracketBeginBlur:
		return "begin_blur"
	case BracketEndBlur:
		return "end_blur"
	case BracketBeginTransform:
		return "begin_transform"
	case BracketEndTransform:
		return "end_transform"
	default:
		return fmt.Sprintf("BracketKind(%d)", uint8(k))
	}
}

func (k BracketKind) IsClip() bool {
	return k >= BracketBeginClip && k <= BracketEndClip
}

// Bracket marks the entry into or exit from a nested scope of a scene.
type Bracket struct {
	Kind BracketKind
	// ElementID is the number of elements that precede the bracket.
	ElementID int
	Depth     uint16

	// Index of the linked clip bracket. Begin links to end, activate to
	// begin and end to activate.
	matching int
	opacity  gfx.Unorm8
	radius   float32
	xform    jmath.Transform
}

func (b *Bracket) expect(ok bool, what string) {
	if !ok {
		panic(fmt.Sprintf("%s bracket has no %s", b.Kind, what))
	}
}

// MatchingBracket returns the index of the linked clip bracket: the end for
// a begin, the begin for an activate and the activate for an end.
func (b *Bracket) MatchingBracket() int {
	b.expect(b.Kind.IsClip(), "matching bracket")
	return b.matching
}

func (b *Bracket) Opacity() gfx.Unorm8 {
	b.expect(b.Kind == BracketBeginFade || b.Kind == BracketEndFade, "opacity")
	return b.opacity
}

func (b *Bracket) Radius() float32 {
	b.expect(b.Kind == BracketBeginBlur || b.Kind == BracketEndBlur, "radius")
	return b.radius
}

func (b *Bracket) Transform() jmath.Transform {
	b.expect(b.Kind == BracketBeginTransform || b.Kind == BracketEndTransform, "transform")
	return b.xform
}

type ElementKind uint8

const (
	ElementPaintedShape ElementKind = iota + 1
	ElementStencilShape
	ElementTensorProductPatch
	ElementCoonsPatch
	ElementGouraudTriangle
)

func (k ElementKind) String() string {
	switch k {
	case ElementPaintedShape:
		return "painted_shape"
	case ElementStencilShape:
		return "stencil_shape"
	case ElementTensorProductPatch:
		return "tensor_product_patch"
	case ElementCoonsPatch:
		return "coons_patch"
	case ElementGouraudTriangle:
		return "gouraud_triangle"
	default:
		return fmt.Sprintf("ElementKind(%d)", uint8(k))
	}
}

func (k ElementKind) IsPatch() bool {
	return k >= ElementTensorProductPatch && k <= ElementGouraudTriangle
}

type Element struct {
	Kind ElementKind

	rule  gfx.WindingRule
	shape gfx.Shape
	paint gfx.Paint
	patch *gfx.Patch
}

func (e *Element) expect(ok bool, what string) {
	if !ok {
		panic(fmt.Sprintf("%s element has no %s", e.Kind, what))
	}
}

func (e *Element) isShape() bool {
	return e.Kind == ElementPaintedShape || e.Kind == ElementStencilShape
}

func (e *Element) WindingRule() gfx.WindingRule {
	e.expect(e.isShape(), "winding rule")
	return e.rule
}

func (e *Element) Shape() gfx.Shape {
	e.expect(e.isShape(), "shape")
	return e.shape
}

func (e *Element) Paint() gfx.Paint {
	e.expect(e.Kind == ElementPaintedShape, "paint")
	return e.paint
}

func (e *Element) Patch() *gfx.Patch {
	e.expect(e.Kind.IsPatch(), "patch")
	return e.patch
}

func patchElementKind(k gfx.PatchKind) ElementKind {
	switch k {
	case gfx.TensorProductPatch:
		return ElementTensorProductPatch
	case gfx.CoonsPatch:
		return ElementCoonsPatch
	case gfx.GouraudTriangle:
		return ElementGouraudTriangle
	default:
		panic(fmt.Sprintf("invalid patch kind %s", k))
	}
}
