// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package outline

import (
	"fmt"

	"honnef.co/go/outline/gfx"
	"honnef.co/go/outline/jmath"
)

// Scene is a list of elements interleaved with the brackets that scope
// them. Elements and brackets are stored separately, in emission order;
// each bracket records how many elements preceded it.
type Scene struct {
	brackets []Bracket
	elements []Element

	// Per depth, the index of the clip bracket most recently begun or
	// activated at that depth, and how far that clip has progressed.
	clips []openClip
}

type clipStage uint8

const (
	clipClosed clipStage = iota
	clipBegun
	clipActivated
)

type openClip struct {
	index int
	stage clipStage
}

func (s *Scene) Reset() {
	s.brackets = s.brackets[:0]
	s.elements = s.elements[:0]
	s.clips = s.clips[:0]
}

func (s *Scene) Brackets() []Bracket { return s.brackets }
func (s *Scene) Elements() []Element { return s.elements }

func (s *Scene) IsEmpty() bool { return len(s.brackets) == 0 && len(s.elements) == 0 }

func (s *Scene) pushElement(e Element) {
	s.elements = append(s.elements, e)
}

func (s *Scene) pushBracket(b Bracket) int {
	b.ElementID = len(s.elements)
	s.brackets = append(s.brackets, b)
	return len(s.brackets) - 1
}

func (s *Scene) PaintedShape(rule gfx.WindingRule, shape gfx.Shape, paint gfx.Paint) {
	s.pushElement(Element{Kind: ElementPaintedShape, rule: rule, shape: shape, paint: paint})
}

func (s *Scene) StencilShape(rule gfx.WindingRule, shape gfx.Shape) {
	s.pushElement(Element{Kind: ElementStencilShape, rule: rule, shape: shape})
}

func (s *Scene) patch(kind ElementKind, p *gfx.Patch) {
	if patchElementKind(p.Kind) != kind {
		panic(fmt.Sprintf("%s patch added as %s", p.Kind, kind))
	}
	s.pushElement(Element{Kind: kind, patch: p})
}

func (s *Scene) TensorProductPatch(p *gfx.Patch) { s.patch(ElementTensorProductPatch, p) }
func (s *Scene) CoonsPatch(p *gfx.Patch)         { s.patch(ElementCoonsPatch, p) }
func (s *Scene) GouraudTriangle(p *gfx.Patch)    { s.patch(ElementGouraudTriangle, p) }

// Patch adds p as the element kind matching its patch kind.
func (s *Scene) Patch(p *gfx.Patch) { s.patch(patchElementKind(p.Kind), p) }

func (s *Scene) clipSlot(depth uint16) *openClip {
	if int(depth) >= len(s.clips) {
		s.clips = append(s.clips, make([]openClip, int(depth)+1-len(s.clips))...)
	}
	return &s.clips[depth]
}

// BeginClip opens a clip at depth. The stencil shapes that follow, up to
// the matching ActivateClip, form the clip region.
func (s *Scene) BeginClip(depth uint16) {
	slot := s.clipSlot(depth)
	if slot.stage != clipClosed {
		panic(fmt.Sprintf("begin_clip at depth %d while another clip is open there", depth))
	}
	slot.index = s.pushBracket(Bracket{Kind: BracketBeginClip, Depth: depth})
	slot.stage = clipBegun
}

// ActivateClip ends the clip region of the clip begun at depth. Elements
// that follow, up to the matching EndClip, are clipped by it.
func (s *Scene) ActivateClip(depth uint16) {
	slot := s.clipSlot(depth)
	if slot.stage != clipBegun {
		panic(fmt.Sprintf("activate_clip at depth %d without begin_clip", depth))
	}
	slot.index = s.pushBracket(Bracket{Kind: BracketActivateClip, Depth: depth, matching: slot.index})
	slot.stage = clipActivated
}

func (s *Scene) EndClip(depth uint16) {
	slot := s.clipSlot(depth)
	if slot.stage != clipActivated {
		panic(fmt.Sprintf("end_clip at depth %d without activate_clip", depth))
	}
	activate := slot.index
	end := s.pushBracket(Bracket{Kind: BracketEndClip, Depth: depth, matching: activate})
	begin := s.brackets[activate].matching
	s.brackets[begin].matching = end
	*slot = openClip{}
}

func (s *Scene) BeginFade(depth uint16, opacity gfx.Unorm8) {
	s.pushBracket(Bracket{Kind: BracketBeginFade, Depth: depth, opacity: opacity})
}

func (s *Scene) EndFade(depth uint16, opacity gfx.Unorm8) {
	s.pushBracket(Bracket{Kind: BracketEndFade, Depth: depth, opacity: opacity})
}

func (s *Scene) BeginBlur(depth uint16, radius float32) {
	s.pushBracket(Bracket{Kind: BracketBeginBlur, Depth: depth, radius: radius})
}

func (s *Scene) EndBlur(depth uint16, radius float32) {
	s.pushBracket(Bracket{Kind: BracketEndBlur, Depth: depth, radius: radius})
}

func (s *Scene) BeginTransform(depth uint16, xf jmath.Transform) {
	s.pushBracket(Bracket{Kind: BracketBeginTransform, Depth: depth, xform: xf})
}

func (s *Scene) EndTransform(depth uint16, xf jmath.Transform) {
	s.pushBracket(Bracket{Kind: BracketEndTransform, Depth: depth, xform: xf})
}
