// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package outline

import "fmt"

// Iterate replays the scene into c in the order it was built.
func (s *Scene) Iterate(c SceneConsumer) {
	bi, ei := 0, 0
	for {
		if bi < len(s.brackets) && s.brackets[bi].ElementID <= ei {
			s.emitBracket(c, &s.brackets[bi])
			bi++
		} else if ei < len(s.elements) {
			s.emitElement(c, &s.elements[ei])
			ei++
		} else {
			break
		}
	}
}

// IterateBrackets replays only the brackets of the scene.
func (s *Scene) IterateBrackets(c SceneConsumer) {
	for i := range s.brackets {
		s.emitBracket(c, &s.brackets[i])
	}
}

// RIterate replays the scene into c back to front. Fade, blur and
// transform scopes are entered at their end brackets. A clip is replayed
// as a clip: begin_clip, its clip region backwards, activate_clip, its
// contents backwards, end_clip.
func (s *Scene) RIterate(c SceneConsumer) {
	s.riterate(c, len(s.brackets), 0, len(s.elements), 0)
}

// RIterateBrackets is like RIterate but replays only brackets.
func (s *Scene) RIterateBrackets(c SceneConsumer) {
	s.riterateBrackets(c, len(s.brackets), 0)
}

func (s *Scene) riterate(c SceneConsumer, bi, minBi, ei, minEi int) {
	for bi != minBi || ei != minEi {
		if bi != minBi && s.brackets[bi-1].ElementID >= ei {
			b := &s.brackets[bi-1]
			if b.Kind != BracketEndClip {
				s.emitReversedBracket(c, b)
				bi--
				continue
			}
			end := bi - 1
			activate := b.matching
			begin := s.brackets[activate].matching
			endElem := b.ElementID
			activateElem := s.brackets[activate].ElementID
			beginElem := s.brackets[begin].ElementID

			c.BeginClip(b.Depth)
			s.riterate(c, activate, begin+1, activateElem, beginElem)
			c.ActivateClip(b.Depth)
			s.riterate(c, end, activate+1, endElem, activateElem)
			c.EndClip(b.Depth)
			bi, ei = begin, beginElem
		} else if ei != minEi {
			s.emitElement(c, &s.elements[ei-1])
			ei--
		} else {
			// Brackets left over that precede the elements we've passed.
			panic("invalid state")
		}
	}
}

func (s *Scene) riterateBrackets(c SceneConsumer, bi, minBi int) {
	for bi != minBi {
		b := &s.brackets[bi-1]
		if b.Kind != BracketEndClip {
			s.emitReversedBracket(c, b)
			bi--
			continue
		}
		end := bi - 1
		activate := b.matching
		begin := s.brackets[activate].matching
		c.BeginClip(b.Depth)
		s.riterateBrackets(c, activate, begin+1)
		c.ActivateClip(b.Depth)
		s.riterateBrackets(c, end, activate+1)
		c.EndClip(b.Depth)
		bi = begin
	}
}

func (s *Scene) emitElement(c SceneConsumer, e *Element) {
	switch e.Kind {
	case ElementPaintedShape:
		c.PaintedShape(e.rule, e.shape, e.paint)
	case ElementStencilShape:
		c.StencilShape(e.rule, e.shape)
	case ElementTensorProductPatch:
		c.TensorProductPatch(e.patch)
	case ElementCoonsPatch:
		c.CoonsPatch(e.patch)
	case ElementGouraudTriangle:
		c.GouraudTriangle(e.patch)
	default:
		panic(fmt.Sprintf("invalid element kind %s", e.Kind))
	}
}

func (s *Scene) emitBracket(c SceneConsumer, b *Bracket) {
	switch b.Kind {
	case BracketBeginClip:
		c.BeginClip(b.Depth)
	case BracketActivateClip:
		c.ActivateClip(b.Depth)
	case BracketEndClip:
		c.EndClip(b.Depth)
	case BracketBeginFade:
		c.BeginFade(b.Depth, b.opacity)
	case BracketEndFade:
		c.EndFade(b.Depth, b.opacity)
	case BracketBeginBlur:
		c.BeginBlur(b.Depth, b.radius)
	case BracketEndBlur:
		c.EndBlur(b.Depth, b.radius)
	case BracketBeginTransform:
		c.BeginTransform(b.Depth, b.xform)
	case BracketEndTransform:
		c.EndTransform(b.Depth, b.xform)
	default:
		panic(fmt.Sprintf("invalid bracket kind %s", b.Kind))
	}
}

// emitReversedBracket emits a non-clip bracket with begin and end swapped.
func (s *Scene) emitReversedBracket(c SceneConsumer, b *Bracket) {
	switch b.Kind {
	case BracketBeginFade:
		c.EndFade(b.Depth, b.opacity)
	case BracketEndFade:
		c.BeginFade(b.Depth, b.opacity)
	case BracketBeginBlur:
		c.EndBlur(b.Depth, b.radius)
	case BracketEndBlur:
		c.BeginBlur(b.Depth, b.radius)
	case BracketBeginTransform:
		c.EndTransform(b.Depth, b.xform)
	case BracketEndTransform:
		c.BeginTransform(b.Depth, b.xform)
	case BracketBeginClip, BracketActivateClip:
		// Clips are entered through their end bracket, so reaching one of
		// these means the clip was never ended.
		panic(fmt.Sprintf("%s at depth %d has no end_clip", b.Kind, b.Depth))
	default:
		panic(fmt.Sprintf("invalid bracket kind %s", b.Kind))
	}
}
