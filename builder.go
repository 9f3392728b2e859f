// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package outline

import (
	"honnef.co/go/curve"
	"honnef.co/go/outline/gfx"
	"honnef.co/go/outline/jmath"
)

// Builder builds a scene with push/pop style scopes, keeping track of
// bracket depths. Pops that don't match the innermost open scope are
// dropped and logged.
type Builder struct {
	Scene     Scene
	Estimator FlattenEstimator

	cfg    Config
	scopes []scope
	// Transform accumulated from all open transform scopes.
	xform jmath.Transform
}

type scope struct {
	kind      BracketKind
	activated bool
	opacity   gfx.Unorm8
	radius    float32
	xform     jmath.Transform
	// Accumulated transform before this scope was pushed.
	outer jmath.Transform
}

func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg, xform: jmath.Identity}
}

func (b *Builder) Reset() {
	b.Scene.Reset()
	b.Estimator.Reset()
	b.scopes = b.scopes[:0]
	b.xform = jmath.Identity
}

func (b *Builder) depth() uint16 { return uint16(len(b.scopes)) }

// Transform returns the transform accumulated from the open transform
// scopes.
func (b *Builder) Transform() jmath.Transform { return b.xform }

// Estimate returns the flatten estimate of everything added so far, with
// all content scaled by scale.
func (b *Builder) Estimate(scale float64) uint32 {
	return b.Estimator.Tally(scale)
}

func (b *Builder) count(shape gfx.Shape, stroke *curve.Stroke) {
	if !b.cfg.Estimate {
		return
	}
	b.Estimator.CountPath(shape.PathData(b.xform), b.xform, stroke)
}

func (b *Builder) Fill(rule gfx.WindingRule, shape gfx.Shape, paint gfx.Paint) {
	b.Scene.PaintedShape(rule, shape, paint)
	b.count(shape, nil)
}

// FillCurve fills any curve shape, flattened within the configured
// tolerance.
func (b *Builder) FillCurve(rule gfx.WindingRule, shape curve.Shape, paint gfx.Paint) {
	b.Fill(rule, &gfx.CurveShape{Shape: shape, Tolerance: b.cfg.tolerance()}, paint)
}

// Stroke paints the stroke of shape. The stroke is outlined when the scene
// is drawn, within the configured stroke tolerance.
func (b *Builder) Stroke(style curve.Stroke, shape gfx.Shape, paint gfx.Paint) {
	b.Scene.PaintedShape(gfx.NonZero, &gfx.Stroke{
		Shape:     shape,
		Style:     style,
		Tolerance: b.cfg.strokeTolerance(),
	}, paint)
	b.count(shape, &style)
}

// Stencil adds a shape to the region of the innermost clip being built.
func (b *Builder) Stencil(rule gfx.WindingRule, shape gfx.Shape) {
	if n := len(b.scopes); n == 0 || b.scopes[n-1].kind != BracketBeginClip || b.scopes[n-1].activated {
		Logger().Debug("stencil shape outside of a clip region", "depth", b.depth())
	}
	b.Scene.StencilShape(rule, shape)
	b.count(shape, nil)
}

func (b *Builder) Patch(p *gfx.Patch) {
	b.Scene.Patch(p)
	if b.cfg.Estimate {
		b.Estimator.CountPath(p.Outline(), b.xform, nil)
	}
}

func (b *Builder) push(s scope) {
	s.outer = b.xform
	b.scopes = append(b.scopes, s)
}

// pop removes the innermost scope if it is of kind.
func (b *Builder) pop(kind BracketKind) (scope, bool) {
	n := len(b.scopes)
	if n == 0 || b.scopes[n-1].kind != kind {
		Logger().Debug("dropping unbalanced pop", "kind", kind, "depth", b.depth())
		return scope{}, false
	}
	s := b.scopes[n-1]
	b.scopes = b.scopes[:n-1]
	b.xform = s.outer
	return s, true
}

// PushClip starts a clip. Stencil shapes added until ActivateClip form the
// clip region; everything added after it, until PopClip, is clipped.
func (b *Builder) PushClip() {
	b.Scene.BeginClip(b.depth())
	b.push(scope{kind: BracketBeginClip})
}

func (b *Builder) ActivateClip() {
	n := len(b.scopes)
	if n == 0 || b.scopes[n-1].kind != BracketBeginClip || b.scopes[n-1].activated {
		Logger().Debug("dropping activate_clip without an open clip region", "depth", b.depth())
		return
	}
	b.scopes[n-1].activated = true
	b.Scene.ActivateClip(b.depth() - 1)
}

// PopClip ends the innermost clip. A clip whose region was never
// activated clips an empty scope.
func (b *Builder) PopClip() {
	n := len(b.scopes)
	if n > 0 && b.scopes[n-1].kind == BracketBeginClip && !b.scopes[n-1].activated {
		b.ActivateClip()
	}
	if _, ok := b.pop(BracketBeginClip); ok {
		b.Scene.EndClip(b.depth())
	}
}

func (b *Builder) PushFade(opacity gfx.Unorm8) {
	b.Scene.BeginFade(b.depth(), opacity)
	b.push(scope{kind: BracketBeginFade, opacity: opacity})
}

func (b *Builder) PopFade() {
	if s, ok := b.pop(BracketBeginFade); ok {
		b.Scene.EndFade(b.depth(), s.opacity)
	}
}

func (b *Builder) PushBlur(radius float32) {
	b.Scene.BeginBlur(b.depth(), radius)
	b.push(scope{kind: BracketBeginBlur, radius: radius})
}

func (b *Builder) PopBlur() {
	if s, ok := b.pop(BracketBeginBlur); ok {
		b.Scene.EndBlur(b.depth(), s.radius)
	}
}

// PushTransform applies xf to everything added until the matching
// PopTransform, before any outer transforms.
func (b *Builder) PushTransform(xf jmath.Transform) {
	b.Scene.BeginTransform(b.depth(), xf)
	b.push(scope{kind: BracketBeginTransform, xform: xf})
	b.xform = b.xform.Mul(xf)
}

func (b *Builder) PopTransform() {
	if s, ok := b.pop(BracketBeginTransform); ok {
		b.Scene.EndTransform(b.depth(), s.xform)
	}
}

// Finish closes all open scopes and returns the scene.
func (b *Builder) Finish() *Scene {
	for len(b.scopes) > 0 {
		switch b.scopes[len(b.scopes)-1].kind {
		case BracketBeginClip:
			b.PopClip()
		case BracketBeginFade:
			b.PopFade()
		case BracketBeginBlur:
			b.PopBlur()
		case BracketBeginTransform:
			b.PopTransform()
		}
	}
	return &b.Scene
}

// Append adds the finished scene of other, transformed by xf, nested at
// the current depth.
func (b *Builder) Append(other *Builder, xf jmath.Transform) {
	b.PushTransform(xf)
	other.Scene.Iterate(depthShift{&b.Scene, b.depth()})
	b.PopTransform()
	b.Estimator.Append(&other.Estimator, b.xform.Mul(xf).ScaleFactor())
}
