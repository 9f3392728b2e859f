// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package outline

import (
	"honnef.co/go/outline/gfx"
	"honnef.co/go/outline/jmath"
)

// SceneConsumer receives the elements and brackets of a scene in drawing
// order. Output drivers implement it, and so does [*Scene].
type SceneConsumer interface {
	PaintedShape(rule gfx.WindingRule, shape gfx.Shape, paint gfx.Paint)
	StencilShape(rule gfx.WindingRule, shape gfx.Shape)
	TensorProductPatch(p *gfx.Patch)
	CoonsPatch(p *gfx.Patch)
	GouraudTriangle(p *gfx.Patch)

	BeginClip(depth uint16)
	ActivateClip(depth uint16)
	EndClip(depth uint16)
	BeginFade(depth uint16, opacity gfx.Unorm8)
	EndFade(depth uint16, opacity gfx.Unorm8)
	BeginBlur(depth uint16, radius float32)
	EndBlur(depth uint16, radius float32)
	BeginTransform(depth uint16, xf jmath.Transform)
	EndTransform(depth uint16, xf jmath.Transform)
}

var _ SceneConsumer = (*Scene)(nil)

// depthShift forwards to SceneConsumer with every depth offset by Delta.
type depthShift struct {
	SceneConsumer
	Delta uint16
}

func (d depthShift) BeginClip(depth uint16)    { d.SceneConsumer.BeginClip(depth + d.Delta) }
func (d depthShift) ActivateClip(depth uint16) { d.SceneConsumer.ActivateClip(depth + d.Delta) }
func (d depthShift) EndClip(depth uint16)      { d.SceneConsumer.EndClip(depth + d.Delta) }

func (d depthShift) BeginFade(depth uint16, opacity gfx.Unorm8) {
	d.SceneConsumer.BeginFade(depth+d.Delta, opacity)
}

func (d depthShift) EndFade(depth uint16, opacity gfx.Unorm8) {
	d.SceneConsumer.EndFade(depth+d.Delta, opacity)
}

func (d depthShift) BeginBlur(depth uint16, radius float32) {
	d.SceneConsumer.BeginBlur(depth+d.Delta, radius)
}

func (d depthShift) EndBlur(depth uint16, radius float32) {
	d.SceneConsumer.EndBlur(depth+d.Delta, radius)
}

func (d depthShift) BeginTransform(depth uint16, xf jmath.Transform) {
	d.SceneConsumer.BeginTransform(depth+d.Delta, xf)
}

func (d depthShift) EndTransform(depth uint16, xf jmath.Transform) {
	d.SceneConsumer.EndTransform(depth+d.Delta, xf)
}
