// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package renderer draws scenes into images on the CPU.
package renderer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
	"github.com/srwiley/rasterx"
	"honnef.co/go/outline"
	"honnef.co/go/outline/encoding"
	"honnef.co/go/outline/gfx"
	"honnef.co/go/outline/jmath"
)

// Renderer is a scene consumer that draws into an RGBA image. Scene
// coordinates are pixels, relative to the top left corner of the image.
//
// Fades, blurs and clips render their contents into offscreen layers,
// composited into the enclosing layer when the scope ends. A clip's
// stencil shapes accumulate into a coverage mask that the clipped layer is
// composited through.
//
// Scopes opened inside a clip region only produce coverage. A clip nested
// in a region adds the intersection of its own region and the stencil
// shapes it clips to the enclosing region; fades and blurs pass stencil
// shapes through unchanged.
type Renderer struct {
	dst *image.RGBA
	// Every layer and mask covers rect, which has its origin at the top
	// left corner of dst.
	rect image.Rectangle
	tol  float32

	xform  jmath.Transform
	xforms []jmath.Transform
	layers []*layer

	cov     *image.Alpha
	filler  *rasterx.Filler
	fillerS fillerSink
	edges   edgeList
	ramps   rampCache
}

var _ outline.SceneConsumer = (*Renderer)(nil)

type layer struct {
	kind  outline.BracketKind
	depth uint16
	// The layer was opened inside a clip region and has no image.
	region    bool
	activated bool
	// nil for region layers and for clips until they are activated
	img *image.RGBA
	// clip region
	mask *image.Alpha
	// stencil shapes clipped by a region clip
	clipped *image.Alpha
	opacity gfx.Unorm8
	radius  float32
}

// NewRenderer returns a renderer drawing into dst. cfg.Tolerance bounds
// the error of flattening curves that the rasterizer can't draw directly.
func NewRenderer(dst *image.RGBA, cfg outline.Config) *Renderer {
	rect := image.Rect(0, 0, dst.Bounds().Dx(), dst.Bounds().Dy())
	tol := float32(cfg.Tolerance)
	if tol <= 0 {
		tol = gfx.DefaultTolerance
	}
	r := &Renderer{
		dst:   dst,
		rect:  rect,
		tol:   tol,
		xform: jmath.Identity,
		cov:   image.NewAlpha(rect),
	}
	scanner := rasterx.NewScannerGV(rect.Dx(), rect.Dy(), r.cov, rect)
	scanner.SetColor(color.Opaque)
	r.filler = rasterx.NewFiller(rect.Dx(), rect.Dy(), scanner)
	r.fillerS = fillerSink{filler: r.filler, tol: tol}
	r.edges.tol = tol
	return r
}

// Render draws the scene and reports whether every scope it opened was
// closed again.
func (r *Renderer) Render(s *outline.Scene) bool {
	r.ramps.maintain()
	s.Iterate(r)
	balanced := len(r.layers) == 0 && len(r.xforms) == 0
	r.Flush()
	return balanced
}

// Flush composites layers left open by an unbalanced scene and forgets
// any open transforms.
func (r *Renderer) Flush() {
	for len(r.layers) > 0 {
		l := r.pop()
		outline.Logger().Debug("closing unbalanced layer", "kind", l.kind, "depth", l.depth)
		r.composite(l)
	}
	r.xforms = r.xforms[:0]
	r.xform = jmath.Identity
}

// target returns the image drawing currently goes to and the rectangle to
// draw in. Source and mask images are aligned with the rectangle's min
// point. It must not be called inside a clip region.
func (r *Renderer) target() (draw.Image, image.Rectangle) {
	if n := len(r.layers); n > 0 {
		return r.layers[n-1].img, r.rect
	}
	return r.dst, r.dst.Bounds()
}

// inRegion reports whether elements currently contribute to a clip region
// instead of being drawn.
func (r *Renderer) inRegion() bool {
	n := len(r.layers)
	if n == 0 {
		return false
	}
	l := r.layers[n-1]
	return l.region || (l.kind == outline.BracketBeginClip && !l.activated)
}

// stencilMask returns the mask stencil shapes currently accumulate into,
// or nil outside of clip regions.
func (r *Renderer) stencilMask() *image.Alpha {
	for i := len(r.layers) - 1; i >= 0; i-- {
		l := r.layers[i]
		switch {
		case l.kind == outline.BracketBeginClip && !l.activated:
			return l.mask
		case !l.region:
			return nil
		case l.kind == outline.BracketBeginClip:
			return l.clipped
		}
	}
	return nil
}

// rasterize renders the coverage of the device space outline of tape
// under rule into r.cov.
func (r *Renderer) rasterize(tape *encoding.Tape, rule gfx.WindingRule) {
	clear(r.cov.Pix)
	switch rule {
	case gfx.NonZero, gfx.Zero:
		r.filler.Clear()
		tape.Iterate(encoding.NewTransformFilter(r.xform, &r.fillerS))
		r.filler.Draw()
	default:
		// The scanner rasterx draws with only implements the non-zero rule.
		r.edges.reset()
		tape.Iterate(encoding.NewTransformFilter(r.xform, &r.edges))
		r.edges.scan(r.cov.Pix, r.cov.Stride, r.rect.Dx(), r.rect.Dy(), gfx.Odd.Inside)
	}
	if rule.IsComplement() {
		for i, v := range r.cov.Pix {
			r.cov.Pix[i] = 255 - v
		}
	}
}

func (r *Renderer) fill(rule gfx.WindingRule, tape *encoding.Tape, src image.Image) {
	if r.inRegion() {
		outline.Logger().Debug("ignoring painted element in clip region", "depth", len(r.layers)-1)
		return
	}
	r.rasterize(tape, rule)
	dst, dr := r.target()
	draw.DrawMask(dst, dr, src, image.Point{}, r.cov, image.Point{}, draw.Over)
}

func (r *Renderer) PaintedShape(rule gfx.WindingRule, shape gfx.Shape, paint gfx.Paint) {
	r.fill(rule, shape.PathData(r.xform), r.paintSource(paint, r.xform))
}

func (r *Renderer) StencilShape(rule gfx.WindingRule, shape gfx.Shape) {
	mask := r.stencilMask()
	if mask == nil {
		outline.Logger().Debug("ignoring stencil shape outside of clip region", "depth", len(r.layers))
		return
	}
	r.rasterize(shape.PathData(r.xform), rule)
	// Union with the region so far.
	draw.Draw(mask, r.rect, r.cov, image.Point{}, draw.Over)
}

// Tensor product and Coons patches are filled with their average color.
func (r *Renderer) TensorProductPatch(p *gfx.Patch) {
	r.fill(gfx.NonZero, p.Outline(), image.NewUniform(p.AverageColor().WithOpacity(p.Opacity)))
}

func (r *Renderer) CoonsPatch(p *gfx.Patch) {
	r.fill(gfx.NonZero, p.Outline(), image.NewUniform(p.AverageColor().WithOpacity(p.Opacity)))
}

func (r *Renderer) GouraudTriangle(p *gfx.Patch) {
	r.fill(gfx.NonZero, p.Outline(), newGouraudImage(r.rect, p, r.xform))
}

func (r *Renderer) push(l *layer) {
	l.region = r.inRegion()
	if !l.region && l.kind != outline.BracketBeginClip {
		l.img = r.newLayerImage()
	}
	r.layers = append(r.layers, l)
}

func (r *Renderer) pop() *layer {
	l := r.layers[len(r.layers)-1]
	r.layers = r.layers[:len(r.layers)-1]
	return l
}

// popKind pops the innermost layer if it is of kind.
func (r *Renderer) popKind(kind outline.BracketKind, depth uint16) (*layer, bool) {
	n := len(r.layers)
	if n == 0 || r.layers[n-1].kind != kind {
		outline.Logger().Debug("ignoring unbalanced bracket", "kind", kind, "depth", depth)
		return nil, false
	}
	return r.pop(), true
}

// composite draws a finished layer into the enclosing one.
func (r *Renderer) composite(l *layer) {
	if l.region {
		if l.kind == outline.BracketBeginClip && l.clipped != nil {
			if mask := r.stencilMask(); mask != nil {
				// Union of the enclosing region with the clipped part of
				// this one.
				draw.DrawMask(mask, r.rect, l.mask, image.Point{}, l.clipped, image.Point{}, draw.Over)
			}
		}
		return
	}
	if l.img == nil {
		// A clip that was never activated has nothing to draw.
		return
	}
	dst, dr := r.target()
	switch l.kind {
	case outline.BracketBeginClip:
		draw.DrawMask(dst, dr, l.img, image.Point{}, l.mask, image.Point{}, draw.Over)
	case outline.BracketBeginFade:
		draw.DrawMask(dst, dr, l.img, image.Point{}, image.NewUniform(color.Alpha{A: uint8(l.opacity)}), image.Point{}, draw.Over)
	case outline.BracketBeginBlur:
		var src image.Image = l.img
		if l.radius > 0 {
			src = blur.Gaussian(l.img, float64(l.radius))
		}
		draw.Draw(dst, dr, src, image.Point{}, draw.Over)
	}
}

func (r *Renderer) newLayerImage() *image.RGBA { return image.NewRGBA(r.rect) }

func (r *Renderer) BeginClip(depth uint16) {
	r.push(&layer{kind: outline.BracketBeginClip, depth: depth, mask: image.NewAlpha(r.rect)})
}

func (r *Renderer) ActivateClip(depth uint16) {
	n := len(r.layers)
	if n == 0 || r.layers[n-1].kind != outline.BracketBeginClip || r.layers[n-1].activated {
		outline.Logger().Debug("ignoring unbalanced bracket", "kind", outline.BracketActivateClip, "depth", depth)
		return
	}
	clip := r.layers[n-1]
	clip.activated = true
	if clip.region {
		clip.clipped = image.NewAlpha(r.rect)
	} else {
		clip.img = r.newLayerImage()
	}
}

func (r *Renderer) EndClip(depth uint16) {
	if l, ok := r.popKind(outline.BracketBeginClip, depth); ok {
		r.composite(l)
	}
}

func (r *Renderer) BeginFade(depth uint16, opacity gfx.Unorm8) {
	r.push(&layer{kind: outline.BracketBeginFade, depth: depth, opacity: opacity})
}

func (r *Renderer) EndFade(depth uint16, opacity gfx.Unorm8) {
	if l, ok := r.popKind(outline.BracketBeginFade, depth); ok {
		r.composite(l)
	}
}

// BeginBlur starts a layer that is blurred with a Gaussian of the given
// radius, scaled by the current transform, when it ends.
func (r *Renderer) BeginBlur(depth uint16, radius float32) {
	r.push(&layer{
		kind:   outline.BracketBeginBlur,
		depth:  depth,
		radius: radius * float32(r.xform.ScaleFactor()),
	})
}

func (r *Renderer) EndBlur(depth uint16, radius float32) {
	if l, ok := r.popKind(outline.BracketBeginBlur, depth); ok {
		r.composite(l)
	}
}

func (r *Renderer) BeginTransform(depth uint16, xf jmath.Transform) {
	r.xforms = append(r.xforms, r.xform)
	r.xform = r.xform.Mul(xf)
}

func (r *Renderer) EndTransform(depth uint16, xf jmath.Transform) {
	n := len(r.xforms)
	if n == 0 {
		outline.Logger().Debug("ignoring unbalanced bracket", "kind", outline.BracketEndTransform, "depth", depth)
		return
	}
	r.xform = r.xforms[n-1]
	r.xforms = r.xforms[:n-1]
}
