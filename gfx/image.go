// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"image"
)

// Texture maps an image onto the unit square. Texture coordinates outside
// of it are handled by Spread.
type Texture struct {
	Image  image.Image
	Spread Spread
}

// At samples the nearest texel at (u, v).
func (t *Texture) At(u, v float32) RGBA8 {
	if t == nil || t.Image == nil {
		return RGBA8{}
	}
	u, okU := t.Spread.Apply(u)
	v, okV := t.Spread.Apply(v)
	if !okU || !okV {
		return RGBA8{}
	}
	b := t.Image.Bounds()
	if b.Empty() {
		return RGBA8{}
	}
	x := b.Min.X + min(int(u*float32(b.Dx())), b.Dx()-1)
	y := b.Min.Y + min(int(v*float32(b.Dy())), b.Dy()-1)
	return RGBA8Model.Convert(t.Image.At(x, y)).(RGBA8)
}
