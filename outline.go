// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package outline implements scenes of painted shapes, stencils and
// patches, scoped by clip, fade, blur and transform brackets.
//
// A [Scene] records what was drawn; it can be replayed front to back with
// [Scene.Iterate] or back to front with [Scene.RIterate] into any
// [SceneConsumer]. The shapes themselves live in package gfx and describe
// their outlines as path tapes from package encoding.
package outline

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) clear() {
	opt.isSet = false
	opt.value = *new(T)
}

func (opt option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}

func (opt option[T]) unwrapOr(alt T) T {
	if opt.isSet {
		return opt.value
	}
	return alt
}
