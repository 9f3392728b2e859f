// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"fmt"
	"math"
	"slices"
)

// Spread decides how gradients and textures extend beyond their unit
// domain.
type Spread int

const (
	Pad Spread = iota
	Repeat
	Reflect
	// Transparent yields transparent black outside of the domain.
	Transparent
)

func (s Spread) String() string {
	switch s {
	case Pad:
		return "pad"
	case Repeat:
		return "repeat"
	case Reflect:
		return "reflect"
	case Transparent:
		return "transparent"
	default:
		return fmt.Sprintf("Spread(%d)", int(s))
	}
}

// Apply maps t into [0, 1]. The second return value is false if t lies
// outside the domain and the spread is Transparent.
func (s Spread) Apply(t float32) (float32, bool) {
	switch s {
	case Repeat:
		return t - float32(math.Floor(float64(t))), true
	case Reflect:
		f := t - 2*float32(math.Floor(float64(t/2)))
		if f > 1 {
			f = 2 - f
		}
		return f, true
	case Transparent:
		return t, t >= 0 && t <= 1
	default:
		return min(max(t, 0), 1), true
	}
}

type ColorStop struct {
	Offset float32
	Color  RGBA8
}

// ColorRamp is a sorted list of color stops.
type ColorRamp struct {
	Stops  []ColorStop
	Spread Spread
}

func NewColorRamp(spread Spread, stops ...ColorStop) ColorRamp {
	stops = slices.Clone(stops)
	slices.SortStableFunc(stops, func(a, b ColorStop) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		default:
			return 0
		}
	})
	return ColorRamp{Stops: stops, Spread: spread}
}

// At returns the ramp's color at t, after applying the spread.
func (r ColorRamp) At(t float32) RGBA8 {
	if len(r.Stops) == 0 {
		return RGBA8{}
	}
	t, ok := r.Spread.Apply(t)
	if !ok {
		return RGBA8{}
	}
	if t <= r.Stops[0].Offset {
		return r.Stops[0].Color
	}
	for i := 1; i < len(r.Stops); i++ {
		s0, s1 := r.Stops[i-1], r.Stops[i]
		if t <= s1.Offset {
			d := s1.Offset - s0.Offset
			if d <= 0 {
				return s1.Color
			}
			return s0.Color.Lerp(s1.Color, (t-s0.Offset)/d)
		}
	}
	return r.Stops[len(r.Stops)-1].Color
}
