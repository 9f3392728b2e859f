// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package jmath contains the small amount of numerics shared by the path
// tape, the scene and the output drivers.
package jmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

const Epsilon = 1e-12

// SmallestNormal32 is the smallest positive normal float32. Values below it
// are denormals and count as zero.
const SmallestNormal32 = 0x1p-126

func Abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

// IsAlmostZero32 reports whether f is zero or a denormal.
func IsAlmostZero32(f float32) bool {
	return Abs32(f) < SmallestNormal32
}

// IsAlmostEqual32 reports whether a and b are within ulp units in the last
// place of each other, relative to their magnitude.
func IsAlmostEqual32(a, b float32, ulp int) bool {
	const eps32 = 0x1p-23
	d := a - b
	return Abs32(d) <= eps32*Abs32(a+b)*float32(ulp) || IsAlmostZero32(d)
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

func AlignUp[T constraints.Integer](len T, alignment T) T {
	return (len + alignment - 1) & -alignment
}

func Deg(rad float64) float64 { return rad * 180 / math.Pi }
func Rad(deg float64) float64 { return deg * math.Pi / 180 }
