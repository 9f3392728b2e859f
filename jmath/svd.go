// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package jmath

import "math"

// SVD2 decomposes the row-major 2x2 matrix [a b; c d] into
// Rotate(phi) * diag(sx, sy) * Rotate(theta), with sx >= |sy|.
//
// sy is negative when the matrix flips orientation.
func SVD2(a, b, c, d float64) (phi, sx, sy, theta float64) {
	e := (a + d) / 2
	f := (a - d) / 2
	g := (c + b) / 2
	h := (c - b) / 2
	q := math.Hypot(e, h)
	r := math.Hypot(f, g)
	a1 := math.Atan2(g, f)
	a2 := math.Atan2(h, e)
	return (a2 + a1) / 2, q + r, q - r, (a2 - a1) / 2
}
