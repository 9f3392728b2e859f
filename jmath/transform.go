// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package jmath

import (
	"math"

	"golang.org/x/image/math/f64"
	"honnef.co/go/curve"
)

// Transform is a projective transformation of the plane, stored as a
// row-major 3x3 matrix acting on column vectors (x, y, w).
type Transform struct {
	M f64.Mat3
}

var Identity = Transform{
	M: f64.Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	},
}

// Affine returns the affine transformation
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
func Affine(a, b, c, d, e, f float64) Transform {
	return Transform{M: f64.Mat3{
		a, c, e,
		b, d, f,
		0, 0, 1,
	}}
}

func Translate(tx, ty float64) Transform { return Affine(1, 0, 0, 1, tx, ty) }
func Scale(sx, sy float64) Transform     { return Affine(sx, 0, 0, sy, 0, 0) }

func Rotate(rad float64) Transform {
	s, c := math.Sincos(rad)
	return Affine(c, s, -s, c, 0, 0)
}

func TransformFromAffine(aff curve.Affine) Transform {
	c := aff.Coefficients()
	return Affine(c[0], c[1], c[2], c[3], c[4], c[5])
}

// Mul returns the composition t∘other, which applies other first.
func (t Transform) Mul(other Transform) Transform {
	var out f64.Mat3
	a, b := &t.M, &other.M
	for i := range 3 {
		for j := range 3 {
			out[i*3+j] = a[i*3+0]*b[0*3+j] + a[i*3+1]*b[1*3+j] + a[i*3+2]*b[2*3+j]
		}
	}
	return Transform{M: out}
}

// Transformed returns t followed by other.
func (t Transform) Transformed(other Transform) Transform {
	return other.Mul(t)
}

// Apply transforms the homogeneous point (x, y, w).
func (t Transform) Apply(x, y, w float32) (float32, float32, float32) {
	m := &t.M
	fx, fy, fw := float64(x), float64(y), float64(w)
	return float32(m[0]*fx + m[1]*fy + m[2]*fw),
		float32(m[3]*fx + m[4]*fy + m[5]*fw),
		float32(m[6]*fx + m[7]*fy + m[8]*fw)
}

// ApplyPoint transforms the Euclidean point (x, y).
func (t Transform) ApplyPoint(x, y float32) (float32, float32) {
	x, y, w := t.Apply(x, y, 1)
	if w != 1 && w != 0 {
		return x / w, y / w
	}
	return x, y
}

// ApplyVector transforms a direction, ignoring translation and
// perspective.
func (t Transform) ApplyVector(dx, dy float32) (float32, float32) {
	m := &t.M
	fx, fy := float64(dx), float64(dy)
	return float32(m[0]*fx + m[1]*fy), float32(m[3]*fx + m[4]*fy)
}

func (t Transform) Det() float64 {
	m := &t.M
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse transformation. Singular transformations
// return their adjugate, which is the inverse up to a projective scale
// where one exists and otherwise collapses the plane.
func (t Transform) Inverse() Transform {
	m := &t.M
	adj := f64.Mat3{
		m[4]*m[8] - m[5]*m[7], m[2]*m[7] - m[1]*m[8], m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8], m[0]*m[8] - m[2]*m[6], m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6], m[1]*m[6] - m[0]*m[7], m[0]*m[4] - m[1]*m[3],
	}
	det := t.Det()
	if math.Abs(det) <= Epsilon {
		return Transform{M: adj}
	}
	for i := range adj {
		adj[i] /= det
	}
	return Transform{M: adj}
}

func (t Transform) IsIdentity() bool {
	return t == Identity
}

func (t Transform) IsAffine() bool {
	return t.M[6] == 0 && t.M[7] == 0 && t.M[8] == 1
}

// Coefficients returns the affine part of t in the order a b c d e f used by
// [Affine].
func (t Transform) Coefficients() [6]float64 {
	m := &t.M
	return [6]float64{m[0], m[3], m[1], m[4], m[2], m[5]}
}

// ScaleFactor returns an isotropic scale factor of the linear part of t, used to
// turn device-space tolerances into user-space ones.
func (t Transform) ScaleFactor() float64 {
	m := &t.M
	v1x := m[0] + m[4]
	v2x := m[0] - m[4]
	v1y := m[3] - m[1]
	v2y := m[3] + m[1]
	return 0.5 * (math.Sqrt(v1x*v1x+v1y*v1y) + math.Sqrt(v2x*v2x+v2y*v2y))
}
