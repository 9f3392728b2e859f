// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package outline

import "honnef.co/go/outline/gfx"

type Config struct {
	// Device space tolerance for shapes that approximate curves. Zero
	// selects gfx.DefaultTolerance.
	Tolerance float64
	// Device space tolerance for outlining strokes. Zero selects
	// gfx.DefaultStrokeTolerance.
	StrokeTolerance float64
	// Estimate makes the builder maintain a flatten estimate for
	// everything it adds.
	Estimate bool
}

func DefaultConfig() Config {
	return Config{
		Tolerance:       gfx.DefaultTolerance,
		StrokeTolerance: gfx.DefaultStrokeTolerance,
		Estimate:        true,
	}
}

func (c Config) tolerance() float64 {
	if c.Tolerance <= 0 {
		return gfx.DefaultTolerance
	}
	return c.Tolerance
}

func (c Config) strokeTolerance() float64 {
	if c.StrokeTolerance <= 0 {
		return gfx.DefaultStrokeTolerance
	}
	return c.StrokeTolerance
}
