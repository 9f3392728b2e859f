// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
	"honnef.co/go/outline/encoding"
	"honnef.co/go/outline/gfx"
	"honnef.co/go/outline/jmath"
)

// dumpTape writes one line per instruction: its index, name, and
// arguments.
func dumpTape(w io.Writer, t *encoding.Tape) {
	for i, instr := range t.Instructions {
		fmt.Fprintf(w, "%4d %s", i, instr)
		o := t.Offsets[i]
		if instr.IsParameter() {
			fmt.Fprintf(w, " %g", o.Float())
		} else {
			for _, v := range t.Data[o.Index() : o.Index()+instr.Arity()] {
				fmt.Fprintf(w, " %g", v)
			}
		}
		fmt.Fprintln(w)
	}
}

// parseTransform parses the six coefficients of an affine transform,
// separated by spaces or commas. The empty string is the identity.
func parseTransform(s string) (jmath.Transform, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) == 0 {
		return jmath.Identity, nil
	}
	if len(fields) != 6 {
		return jmath.Transform{}, fmt.Errorf("transform needs 6 coefficients, got %d", len(fields))
	}
	var c [6]float64
	for i, f := range fields {
		v, n := strconv.ParseFloat([]byte(f))
		if n != len(f) {
			return jmath.Transform{}, fmt.Errorf("invalid transform coefficient %q", f)
		}
		c[i] = v
	}
	return jmath.Affine(c[0], c[1], c[2], c[3], c[4], c[5]), nil
}

func parseRule(s string) (gfx.WindingRule, error) {
	for _, r := range []gfx.WindingRule{gfx.NonZero, gfx.Odd, gfx.Zero, gfx.Even} {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown winding rule %q", s)
}

// parseColor parses #rrggbb and #rrggbbaa.
func parseColor(s string) (gfx.RGBA8, error) {
	var r, g, b, a uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return gfx.RGBA8{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		a = 255
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return gfx.RGBA8{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	default:
		return gfx.RGBA8{}, fmt.Errorf("invalid color %q", s)
	}
	return gfx.RGBA8{R: gfx.Unorm8(r), G: gfx.Unorm8(g), B: gfx.Unorm8(b), A: gfx.Unorm8(a)}, nil
}
