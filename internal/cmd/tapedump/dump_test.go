// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/outline/encoding"
	"honnef.co/go/outline/gfx"
	"honnef.co/go/outline/jmath"
	"honnef.co/go/outline/svgpath"
)

func lines(s string) [][]string {
	var out [][]string
	for _, l := range strings.Split(strings.TrimSpace(s), "\n") {
		out = append(out, strings.Fields(l))
	}
	return out
}

func TestDumpTape(t *testing.T) {
	tape, err := svgpath.ParseTape("M0 0 L10 0 Z")
	require.NoError(t, err)

	var buf bytes.Buffer
	dumpTape(&buf, tape)
	assert.Equal(t, [][]string{
		{"0", "begin_contour", "0", "0"},
		{"1", "linear_segment", "0", "0", "10", "0"},
		{"2", "end_closed_contour", "10", "0"},
	}, lines(buf.String()))
}

func TestDumpTapeParameter(t *testing.T) {
	var tape encoding.Tape
	tape.BeginContour(0, 0)
	tape.InflectionParameter(0.25)
	tape.LinearSegment(0, 0, 1, 0)
	tape.EndOpenContour(1, 0)

	var buf bytes.Buffer
	dumpTape(&buf, &tape)
	got := lines(buf.String())
	require.Len(t, got, 4)
	assert.Equal(t, []string{"1", "inflection_parameter", "0.25"}, got[1])
}

func TestParseTransform(t *testing.T) {
	xf, err := parseTransform("")
	require.NoError(t, err)
	assert.True(t, xf.IsIdentity())

	xf, err = parseTransform("2 0 0 2 10,-5")
	require.NoError(t, err)
	assert.Equal(t, jmath.Affine(2, 0, 0, 2, 10, -5), xf)

	_, err = parseTransform("1 0 0 1")
	assert.Error(t, err)
	_, err = parseTransform("1 0 0 1 0 x")
	assert.Error(t, err)
	_, err = parseTransform("1 0 0 1 0 1.5.5")
	assert.Error(t, err)
}

func TestParseRule(t *testing.T) {
	for _, r := range []gfx.WindingRule{gfx.NonZero, gfx.Odd, gfx.Zero, gfx.Even} {
		got, err := parseRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := parseRule("evenodd")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, gfx.RGB8(255, 128, 0), c)

	c, err = parseColor("#00000080")
	require.NoError(t, err)
	assert.Equal(t, gfx.RGBA8{A: 128}, c)

	for _, s := range []string{"", "red", "#fff", "#gg0000"} {
		_, err := parseColor(s)
		assert.Error(t, err, s)
	}
}

func TestLoad(t *testing.T) {
	tape, err := load("M0 0 L1 0", "1 0 0 1 5 5", true)
	require.NoError(t, err)
	assert.Equal(t, "M5 5 L6 5 L5 5 Z", svgpath.Print(tape))

	tape, err = load("M0 0 L1 0", "", false)
	require.NoError(t, err)
	assert.Equal(t, "M0 0 L1 0", svgpath.Print(tape))

	_, err = load("M0 0 X", "", false)
	assert.Error(t, err)
}
