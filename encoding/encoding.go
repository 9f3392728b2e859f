// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package encoding implements the path instruction tape: a flat,
// append-only sequence of instructions that can be replayed forward and
// backward into path consumers.
package encoding

import (
	"slices"

	"honnef.co/go/outline/jmath"
)

// Tape is a path encoded as three parallel streams. Instructions and
// Offsets always have the same length; Data is the pool the offsets point
// into.
//
// Consecutive segments share their endpoint: a segment's first point is
// never stored again but read from the end of the previous instruction's
// arguments.
//
// A Tape must not be modified while it is being iterated.
type Tape struct {
	Instructions []Instruction
	Offsets      []Offset
	Data         []float32
}

var _ Path = (*Tape)(nil)

func (t *Tape) Len() int      { return len(t.Instructions) }
func (t *Tape) IsEmpty() bool { return len(t.Instructions) == 0 }

func (t *Tape) Reset() {
	t.Instructions = t.Instructions[:0]
	t.Offsets = t.Offsets[:0]
	t.Data = t.Data[:0]
}

func (t *Tape) ShrinkToFit() {
	t.Instructions = slices.Clip(t.Instructions)
	t.Offsets = slices.Clip(t.Offsets)
	t.Data = slices.Clip(t.Data)
}

func (t *Tape) Clone() *Tape {
	return &Tape{
		Instructions: slices.Clone(t.Instructions),
		Offsets:      slices.Clone(t.Offsets),
		Data:         slices.Clone(t.Data),
	}
}

// Append appends all of other's instructions to t.
func (t *Tape) Append(other *Tape) {
	base := len(t.Data)
	t.Instructions = append(t.Instructions, other.Instructions...)
	t.Offsets = slices.Grow(t.Offsets, len(other.Offsets))
	for i, o := range other.Offsets {
		if other.Instructions[i].IsParameter() {
			t.Offsets = append(t.Offsets, o)
		} else {
			t.Offsets = append(t.Offsets, IndexOffset(o.Index()+base))
		}
	}
	t.Data = append(t.Data, other.Data...)
}

// Equal reports whether both tapes hold the same instructions with equal
// arguments, as decided by eq. Embedded parameters are compared with eq, too.
func (t *Tape) Equal(other *Tape, eq func(a, b float32) bool) bool {
	if !slices.Equal(t.Instructions, other.Instructions) {
		return false
	}
	if len(t.Offsets) != len(other.Offsets) || len(t.Data) != len(other.Data) {
		return false
	}
	for i, o := range t.Offsets {
		if t.Instructions[i].IsParameter() {
			if !eq(o.Float(), other.Offsets[i].Float()) {
				return false
			}
		} else if o != other.Offsets[i] {
			return false
		}
	}
	for i, v := range t.Data {
		if !eq(v, other.Data[i]) {
			return false
		}
	}
	return true
}

// ApproxEqual is [Tape.Equal] with an absolute tolerance.
func (t *Tape) ApproxEqual(other *Tape, tol float32) bool {
	return t.Equal(other, func(a, b float32) bool {
		return jmath.Abs32(a-b) <= tol
	})
}

func (t *Tape) Iterate(c any)  { Iterate(t, c, 0, t.Len()) }
func (t *Tape) RIterate(c any) { RIterate(t, c, t.Len(), 0) }

// push appends an instruction whose arguments start rewind scalars
// relative to the current end of the pool.
func (t *Tape) push(instr Instruction, rewind int) {
	t.Instructions = append(t.Instructions, instr)
	t.Offsets = append(t.Offsets, IndexOffset(len(t.Data)+rewind))
}

func (t *Tape) pushParameter(instr Instruction, v float32) {
	t.Instructions = append(t.Instructions, instr)
	t.Offsets = append(t.Offsets, FloatOffset(v))
}

func (t *Tape) pushData(vs ...float32) {
	t.Data = append(t.Data, vs...)
}

func (t *Tape) BeginContour(x0, y0 float32) {
	t.push(InstrBeginContour, 0)
	t.pushData(x0, y0)
}

func (t *Tape) EndOpenContour(x0, y0 float32) {
	t.push(InstrEndOpenContour, -2)
}

func (t *Tape) EndClosedContour(x0, y0 float32) {
	t.push(InstrEndClosedContour, -2)
}

func (t *Tape) LinearSegment(x0, y0, x1, y1 float32) {
	t.push(InstrLinearSegment, -2)
	t.pushData(x1, y1)
}

func (t *Tape) QuadraticSegment(x0, y0, x1, y1, x2, y2 float32) {
	t.push(InstrQuadraticSegment, -2)
	t.pushData(x1, y1, x2, y2)
}

func (t *Tape) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float32) {
	t.push(InstrRationalQuadraticSegment, -2)
	t.pushData(x1, y1, w1, x2, y2)
}

func (t *Tape) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	t.push(InstrCubicSegment, -2)
	t.pushData(x1, y1, x2, y2, x3, y3)
}

// BeginRegularContour stores nothing. Its arguments are the leading point
// and tangent of the instruction that follows it.
func (t *Tape) BeginRegularContour(xi, yi, dxi, dyi float32) {
	t.push(InstrBeginRegularContour, 0)
}

// EndRegularOpenContour stores nothing. Its arguments are the trailing
// tangent and point of the instruction that precedes it.
func (t *Tape) EndRegularOpenContour(dxf, dyf, xf, yf float32) {
	t.push(InstrEndRegularOpenContour, -4)
}

func (t *Tape) EndRegularClosedContour(dxf, dyf, xf, yf float32) {
	t.push(InstrEndRegularClosedContour, -4)
}

func (t *Tape) DegenerateSegment(xi, yi, dx, dy, xf, yf float32) {
	t.push(InstrDegenerateSegment, 0)
	t.pushData(xi, yi, dx, dy, xf, yf)
}

func (t *Tape) Cusp(dxi, dyi, x, y, dxf, dyf, w float32) {
	t.push(InstrCusp, 0)
	t.pushData(dxi, dyi, x, y, dxf, dyf, w)
}

func (t *Tape) InnerCusp(dxi, dyi, x, y, dxf, dyf, w float32) {
	t.push(InstrInnerCusp, 0)
	t.pushData(dxi, dyi, x, y, dxf, dyf, w)
}

func (t *Tape) BeginSegmentPiece(xi, yi, dxi, dyi float32) {
	t.push(InstrBeginSegmentPiece, 0)
	t.pushData(xi, yi, dxi, dyi)
}

func (t *Tape) EndSegmentPiece(dxf, dyf, xf, yf float32) {
	t.push(InstrEndSegmentPiece, 0)
	t.pushData(dxf, dyf, xf, yf)
}

func (t *Tape) LinearSegmentPiece(ti, tf, x0, y0, x1, y1 float32) {
	t.push(InstrLinearSegmentPiece, 0)
	t.pushData(ti, tf, x0, y0, x1, y1)
}

func (t *Tape) QuadraticSegmentPiece(ti, tf, x0, y0, x1, y1, x2, y2 float32) {
	t.push(InstrQuadraticSegmentPiece, 0)
	t.pushData(ti, tf, x0, y0, x1, y1, x2, y2)
}

func (t *Tape) RationalQuadraticSegmentPiece(ti, tf, x0, y0, x1, y1, w1, x2, y2 float32) {
	t.push(InstrRationalQuadraticSegmentPiece, 0)
	t.pushData(ti, tf, x0, y0, x1, y1, w1, x2, y2)
}

func (t *Tape) CubicSegmentPiece(ti, tf, x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	t.push(InstrCubicSegmentPiece, 0)
	t.pushData(ti, tf, x0, y0, x1, y1, x2, y2, x3, y3)
}

func (t *Tape) InitialCap(x, y, dx, dy float32) {
	t.push(InstrInitialCap, 0)
	t.pushData(x, y, dx, dy)
}

func (t *Tape) TerminalCap(dx, dy, x, y float32) {
	t.push(InstrTerminalCap, 0)
	t.pushData(dx, dy, x, y)
}

func (t *Tape) BackwardInitialCap(x, y, dx, dy float32) {
	t.push(InstrBackwardInitialCap, 0)
	t.pushData(x, y, dx, dy)
}

func (t *Tape) BackwardTerminalCap(dx, dy, x, y float32) {
	t.push(InstrBackwardTerminalCap, 0)
	t.pushData(dx, dy, x, y)
}

func (t *Tape) InitialButtCap(x, y, dx, dy float32) {
	t.push(InstrInitialButtCap, 0)
	t.pushData(x, y, dx, dy)
}

func (t *Tape) TerminalButtCap(dx, dy, x, y float32) {
	t.push(InstrTerminalButtCap, 0)
	t.pushData(dx, dy, x, y)
}

func (t *Tape) BackwardInitialButtCap(x, y, dx, dy float32) {
	t.push(InstrBackwardInitialButtCap, 0)
	t.pushData(x, y, dx, dy)
}

func (t *Tape) BackwardTerminalButtCap(dx, dy, x, y float32) {
	t.push(InstrBackwardTerminalButtCap, 0)
	t.pushData(dx, dy, x, y)
}

func (t *Tape) Join(dx0, dy0, x, y, dx1, dy1, w float32) {
	t.push(InstrJoin, 0)
	t.pushData(dx0, dy0, x, y, dx1, dy1, w)
}

func (t *Tape) InnerJoin(dx0, dy0, x, y, dx1, dy1, w float32) {
	t.push(InstrInnerJoin, 0)
	t.pushData(dx0, dy0, x, y, dx1, dy1, w)
}

func (t *Tape) InflectionParameter(v float32)  { t.pushParameter(InstrInflectionParameter, v) }
func (t *Tape) DoublePointParameter(v float32) { t.pushParameter(InstrDoublePointParameter, v) }
func (t *Tape) RootDxParameter(v float32)      { t.pushParameter(InstrRootDxParameter, v) }
func (t *Tape) RootDyParameter(v float32)      { t.pushParameter(InstrRootDyParameter, v) }
func (t *Tape) RootDwParameter(v float32)      { t.pushParameter(InstrRootDwParameter, v) }
func (t *Tape) OffsetCuspParameter(v float32)  { t.pushParameter(InstrOffsetCuspParameter, v) }
func (t *Tape) EvoluteCuspParameter(v float32) { t.pushParameter(InstrEvoluteCuspParameter, v) }
func (t *Tape) JoinTangentParameter(v float32) { t.pushParameter(InstrJoinTangentParameter, v) }
func (t *Tape) JoinVertexParameter(v float32)  { t.pushParameter(InstrJoinVertexParameter, v) }
func (t *Tape) BeginDashParameter(v float32)   { t.pushParameter(InstrBeginDashParameter, v) }
func (t *Tape) EndDashParameter(v float32)     { t.pushParameter(InstrEndDashParameter, v) }

func (t *Tape) BackwardBeginDashParameter(v float32) {
	t.pushParameter(InstrBackwardBeginDashParameter, v)
}

func (t *Tape) BackwardEndDashParameter(v float32) {
	t.pushParameter(InstrBackwardEndDashParameter, v)
}
