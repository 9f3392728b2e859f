// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import "honnef.co/go/outline/jmath"

// Iterate replays the instructions in [first, last) into c, in order. c may
// implement any subset of the consumer families; instructions of other
// families are skipped. Out of range bounds are clamped.
func Iterate(t *Tape, c any, first, last int) {
	n := t.Len()
	first = jmath.Clamp(first, 0, n)
	last = jmath.Clamp(last, first, n)
	s := newSink(c)
	for index := first; index < last; index++ {
		s.forward(t, index)
	}
}

func (s *sink) forward(t *Tape, index int) {
	o := t.Offsets[index]
	instr := t.Instructions[index]
	if instr.IsParameter() {
		s.parameter(instr, o.Float())
		return
	}
	d := t.Data[o.Index():]
	switch instr {
	case InstrBeginContour:
		s.input.BeginContour(d[0], d[1])
	case InstrEndOpenContour:
		s.input.EndOpenContour(d[0], d[1])
	case InstrEndClosedContour:
		s.input.EndClosedContour(d[0], d[1])
	case InstrLinearSegment:
		s.input.LinearSegment(d[0], d[1], d[2], d[3])
	case InstrQuadraticSegment:
		s.input.QuadraticSegment(d[0], d[1], d[2], d[3], d[4], d[5])
	case InstrRationalQuadraticSegment:
		s.input.RationalQuadraticSegment(d[0], d[1], d[2], d[3], d[4], d[5], d[6])
	case InstrCubicSegment:
		s.input.CubicSegment(d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7])

	case InstrBeginRegularContour:
		s.reg.BeginRegularContour(d[0], d[1], d[2], d[3])
	case InstrEndRegularOpenContour:
		s.reg.EndRegularOpenContour(d[0], d[1], d[2], d[3])
	case InstrEndRegularClosedContour:
		s.reg.EndRegularClosedContour(d[0], d[1], d[2], d[3])
	case InstrDegenerateSegment:
		s.reg.DegenerateSegment(d[0], d[1], d[2], d[3], d[4], d[5])
	case InstrCusp:
		s.reg.Cusp(d[0], d[1], d[2], d[3], d[4], d[5], d[6])
	case InstrInnerCusp:
		s.reg.InnerCusp(d[0], d[1], d[2], d[3], d[4], d[5], d[6])
	case InstrBeginSegmentPiece:
		s.reg.BeginSegmentPiece(d[0], d[1], d[2], d[3])
	case InstrEndSegmentPiece:
		s.reg.EndSegmentPiece(d[0], d[1], d[2], d[3])
	case InstrLinearSegmentPiece:
		s.reg.LinearSegmentPiece(d[0], d[1], d[2], d[3], d[4], d[5])
	case InstrQuadraticSegmentPiece:
		s.reg.QuadraticSegmentPiece(d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7])
	case InstrRationalQuadraticSegmentPiece:
		s.reg.RationalQuadraticSegmentPiece(d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8])
	case InstrCubicSegmentPiece:
		s.reg.CubicSegmentPiece(d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8], d[9])

	case InstrInitialCap:
		s.deco.InitialCap(d[0], d[1], d[2], d[3])
	case InstrTerminalCap:
		s.deco.TerminalCap(d[0], d[1], d[2], d[3])
	case InstrBackwardInitialCap:
		s.deco.BackwardInitialCap(d[0], d[1], d[2], d[3])
	case InstrBackwardTerminalCap:
		s.deco.BackwardTerminalCap(d[0], d[1], d[2], d[3])
	case InstrInitialButtCap:
		s.deco.InitialButtCap(d[0], d[1], d[2], d[3])
	case InstrTerminalButtCap:
		s.deco.TerminalButtCap(d[0], d[1], d[2], d[3])
	case InstrBackwardInitialButtCap:
		s.deco.BackwardInitialButtCap(d[0], d[1], d[2], d[3])
	case InstrBackwardTerminalButtCap:
		s.deco.BackwardTerminalButtCap(d[0], d[1], d[2], d[3])
	case InstrJoin:
		s.deco.Join(d[0], d[1], d[2], d[3], d[4], d[5], d[6])
	case InstrInnerJoin:
		s.deco.InnerJoin(d[0], d[1], d[2], d[3], d[4], d[5], d[6])
	default:
		panic("invalid instruction")
	}
}

func (s *sink) parameter(instr Instruction, v float32) {
	switch instr {
	case InstrInflectionParameter:
		s.cubic.InflectionParameter(v)
	case InstrDoublePointParameter:
		s.cubic.DoublePointParameter(v)
	case InstrRootDxParameter:
		s.mono.RootDxParameter(v)
	case InstrRootDyParameter:
		s.mono.RootDyParameter(v)
	case InstrRootDwParameter:
		s.mono.RootDwParameter(v)
	case InstrOffsetCuspParameter:
		s.offset.OffsetCuspParameter(v)
	case InstrEvoluteCuspParameter:
		s.offset.EvoluteCuspParameter(v)
	case InstrJoinTangentParameter:
		s.join.JoinTangentParameter(v)
	case InstrJoinVertexParameter:
		s.join.JoinVertexParameter(v)
	case InstrBeginDashParameter:
		s.dash.BeginDashParameter(v)
	case InstrEndDashParameter:
		s.dash.EndDashParameter(v)
	case InstrBackwardBeginDashParameter:
		s.dash.BackwardBeginDashParameter(v)
	case InstrBackwardEndDashParameter:
		s.dash.BackwardEndDashParameter(v)
	default:
		panic("invalid instruction")
	}
}
