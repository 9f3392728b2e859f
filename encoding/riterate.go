// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import "honnef.co/go/outline/jmath"

// RIterate replays the instructions in [first, last) into c in reverse,
// emitting the path that traces the same geometry from the opposite end.
// Segments have their control points reversed, tangents are negated,
// parameters t become 1-t, and paired instructions swap roles (begin and end
// markers, cusps and inner cusps, joins and inner joins, forward and
// backward caps and dashes).
//
// Parameters that precede a geometric instruction are emitted before its
// reversed form, so they keep preceding it. A run of parameters that no
// geometric instruction in range follows is emitted as well, reversed and
// with 1-t, rather than dropped.
func RIterate(t *Tape, c any, last, first int) {
	n := t.Len()
	first = jmath.Clamp(first, 0, n)
	last = jmath.Clamp(last, first, n)
	s := newSink(c)
	open := true
	index := last - 1
	for index >= first {
		if t.Instructions[index].IsParameter() {
			// Parameters that no geometric instruction in range follows.
			index -= s.backwardParameters(t, first, index+1)
			continue
		}
		skip := s.backwardParameters(t, first, index)
		s.backward(t, index, &open)
		index -= skip + 1
	}
}

// backwardParameters emits, in reverse, the run of parameters that ends
// just before last, and returns its length.
func (s *sink) backwardParameters(t *Tape, first, last int) int {
	index := last - 1
	for ; index >= first; index-- {
		instr := t.Instructions[index]
		if !instr.IsParameter() {
			break
		}
		v := 1 - t.Offsets[index].Float()
		switch instr {
		case InstrBeginDashParameter:
			s.dash.BackwardEndDashParameter(v)
		case InstrEndDashParameter:
			s.dash.BackwardBeginDashParameter(v)
		case InstrBackwardBeginDashParameter:
			s.dash.EndDashParameter(v)
		case InstrBackwardEndDashParameter:
			s.dash.BeginDashParameter(v)
		default:
			s.parameter(instr, v)
		}
	}
	return last - 1 - index
}

func (s *sink) backward(t *Tape, index int, open *bool) {
	d := t.Data[t.Offsets[index].Index():]
	switch t.Instructions[index] {
	case InstrBeginContour:
		if *open {
			s.input.EndOpenContour(d[0], d[1])
		} else {
			s.input.EndClosedContour(d[0], d[1])
		}
	case InstrEndOpenContour:
		*open = true
		s.input.BeginContour(d[0], d[1])
	case InstrEndClosedContour:
		*open = false
		s.input.BeginContour(d[0], d[1])
	case InstrLinearSegment:
		s.input.LinearSegment(d[2], d[3], d[0], d[1])
	case InstrQuadraticSegment:
		s.input.QuadraticSegment(d[4], d[5], d[2], d[3], d[0], d[1])
	case InstrRationalQuadraticSegment:
		s.input.RationalQuadraticSegment(d[5], d[6], d[2], d[3], d[4], d[0], d[1])
	case InstrCubicSegment:
		s.input.CubicSegment(d[6], d[7], d[4], d[5], d[2], d[3], d[0], d[1])

	case InstrBeginRegularContour:
		if *open {
			s.reg.EndRegularOpenContour(-d[2], -d[3], d[0], d[1])
		} else {
			s.reg.EndRegularClosedContour(-d[2], -d[3], d[0], d[1])
		}
	case InstrEndRegularOpenContour:
		*open = true
		s.reg.BeginRegularContour(d[2], d[3], -d[0], -d[1])
	case InstrEndRegularClosedContour:
		*open = false
		s.reg.BeginRegularContour(d[2], d[3], -d[0], -d[1])
	case InstrDegenerateSegment:
		s.reg.DegenerateSegment(d[4], d[5], -d[2], -d[3], d[0], d[1])
	case InstrCusp:
		s.reg.InnerCusp(-d[4], -d[5], d[2], d[3], -d[0], -d[1], d[6])
	case InstrInnerCusp:
		s.reg.Cusp(-d[4], -d[5], d[2], d[3], -d[0], -d[1], d[6])
	case InstrBeginSegmentPiece:
		s.reg.EndSegmentPiece(-d[2], -d[3], d[0], d[1])
	case InstrEndSegmentPiece:
		s.reg.BeginSegmentPiece(d[2], d[3], -d[0], -d[1])
	case InstrLinearSegmentPiece:
		s.reg.LinearSegmentPiece(1-d[1], 1-d[0], d[4], d[5], d[2], d[3])
	case InstrQuadraticSegmentPiece:
		s.reg.QuadraticSegmentPiece(1-d[1], 1-d[0], d[6], d[7], d[4], d[5], d[2], d[3])
	case InstrRationalQuadraticSegmentPiece:
		s.reg.RationalQuadraticSegmentPiece(1-d[1], 1-d[0], d[7], d[8], d[4], d[5], d[6], d[2], d[3])
	case InstrCubicSegmentPiece:
		s.reg.CubicSegmentPiece(1-d[1], 1-d[0], d[8], d[9], d[6], d[7], d[4], d[5], d[2], d[3])

	case InstrInitialCap:
		s.deco.BackwardTerminalCap(-d[2], -d[3], d[0], d[1])
	case InstrTerminalCap:
		s.deco.BackwardInitialCap(d[2], d[3], -d[0], -d[1])
	case InstrBackwardInitialCap:
		s.deco.TerminalCap(-d[2], -d[3], d[0], d[1])
	case InstrBackwardTerminalCap:
		s.deco.InitialCap(d[2], d[3], -d[0], -d[1])
	case InstrInitialButtCap:
		s.deco.BackwardTerminalButtCap(-d[2], -d[3], d[0], d[1])
	case InstrTerminalButtCap:
		s.deco.BackwardInitialButtCap(d[2], d[3], -d[0], -d[1])
	case InstrBackwardInitialButtCap:
		s.deco.TerminalButtCap(-d[2], -d[3], d[0], d[1])
	case InstrBackwardTerminalButtCap:
		s.deco.InitialButtCap(d[2], d[3], -d[0], -d[1])
	case InstrJoin:
		s.deco.InnerJoin(-d[4], -d[5], d[2], d[3], -d[0], -d[1], d[6])
	case InstrInnerJoin:
		s.deco.Join(-d[4], -d[5], d[2], d[3], -d[0], -d[1], d[6])
	default:
		panic("invalid instruction")
	}
}
