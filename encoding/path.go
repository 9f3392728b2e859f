// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import (
	"fmt"
	"math"
)

type Instruction uint8

const (
	// Input paths.
	InstrBeginContour Instruction = iota + 1
	InstrEndOpenContour
	InstrEndClosedContour
	InstrLinearSegment
	InstrQuadraticSegment
	InstrRationalQuadraticSegment
	InstrCubicSegment

	// Regular paths, produced by monotonization and offsetting.
	InstrBeginRegularContour
	InstrEndRegularOpenContour
	InstrEndRegularClosedContour
	InstrDegenerateSegment
	InstrCusp
	InstrInnerCusp
	InstrBeginSegmentPiece
	InstrEndSegmentPiece
	InstrLinearSegmentPiece
	InstrQuadraticSegmentPiece
	InstrRationalQuadraticSegmentPiece
	InstrCubicSegmentPiece

	// Parameters. Their single argument is embedded in the offset.
	InstrInflectionParameter
	InstrDoublePointParameter
	InstrRootDxParameter
	InstrRootDyParameter
	InstrRootDwParameter
	InstrOffsetCuspParameter
	InstrEvoluteCuspParameter
	InstrJoinTangentParameter
	InstrJoinVertexParameter

	// Decorations.
	InstrInitialCap
	InstrTerminalCap
	InstrBackwardInitialCap
	InstrBackwardTerminalCap
	InstrInitialButtCap
	InstrTerminalButtCap
	InstrBackwardInitialButtCap
	InstrBackwardTerminalButtCap
	InstrJoin
	InstrInnerJoin

	// Dashing parameters, also embedded.
	InstrBeginDashParameter
	InstrEndDashParameter
	InstrBackwardBeginDashParameter
	InstrBackwardEndDashParameter

	numInstructions = iota + 1
)

var instructionNames = [numInstructions]string{
	InstrBeginContour:                  "begin_contour",
	InstrEndOpenContour:                "end_open_contour",
	InstrEndClosedContour:              "end_closed_contour",
	InstrLinearSegment:                 "linear_segment",
	InstrQuadraticSegment:              "quadratic_segment",
	InstrRationalQuadraticSegment:      "rational_quadratic_segment",
	InstrCubicSegment:                  "cubic_segment",
	InstrBeginRegularContour:           "begin_regular_contour",
	InstrEndRegularOpenContour:         "end_regular_open_contour",
	InstrEndRegularClosedContour:       "end_regular_closed_contour",
	InstrDegenerateSegment:             "degenerate_segment",
	InstrCusp:                          "cusp",
	InstrInnerCusp:                     "inner_cusp",
	InstrBeginSegmentPiece:             "begin_segment_piece",
	InstrEndSegmentPiece:               "end_segment_piece",
	InstrLinearSegmentPiece:            "linear_segment_piece",
	InstrQuadraticSegmentPiece:         "quadratic_segment_piece",
	InstrRationalQuadraticSegmentPiece: "rational_quadratic_segment_piece",
	InstrCubicSegmentPiece:             "cubic_segment_piece",
	InstrInflectionParameter:           "inflection_parameter",
	InstrDoublePointParameter:          "double_point_parameter",
	InstrRootDxParameter:               "root_dx_parameter",
	InstrRootDyParameter:               "root_dy_parameter",
	InstrRootDwParameter:               "root_dw_parameter",
	InstrOffsetCuspParameter:           "offset_cusp_parameter",
	InstrEvoluteCuspParameter:          "evolute_cusp_parameter",
	InstrJoinTangentParameter:          "join_tangent_parameter",
	InstrJoinVertexParameter:           "join_vertex_parameter",
	InstrInitialCap:                    "initial_cap",
	InstrTerminalCap:                   "terminal_cap",
	InstrBackwardInitialCap:            "backward_initial_cap",
	InstrBackwardTerminalCap:           "backward_terminal_cap",
	InstrInitialButtCap:                "initial_butt_cap",
	InstrTerminalButtCap:               "terminal_butt_cap",
	InstrBackwardInitialButtCap:        "backward_initial_butt_cap",
	InstrBackwardTerminalButtCap:       "backward_terminal_butt_cap",
	InstrJoin:                          "join",
	InstrInnerJoin:                     "inner_join",
	InstrBeginDashParameter:            "begin_dash_parameter",
	InstrEndDashParameter:              "end_dash_parameter",
	InstrBackwardBeginDashParameter:    "backward_begin_dash_parameter",
	InstrBackwardEndDashParameter:      "backward_end_dash_parameter",
}

func (instr Instruction) String() string {
	if instr == 0 || int(instr) >= len(instructionNames) {
		return fmt.Sprintf("Instruction(%d)", uint8(instr))
	}
	return instructionNames[instr]
}

func (instr Instruction) IsInputPath() bool {
	return instr >= InstrBeginContour && instr <= InstrCubicSegment
}

func (instr Instruction) IsRegularPath() bool {
	return instr >= InstrBeginRegularContour && instr <= InstrCubicSegmentPiece
}

func (instr Instruction) IsDecoration() bool {
	return instr >= InstrInitialCap && instr <= InstrInnerJoin
}

// IsParameter reports whether the instruction carries a single embedded
// curve parameter instead of a pool offset.
func (instr Instruction) IsParameter() bool {
	return (instr >= InstrInflectionParameter && instr <= InstrJoinVertexParameter) ||
		(instr >= InstrBeginDashParameter && instr <= InstrBackwardEndDashParameter)
}

// Arity returns the number of scalar arguments a consumer receives for the
// instruction.
func (instr Instruction) Arity() int {
	switch instr {
	case InstrBeginContour, InstrEndOpenContour, InstrEndClosedContour:
		return 2
	case InstrLinearSegment:
		return 4
	case InstrQuadraticSegment:
		return 6
	case InstrRationalQuadraticSegment:
		return 7
	case InstrCubicSegment:
		return 8
	case InstrBeginRegularContour, InstrEndRegularOpenContour, InstrEndRegularClosedContour,
		InstrBeginSegmentPiece, InstrEndSegmentPiece:
		return 4
	case InstrDegenerateSegment, InstrLinearSegmentPiece:
		return 6
	case InstrCusp, InstrInnerCusp, InstrJoin, InstrInnerJoin:
		return 7
	case InstrQuadraticSegmentPiece:
		return 8
	case InstrRationalQuadraticSegmentPiece:
		return 9
	case InstrCubicSegmentPiece:
		return 10
	case InstrInitialCap, InstrTerminalCap, InstrBackwardInitialCap, InstrBackwardTerminalCap,
		InstrInitialButtCap, InstrTerminalButtCap, InstrBackwardInitialButtCap, InstrBackwardTerminalButtCap:
		return 4
	}
	if instr.IsParameter() {
		return 1
	}
	panic(fmt.Sprintf("invalid instruction %d", uint8(instr)))
}

// Offset is the per-instruction record of a [Tape]. For parameter
// instructions it holds the bits of the parameter itself, for everything
// else the index of the instruction's first argument in the data pool.
type Offset uint32

func IndexOffset(i int) Offset {
	return Offset(uint32(int32(i)))
}

func FloatOffset(f float32) Offset {
	return Offset(math.Float32bits(f))
}

func (o Offset) Index() int {
	return int(int32(o))
}

func (o Offset) Float() float32 {
	return math.Float32frombits(uint32(o))
}
