// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/outline/jmath"
)

func triangle() *Tape {
	var t Tape
	t.BeginContour(0, 0)
	t.LinearSegment(0, 0, 10, 0)
	t.LinearSegment(10, 0, 5, 10)
	t.LinearSegment(5, 10, 0, 0)
	t.EndClosedContour(0, 0)
	return &t
}

func exact(a, b float32) bool { return a == b }

func TestTriangleForward(t *testing.T) {
	tape := triangle()
	assert.Equal(t, 5, tape.Len())
	assert.Len(t, tape.Data, 8)

	var r recorder
	tape.Iterate(&r)
	assert.Equal(t, []string{
		"begin_contour(0 0)",
		"linear_segment(0 0 10 0)",
		"linear_segment(10 0 5 10)",
		"linear_segment(5 10 0 0)",
		"end_closed_contour(0 0)",
	}, r.calls)
}

func TestTriangleBackward(t *testing.T) {
	var r recorder
	triangle().RIterate(&r)
	assert.Equal(t, []string{
		"begin_contour(0 0)",
		"linear_segment(0 0 5 10)",
		"linear_segment(5 10 10 0)",
		"linear_segment(10 0 0 0)",
		"end_closed_contour(0 0)",
	}, r.calls)
}

func TestOpenContourBackward(t *testing.T) {
	var tape Tape
	tape.BeginContour(0, 0)
	tape.QuadraticSegment(0, 0, 1, 2, 3, 4)
	tape.EndOpenContour(3, 4)

	var r recorder
	tape.RIterate(&r)
	assert.Equal(t, []string{
		"begin_contour(3 4)",
		"quadratic_segment(3 4 1 2 0 0)",
		"end_open_contour(0 0)",
	}, r.calls)
}

func TestSharedEndpoints(t *testing.T) {
	const n = 10
	var tape Tape
	tape.BeginContour(0, 0)
	for i := range n {
		tape.LinearSegment(float32(i), 0, float32(i+1), 0)
	}
	tape.EndOpenContour(n, 0)
	assert.Len(t, tape.Data, 2+2*n)
	assert.Equal(t, n+2, tape.Len())

	var r recorder
	tape.Iterate(&r)
	assert.Equal(t, "linear_segment(4 0 5 0)", r.calls[5])
	assert.Equal(t, "end_open_contour(10 0)", r.calls[n+1])
}

func TestRoundTrip(t *testing.T) {
	var tape Tape
	tape.BeginContour(1, 2)
	tape.LinearSegment(1, 2, 3, 4)
	tape.QuadraticSegment(3, 4, 5, 6, 7, 8)
	tape.RationalQuadraticSegment(7, 8, 9, 10, 0.5, 11, 12)
	tape.CubicSegment(11, 12, 13, 14, 15, 16, 17, 18)
	tape.EndOpenContour(17, 18)

	var copied Tape
	tape.Iterate(&copied)
	assert.True(t, tape.Equal(&copied, exact))

	var r recorder
	copied.Iterate(&r)
	assert.Equal(t, "rational_quadratic_segment(7 8 9 10 0.5 11 12)", r.calls[3])
	assert.Equal(t, "cubic_segment(11 12 13 14 15 16 17 18)", r.calls[4])
}

func doubleReverse(tape *Tape) *Tape {
	var once, twice Tape
	tape.RIterate(&once)
	once.RIterate(&twice)
	return &twice
}

func TestDoubleReversalInput(t *testing.T) {
	var tape Tape
	tape.BeginContour(1, 2)
	tape.LinearSegment(1, 2, 3, 4)
	tape.RationalQuadraticSegment(3, 4, 5, 6, 0.5, 7, 8)
	tape.CubicSegment(7, 8, 9, 10, 11, 12, 13, 14)
	tape.EndClosedContour(13, 14)
	tape.BeginContour(20, 20)
	tape.QuadraticSegment(20, 20, 21, 22, 23, 24)
	tape.EndOpenContour(23, 24)

	assert.True(t, tape.Equal(doubleReverse(&tape), exact))
}

func regularTape() *Tape {
	var tape Tape
	tape.BeginRegularContour(0, 0, 1, 0)
	tape.BeginSegmentPiece(0, 0, 1, 0)
	tape.InflectionParameter(0.25)
	tape.LinearSegmentPiece(0, 1, 0, 0, 2, 0)
	tape.EndSegmentPiece(1, 0, 2, 0)
	tape.Cusp(1, 0, 2, 0, 0, 1, 3)
	tape.BeginSegmentPiece(2, 0, 0, 1)
	tape.CubicSegmentPiece(0.25, 0.75, 2, 0, 2, 1, 3, 2, 4, 4)
	tape.EndSegmentPiece(1, 1, 4, 4)
	tape.DegenerateSegment(4, 4, 1, 1, 4, 4)
	tape.EndRegularOpenContour(1, 1, 4, 4)
	return &tape
}

func TestRegularBeginEndShareData(t *testing.T) {
	var r recorder
	regularTape().Iterate(&r)
	assert.Equal(t, "begin_regular_contour(0 0 1 0)", r.calls[0])
	assert.Equal(t, "end_regular_open_contour(1 1 4 4)", r.calls[len(r.calls)-1])
}

func TestDoubleReversalRegular(t *testing.T) {
	tape := regularTape()
	assert.True(t, tape.Equal(doubleReverse(tape), exact))
}

func TestRegularBackward(t *testing.T) {
	var r recorder
	regularTape().RIterate(&r)
	assert.Equal(t, []string{
		"begin_regular_contour(4 4 -1 -1)",
		"degenerate_segment(4 4 -1 -1 4 4)",
		"begin_segment_piece(4 4 -1 -1)",
		"cubic_segment_piece(0.25 0.75 4 4 3 2 2 1 2 0)",
		"end_segment_piece(-0 -1 2 0)",
		"inner_cusp(-0 -1 2 0 -1 -0 3)",
		"begin_segment_piece(2 0 -1 -0)",
		"inflection_parameter(0.75)",
		"linear_segment_piece(0 1 2 0 0 0)",
		"end_segment_piece(-1 -0 0 0)",
		"end_regular_open_contour(-1 -0 0 0)",
	}, r.calls)
}

func TestDoubleReversalDecorated(t *testing.T) {
	var tape Tape
	tape.InitialCap(0, 0, 1, 0)
	tape.InitialButtCap(0, 0, 1, 0)
	tape.Join(1, 0, 2, 0, 0, 1, 5)
	tape.InnerJoin(0, 1, 2, 3, -1, 0, 6)
	tape.TerminalCap(-1, 0, 1, 3)
	tape.TerminalButtCap(-1, 0, 1, 3)
	tape.BackwardInitialCap(1, 3, 1, 0)
	tape.BackwardTerminalButtCap(0, -1, 0, 0)

	assert.True(t, tape.Equal(doubleReverse(&tape), exact))

	var r recorder
	tape.RIterate(&r)
	assert.Equal(t, "initial_butt_cap(0 0 -0 1)", r.calls[0])
	assert.Equal(t, "terminal_cap(-1 -0 1 3)", r.calls[1])
	assert.Equal(t, "inner_join(-0 -1 2 0 -1 -0 5)", r.calls[5])
}

func TestDoubleReversalParameters(t *testing.T) {
	var tape Tape
	tape.BeginRegularContour(0, 0, 1, 0)
	tape.BeginSegmentPiece(0, 0, 1, 0)
	tape.RootDxParameter(0.25)
	tape.RootDyParameter(0.5)
	tape.RootDwParameter(0.125)
	tape.DoublePointParameter(0.375)
	tape.OffsetCuspParameter(0.625)
	tape.EvoluteCuspParameter(0.875)
	tape.JoinTangentParameter(0.25)
	tape.JoinVertexParameter(0.75)
	tape.BeginDashParameter(0.25)
	tape.EndDashParameter(0.5)
	tape.BackwardBeginDashParameter(0.125)
	tape.BackwardEndDashParameter(0.375)
	tape.QuadraticSegmentPiece(0, 1, 0, 0, 1, 1, 2, 0)
	tape.EndSegmentPiece(1, -1, 2, 0)
	tape.EndRegularClosedContour(1, -1, 2, 0)

	assert.True(t, tape.Equal(doubleReverse(&tape), exact))

	var r recorder
	tape.RIterate(&r)
	assert.Equal(t, []string{
		"begin_regular_contour(2 0 -1 1)",
		"begin_segment_piece(2 0 -1 1)",
		"begin_dash_parameter(0.625)",
		"end_dash_parameter(0.875)",
		"backward_begin_dash_parameter(0.5)",
		"backward_end_dash_parameter(0.75)",
		"join_vertex_parameter(0.25)",
		"join_tangent_parameter(0.75)",
		"evolute_cusp_parameter(0.125)",
		"offset_cusp_parameter(0.375)",
		"double_point_parameter(0.625)",
		"root_dw_parameter(0.875)",
		"root_dy_parameter(0.5)",
		"root_dx_parameter(0.75)",
		"quadratic_segment_piece(0 1 2 0 1 1 0 0)",
		"end_segment_piece(-1 -0 0 0)",
		"end_regular_closed_contour(-1 -0 0 0)",
	}, r.calls)
}

func TestTrailingParameters(t *testing.T) {
	var tape Tape
	tape.BeginContour(0, 0)
	tape.LinearSegment(0, 0, 1, 0)
	tape.EndOpenContour(1, 0)
	tape.InflectionParameter(0.25)
	tape.BeginDashParameter(0.5)

	var r recorder
	tape.RIterate(&r)
	assert.Equal(t, []string{
		"backward_end_dash_parameter(0.5)",
		"inflection_parameter(0.75)",
		"begin_contour(1 0)",
		"linear_segment(1 0 0 0)",
		"end_open_contour(0 0)",
	}, r.calls)
}

func TestRangeClamping(t *testing.T) {
	tape := triangle()

	var all, clamped recorder
	tape.Iterate(&all)
	Iterate(tape, &clamped, -5, 100)
	assert.Equal(t, all.calls, clamped.calls)

	var empty recorder
	Iterate(tape, &empty, 3, 1)
	assert.Empty(t, empty.calls)

	var part recorder
	Iterate(tape, &part, 1, 3)
	assert.Equal(t, []string{
		"linear_segment(0 0 10 0)",
		"linear_segment(10 0 5 10)",
	}, part.calls)

	var rall, rclamped recorder
	tape.RIterate(&rall)
	RIterate(tape, &rclamped, 100, -5)
	assert.Equal(t, rall.calls, rclamped.calls)
}

// inputSink implements only the input path family.
type inputSink struct{ InputPath }

func TestCapabilitySkipping(t *testing.T) {
	tape := triangle()
	tape.InitialCap(0, 0, 1, 0)
	tape.InflectionParameter(0.5)
	tape.BeginRegularContour(0, 0, 1, 0)
	tape.DegenerateSegment(0, 0, 1, 0, 0, 0)
	tape.EndRegularOpenContour(1, 0, 0, 0)

	var r recorder
	c := inputSink{&r}
	assert.NotPanics(t, func() {
		tape.Iterate(c)
		tape.RIterate(c)
	})
	assert.Len(t, r.calls, 10)
}

func TestPropagateDegenerateContour(t *testing.T) {
	var tape Tape
	tape.BeginRegularContour(0, 0, 0, 0)
	tape.DegenerateSegment(0, 0, 0, 0, 0, 0)
	tape.EndRegularClosedContour(0, 0, 0, 0)
	tape.PropagateOrientations()

	var r recorder
	tape.Iterate(&r)
	assert.Equal(t, []string{
		"begin_regular_contour(0 0 1 0)",
		"degenerate_segment(0 0 1 0 0 0)",
		"end_regular_closed_contour(1 0 0 0)",
	}, r.calls)
}

func TestOrientationWithoutRegularSlot(t *testing.T) {
	const tiny = 0x1p-140
	var tape Tape
	tape.BeginRegularContour(0, 0, tiny, 0)
	tape.DegenerateSegment(0, 0, tiny, 0, 0, 0)
	tape.Cusp(0, tiny, 0, 0, tiny, tiny, 1)
	tape.DegenerateSegment(0, 0, 0, tiny, 0, 0)
	tape.EndRegularClosedContour(0, tiny, 0, 0)

	dx, dy := tape.firstOrientation(0, tape.Len())
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	dx, dy = tape.lastOrientation(0, tape.Len())
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	tape.PropagateOrientations()
	var r recorder
	tape.Iterate(&r)
	assert.Equal(t, "degenerate_segment(0 0 1 0 0 0)", r.calls[1])
	assert.Equal(t, "cusp(1 0 0 0 1 0 1)", r.calls[2])
	assert.Equal(t, "end_regular_closed_contour(1 0 0 0)", r.calls[4])
}

func TestPropagateOpenContour(t *testing.T) {
	var tape Tape
	tape.BeginRegularContour(0, 0, 0, 0)
	tape.DegenerateSegment(0, 0, 0, 0, 0, 0)
	tape.BeginSegmentPiece(0, 0, 1, 0)
	tape.LinearSegmentPiece(0, 1, 0, 0, 1, 0)
	tape.EndSegmentPiece(1, 0, 1, 0)
	tape.Cusp(1, 0, 1, 0, 0, 0, 1)
	tape.DegenerateSegment(1, 0, 0, 0, 1, 0)
	tape.EndRegularOpenContour(0, 0, 1, 0)
	tape.PropagateOrientations()

	var r recorder
	tape.Iterate(&r)
	assert.Equal(t, []string{
		"begin_regular_contour(0 0 1 0)",
		"degenerate_segment(0 0 1 0 0 0)",
		"begin_segment_piece(0 0 1 0)",
		"linear_segment_piece(0 1 0 0 1 0)",
		"end_segment_piece(1 0 1 0)",
		"cusp(1 0 1 0 1 0 1)",
		"degenerate_segment(1 0 1 0 1 0)",
		"end_regular_open_contour(1 0 1 0)",
	}, r.calls)
}

func TestPropagateIdempotent(t *testing.T) {
	tape := regularTape()
	tape.PropagateOrientations()
	once := tape.Clone()
	tape.PropagateOrientations()
	assert.True(t, once.Equal(tape, exact))
}

func TestPropagateClosedWraparound(t *testing.T) {
	var tape Tape
	tape.BeginRegularContour(0, 0, 0, 0)
	tape.DegenerateSegment(0, 0, 0, 0, 0, 0)
	tape.BeginSegmentPiece(0, 0, 0, 1)
	tape.LinearSegmentPiece(0, 1, 0, 0, 0, 1)
	tape.EndSegmentPiece(0, 1, 0, 1)
	tape.DegenerateSegment(0, 1, 0, 0, 0, 1)
	tape.EndRegularClosedContour(0, 0, 0, 1)
	tape.PropagateOrientations()

	var r recorder
	tape.Iterate(&r)
	// The leading degenerate segment borrows the last meaningful
	// direction, the trailing one the previous.
	assert.Equal(t, "degenerate_segment(0 0 0 1 0 0)", r.calls[1])
	assert.Equal(t, "degenerate_segment(0 1 0 1 0 1)", r.calls[5])
}

func TestPropagateEmptyContour(t *testing.T) {
	var tape Tape
	tape.BeginRegularContour(0, 0, 0, 0)
	tape.EndRegularOpenContour(0, 0, 0, 0)
	assert.NotPanics(t, tape.PropagateOrientations)
}

func TestPropagateMisdelimited(t *testing.T) {
	tape := regularTape()
	assert.Panics(t, func() { tape.PropagateContourOrientations(1, tape.Len()) })
	assert.Panics(t, func() { tape.PropagateContourOrientations(0, tape.Len()-1) })
}

func TestInvalidInstruction(t *testing.T) {
	tape := triangle()
	tape.Instructions[1] = 0
	assert.Panics(t, func() { tape.Iterate(Null{}) })
}

func TestPackUnpack(t *testing.T) {
	tape := regularTape()
	tape.Append(triangle())

	layout, buf := tape.Pack(nil)
	assert.Equal(t, uint32(tape.Len()), layout.NumInstructions)
	assert.Equal(t, uint32(len(tape.Data)), layout.NumData)
	assert.Equal(t, uint32(0), layout.InstructionBase)
	assert.Equal(t, uint32(jmath.AlignUp(tape.Len(), 4)/4), layout.OffsetBase)
	assert.Equal(t, layout.OffsetBase+uint32(tape.Len()), layout.DataBase)
	assert.Len(t, buf, int(layout.DataBase)*4+len(tape.Data)*4)

	got := Unpack(layout, buf)
	assert.True(t, tape.Equal(got, exact))
}

func TestAppend(t *testing.T) {
	a := triangle()
	b := regularTape()

	var want recorder
	a.Iterate(&want)
	b.Iterate(&want)

	a.Append(b)
	var got recorder
	a.Iterate(&got)
	assert.Equal(t, want.calls, got.calls)
}

func TestResetAndClone(t *testing.T) {
	tape := triangle()
	clone := tape.Clone()
	tape.Reset()
	assert.True(t, tape.IsEmpty())
	assert.Equal(t, 5, clone.Len())
	clone.ShrinkToFit()
	assert.Equal(t, len(clone.Data), cap(clone.Data))
}

func TestApproxEqual(t *testing.T) {
	a := triangle()
	b := triangle()
	b.Data[2] += 1e-4
	assert.False(t, a.Equal(b, exact))
	assert.True(t, a.ApproxEqual(b, 1e-3))
	assert.False(t, a.ApproxEqual(b, 1e-5))
}

func TestInstructionString(t *testing.T) {
	assert.Equal(t, "rational_quadratic_segment_piece", InstrRationalQuadraticSegmentPiece.String())
	assert.Equal(t, "Instruction(200)", Instruction(200).String())
	assert.True(t, InstrBackwardEndDashParameter.IsParameter())
	assert.False(t, InstrJoin.IsParameter())
	assert.Equal(t, 10, InstrCubicSegmentPiece.Arity())
}

func TestOffsetEncoding(t *testing.T) {
	assert.Equal(t, -4, IndexOffset(-4).Index())
	assert.Equal(t, float32(0.3), FloatOffset(0.3).Float())
	require.Equal(t, 1<<20, IndexOffset(1<<20).Index())
}
