// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

// The path consumer families. A consumer passed to [Iterate] or [RIterate]
// implements any subset of them; instructions of families it doesn't
// implement are skipped.
//
// Rational quadratic segments take their middle control point in
// homogeneous form: (x1, y1) is already multiplied by w1.

type InputPath interface {
	BeginContour(x0, y0 float32)
	EndOpenContour(x0, y0 float32)
	EndClosedContour(x0, y0 float32)
	LinearSegment(x0, y0, x1, y1 float32)
	QuadraticSegment(x0, y0, x1, y1, x2, y2 float32)
	RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float32)
	CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float32)
}

type RegularPath interface {
	BeginRegularContour(xi, yi, dxi, dyi float32)
	EndRegularOpenContour(dxf, dyf, xf, yf float32)
	EndRegularClosedContour(dxf, dyf, xf, yf float32)
	DegenerateSegment(xi, yi, dx, dy, xf, yf float32)
	Cusp(dxi, dyi, x, y, dxf, dyf, w float32)
	InnerCusp(dxi, dyi, x, y, dxf, dyf, w float32)
	BeginSegmentPiece(xi, yi, dxi, dyi float32)
	EndSegmentPiece(dxf, dyf, xf, yf float32)
	LinearSegmentPiece(ti, tf, x0, y0, x1, y1 float32)
	QuadraticSegmentPiece(ti, tf, x0, y0, x1, y1, x2, y2 float32)
	RationalQuadraticSegmentPiece(ti, tf, x0, y0, x1, y1, w1, x2, y2 float32)
	CubicSegmentPiece(ti, tf, x0, y0, x1, y1, x2, y2, x3, y3 float32)
}

type DecoratedPath interface {
	InitialCap(x, y, dx, dy float32)
	TerminalCap(dx, dy, x, y float32)
	BackwardInitialCap(x, y, dx, dy float32)
	BackwardTerminalCap(dx, dy, x, y float32)
	InitialButtCap(x, y, dx, dy float32)
	TerminalButtCap(dx, dy, x, y float32)
	BackwardInitialButtCap(x, y, dx, dy float32)
	BackwardTerminalButtCap(dx, dy, x, y float32)
	Join(dx0, dy0, x, y, dx1, dy1, w float32)
	InnerJoin(dx0, dy0, x, y, dx1, dy1, w float32)
}

type MonotonicParameters interface {
	RootDxParameter(t float32)
	RootDyParameter(t float32)
	RootDwParameter(t float32)
}

type CubicParameters interface {
	InflectionParameter(t float32)
	DoublePointParameter(t float32)
}

type OffsettingParameters interface {
	OffsetCuspParameter(t float32)
	EvoluteCuspParameter(t float32)
}

type JoinParameters interface {
	JoinTangentParameter(t float32)
	JoinVertexParameter(t float32)
}

type DashingParameters interface {
	BeginDashParameter(t float32)
	EndDashParameter(t float32)
	BackwardBeginDashParameter(t float32)
	BackwardEndDashParameter(t float32)
}

// Path is implemented by consumers that accept every family, such as
// [*Tape].
type Path interface {
	InputPath
	RegularPath
	DecoratedPath
	MonotonicParameters
	CubicParameters
	OffsettingParameters
	JoinParameters
	DashingParameters
}

// sink holds a consumer split into its families. Families the consumer
// doesn't implement are filled with a no-op.
type sink struct {
	input  InputPath
	reg    RegularPath
	deco   DecoratedPath
	mono   MonotonicParameters
	cubic  CubicParameters
	offset OffsettingParameters
	join   JoinParameters
	dash   DashingParameters
}

func newSink(c any) sink {
	return sink{
		input:  forwardIf[InputPath](c),
		reg:    forwardIf[RegularPath](c),
		deco:   forwardIf[DecoratedPath](c),
		mono:   forwardIf[MonotonicParameters](c),
		cubic:  forwardIf[CubicParameters](c),
		offset: forwardIf[OffsettingParameters](c),
		join:   forwardIf[JoinParameters](c),
		dash:   forwardIf[DashingParameters](c),
	}
}

// forwardIf returns c if it implements the family T and a no-op consumer
// otherwise.
func forwardIf[T any](c any) T {
	if v, ok := c.(T); ok {
		return v
	}
	return any(Null{}).(T)
}

// Null is a consumer of every family that ignores all instructions.
type Null struct{}

var _ Path = Null{}

func (Null) BeginContour(x0, y0 float32)                                              {}
func (Null) EndOpenContour(x0, y0 float32)                                            {}
func (Null) EndClosedContour(x0, y0 float32)                                          {}
func (Null) LinearSegment(x0, y0, x1, y1 float32)                                     {}
func (Null) QuadraticSegment(x0, y0, x1, y1, x2, y2 float32)                          {}
func (Null) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float32)              {}
func (Null) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float32)                      {}
func (Null) BeginRegularContour(xi, yi, dxi, dyi float32)                             {}
func (Null) EndRegularOpenContour(dxf, dyf, xf, yf float32)                           {}
func (Null) EndRegularClosedContour(dxf, dyf, xf, yf float32)                         {}
func (Null) DegenerateSegment(xi, yi, dx, dy, xf, yf float32)                         {}
func (Null) Cusp(dxi, dyi, x, y, dxf, dyf, w float32)                                 {}
func (Null) InnerCusp(dxi, dyi, x, y, dxf, dyf, w float32)                            {}
func (Null) BeginSegmentPiece(xi, yi, dxi, dyi float32)                               {}
func (Null) EndSegmentPiece(dxf, dyf, xf, yf float32)                                 {}
func (Null) LinearSegmentPiece(ti, tf, x0, y0, x1, y1 float32)                        {}
func (Null) QuadraticSegmentPiece(ti, tf, x0, y0, x1, y1, x2, y2 float32)             {}
func (Null) RationalQuadraticSegmentPiece(ti, tf, x0, y0, x1, y1, w1, x2, y2 float32) {}
func (Null) CubicSegmentPiece(ti, tf, x0, y0, x1, y1, x2, y2, x3, y3 float32)         {}
func (Null) InitialCap(x, y, dx, dy float32)                                          {}
func (Null) TerminalCap(dx, dy, x, y float32)                                         {}
func (Null) BackwardInitialCap(x, y, dx, dy float32)                                  {}
func (Null) BackwardTerminalCap(dx, dy, x, y float32)                                 {}
func (Null) InitialButtCap(x, y, dx, dy float32)                                      {}
func (Null) TerminalButtCap(dx, dy, x, y float32)                                     {}
func (Null) BackwardInitialButtCap(x, y, dx, dy float32)                              {}
func (Null) BackwardTerminalButtCap(dx, dy, x, y float32)                             {}
func (Null) Join(dx0, dy0, x, y, dx1, dy1, w float32)                                 {}
func (Null) InnerJoin(dx0, dy0, x, y, dx1, dy1, w float32)                            {}
func (Null) RootDxParameter(t float32)                                                {}
func (Null) RootDyParameter(t float32)                                                {}
func (Null) RootDwParameter(t float32)                                                {}
func (Null) InflectionParameter(t float32)                                            {}
func (Null) DoublePointParameter(t float32)                                           {}
func (Null) OffsetCuspParameter(t float32)                                            {}
func (Null) EvoluteCuspParameter(t float32)                                           {}
func (Null) JoinTangentParameter(t float32)                                           {}
func (Null) JoinVertexParameter(t float32)                                            {}
func (Null) BeginDashParameter(t float32)                                             {}
func (Null) EndDashParameter(t float32)                                               {}
func (Null) BackwardBeginDashParameter(t float32)                                     {}
func (Null) BackwardEndDashParameter(t float32)                                       {}
