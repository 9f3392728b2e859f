// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import (
	"fmt"
	"strings"
)

// recorder logs every instruction it receives in a readable form.
type recorder struct {
	calls []string
}

var _ Path = (*recorder)(nil)

func (r *recorder) rec(name string, args ...float32) {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, a)
	}
	sb.WriteByte(')')
	r.calls = append(r.calls, sb.String())
}

func (r *recorder) BeginContour(x0, y0 float32) {
	r.rec("begin_contour", x0, y0)
}

func (r *recorder) EndOpenContour(x0, y0 float32) {
	r.rec("end_open_contour", x0, y0)
}

func (r *recorder) EndClosedContour(x0, y0 float32) {
	r.rec("end_closed_contour", x0, y0)
}

func (r *recorder) LinearSegment(x0, y0, x1, y1 float32) {
	r.rec("linear_segment", x0, y0, x1, y1)
}

func (r *recorder) QuadraticSegment(x0, y0, x1, y1, x2, y2 float32) {
	r.rec("quadratic_segment", x0, y0, x1, y1, x2, y2)
}

func (r *recorder) RationalQuadraticSegment(x0, y0, x1, y1, w1, x2, y2 float32) {
	r.rec("rational_quadratic_segment", x0, y0, x1, y1, w1, x2, y2)
}

func (r *recorder) CubicSegment(x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	r.rec("cubic_segment", x0, y0, x1, y1, x2, y2, x3, y3)
}

func (r *recorder) BeginRegularContour(xi, yi, dxi, dyi float32) {
	r.rec("begin_regular_contour", xi, yi, dxi, dyi)
}

func (r *recorder) EndRegularOpenContour(dxf, dyf, xf, yf float32) {
	r.rec("end_regular_open_contour", dxf, dyf, xf, yf)
}

func (r *recorder) EndRegularClosedContour(dxf, dyf, xf, yf float32) {
	r.rec("end_regular_closed_contour", dxf, dyf, xf, yf)
}

func (r *recorder) DegenerateSegment(xi, yi, dx, dy, xf, yf float32) {
	r.rec("degenerate_segment", xi, yi, dx, dy, xf, yf)
}

func (r *recorder) Cusp(dxi, dyi, x, y, dxf, dyf, w float32) {
	r.rec("cusp", dxi, dyi, x, y, dxf, dyf, w)
}

func (r *recorder) InnerCusp(dxi, dyi, x, y, dxf, dyf, w float32) {
	r.rec("inner_cusp", dxi, dyi, x, y, dxf, dyf, w)
}

func (r *recorder) BeginSegmentPiece(xi, yi, dxi, dyi float32) {
	r.rec("begin_segment_piece", xi, yi, dxi, dyi)
}

func (r *recorder) EndSegmentPiece(dxf, dyf, xf, yf float32) {
	r.rec("end_segment_piece", dxf, dyf, xf, yf)
}

func (r *recorder) LinearSegmentPiece(ti, tf, x0, y0, x1, y1 float32) {
	r.rec("linear_segment_piece", ti, tf, x0, y0, x1, y1)
}

func (r *recorder) QuadraticSegmentPiece(ti, tf, x0, y0, x1, y1, x2, y2 float32) {
	r.rec("quadratic_segment_piece", ti, tf, x0, y0, x1, y1, x2, y2)
}

func (r *recorder) RationalQuadraticSegmentPiece(ti, tf, x0, y0, x1, y1, w1, x2, y2 float32) {
	r.rec("rational_quadratic_segment_piece", ti, tf, x0, y0, x1, y1, w1, x2, y2)
}

func (r *recorder) CubicSegmentPiece(ti, tf, x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	r.rec("cubic_segment_piece", ti, tf, x0, y0, x1, y1, x2, y2, x3, y3)
}

func (r *recorder) InitialCap(x, y, dx, dy float32) {
	r.rec("initial_cap", x, y, dx, dy)
}

func (r *recorder) TerminalCap(dx, dy, x, y float32) {
	r.rec("terminal_cap", dx, dy, x, y)
}

func (r *recorder) BackwardInitialCap(x, y, dx, dy float32) {
	r.rec("backward_initial_cap", x, y, dx, dy)
}

func (r *recorder) BackwardTerminalCap(dx, dy, x, y float32) {
	r.rec("backward_terminal_cap", dx, dy, x, y)
}

func (r *recorder) InitialButtCap(x, y, dx, dy float32) {
	r.rec("initial_butt_cap", x, y, dx, dy)
}

func (r *recorder) TerminalButtCap(dx, dy, x, y float32) {
	r.rec("terminal_butt_cap", dx, dy, x, y)
}

func (r *recorder) BackwardInitialButtCap(x, y, dx, dy float32) {
	r.rec("backward_initial_butt_cap", x, y, dx, dy)
}

func (r *recorder) BackwardTerminalButtCap(dx, dy, x, y float32) {
	r.rec("backward_terminal_butt_cap", dx, dy, x, y)
}

func (r *recorder) Join(dx0, dy0, x, y, dx1, dy1, w float32) {
	r.rec("join", dx0, dy0, x, y, dx1, dy1, w)
}

func (r *recorder) InnerJoin(dx0, dy0, x, y, dx1, dy1, w float32) {
	r.rec("inner_join", dx0, dy0, x, y, dx1, dy1, w)
}

func (r *recorder) RootDxParameter(t float32) {
	r.rec("root_dx_parameter", t)
}

func (r *recorder) RootDyParameter(t float32) {
	r.rec("root_dy_parameter", t)
}

func (r *recorder) RootDwParameter(t float32) {
	r.rec("root_dw_parameter", t)
}

func (r *recorder) InflectionParameter(t float32) {
	r.rec("inflection_parameter", t)
}

func (r *recorder) DoublePointParameter(t float32) {
	r.rec("double_point_parameter", t)
}

func (r *recorder) OffsetCuspParameter(t float32) {
	r.rec("offset_cusp_parameter", t)
}

func (r *recorder) EvoluteCuspParameter(t float32) {
	r.rec("evolute_cusp_parameter", t)
}

func (r *recorder) JoinTangentParameter(t float32) {
	r.rec("join_tangent_parameter", t)
}

func (r *recorder) JoinVertexParameter(t float32) {
	r.rec("join_vertex_parameter", t)
}

func (r *recorder) BeginDashParameter(t float32) {
	r.rec("begin_dash_parameter", t)
}

func (r *recorder) EndDashParameter(t float32) {
	r.rec("end_dash_parameter", t)
}

func (r *recorder) BackwardBeginDashParameter(t float32) {
	r.rec("backward_begin_dash_parameter", t)
}

func (r *recorder) BackwardEndDashParameter(t float32) {
	r.rec("backward_end_dash_parameter", t)
}
