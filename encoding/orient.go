// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import "honnef.co/go/outline/jmath"

func isIrregular(dx, dy float32) bool {
	return jmath.IsAlmostZero32(dx) && jmath.IsAlmostZero32(dy)
}

// propagate fills an irregular slot with the carried direction, or picks up
// the slot's direction as the new carried one.
func propagate(dx, dy *float32, slot []float32) {
	if isIrregular(slot[0], slot[1]) {
		slot[0], slot[1] = *dx, *dy
	} else {
		*dx, *dy = slot[0], slot[1]
	}
}

// PropagateOrientations replaces degenerate tangent directions in every
// regular contour with the direction of the nearest meaningful neighbor.
// It must run once, after the regular path has been written and before
// anything that depends on tangents reads it.
func (t *Tape) PropagateOrientations() {
	begin := 0
	for index, instr := range t.Instructions {
		switch instr {
		case InstrBeginRegularContour:
			begin = index
		case InstrEndRegularOpenContour, InstrEndRegularClosedContour:
			t.PropagateContourOrientations(begin, index+1)
		}
	}
}

// PropagateContourOrientations propagates orientations within the single
// regular contour [begin, end).
func (t *Tape) PropagateContourOrientations(begin, end int) {
	if t.Instructions[begin] != InstrBeginRegularContour {
		panic("contour doesn't start with begin_regular_contour")
	}
	back := t.Instructions[end-1]
	if back != InstrEndRegularOpenContour && back != InstrEndRegularClosedContour {
		panic("contour doesn't end with end_regular_contour")
	}
	var initialDx, initialDy float32 = 1, 0
	var finalDx, finalDy float32 = 0, 0
	// Open contours have no wraparound neighbor to borrow from.
	if back == InstrEndRegularClosedContour {
		initialDx, initialDy = t.firstOrientation(begin, end)
		if isIrregular(initialDx, initialDy) {
			initialDx, initialDy = 1, 0
		}
		finalDx, finalDy = t.lastOrientation(begin, end)
	}
	t.propagateForward(finalDx, finalDy, begin, end)
	t.propagateBackward(initialDx, initialDy, begin, end)
}

// orientationSlots returns the tangent slots of the instruction at index in
// forward order.
func (t *Tape) orientationSlots(index int) (a, b []float32) {
	o := t.Offsets[index].Index()
	switch t.Instructions[index] {
	case InstrDegenerateSegment, InstrBeginSegmentPiece:
		return t.Data[o+2 : o+4], nil
	case InstrEndSegmentPiece:
		return t.Data[o : o+2], nil
	case InstrCusp, InstrInnerCusp:
		return t.Data[o : o+2], t.Data[o+4 : o+6]
	default:
		return nil, nil
	}
}

// firstOrientation returns the first regular direction in [begin, end), or
// (0, 0) if there is none.
func (t *Tape) firstOrientation(begin, end int) (dx, dy float32) {
	for index := begin; index < end; index++ {
		a, b := t.orientationSlots(index)
		for _, slot := range [2][]float32{a, b} {
			if slot == nil {
				continue
			}
			if !isIrregular(slot[0], slot[1]) {
				return slot[0], slot[1]
			}
		}
	}
	return 0, 0
}

func (t *Tape) lastOrientation(begin, end int) (dx, dy float32) {
	for index := end - 1; index >= begin; index-- {
		a, b := t.orientationSlots(index)
		for _, slot := range [2][]float32{b, a} {
			if slot == nil {
				continue
			}
			if !isIrregular(slot[0], slot[1]) {
				return slot[0], slot[1]
			}
		}
	}
	return 0, 0
}

func (t *Tape) propagateForward(dx, dy float32, begin, end int) {
	for index := begin; index < end; index++ {
		a, b := t.orientationSlots(index)
		if a != nil {
			propagate(&dx, &dy, a)
		}
		if b != nil {
			propagate(&dx, &dy, b)
		}
	}
}

func (t *Tape) propagateBackward(dx, dy float32, begin, end int) {
	for index := end - 1; index >= begin; index-- {
		a, b := t.orientationSlots(index)
		if b != nil {
			propagate(&dx, &dy, b)
		}
		if a != nil {
			propagate(&dx, &dy, a)
		}
	}
}
