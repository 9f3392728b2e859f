// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import (
	"slices"
	"structs"
	"unsafe"

	"honnef.co/go/outline/jmath"
	"honnef.co/go/safeish"
)

// Layout describes where the streams of a packed tape start. Bases are in
// 32-bit words.
type Layout struct {
	_ structs.HostLayout

	NumInstructions uint32
	NumData         uint32
	// Start of the instruction stream.
	InstructionBase uint32
	// Start of the offset stream.
	OffsetBase uint32
	// Start of the data pool.
	DataBase uint32
}

// Pack lays the tape's streams out in a single buffer, reusing buf's
// storage. The instruction stream is padded to a multiple of four bytes.
func (t *Tape) Pack(buf []byte) (Layout, []byte) {
	instrPadded := jmath.AlignUp(len(t.Instructions), 4)
	size := instrPadded + sliceSizeInBytes(t.Offsets) + sliceSizeInBytes(t.Data)

	data := slices.Grow(buf[:0], size)
	layout := Layout{
		NumInstructions: uint32(len(t.Instructions)),
		NumData:         uint32(len(t.Data)),
	}
	layout.InstructionBase = sizeToWords(len(data))
	data = append(data, safeish.SliceCast[[]byte](t.Instructions)...)
	for len(data) < instrPadded {
		data = append(data, 0)
	}
	layout.OffsetBase = sizeToWords(len(data))
	data = append(data, safeish.SliceCast[[]byte](t.Offsets)...)
	layout.DataBase = sizeToWords(len(data))
	data = append(data, safeish.SliceCast[[]byte](t.Data)...)
	if len(data) != size {
		panic("invalid packing")
	}
	return layout, data
}

// Unpack rebuilds a tape from a buffer produced by [Tape.Pack]. The tape
// doesn't alias buf.
func Unpack(layout Layout, buf []byte) *Tape {
	n := int(layout.NumInstructions)
	instrs := buf[layout.InstructionBase*4:][:n]
	offsets := buf[layout.OffsetBase*4:][:n*4]
	data := buf[layout.DataBase*4:][:layout.NumData*4]
	return &Tape{
		Instructions: slices.Clone(safeish.SliceCast[[]Instruction](instrs)),
		Offsets:      slices.Clone(safeish.SliceCast[[]Offset](offsets)),
		Data:         slices.Clone(safeish.SliceCast[[]float32](data)),
	}
}

func sizeToWords(n int) uint32 {
	return uint32(n) / 4
}

func sliceSizeInBytes[E any, T ~[]E](slice T) int {
	return len(slice) * int(unsafe.Sizeof(*new(E)))
}
