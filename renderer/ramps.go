// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package renderer

import (
	"encoding/binary"
	"math"

	"honnef.co/go/outline/gfx"
	"honnef.co/go/safeish"
)

const numSamples = 512
const retainedCount = 64

// ramp is a color ramp sampled at numSamples evenly spaced parameters.
type ramp struct {
	spread gfx.Spread
	lut    []gfx.RGBA8
}

func (r *ramp) at(t float32) gfx.RGBA8 {
	t, ok := r.spread.Apply(t)
	if !ok {
		return gfx.RGBA8{}
	}
	i := int(t*(numSamples-1) + 0.5)
	return r.lut[min(max(i, 0), numSamples-1)]
}

type rampCacheEntry struct {
	ramp  *ramp
	epoch uint64
}

type rampCache struct {
	epoch uint64
	// mapping from the encoded stops and spread
	mapping map[string]*rampCacheEntry

	// slice reused across calls to get, used for building the map key.
	key []byte
}

// maintain starts a new epoch. Once more than retainedCount ramps are
// cached, ramps unused for two epochs are evicted.
func (rc *rampCache) maintain() {
	rc.epoch++
	if len(rc.mapping) <= retainedCount {
		return
	}
	for k, v := range rc.mapping {
		if v.epoch+2 < rc.epoch {
			delete(rc.mapping, k)
		}
	}
}

func (rc *rampCache) get(cr gfx.ColorRamp) *ramp {
	key := rc.key[:0]
	// Adding the number of stops makes the key unique for different length
	// sequences of stops that would have the same concatenation.
	key = binary.LittleEndian.AppendUint64(key, uint64(len(cr.Stops)))
	key = binary.LittleEndian.AppendUint32(key, uint32(cr.Spread))
	for _, stop := range cr.Stops {
		key = binary.LittleEndian.AppendUint32(key, math.Float32bits(stop.Offset))
		key = append(key, uint8(stop.Color.R), uint8(stop.Color.G), uint8(stop.Color.B), uint8(stop.Color.A))
	}
	rc.key = key[:0]

	if entry, ok := rc.mapping[safeish.Cast[string](key)]; ok {
		entry.epoch = rc.epoch
		return entry.ramp
	}
	if rc.mapping == nil {
		rc.mapping = make(map[string]*rampCacheEntry)
	}
	r := makeRamp(cr)
	// string(key) copies, so the map key no longer aliases rc.key.
	rc.mapping[string(key)] = &rampCacheEntry{r, rc.epoch}
	return r
}

func makeRamp(cr gfx.ColorRamp) *ramp {
	// The table covers [0, 1]; the spread is applied when sampling.
	pad := cr
	pad.Spread = gfx.Pad
	out := &ramp{spread: cr.Spread, lut: make([]gfx.RGBA8, numSamples)}
	for i := range numSamples {
		out.lut[i] = pad.At(float32(i) / (numSamples - 1))
	}
	return out
}
