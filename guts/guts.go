// Package guts exposes the portable BLAKE2b compression loop to the code that
// builds hashers on top of it. Callers own the chain value and the byte
// counter and decide when the input ends; guts only folds blocks.
package guts

import (
	"math/bits"

	"github.com/zeebo/blake2b/internal/consts"
)

const (
	// BlockBytes is the number of input bytes consumed by one compression.
	BlockBytes = consts.BlockLen

	// OutBytes is the size of a serialized chain value.
	OutBytes = consts.OutLen
)

// IV returns the BLAKE2b initialization vector.
func IV() [8]uint64 { return consts.IV }

// Counter is the 128 bit count of input bytes compressed so far.
type Counter struct {
	Lo, Hi uint64
}

// Add returns the counter advanced by n bytes, wrapping at 2^128.
func (c Counter) Add(n uint64) Counter {
	lo, carry := bits.Add64(c.Lo, n, 0)
	hi, _ := bits.Add64(c.Hi, 0, carry)
	return Counter{Lo: lo, Hi: hi}
}

// Finalize reports whether a call to Compress1Loop ends the whole input.
type Finalize bool

// LastNode reports whether the chain value belongs to the last node of a
// tree mode hash. It only has an effect on finalized blocks.
type LastNode bool

// Flag converts a boolean into the mask xored into the state vector.
func Flag(b bool) uint64 {
	if b {
		return ^uint64(0)
	}
	return 0
}

// Stride is the number of blocks between consecutive blocks of one lane when
// lanes are interleaved in a shared buffer. It must be at least Serial.
type Stride int

// Serial is for a single lane of contiguous blocks, Parallel for the four
// interleaved lanes of BLAKE2bp.
const (
	Serial   Stride = 1
	Parallel Stride = 4
)

// PaddedBlockBytes is the distance in bytes between the starts of two
// consecutive blocks of a lane.
func (s Stride) PaddedBlockBytes() int {
	return int(s) * consts.BlockLen
}
