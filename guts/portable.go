package guts

import (
	"github.com/zeebo/blake2b/internal/alg/compress/compress_pure"
	"github.com/zeebo/blake2b/internal/consts"
)

// Compress1Loop compresses every block of input into words, starting from the
// byte count count, and returns the updated count. The block at the greatest
// multiple of the stride width below len(input) is the final block: it may be
// short, in which case it is zero padded and only its true length is counted.
// When finalize is set, the final block is flagged as the last block, and also
// as the last node if lastNode is set. Empty input still compresses one
// zero block.
func Compress1Loop(
	input []byte,
	words *[8]uint64,
	count Counter,
	lastNode LastNode,
	finalize Finalize,
	stride Stride,
) Counter {
	inputDebugAsserts(input, finalize, stride)

	local := *words
	padded := stride.PaddedBlockBytes()

	finOffset := len(input) - 1
	if finOffset < 0 {
		finOffset = 0
	}
	finOffset -= finOffset % padded

	var buf [consts.BlockLen]byte
	finBlock, finLen, _ := FinalBlock(input, finOffset, &buf, stride)
	finLastBlock := Flag(bool(finalize))
	finLastNode := Flag(bool(finalize) && bool(lastNode))

	for offset := 0; ; offset += padded {
		var (
			block     *[consts.BlockLen]byte
			delta     int
			blockFlag uint64
			nodeFlag  uint64
		)

		if offset == finOffset {
			block, delta = finBlock, finLen
			blockFlag, nodeFlag = finLastBlock, finLastNode
		} else {
			block, delta = (*[consts.BlockLen]byte)(input[offset:]), consts.BlockLen
		}

		count = count.Add(uint64(delta))
		compress_pure.Compress(&local, block, [2]uint64{count.Lo, count.Hi}, blockFlag, nodeFlag)

		// check before bumping the offset so it cannot overflow
		if offset == finOffset {
			break
		}
	}

	*words = local
	return count
}

// FinalBlock returns the block starting at offset along with its true length
// and whether it may be the final block of its lane. Blocks of at least
// BlockBytes are returned in place; shorter tails are copied into buf and
// zero padded. The returned length never exceeds BlockBytes even when bytes of
// other lanes follow the block.
func FinalBlock(input []byte, offset int, buf *[consts.BlockLen]byte, stride Stride) (*[consts.BlockLen]byte, int, bool) {
	rest := input[min(offset, len(input)):]
	if len(rest) >= consts.BlockLen {
		return (*[consts.BlockLen]byte)(rest), consts.BlockLen, len(rest) <= stride.PaddedBlockBytes()
	}

	n := copy(buf[:], rest)
	clear(buf[n:])
	return buf, n, true
}

func inputDebugAsserts(input []byte, finalize Finalize, stride Stride) {
	if !debug {
		return
	}
	if stride < Serial {
		panic("blake2b: stride must be positive")
	}
	// without finalize the caller must hand over whole blocks only
	if !finalize {
		if len(input) == 0 {
			panic("blake2b: empty input without finalize")
		}
		if len(input)%consts.BlockLen != 0 {
			panic("blake2b: partial block without finalize")
		}
	}
}
