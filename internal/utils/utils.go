package utils

import (
	"encoding/binary"
	"unsafe"

	"github.com/zeebo/blake2b/internal/consts"
)

// BytesToWords parses a block into its sixteen little endian message words.
func BytesToWords(bytes *[consts.BlockLen]uint8, words *[16]uint64) {
	if consts.OptimizeLittleEndian {
		copy((*[consts.BlockLen]byte)(unsafe.Pointer(&words[0]))[:], bytes[:])
		return
	}

	words[0] = binary.LittleEndian.Uint64(bytes[0*8:])
	words[1] = binary.LittleEndian.Uint64(bytes[1*8:])
	words[2] = binary.LittleEndian.Uint64(bytes[2*8:])
	words[3] = binary.LittleEndian.Uint64(bytes[3*8:])
	words[4] = binary.LittleEndian.Uint64(bytes[4*8:])
	words[5] = binary.LittleEndian.Uint64(bytes[5*8:])
	words[6] = binary.LittleEndian.Uint64(bytes[6*8:])
	words[7] = binary.LittleEndian.Uint64(bytes[7*8:])
	words[8] = binary.LittleEndian.Uint64(bytes[8*8:])
	words[9] = binary.LittleEndian.Uint64(bytes[9*8:])
	words[10] = binary.LittleEndian.Uint64(bytes[10*8:])
	words[11] = binary.LittleEndian.Uint64(bytes[11*8:])
	words[12] = binary.LittleEndian.Uint64(bytes[12*8:])
	words[13] = binary.LittleEndian.Uint64(bytes[13*8:])
	words[14] = binary.LittleEndian.Uint64(bytes[14*8:])
	words[15] = binary.LittleEndian.Uint64(bytes[15*8:])
}

// WordsToBytes serializes a chain value little endian into bytes, which must
// be at least consts.OutLen long.
func WordsToBytes(words *[8]uint64, bytes []byte) {
	bytes = bytes[:consts.OutLen]

	if consts.OptimizeLittleEndian {
		copy(bytes, (*[consts.OutLen]byte)(unsafe.Pointer(&words[0]))[:])
		return
	}

	binary.LittleEndian.PutUint64(bytes[0*8:], words[0])
	binary.LittleEndian.PutUint64(bytes[1*8:], words[1])
	binary.LittleEndian.PutUint64(bytes[2*8:], words[2])
	binary.LittleEndian.PutUint64(bytes[3*8:], words[3])
	binary.LittleEndian.PutUint64(bytes[4*8:], words[4])
	binary.LittleEndian.PutUint64(bytes[5*8:], words[5])
	binary.LittleEndian.PutUint64(bytes[6*8:], words[6])
	binary.LittleEndian.PutUint64(bytes[7*8:], words[7])
}
