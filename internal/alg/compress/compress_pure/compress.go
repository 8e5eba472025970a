package compress_pure

import (
	"math/bits"

	"github.com/zeebo/blake2b/internal/consts"
	"github.com/zeebo/blake2b/internal/utils"
)

// G mixes the two message words x and y into the slots a, b, c and d of the
// state vector v.
func G(v *[16]uint64, a, b, c, d int, x, y uint64) {
	v[a] += v[b] + x
	v[d] = bits.RotateLeft64(v[d]^v[a], -32)
	v[c] += v[d]
	v[b] = bits.RotateLeft64(v[b]^v[c], -24)
	v[a] += v[b] + y
	v[d] = bits.RotateLeft64(v[d]^v[a], -16)
	v[c] += v[d]
	v[b] = bits.RotateLeft64(v[b]^v[c], -63)
}

// Round applies round r of the message schedule: G over the four columns of v
// and then over its four diagonals.
func Round(r int, m, v *[16]uint64) {
	s := &consts.Sigma[r]

	G(v, 0, 4, 8, 12, m[s[0]], m[s[1]])
	G(v, 1, 5, 9, 13, m[s[2]], m[s[3]])
	G(v, 2, 6, 10, 14, m[s[4]], m[s[5]])
	G(v, 3, 7, 11, 15, m[s[6]], m[s[7]])

	G(v, 0, 5, 10, 15, m[s[8]], m[s[9]])
	G(v, 1, 6, 11, 12, m[s[10]], m[s[11]])
	G(v, 2, 7, 8, 13, m[s[12]], m[s[13]])
	G(v, 3, 4, 9, 14, m[s[14]], m[s[15]])
}

// Compress folds one block into chain. counter is the low and high half of
// the byte count including this block, and lastBlock and lastNode are the
// all-ones or all-zero finalization masks.
func Compress(
	chain *[8]uint64,
	block *[consts.BlockLen]byte,
	counter [2]uint64,
	lastBlock uint64,
	lastNode uint64,
) {
	v := [16]uint64{
		chain[0], chain[1], chain[2], chain[3],
		chain[4], chain[5], chain[6], chain[7],
		consts.IV0, consts.IV1, consts.IV2, consts.IV3,
		consts.IV4 ^ counter[0], consts.IV5 ^ counter[1],
		consts.IV6 ^ lastBlock, consts.IV7 ^ lastNode,
	}

	var m [16]uint64
	utils.BytesToWords(block, &m)

	for r := 0; r < consts.Rounds; r++ {
		Round(r, &m, &v)
	}

	chain[0] ^= v[0] ^ v[8]
	chain[1] ^= v[1] ^ v[9]
	chain[2] ^= v[2] ^ v[10]
	chain[3] ^= v[3] ^ v[11]
	chain[4] ^= v[4] ^ v[12]
	chain[5] ^= v[5] ^ v[13]
	chain[6] ^= v[6] ^ v[14]
	chain[7] ^= v[7] ^ v[15]
}
