package guts_test

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake2b/guts"
)

func ExampleCompress1Loop() {
	// sequential mode, no key, 64 byte digest
	words := guts.IV()
	words[0] ^= 0x01010000 | guts.OutBytes

	count := guts.Compress1Loop([]byte("abc"), &words, guts.Counter{}, false, true, guts.Serial)

	var out [guts.OutBytes]byte
	for i, w := range words {
		binary.LittleEndian.PutUint64(out[8*i:], w)
	}

	fmt.Println(count.Lo)
	fmt.Printf("%x\n", out[0:32])
	fmt.Printf("%x\n", out[32:64])
	//output:
	// 3
	// ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d1
	// 7d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923
}

func ExampleCompress1Loop_incremental() {
	words := guts.IV()
	words[0] ^= 0x01010000 | guts.OutBytes

	// whole blocks may be compressed ahead of the end of the input
	input := make([]byte, 300)
	count := guts.Compress1Loop(input[:256], &words, guts.Counter{}, false, false, guts.Serial)
	fmt.Println(count.Lo)

	count = guts.Compress1Loop(input[256:], &words, count, false, true, guts.Serial)
	fmt.Println(count.Lo)
	//output:
	// 256
	// 300
}
