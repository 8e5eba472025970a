package guts

import (
	"math/rand"
	"testing"

	"golang.org/x/crypto/blake2b"
)

func FuzzCompress1Loop(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{128, 255, 1})
	f.Add([]byte{3, 3, 3, 3, 3, 3, 3, 3, 3, 3})

	f.Fuzz(func(t *testing.T, prog []byte) {
		l := 0
		for _, v := range prog {
			l += int(v)
		}
		data := make([]byte, l)
		rand.New(rand.NewSource(0)).Read(data)

		fin := 0
		if len(data) > 0 {
			fin = (len(data) - 1) / BlockBytes * BlockBytes
		}

		words, count, b := initWords(0), Counter{}, data[:fin]
		for _, v := range prog {
			n := int(v%4) * BlockBytes
			if n > len(b) {
				n = len(b)
			}
			if n == 0 {
				continue
			}
			count = Compress1Loop(b[:n], &words, count, false, false, Serial)
			b = b[n:]
		}
		if len(b) > 0 {
			count = Compress1Loop(b, &words, count, false, false, Serial)
		}
		count = Compress1Loop(data[fin:], &words, count, false, true, Serial)

		exp := blake2b.Sum512(data)
		if got := wordsToBytes(&words); string(got) != string(exp[:]) {
			t.Fatalf("got: %x, exp: %x", got, exp)
		}
		if count != (Counter{Lo: uint64(len(data))}) {
			t.Fatalf("count: %v, len: %d", count, len(data))
		}
	})
}
