package consts

import (
	"os"

	"golang.org/x/sys/cpu"
)

// OptimizeLittleEndian allows words to be copied directly out of byte buffers
// instead of being decoded one at a time.
var OptimizeLittleEndian = !cpu.IsBigEndian && os.Getenv("BLAKE2B_PUREGO") == ""
