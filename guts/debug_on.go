//go:build blake2b_debug

package guts

const debug = true
