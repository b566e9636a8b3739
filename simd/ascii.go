// Package simd prescans UTF-8 byte runs for the longest leading stretch of
// printable ASCII, so the scanner can skip grapheme segmentation and width
// lookup entirely for that stretch: printable ASCII bytes are always one
// column, one byte, one grapheme cluster each.
//
// Kernel selection happens once per process, the same way the original
// implementation this package is adapted from picks a vector width once
// via a function-local static: see cpu.go.
package simd

import "sync/atomic"

// kernel is the dispatched ASCII-prescan function: given a byte slice, it
// returns the number of leading bytes that are printable ASCII (0x20-0x7E).
// It is set exactly once, by this file's init from cpu.go's selectKernel,
// and never reassigned after.
var kernel atomic.Value // func([]byte) int

func init() {
	kernel.Store(selectKernel())
}

// PrescanASCII returns the number of leading bytes of b that are printable
// ASCII (values 0x20-0x7E). C0 controls, DEL, and anything with the high
// bit set stop the run. It never looks past limit bytes even if more of b
// is printable ASCII, so callers can cap work to a column or decode
// budget.
func PrescanASCII(b []byte, limit int) int {
	if limit < len(b) {
		b = b[:limit]
	}
	n := kernel.Load().(func([]byte) int)(b)
	if n > limit {
		return limit
	}
	return n
}
