package properties

import "math/bits"

// NewTable assembles a Table directly from already-computed stage1/stage2
// index arrays and a deduplicated records slice, the shape cmd/gentables
// emits into a generated source file. Most callers want BuildTable (which
// takes a dense per-codepoint array) or Default (the runtime bootstrap);
// NewTable exists for code that loads a table someone already built
// offline.
func NewTable(stage1, stage2 []uint16, records []Record, blockSize int) *Table {
	return &Table{
		blockSize:  blockSize,
		blockShift: uint(bits.TrailingZeros(uint(blockSize))),
		blockMask:  rune(blockSize - 1),
		stage1:     stage1,
		stage2:     stage2,
		properties: records,
	}
}
