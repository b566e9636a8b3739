package properties

// DefaultBlockSize keeps stage1 at 0x110000/256 = 4,352 entries and lets
// both stage1 and stage2 use uint16 indices for any UCD revision in the
// foreseeable future.
const DefaultBlockSize = 256

// Table is the runtime two-stage lookup structure described by UAX #44's
// "trie" approach to property storage: a block-deduplicated index into a
// deduplicated array of property records.
//
// Table is immutable once built and is safe for unsynchronized concurrent
// reads, as required by properties Get(cp) callers running on separate
// goroutines.
type Table struct {
	blockSize  int
	blockShift uint
	blockMask  rune
	stage1     []uint16
	stage2     []uint16
	properties []Record
}

// Get returns the Record for cp. Codepoints outside 0..=0x10FFFF return
// DefaultRecord rather than aborting: out-of-range lookups are not an
// error condition at runtime.
func (t *Table) Get(cp rune) Record {
	if cp < 0 || cp > 0x10FFFF {
		return DefaultRecord
	}
	block := t.stage1[int(cp)>>t.blockShift]
	idx := t.stage2[int(block)*t.blockSize+int(cp&t.blockMask)]
	return t.properties[idx]
}

// BlockSize reports the block size this table was built with.
func (t *Table) BlockSize() int {
	return t.blockSize
}

// NumProperties reports the number of unique Records stored in this table,
// i.e. the size of the deduplicated properties array.
func (t *Table) NumProperties() int {
	return len(t.properties)
}

// NumStage2Blocks reports the number of unique blocks stored in stage2.
func (t *Table) NumStage2Blocks() int {
	return len(t.stage2) / t.blockSize
}
