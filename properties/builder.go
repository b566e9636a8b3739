package properties

import (
	"fmt"
	"math/bits"
)

// MaxCodepoint is one past the highest scalar value the table covers.
const MaxCodepoint = 0x110000

// BuildTable compresses a dense, one-record-per-codepoint array into a
// two-stage Table. blockSize must be a power of two dividing MaxCodepoint;
// DefaultBlockSize (256) satisfies that for any UCD revision.
//
// The algorithm walks codepoint blocks in order; a block that is
// element-wise identical to an earlier block reuses that
// block's stage1 entry instead of appending a new stage2 region. Block
// identity is tested via a map keyed by the block's serialized index
// signature, so a repeat block costs one hash lookup rather than an
// O(blockSize) comparison against every prior block.
func BuildTable(perCP []Record, blockSize int) (*Table, error) {
	if len(perCP) != MaxCodepoint {
		return nil, fmt.Errorf("properties: perCP must have exactly %d entries, got %d", MaxCodepoint, len(perCP))
	}
	if blockSize <= 0 || blockSize&(blockSize-1) != 0 {
		return nil, fmt.Errorf("properties: block size %d is not a power of two", blockSize)
	}
	if MaxCodepoint%blockSize != 0 {
		return nil, fmt.Errorf("properties: block size %d does not divide %d", blockSize, MaxCodepoint)
	}

	numBlocks := MaxCodepoint / blockSize
	blockShift := uint(bits.TrailingZeros(uint(blockSize)))

	t := &Table{
		blockSize:  blockSize,
		blockShift: blockShift,
		blockMask:  rune(blockSize - 1),
		stage1:     make([]uint16, numBlocks),
	}

	propIndex := make(map[Record]uint16)
	sigToStage1 := make(map[string]uint16)

	for b := 0; b < numBlocks; b++ {
		start := b * blockSize
		blockIndices := make([]uint16, blockSize)
		for i := 0; i < blockSize; i++ {
			rec := perCP[start+i]
			idx, ok := propIndex[rec]
			if !ok {
				if len(t.properties) >= 1<<16 {
					return nil, fmt.Errorf("properties: more than 65536 unique records, widen stage2 index type")
				}
				idx = uint16(len(t.properties))
				propIndex[rec] = idx
				t.properties = append(t.properties, rec)
			}
			blockIndices[i] = idx
		}

		sig := blockSignature(blockIndices)
		if stage1Idx, ok := sigToStage1[sig]; ok {
			t.stage1[b] = stage1Idx
			continue
		}

		if len(t.stage2)/blockSize >= 1<<16 {
			return nil, fmt.Errorf("properties: more than 65536 unique stage2 blocks, widen stage1 index type")
		}
		stage1Idx := uint16(len(t.stage2) / blockSize)
		t.stage2 = append(t.stage2, blockIndices...)
		sigToStage1[sig] = stage1Idx
		t.stage1[b] = stage1Idx
	}

	return t, nil
}

func blockSignature(indices []uint16) string {
	buf := make([]byte, len(indices)*2)
	for i, v := range indices {
		buf[2*i] = byte(v)
		buf[2*i+1] = byte(v >> 8)
	}
	return string(buf)
}
