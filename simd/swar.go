package simd

import "encoding/binary"

// broadcast01 has the low bit of every byte set; multiplying a byte value
// by it replicates that byte into all eight lanes of the word.
const broadcast01 = 0x0101010101010101

// hasLess reports, for a 64-bit word x, whether any of its bytes is less
// than n (1 <= n <= 128). Standard SWAR byte-range trick: subtracting n
// from every lane borrows out of any lane whose original byte was smaller
// than n, leaving that lane's top bit set once masked against the
// complement of x.
func hasLess(x uint64, n uint64) uint64 {
	return (x - broadcast01*n) & ^x & (broadcast01 * 0x80)
}

// hasMore reports, for a 64-bit word x, whether any of its bytes is
// greater than n (0 <= n <= 127). The complementary trick to hasLess:
// adding 127-n to every lane carries into a lane's top bit exactly when
// that lane's original byte exceeded n.
func hasMore(x uint64, n uint64) uint64 {
	return ((x + broadcast01*(127-n)) | x) & (broadcast01 * 0x80)
}

// notPrintableMask is nonzero iff x contains a byte outside 0x20..0x7E:
// a C0 control, DEL, or any byte with the high bit set.
func notPrintableMask(x uint64) uint64 {
	return hasLess(x, 0x20) | hasMore(x, 0x7E)
}

// swar128ASCII treats the input as a stream of two-uint64 (16-byte) words,
// "SIMD within a register": one 64-bit range check tests eight bytes at
// once instead of looping over them. When a word contains a byte outside
// 0x20-0x7E, the loop falls back to a byte scan of just that word to find
// the exact offset, advancing the result by the real number of printable
// bytes found, never by the word width itself regardless of where within
// the word the non-printable byte actually sits.
func swar128ASCII(b []byte) int {
	return swarASCII(b, 2)
}

// swar256ASCII is the same technique over four 64-bit words (32 bytes) at
// a time, used when the CPU advertises a wide enough vector unit that the
// extra words per iteration pay for themselves.
func swar256ASCII(b []byte) int {
	return swarASCII(b, 4)
}

func swarASCII(b []byte, wordsPerChunk int) int {
	chunkSize := wordsPerChunk * 8
	i := 0
	for i+chunkSize <= len(b) {
		for w := 0; w < wordsPerChunk; w++ {
			word := binary.LittleEndian.Uint64(b[i+w*8 : i+w*8+8])
			if notPrintableMask(word) != 0 {
				// Found a word with at least one non-printable byte; scan
				// just this word (up to 8 bytes) to find the exact
				// boundary. The advance is the count of printable bytes
				// actually found, never chunkSize or the word width.
				for j := 0; j < 8; j++ {
					if c := b[i+w*8+j]; c < 0x20 || c > 0x7E {
						return i + w*8 + j
					}
				}
			}
		}
		i += chunkSize
	}
	return i + scalarASCII(b[i:])
}
