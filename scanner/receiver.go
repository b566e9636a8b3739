package scanner

// Receiver consumes ScanText's callbacks in strict input order: every
// ASCII run the fast path takes is one call, every completed
// non-ASCII grapheme cluster is one call, and every malformed UTF-8
// sequence is one call. Concatenating the byte ranges named by all three,
// in the order they are delivered, reconstructs exactly the prefix of the
// input that ScanText consumed.
type Receiver interface {
	// ASCIIRun reports a run of printable ASCII bytes (0x20-0x7E) found by
	// the SIMD prescan. Each byte is one column. The run stops early where
	// the column budget runs out, and one byte early when the next
	// codepoint would join the run's last byte in one grapheme cluster.
	ASCIIRun(start, end int)
	// Cluster reports one completed grapheme cluster outside the ASCII
	// fast path, with the column width assigned to it.
	Cluster(start, end, width int)
	// InvalidCluster reports one malformed UTF-8 byte sequence. Its
	// column charge is always 1, regardless of how many bytes it spans.
	InvalidCluster(start, end int)
}

// NullReceiver discards every callback. Useful when a caller only wants
// ScanText's Result (total columns consumed, byte range) and not the
// individual clusters.
type NullReceiver struct{}

// ASCIIRun implements Receiver.
func (NullReceiver) ASCIIRun(start, end int) {}

// Cluster implements Receiver.
func (NullReceiver) Cluster(start, end, width int) {}

// InvalidCluster implements Receiver.
func (NullReceiver) InvalidCluster(start, end int) {}
