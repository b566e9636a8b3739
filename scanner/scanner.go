// Package scanner implements column-budgeted text scanning: walking a
// UTF-8 byte buffer one grapheme cluster at a time, converting each
// cluster to a column width, and stopping exactly at a caller-given
// column budget without ever emitting a partial cluster.
package scanner

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/Dooez/libunicode/properties"
	"github.com/Dooez/libunicode/simd"
	"github.com/Dooez/libunicode/utf8stream"
	"github.com/Dooez/libunicode/width"
)

func tracer() tracing.Trace {
	return tracing.Select("libunicode.scanner")
}

// ScanText consumes input from the start, feeding every complete grapheme
// cluster it finds, up to maxColumns's worth, to recv. It returns once the
// column budget is exhausted, the input is exhausted, or the next cluster
// would not fit the remaining budget.
//
// input is always a fresh slice relative to state: Next is reset to 0 on
// entry and left, on return, pointing at the first byte of input that was
// not consumed (end of input, or the first byte of a cluster that did not
// fit the budget). A caller resuming the same logical stream, whether
// because more budget is available or more bytes have arrived, passes
// input[result.End:] (plus any newly arrived bytes appended) as the next
// call's input; state.decoder and state.breaker carry the rest of the
// history across that boundary. The exception is input that ends partway
// through a multi-byte UTF-8 sequence: End then points at that sequence's
// first byte, but state.decoder already holds its bytes, so the next
// call's input begins with the bytes that follow them. No partial cluster is ever reported to
// recv or folded into the returned Result.
func ScanText(state *State, input []byte, maxColumns int, recv Receiver) Result {
	if recv == nil {
		recv = NullReceiver{}
	}
	state.Next = 0
	result := Result{Start: 0}
	buf := borrowClusterBuffer()
	defer releaseClusterBuffer(buf)

	for result.Columns < maxColumns && state.Next < len(input) {
		// A pending sequence from a previous call must resume in the
		// Complex path; the fast path only ever starts on a codepoint
		// boundary.
		if !state.decoder.Pending() {
			if n := trivialRunLength(state, input); n > 0 {
				advanced := scanTrivialRun(state, n, maxColumns-result.Columns, recv)
				if advanced == 0 {
					break
				}
				// The trivial branch emits bytes straight to recv without
				// ever calling breaker.Breakable, so the breaker's history
				// (and any pendingAdvanced left by a previous complex
				// cluster breaking just before this run) must be brought
				// back in sync here, or the next complex cluster either
				// skips Breakable on the wrong codepoint or starts from a
				// stale RI/pictographic history.
				state.breaker.AdvanceOther()
				state.pendingAdvanced = false
				result.Columns += advanced
				continue
			}
		}

		clusterStart := state.Next
		savedBreaker, savedPending := state.breaker, state.pendingAdvanced
		kind, ok := scanOneCluster(state, input, buf)
		if !ok {
			break
		}
		if kind == clusterKindInvalid {
			// An invalid sequence never joins a cluster and always charges
			// exactly 1 column, so it skips clusterWidthOf entirely.
			if result.Columns+1 > maxColumns {
				state.Next = clusterStart
				break
			}
			result.Columns++
			recv.InvalidCluster(clusterStart, state.Next)
			continue
		}
		w := clusterWidthOf(buf, state.ctx)
		if result.Columns+w > maxColumns {
			// Roll back not just the byte cursor but the breaker history
			// scanOneCluster advanced while tentatively consuming this
			// cluster, or a later retry with a bigger budget would resume
			// with the breaker desynced from the byte it actually sits at.
			state.Next = clusterStart
			state.breaker, state.pendingAdvanced = savedBreaker, savedPending
			break
		}
		result.Columns += w
		recv.Cluster(clusterStart, state.Next, w)
	}

	result.End = state.Next
	return result
}

// trivialRunLength is simd.PrescanASCII's result, shortened by one byte
// when the run is followed by more input whose first codepoint would
// combine into the same grapheme cluster as the run's last byte (a
// combining mark, ZWJ, or spacing mark immediately after an ASCII base).
// Without this check the fast ASCII path would hand out a one-column,
// one-byte cluster for the base character and then a separate cluster for
// the combiner, splitting what GB9 says is a single grapheme cluster.
func trivialRunLength(state *State, input []byte) int {
	// Printable ASCII (0x20-0x7E) is always Grapheme_Cluster_Break=Other
	// and always one column wide, which is what makes the fast path safe;
	// PrescanASCII itself stops before any C0 control or DEL, leaving
	// those to the general path (and its GB3 CR×LF handling).
	n := simd.PrescanASCII(input[state.Next:], len(input)-state.Next)
	if n == 0 || state.Next+n >= len(input) {
		return n
	}
	rec := state.table.Get(peekRune(input[state.Next+n:]))
	switch rec.GraphemeClusterBreak {
	case properties.GCBExtend, properties.GCBZWJ, properties.GCBSpacingMark:
		return n - 1
	}
	return n
}

// peekRune decodes the first codepoint of b without touching any State,
// returning the replacement character for empty or invalid input.
func peekRune(b []byte) rune {
	var probe utf8stream.State
	for _, c := range b {
		switch probe.Step(c) {
		case utf8stream.Success, utf8stream.Invalid:
			return probe.Rune
		}
	}
	return 0xFFFD
}

// scanTrivialRun is the Trivial branch of the original scan_text's
// Trivial/Complex split: a run of bytes simd.PrescanASCII has already
// certified as plain ASCII needs no grapheme segmentation at all, since
// every ASCII byte is its own one-column cluster. It respects the column
// budget and reports the whole run to recv in a single ASCIIRun call.
func scanTrivialRun(state *State, asciiLen, budget int, recv Receiver) int {
	n := asciiLen
	if n > budget {
		n = budget
	}
	if n == 0 {
		return 0
	}
	start := state.Next
	state.Next = start + n
	recv.ASCIIRun(start, state.Next)
	return n
}

// clusterKind tags what scanOneCluster found.
type clusterKind int

const (
	// clusterKindGrapheme is a normal, possibly multi-codepoint, grapheme
	// cluster built from one or more successfully decoded codepoints.
	clusterKindGrapheme clusterKind = iota
	// clusterKindInvalid is a single malformed UTF-8 byte sequence. It
	// never combines with neighboring codepoints and always charges 1
	// column; buf is left empty for this kind.
	clusterKindInvalid
)

// scanOneCluster decodes and segments exactly one grapheme cluster (or one
// invalid UTF-8 sequence) starting at state.Next, appending any decoded
// codepoint records into buf. It reports ok=false if the input ends
// mid-sequence with nothing complete available yet, in which case
// state.Next is left unmoved so a future call with more input can resume.
func scanOneCluster(state *State, input []byte, buf *clusterBuffer) (kind clusterKind, ok bool) {
	buf.reset()
	clusterStart := state.Next
	first := true

	for state.Next < len(input) {
		codepointStart := state.Next
		r, outcome, decOk := decodeOne(state, input)
		if !decOk {
			if first {
				// Mid-sequence truncation right at the cluster start:
				// nothing usable, and no more input will arrive within
				// this call. The decoder keeps the bytes it has consumed,
				// so the next call's input continues after them; Next stays
				// at clusterStart so they are not counted as consumed here.
				state.Next = clusterStart
				return clusterKindGrapheme, false
			}
			// The incomplete sequence follows a complete codepoint that
			// already belongs to this cluster; stop the cluster here, drop
			// the partial bytes from the decoder, and let the next call
			// pick them up fresh.
			state.decoder.Reset()
			state.Next = codepointStart
			return clusterKindGrapheme, true
		}

		if outcome == utf8stream.Invalid {
			if first {
				// An invalid sequence is its own unit: state.Next already
				// sits past the bytes Step consumed, and Step has already
				// reset the decoder, so the next call starts fresh.
				return clusterKindInvalid, true
			}
			// The invalid bytes follow a complete cluster already under
			// construction: stop the cluster here without consuming them,
			// and let the next scanOneCluster call handle them as their
			// own invalid unit.
			state.Next = codepointStart
			return clusterKindGrapheme, true
		}

		rec := state.table.Get(r)
		if first {
			if !state.pendingAdvanced {
				state.breaker.Breakable(rec) // GB1 on first-ever call; else advances state
			}
			state.pendingAdvanced = false
			first = false
		} else if state.breaker.Breakable(rec) {
			state.Next = codepointStart
			state.pendingAdvanced = true
			break
		}

		buf.records = append(buf.records, recordEntry{record: rec})
	}

	return clusterKindGrapheme, len(buf.records) > 0
}

// decodeOne runs state's resumable UTF-8 decoder far enough to produce one
// codepoint, reporting its rune value and outcome. ok is false if input
// runs out before a Success or Invalid outcome is reached.
func decodeOne(state *State, input []byte) (r rune, outcome utf8stream.Outcome, ok bool) {
	start := state.Next
	for state.Next < len(input) {
		o := state.decoder.Step(input[state.Next])
		state.Next++
		switch o {
		case utf8stream.Success:
			return state.decoder.Rune, o, true
		case utf8stream.Invalid:
			tracer().Debugf("scanner: invalid byte sequence at offset %d", start)
			return state.decoder.Rune, o, true
		}
	}
	return 0, utf8stream.Incomplete, false
}

func clusterWidthOf(buf *clusterBuffer, ctx *width.Context) int {
	recs := make([]properties.Record, len(buf.records))
	for i, e := range buf.records {
		recs[i] = e.record
	}
	return width.ResolveCluster(recs, ctx)
}
