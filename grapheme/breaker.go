package grapheme

import "github.com/Dooez/libunicode/properties"

// Breaker tracks the small amount of state UAX #29's rules need beyond the
// previous codepoint's break class: whether an emoji ZWJ sequence is still
// open (GB11) and the parity of the current run of regional indicators
// (GB12, GB13). The zero value is a Breaker positioned at the start of
// text.
type Breaker struct {
	prevClass           properties.GraphemeClusterBreak
	pictographicPending bool
	riRunParity         bool
	started             bool
}

// Reset returns the Breaker to its start-of-text state.
func (b *Breaker) Reset() {
	*b = Breaker{}
}

// AdvanceOther brings the Breaker in sync with having just consumed one or
// more codepoints whose Grapheme_Cluster_Break is Other and which carry no
// emoji flags, without evaluating or reporting whether a boundary preceded
// them. A caller that bypasses Breakable entirely for such codepoints (the
// scanner's printable-ASCII fast path never calls Breakable at all, since
// every printable ASCII byte is its own one-byte cluster) must call this
// once afterward, or the Breaker's history keeps describing whatever
// codepoint it last saw before the run. Since every codepoint in such a
// run is Other, one call has the same effect regardless of run length.
func (b *Breaker) AdvanceOther() {
	b.started = true
	b.riRunParity = false
	b.pictographicPending = false
	b.prevClass = properties.GCBOther
}

// Breakable reports whether a grapheme cluster boundary lies between the
// previously-fed codepoint and rec, then advances the Breaker's state to
// treat rec as the new "previous" codepoint. The first call after Reset
// (or on a fresh Breaker) always returns true, matching GB1.
func (b *Breaker) Breakable(rec properties.Record) bool {
	if !b.started {
		b.started = true
		b.advance(rec)
		return true
	}

	brk := pairBreakable(b.prevClass, rec.GraphemeClusterBreak)
	if brk && b.prevClass == properties.GCBZWJ && b.pictographicPending &&
		rec.Flags.Has(properties.ExtendedPictographic) {
		// GB11: \p{Extended_Pictographic} Extend* ZWJ x \p{Extended_Pictographic}
		brk = false
	}
	if brk && b.prevClass == properties.GCBRegionalIndicator &&
		rec.GraphemeClusterBreak == properties.GCBRegionalIndicator && b.riRunParity {
		// GB12/GB13: within a run of regional indicators, pairs join
		// greedily from the start of the run. riRunParity is true after an
		// odd number of RIs have been consumed in the current run, which is
		// exactly when the next RI completes a pair rather than starting one.
		brk = false
	}

	b.advance(rec)
	return brk
}

func (b *Breaker) advance(rec properties.Record) {
	switch rec.GraphemeClusterBreak {
	case properties.GCBRegionalIndicator:
		if b.prevClass == properties.GCBRegionalIndicator {
			b.riRunParity = !b.riRunParity
		} else {
			b.riRunParity = true
		}
	default:
		b.riRunParity = false
	}

	switch {
	case rec.Flags.Has(properties.ExtendedPictographic) && rec.GraphemeClusterBreak != properties.GCBExtend:
		b.pictographicPending = true
	case rec.GraphemeClusterBreak == properties.GCBExtend && b.pictographicPending:
		// stays pending through a run of Extend
	case rec.GraphemeClusterBreak == properties.GCBZWJ && b.pictographicPending:
		// stays pending through the ZWJ itself; GB11 consults it on the
		// very next codepoint
	default:
		b.pictographicPending = false
	}

	b.prevClass = rec.GraphemeClusterBreak
}

// pairBreakable implements GB3-GB9b and GB999 as a pure function of two
// adjacent break classes, ignoring the extended history GB11-GB13 need;
// Breaker.Breakable layers that history on top.
func pairBreakable(prev, next properties.GraphemeClusterBreak) bool {
	switch {
	case prev == properties.GCBCR && next == properties.GCBLF:
		return false // GB3
	case prev == properties.GCBControl || prev == properties.GCBCR || prev == properties.GCBLF:
		return true // GB4
	case next == properties.GCBControl || next == properties.GCBCR || next == properties.GCBLF:
		return true // GB5
	case prev == properties.GCBL && (next == properties.GCBL || next == properties.GCBV || next == properties.GCBLV || next == properties.GCBLVT):
		return false // GB6
	case (prev == properties.GCBLV || prev == properties.GCBV) && (next == properties.GCBV || next == properties.GCBT):
		return false // GB7
	case (prev == properties.GCBLVT || prev == properties.GCBT) && next == properties.GCBT:
		return false // GB8
	case next == properties.GCBExtend || next == properties.GCBZWJ:
		return false // GB9
	case next == properties.GCBSpacingMark:
		return false // GB9a
	case prev == properties.GCBPrepend:
		return false // GB9b
	default:
		return true // GB999
	}
}

// PairBreakable exposes pairBreakable's context-free rules (GB3-GB9b,
// GB999) for callers that only have two break classes on hand, without the
// GB11-GB13 history a full Breaker tracks.
func PairBreakable(prev, next properties.GraphemeClusterBreak) bool {
	return pairBreakable(prev, next)
}
