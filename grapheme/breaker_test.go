package grapheme

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"

	"github.com/Dooez/libunicode/properties"
)

func setup(t *testing.T) func() {
	teardown := testconfig.QuickConfig(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func recFor(cp rune) properties.Record {
	return properties.Default().Get(cp)
}

func TestBreakerASCII(t *testing.T) {
	defer setup(t)()
	var b Breaker
	for i, r := range "Hi" {
		want := true // GB1 for 'H', GB999 between 'H' and 'i'
		if got := b.Breakable(recFor(r)); got != want {
			t.Errorf("rune %d (%q): Breakable = %v, want %v", i, r, got, want)
		}
	}
}

func TestBreakerCRLF(t *testing.T) {
	defer setup(t)()
	var b Breaker
	runes := []rune{'\r', '\n', 'x'}
	want := []bool{true, false, true}
	for i, r := range runes {
		if got := b.Breakable(recFor(r)); got != want[i] {
			t.Errorf("rune %d (%#U): Breakable = %v, want %v", i, r, got, want[i])
		}
	}
}

func TestBreakerEmojiZWJSequence(t *testing.T) {
	defer setup(t)()
	var b Breaker
	// U+1F469 WOMAN, ZWJ, U+1F4BB PERSONAL COMPUTER: one grapheme cluster.
	runes := []rune{0x1F469, 0x200D, 0x1F4BB}
	want := []bool{true, false, false}
	for i, r := range runes {
		if got := b.Breakable(recFor(r)); got != want[i] {
			t.Errorf("rune %d (%#U): Breakable = %v, want %v", i, r, got, want[i])
		}
	}
}

func TestBreakerRegionalIndicatorFlag(t *testing.T) {
	defer setup(t)()
	var b Breaker
	// U+1F1E9 U+1F1EA: the German flag, one cluster; a third RI starts a
	// new cluster rather than extending the pair (GB12/GB13 parity).
	runes := []rune{0x1F1E9, 0x1F1EA, 0x1F1EA}
	want := []bool{true, false, true}
	for i, r := range runes {
		if got := b.Breakable(recFor(r)); got != want[i] {
			t.Errorf("rune %d (%#U): Breakable = %v, want %v", i, r, got, want[i])
		}
	}
}

func TestPairBreakableHangul(t *testing.T) {
	if PairBreakable(properties.GCBL, properties.GCBV) {
		t.Errorf("L x V should not break (GB6)")
	}
	if !PairBreakable(properties.GCBOther, properties.GCBOther) {
		t.Errorf("Other x Other should break (GB999)")
	}
}
