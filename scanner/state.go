package scanner

import (
	"github.com/Dooez/libunicode/grapheme"
	"github.com/Dooez/libunicode/properties"
	"github.com/Dooez/libunicode/utf8stream"
	"github.com/Dooez/libunicode/width"
)

// State is ScanText's resumable history: the UTF-8 decoder position, the
// grapheme breaker's pending history, and the cursor into whichever input
// slice the most recent ScanText call was given. Reusing a State across
// calls lets a caller resume a long or streamed text without re-deriving
// grapheme/decoder state at each call boundary.
type State struct {
	// Next is the byte offset, within the input slice passed to the most
	// recent ScanText call, of the first byte that call did not consume.
	// ScanText resets Next to 0 on entry; a caller resuming the same
	// stream passes input[Next:] (plus any newly available bytes) as the
	// next call's input, never the same slice reindexed from where Next
	// left off. If that input ended partway through a multi-byte UTF-8
	// sequence, the decoder already holds the bytes from Next onward, and
	// the next call's input starts after them instead.
	Next int

	decoder utf8stream.State
	breaker grapheme.Breaker
	table   *properties.Table
	ctx     *width.Context

	// pendingAdvanced is true when the codepoint sitting at input[Next] has
	// already been fed to breaker.Breakable by the previous scanOneCluster
	// call (the one that discovered it starts a new cluster). scanOneCluster
	// must not call Breakable on it a second time, or GB11/GB12-13's history
	// bits would be advanced twice for one codepoint.
	pendingAdvanced bool
}

// NewState returns a State ready to scan from the beginning of an input,
// looking property records up in table (properties.Default() if table is
// nil) and resolving Ambiguous widths per ctx (nil means the narrow
// default).
func NewState(table *properties.Table, ctx *width.Context) *State {
	if table == nil {
		table = properties.Default()
	}
	return &State{table: table, ctx: ctx}
}

// Reset rewinds the State to scan from byte offset 0 again, discarding any
// decoder/breaker history but keeping the configured table and context.
func (s *State) Reset() {
	next := 0
	table, ctx := s.table, s.ctx
	*s = State{Next: next, table: table, ctx: ctx}
}
