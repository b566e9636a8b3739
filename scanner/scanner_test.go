package scanner

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func setup(t *testing.T) func() {
	teardown := testconfig.QuickConfig(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

type recordingReceiver struct {
	asciiRuns []span
	clusters  []clusterRecord
	invalid   []span
}

type span struct {
	start, end int
}

type clusterRecord struct {
	start, end, width int
}

func (r *recordingReceiver) ASCIIRun(start, end int) {
	r.asciiRuns = append(r.asciiRuns, span{start, end})
}

func (r *recordingReceiver) Cluster(start, end, width int) {
	r.clusters = append(r.clusters, clusterRecord{start, end, width})
}

func (r *recordingReceiver) InvalidCluster(start, end int) {
	r.invalid = append(r.invalid, span{start, end})
}

func TestScanTextASCII(t *testing.T) {
	defer setup(t)()
	state := NewState(nil, nil)
	var recv recordingReceiver
	res := ScanText(state, []byte("Hello"), 100, &recv)
	if res.Columns != 5 {
		t.Errorf("Columns = %d, want 5", res.Columns)
	}
	if len(recv.asciiRuns) != 1 || recv.asciiRuns[0] != (span{0, 5}) {
		t.Errorf("asciiRuns = %v, want one run [0,5)", recv.asciiRuns)
	}
	if len(recv.clusters) != 0 {
		t.Errorf("got %d non-ASCII clusters, want 0", len(recv.clusters))
	}
}

func TestScanTextCombiningMark(t *testing.T) {
	defer setup(t)()
	state := NewState(nil, nil)
	var recv recordingReceiver
	// "A" + U+0301 (combining acute) + "B": the acute must stay glued to A.
	input := append([]byte{'A'}, 0xCC, 0x81)
	input = append(input, 'B')
	res := ScanText(state, input, 100, &recv)
	if res.Columns != 2 {
		t.Errorf("Columns = %d, want 2", res.Columns)
	}
	if len(recv.clusters) != 1 {
		t.Fatalf("got %d non-ASCII clusters, want 1 (A+combining mark)", len(recv.clusters))
	}
	if recv.clusters[0].start != 0 || recv.clusters[0].end != 3 {
		t.Errorf("cluster = [%d,%d), want [0,3) (A + combining mark)", recv.clusters[0].start, recv.clusters[0].end)
	}
	if len(recv.asciiRuns) != 1 || recv.asciiRuns[0] != (span{3, 4}) {
		t.Errorf("asciiRuns = %v, want one run [3,4) (B)", recv.asciiRuns)
	}
}

func TestScanTextCJKWide(t *testing.T) {
	defer setup(t)()
	state := NewState(nil, nil)
	var recv recordingReceiver
	res := ScanText(state, []byte("你好"), 100, &recv)
	if res.Columns != 4 {
		t.Errorf("Columns = %d, want 4", res.Columns)
	}
	if len(recv.clusters) != 2 {
		t.Errorf("got %d clusters, want 2", len(recv.clusters))
	}
}

func TestScanTextEmojiZWJSequence(t *testing.T) {
	defer setup(t)()
	state := NewState(nil, nil)
	var recv recordingReceiver
	// U+1F469 WOMAN, ZWJ, U+1F4BB PERSONAL COMPUTER.
	input := []byte{0xF0, 0x9F, 0x91, 0xA9, 0xE2, 0x80, 0x8D, 0xF0, 0x9F, 0x92, 0xBB}
	res := ScanText(state, input, 100, &recv)
	if len(recv.clusters) != 1 {
		t.Errorf("got %d clusters, want 1 (one ZWJ-joined cluster)", len(recv.clusters))
	}
	if res.End != len(input) {
		t.Errorf("End = %d, want %d", res.End, len(input))
	}
}

func TestScanTextRegionalIndicatorFlag(t *testing.T) {
	defer setup(t)()
	state := NewState(nil, nil)
	var recv recordingReceiver
	// U+1F1E9 U+1F1EA: German flag, one cluster.
	input := []byte{0xF0, 0x9F, 0x87, 0xA9, 0xF0, 0x9F, 0x87, 0xAA}
	ScanText(state, input, 100, &recv)
	if len(recv.clusters) != 1 {
		t.Errorf("got %d clusters, want 1 (regional indicator pair)", len(recv.clusters))
	}
}

func TestScanTextColumnBudgetTruncates(t *testing.T) {
	defer setup(t)()
	state := NewState(nil, nil)
	var recv recordingReceiver
	// "A" + U+1F600 (wide emoji, 2 columns) + "B", budget 2: only "A" fits,
	// since the emoji would push the total to 3.
	input := append([]byte{'A'}, 0xF0, 0x9F, 0x98, 0x80)
	input = append(input, 'B')
	res := ScanText(state, input, 2, &recv)
	if res.Columns != 1 {
		t.Errorf("Columns = %d, want 1", res.Columns)
	}
	if state.Next != 1 {
		t.Errorf("state.Next = %d, want 1 (rollback to start of emoji cluster)", state.Next)
	}
}

func TestScanTextInvalidUTF8(t *testing.T) {
	defer setup(t)()
	state := NewState(nil, nil)
	var recv recordingReceiver
	// "A" + lone continuation byte 0xA9 (no lead byte precedes it) + "B".
	input := []byte{'A', 0xA9, 'B'}
	res := ScanText(state, input, 100, &recv)
	if res.Columns != 3 {
		t.Errorf("Columns = %d, want 3 (A=1, invalid=1, B=1)", res.Columns)
	}
	if len(recv.invalid) != 1 || recv.invalid[0] != (span{1, 2}) {
		t.Errorf("invalid = %v, want one span [1,2)", recv.invalid)
	}
	if len(recv.asciiRuns) != 2 {
		t.Errorf("got %d ASCII runs, want 2 (A, then B)", len(recv.asciiRuns))
	}
}

func TestScanTextFlagAfterASCIIFastPath(t *testing.T) {
	defer setup(t)()
	state := NewState(nil, nil)
	var recv recordingReceiver
	// "e" with acute (non-ASCII, forces the complex path to look ahead and
	// break right before "!"), then "!" (ASCII, taken by the fast path),
	// then the German flag (two regional indicators that must join into
	// one cluster). The ASCII fast path must not leave the breaker
	// desynced, or the flag's two halves wrongly split into two clusters.
	input := append([]byte{0xC3, 0xA9, '!'}, 0xF0, 0x9F, 0x87, 0xA9, 0xF0, 0x9F, 0x87, 0xAA)
	res := ScanText(state, input, 100, &recv)
	if len(recv.clusters) != 2 {
		t.Fatalf("got %d clusters, want 2 (e-acute, flag); clusters=%v asciiRuns=%v", len(recv.clusters), recv.clusters, recv.asciiRuns)
	}
	if recv.clusters[1].start != 3 || recv.clusters[1].end != len(input) {
		t.Errorf("flag cluster = [%d,%d), want [3,%d) (both regional indicators joined)", recv.clusters[1].start, recv.clusters[1].end, len(input))
	}
	if res.End != len(input) {
		t.Errorf("End = %d, want %d", res.End, len(input))
	}
}

func TestScanTextIncompleteUTF8AcrossCalls(t *testing.T) {
	defer setup(t)()
	state := NewState(nil, nil)
	var recv recordingReceiver
	// First call: lone lead byte 0xC3 with nothing after it. Nothing is
	// reported yet; the decoder carries the pending byte to the next call.
	res := ScanText(state, []byte{0xC3}, 100, &recv)
	if res.Columns != 0 || res.End != 0 {
		t.Errorf("first call: Columns=%d End=%d, want 0, 0", res.Columns, res.End)
	}
	if len(recv.invalid) != 0 || len(recv.clusters) != 0 {
		t.Errorf("first call: expected no callbacks yet, got invalid=%v clusters=%v", recv.invalid, recv.clusters)
	}
	// Second call, fresh input starting with an invalid continuation byte:
	// the pending 0xC3 plus this byte together resolve to exactly one
	// invalid sequence, then scanning resumes at the next byte.
	state2 := NewState(nil, nil)
	ScanText(state2, []byte{0xC3}, 100, &recv)
	res2 := ScanText(state2, []byte{0x28}, 100, &recv)
	if len(recv.invalid) != 1 {
		t.Fatalf("got %d invalid sequences, want 1", len(recv.invalid))
	}
	if res2.Columns != 1 {
		t.Errorf("second call Columns = %d, want 1", res2.Columns)
	}
}
