package properties

import "testing"

func TestBuildTableRoundTrips(t *testing.T) {
	perCP := make([]Record, MaxCodepoint)
	perCP['A'] = Record{GeneralCategory: Lu, Script: ScriptLatin, EastAsianWidth: Narrow}
	perCP[0x4E2D] = Record{GeneralCategory: Lo, Script: ScriptHan, EastAsianWidth: Wide}

	tbl, err := BuildTable(perCP, DefaultBlockSize)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if got := tbl.Get('A'); got.Script != ScriptLatin {
		t.Errorf("Get('A').Script = %v, want Latin", got.Script)
	}
	if got := tbl.Get(0x4E2D); got.EastAsianWidth != Wide {
		t.Errorf("Get(0x4E2D).EastAsianWidth = %v, want Wide", got.EastAsianWidth)
	}
	if got := tbl.Get('B'); got != DefaultRecord {
		t.Errorf("Get('B') = %+v, want DefaultRecord", got)
	}
	if got := tbl.Get(-1); got != DefaultRecord {
		t.Errorf("Get(-1) = %+v, want DefaultRecord", got)
	}
	if got := tbl.Get(0x110000); got != DefaultRecord {
		t.Errorf("Get(0x110000) = %+v, want DefaultRecord", got)
	}
}

func TestBuildTableDeduplicatesBlocks(t *testing.T) {
	perCP := make([]Record, MaxCodepoint)
	tbl, err := BuildTable(perCP, DefaultBlockSize)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	// every codepoint is DefaultRecord, so the whole table should collapse
	// to a single stage2 block and a single property record.
	if tbl.NumStage2Blocks() != 1 {
		t.Errorf("NumStage2Blocks() = %d, want 1", tbl.NumStage2Blocks())
	}
	if tbl.NumProperties() != 1 {
		t.Errorf("NumProperties() = %d, want 1", tbl.NumProperties())
	}
}

func TestBuildTableRejectsBadBlockSize(t *testing.T) {
	perCP := make([]Record, MaxCodepoint)
	if _, err := BuildTable(perCP, 300); err == nil {
		t.Errorf("BuildTable with non-power-of-two block size should fail")
	}
}

func TestDefaultTableBasics(t *testing.T) {
	tbl := Default()
	if got := tbl.Get('A'); got.Script != ScriptLatin {
		t.Errorf("Default().Get('A').Script = %v, want Latin", got.Script)
	}
	if got := tbl.Get(0x4E2D); got.EastAsianWidth != Wide {
		t.Errorf("Default().Get(0x4E2D).EastAsianWidth = %v, want Wide", got.EastAsianWidth)
	}
	if got := tbl.Get(0x1F1E9); got.GraphemeClusterBreak != GCBRegionalIndicator {
		t.Errorf("Default().Get(0x1F1E9).GraphemeClusterBreak = %v, want RegionalIndicator", got.GraphemeClusterBreak)
	}
}
