package ucd

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"

	"github.com/Dooez/libunicode/properties"
)

func TestLoadDirectoryAppliesFields(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	tbl, err := LoadDirectory("testdata/ucd")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if got := tbl.Get('A'); got.Script != properties.ScriptLatin || got.GeneralCategory != properties.Lu || got.EastAsianWidth != properties.Narrow {
		t.Errorf("Get('A') = %+v, want Latin/Lu/Narrow", got)
	}
	if got := tbl.Get(0x4E2D); got.Script != properties.ScriptHan || got.EastAsianWidth != properties.Wide {
		t.Errorf("Get(0x4E2D) = %+v, want Han/Wide", got)
	}
	if got := tbl.Get('\r'); got.GraphemeClusterBreak != properties.GCBCR {
		t.Errorf("Get('\\r').GraphemeClusterBreak = %v, want CR", got.GraphemeClusterBreak)
	}
	if got := tbl.Get(0x1F600); got.Flags&properties.Emoji == 0 {
		t.Errorf("Get(0x1F600) missing Emoji flag")
	}
	if got := tbl.Get(0x1F600); got.EmojiCategory != properties.EmojiEmojiPresentation {
		t.Errorf("Get(0x1F600).EmojiCategory = %v, want EmojiEmojiPresentation", got.EmojiCategory)
	}
}

func TestLoadDirectoryMissingFilesAreNotFatal(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	if _, err := LoadDirectory("testdata/does-not-exist"); err != nil {
		t.Errorf("LoadDirectory on an all-missing directory should not error, got %v", err)
	}
}
