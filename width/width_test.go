package width

import (
	"testing"

	"github.com/Dooez/libunicode/properties"
)

func TestOfNarrowAndWide(t *testing.T) {
	tbl := properties.Default()
	if w := Of(tbl.Get('A')); w != 1 {
		t.Errorf("Of('A') = %d, want 1", w)
	}
	if w := Of(tbl.Get(0x4E2D)); w != 2 {
		t.Errorf("Of(0x4E2D) = %d, want 2", w)
	}
}

func TestOfZeroWidthCombiner(t *testing.T) {
	tbl := properties.Default()
	if w := Of(tbl.Get(0x0301)); w != 0 {
		t.Errorf("Of(U+0301 combining acute) = %d, want 0", w)
	}
}

func TestResolveAmbiguous(t *testing.T) {
	tbl := properties.Default()
	rec := tbl.Get(0x2223) // DIVIDES, East_Asian_Width=Ambiguous
	if rec.EastAsianWidth != properties.Ambiguous {
		t.Fatalf("test fixture assumption failed: U+2223 is not Ambiguous in Default()")
	}
	if w := Resolve(rec, LatinContext); w != 1 {
		t.Errorf("Resolve(ambiguous, LatinContext) = %d, want 1", w)
	}
	if w := Resolve(rec, EastAsianContext); w != 2 {
		t.Errorf("Resolve(ambiguous, EastAsianContext) = %d, want 2", w)
	}
}

func TestResolveClusterVS16Override(t *testing.T) {
	tbl := properties.Default()
	base := tbl.Get(0x2764)  // HEAVY BLACK HEART, narrow by default
	vs16 := tbl.Get(0xFE0F)  // emoji presentation selector
	if w := ResolveCluster([]properties.Record{base, vs16}, LatinContext); w != 2 {
		t.Errorf("ResolveCluster(heart, VS16) = %d, want 2", w)
	}
}
