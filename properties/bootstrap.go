package properties

import (
	"sync"
	"unicode"

	xwidth "golang.org/x/text/width"
)

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// Default returns the process-wide bootstrap Table, built once (mirrors
// the teacher's setupOnce/SetupGraphemeClasses idiom) from the Go standard
// library's unicode tables, golang.org/x/text/width for East_Asian_Width,
// and a small set of hand-curated supplementary ranges for the properties
// neither exposes: Grapheme_Cluster_Break and the UTS #51 emoji flags.
//
// Default is a reasonable table for a process that has not called
// ucd.LoadDirectory against a real UCD checkout. It is not a substitute
// for ucd.LoadDirectory when exact conformance with a specific UCD release
// is required; see DESIGN.md for the tradeoff.
func Default() *Table {
	defaultTableOnce.Do(func() {
		defaultTable = buildBootstrapTable()
	})
	return defaultTable
}

func buildBootstrapTable() *Table {
	perCP := make([]Record, MaxCodepoint)
	for cp := 0; cp < MaxCodepoint; cp++ {
		perCP[cp] = bootstrapRecord(rune(cp))
	}
	for cp := 0; cp < MaxCodepoint; cp++ {
		perCP[cp].EmojiCategory = DeriveEmojiCategory(rune(cp), perCP[cp])
	}
	t, err := BuildTable(perCP, DefaultBlockSize)
	if err != nil {
		// perCP is always exactly MaxCodepoint long and DefaultBlockSize
		// always divides it; a failure here is a programming error.
		panic(err)
	}
	return t
}

func bootstrapRecord(cp rune) Record {
	rec := DefaultRecord
	rec.GeneralCategory = generalCategoryOf(cp)
	rec.Script = scriptOf(cp)
	rec.EastAsianWidth = eastAsianWidthOf(cp)
	rec.GraphemeClusterBreak = graphemeClusterBreakOf(cp)
	rec.Flags = emojiFlagsOf(cp)
	if isGraphemeExtendCore(cp) {
		rec.Flags |= GraphemeExtendCoreProperty
	}
	return rec
}

func generalCategoryOf(cp rune) GeneralCategory {
	for name, table := range unicode.Categories {
		if len(name) == 2 && unicode.Is(table, cp) {
			if gc, ok := GeneralCategoryByName(name); ok {
				return gc
			}
		}
	}
	return Cn
}

func scriptOf(cp rune) Script {
	for name, table := range unicode.Scripts {
		if unicode.Is(table, cp) {
			if s, ok := ScriptByName(name); ok {
				return s
			}
		}
	}
	return ScriptUnknown
}

func eastAsianWidthOf(cp rune) EastAsianWidth {
	props := xwidth.LookupRune(cp)
	switch props.Kind() {
	case xwidth.EastAsianAmbiguous:
		return Ambiguous
	case xwidth.EastAsianWide:
		return Wide
	case xwidth.EastAsianNarrow:
		return Narrow
	case xwidth.EastAsianFullwidth:
		return Fullwidth
	case xwidth.EastAsianHalfwidth:
		return Halfwidth
	}
	return Neutral
}
