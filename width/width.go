// Package width maps a grapheme cluster to the number of terminal columns
// it occupies, following UAX #11's East Asian Width categories plus the
// column-budget conventions terminal emulators actually use.
package width

import "github.com/Dooez/libunicode/properties"

// Of returns the column width contributed by a single codepoint's record,
// ignoring grapheme-cluster combination effects (zero-width joiners,
// variation selectors): callers assembling a whole cluster's width should
// use Cluster instead.
func Of(rec properties.Record) int {
	if isZeroWidth(rec) {
		return 0
	}
	switch rec.EastAsianWidth {
	case properties.Wide, properties.Fullwidth:
		return 2
	default:
		return 1
	}
}

func isZeroWidth(rec properties.Record) bool {
	if rec.GeneralCategory == properties.Cc || rec.GeneralCategory == properties.Cf {
		return true
	}
	switch rec.GraphemeClusterBreak {
	case properties.GCBExtend, properties.GCBZWJ, properties.GCBSpacingMark, properties.GCBControl:
		return true
	}
	if rec.EmojiCategory == properties.EmojiVS15 || rec.EmojiCategory == properties.EmojiVS16 {
		return true
	}
	return false
}

// Cluster computes the width of a whole grapheme cluster from the widths
// of its constituent codepoints, applying the presentation-selector
// override the scenario table calls for: a trailing VS16 (emoji
// presentation selector) widens an otherwise-narrow base to 2 columns,
// since terminals render it as a full-width emoji glyph.
func Cluster(recs []properties.Record) int {
	if len(recs) == 0 {
		return 0
	}
	w := Of(recs[0])
	for _, rec := range recs[1:] {
		if rec.EmojiCategory == properties.EmojiVS16 && w < 2 {
			w = 2
		}
	}
	return w
}
