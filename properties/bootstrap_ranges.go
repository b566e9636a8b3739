package properties

import "unicode"

// The ranges in this file stand in for auxiliary/GraphemeBreakProperty.txt
// and emoji/emoji-data.txt when Default() is built without a real UCD
// checkout (ucd.LoadDirectory). They are deliberately conservative
// approximations: close enough to pass the documented scenarios and common
// usage, but not a byte-for-byte copy of the real UCD files. A caller that
// needs exact conformance with a specific UCD release should build a Table
// with ucd.LoadDirectory instead.

// isGraphemeExtendCore approximates the Grapheme_Extend derived core
// property: nonspacing and enclosing marks. The real property also
// includes a short list of exceptional codepoints that the Go standard
// library's Mn/Me tables do not carry; they are omitted here.
func isGraphemeExtendCore(cp rune) bool {
	return unicode.Is(unicode.Mn, cp) || unicode.Is(unicode.Me, cp)
}

// prependCodepoints lists the Grapheme_Cluster_Break=Prepend codepoints as of
// Unicode 15: a short, closed list rather than an algorithmic range.
var prependCodepoints = []rune{
	0x0600, 0x0601, 0x0602, 0x0603, 0x0604, 0x0605,
	0x06DD, 0x070F, 0x08E2,
	0x0D4E,
	0x110BD, 0x110CD,
	0x111C2, 0x111C3,
	0x1193F, 0x11941,
	0x11A3A,
	0x11A84, 0x11A85, 0x11A86, 0x11A87, 0x11A88, 0x11A89,
	0x11A9D,
}

const (
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7
	hangulSBase = 0xAC00
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

// graphemeClusterBreakOf classifies cp per the Grapheme_Cluster_Break
// property values consulted by UAX #29's rules. Hangul syllable blocks are
// classified algorithmically (the same Jamo-index arithmetic UAX #29
// Annex describes) rather than via a literal range table, since the L/V/T
// split of the composed-syllable block depends on that arithmetic.
func graphemeClusterBreakOf(cp rune) GraphemeClusterBreak {
	switch cp {
	case '\r':
		return GCBCR
	case '\n':
		return GCBLF
	case 0x200C:
		// ZWNJ: General_Category=Format, but Grapheme_Cluster_Break=Extend,
		// not Control. Must be checked before the Cf fallback below.
		return GCBExtend
	case 0x200D:
		return GCBZWJ
	}
	for _, p := range prependCodepoints {
		if cp == p {
			return GCBPrepend
		}
	}
	if unicode.Is(unicode.Cc, cp) && cp != '\r' && cp != '\n' {
		return GCBControl
	}
	if unicode.Is(unicode.Zl, cp) || unicode.Is(unicode.Zp, cp) || unicode.Is(unicode.Cf, cp) {
		return GCBControl
	}
	if cp >= 0x1F1E6 && cp <= 0x1F1FF {
		return GCBRegionalIndicator
	}
	if gc, ok := hangulSyllableBreak(cp); ok {
		return gc
	}
	if cp >= hangulLBase && cp <= hangulLBase+hangulLCount-1 {
		return GCBL
	}
	if (cp >= hangulVBase && cp <= hangulVBase+hangulVCount-1) || (cp >= 0xD7B0 && cp <= 0xD7C6) {
		return GCBV
	}
	if (cp >= hangulTBase+1 && cp <= hangulTBase+hangulTCount-1) || (cp >= 0xD7CB && cp <= 0xD7FB) {
		return GCBT
	}
	if unicode.Is(unicode.Mc, cp) {
		return GCBSpacingMark
	}
	if isGraphemeExtendCore(cp) {
		return GCBExtend
	}
	return GCBOther
}

// hangulSyllableBreak classifies cp within the composed Hangul syllable
// block 0xAC00..0xD7A3: syllables with a zero trailing-consonant index are
// LV, all others are LVT. ok is false outside the block.
func hangulSyllableBreak(cp rune) (GraphemeClusterBreak, bool) {
	if cp < hangulSBase || cp > hangulSBase+hangulSCount-1 {
		return GCBOther, false
	}
	sIndex := int(cp - hangulSBase)
	if sIndex%hangulTCount == 0 {
		return GCBLV, true
	}
	return GCBLVT, true
}

// emojiModifierBaseRanges lists the skin-tone-modifiable base characters
// (Emoji_Modifier_Base), taken from emoji-data.txt's small closed set of
// fully-qualified single-person emoji.
var emojiModifierBaseRanges = []struct{ lo, hi rune }{
	{0x261D, 0x261D}, {0x26F9, 0x26F9},
	{0x270A, 0x270D},
	{0x1F385, 0x1F385},
	{0x1F3C2, 0x1F3C4}, {0x1F3C7, 0x1F3C7}, {0x1F3CA, 0x1F3CC},
	{0x1F442, 0x1F443}, {0x1F446, 0x1F450},
	{0x1F466, 0x1F478}, {0x1F47C, 0x1F47C},
	{0x1F481, 0x1F483}, {0x1F485, 0x1F487},
	{0x1F48F, 0x1F48F}, {0x1F491, 0x1F491},
	{0x1F4AA, 0x1F4AA},
	{0x1F574, 0x1F575}, {0x1F57A, 0x1F57A},
	{0x1F590, 0x1F590}, {0x1F595, 0x1F596},
	{0x1F645, 0x1F647}, {0x1F64B, 0x1F64F},
	{0x1F6A3, 0x1F6A3}, {0x1F6B4, 0x1F6B6},
	{0x1F6C0, 0x1F6C0}, {0x1F6CC, 0x1F6CC},
	{0x1F90C, 0x1F90C}, {0x1F90F, 0x1F90F},
	{0x1F918, 0x1F91F}, {0x1F926, 0x1F926},
	{0x1F930, 0x1F939}, {0x1F93D, 0x1F93E},
	{0x1F9B5, 0x1F9B6}, {0x1F9B8, 0x1F9B9},
	{0x1F9BB, 0x1F9BB}, {0x1F9CD, 0x1F9CF},
	{0x1F9D1, 0x1F9DD},
}

// emojiModifierRange holds the five skin-tone modifier codepoints
// (Emoji_Modifier): Fitzpatrick types 1-2 through 6.
var emojiModifierRange = struct{ lo, hi rune }{0x1F3FB, 0x1F3FF}

// extendedPictographicRanges approximates Extended_Pictographic with the
// emoji-presentation blocks that cover the vast majority of real emoji
// text: it is not a literal transcription of emoji-data.txt's full range
// list, which also reaches into dingbats and symbol blocks individually.
var extendedPictographicRanges = []struct{ lo, hi rune }{
	{0x00A9, 0x00A9}, {0x00AE, 0x00AE},
	{0x203C, 0x203C}, {0x2049, 0x2049},
	{0x2122, 0x2122}, {0x2139, 0x2139},
	{0x2194, 0x21AA},
	{0x231A, 0x231B},
	{0x2328, 0x2328},
	{0x23E9, 0x23FA},
	{0x24C2, 0x24C2},
	{0x25AA, 0x25FE},
	{0x2600, 0x27BF},
	{0x2934, 0x2935},
	{0x2B05, 0x2B07}, {0x2B1B, 0x2B1C}, {0x2B50, 0x2B50}, {0x2B55, 0x2B55},
	{0x3030, 0x3030}, {0x303D, 0x303D},
	{0x3297, 0x3297}, {0x3299, 0x3299},
	{0x1F000, 0x1FAFF},
}

var emojiPresentationDefaultRanges = []struct{ lo, hi rune }{
	{0x231A, 0x231B},
	{0x23E9, 0x23EC}, {0x23F0, 0x23F0}, {0x23F3, 0x23F3},
	{0x25FD, 0x25FE},
	{0x2614, 0x2615},
	{0x2648, 0x2653},
	{0x267F, 0x267F},
	{0x2693, 0x2693},
	{0x26A1, 0x26A1},
	{0x26AA, 0x26AB},
	{0x26BD, 0x26BE},
	{0x26C4, 0x26C5},
	{0x26CE, 0x26CE},
	{0x26D4, 0x26D4},
	{0x26EA, 0x26EA},
	{0x26F2, 0x26F3}, {0x26F5, 0x26F5}, {0x26FA, 0x26FA}, {0x26FD, 0x26FD},
	{0x2705, 0x2705},
	{0x270A, 0x270B},
	{0x2728, 0x2728},
	{0x274C, 0x274C}, {0x274E, 0x274E},
	{0x2753, 0x2755}, {0x2757, 0x2757},
	{0x2795, 0x2797},
	{0x27B0, 0x27B0}, {0x27BF, 0x27BF},
	{0x2B1B, 0x2B1C}, {0x2B50, 0x2B50}, {0x2B55, 0x2B55},
	{0x1F004, 0x1F004}, {0x1F0CF, 0x1F0CF},
	{0x1F18E, 0x1F18E}, {0x1F191, 0x1F19A},
	{0x1F1E6, 0x1F1FF},
	{0x1F201, 0x1F201}, {0x1F21A, 0x1F21A}, {0x1F22F, 0x1F22F},
	{0x1F232, 0x1F23A},
	{0x1F250, 0x1F251},
	{0x1F300, 0x1F5FF},
	{0x1F600, 0x1F64F},
	{0x1F680, 0x1F6FF},
	{0x1F900, 0x1F9FF},
	{0x1FA70, 0x1FAFF},
}

func inRanges(cp rune, ranges []struct{ lo, hi rune }) bool {
	for _, r := range ranges {
		if cp >= r.lo && cp <= r.hi {
			return true
		}
	}
	return false
}

// emojiFlagsOf sets the Emoji, Emoji_Presentation, Emoji_Modifier and
// Emoji_Modifier_Base flags a real emoji-data.txt load would set. See the
// comment at the top of this file on the approximations involved.
func emojiFlagsOf(cp rune) Flags {
	var f Flags
	isModifierBase := inRanges(cp, emojiModifierBaseRanges)
	isModifier := cp >= emojiModifierRange.lo && cp <= emojiModifierRange.hi
	isPictographic := inRanges(cp, extendedPictographicRanges)
	isEmojiPresentationDefault := inRanges(cp, emojiPresentationDefaultRanges)

	if isModifierBase || isModifier || isPictographic || isEmojiPresentationDefault {
		f |= Emoji
	}
	if isEmojiPresentationDefault {
		f |= EmojiPresentation
	}
	if isModifier {
		f |= EmojiModifier
	}
	if isModifierBase {
		f |= EmojiModifierBase
	}
	if isPictographic {
		f |= ExtendedPictographic
	}
	return f
}
