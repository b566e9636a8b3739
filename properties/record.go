package properties

// Record is the unit of lookup: every Unicode scalar value maps to exactly
// one Record. All fields are small integer kinds so that two records can be
// compared with ==, which the two-stage table builder relies on to
// deduplicate identical records.
type Record struct {
	GeneralCategory      GeneralCategory
	Script               Script
	EastAsianWidth       EastAsianWidth
	GraphemeClusterBreak GraphemeClusterBreak
	EmojiCategory        EmojiCategory
	Flags                Flags
}

// DefaultRecord is the record assigned to every codepoint the loader never
// touches: unassigned, Unknown script, Neutral width, Other break, no
// flags, invalid emoji category.
var DefaultRecord = Record{
	GeneralCategory:      Cn,
	Script:               ScriptUnknown,
	EastAsianWidth:       Neutral,
	GraphemeClusterBreak: GCBOther,
	EmojiCategory:        EmojiInvalid,
}
