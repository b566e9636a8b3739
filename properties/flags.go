package properties

// Flags is a bitset over the boolean emoji/grapheme properties that the UCD
// expresses as standalone on/off files rather than enumerations.
type Flags uint8

const (
	Emoji Flags = 1 << iota
	EmojiComponent
	EmojiModifier
	EmojiModifierBase
	EmojiPresentation
	ExtendedPictographic
	GraphemeExtendCoreProperty // Grapheme_Extend, from DerivedCoreProperties.txt
)

// Has reports whether all bits in mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

var flagNames = map[string]Flags{
	"Emoji":                  Emoji,
	"Emoji_Component":        EmojiComponent,
	"Emoji_Modifier":         EmojiModifier,
	"Emoji_Modifier_Base":    EmojiModifierBase,
	"Emoji_Presentation":     EmojiPresentation,
	"Extended_Pictographic":  ExtendedPictographic,
	"Grapheme_Extend":        GraphemeExtendCoreProperty,
}

// FlagByName looks up the boolean-property name used by emoji-data.txt and
// DerivedCoreProperties.txt.
func FlagByName(name string) (Flags, bool) {
	f, ok := flagNames[name]
	return f, ok
}
