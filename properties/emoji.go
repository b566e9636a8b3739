package properties

// EmojiCategory is the derived UTS #51 emoji segmentation category. Unlike
// the other Record fields it is not read directly off a UCD file; it is
// computed from a codepoint's value and its other properties by
// DeriveEmojiCategory, following the rule table in UTS #51.
type EmojiCategory uint8

const (
	EmojiInvalid EmojiCategory = iota
	EmojiEmoji
	EmojiTextPresentation
	EmojiEmojiPresentation
	EmojiModifierCategory
	EmojiModifierBaseCategory
	EmojiRegionalIndicator
	EmojiKeyCapBase
	EmojiCombiningEnclosingKeyCap
	EmojiCombiningEnclosingCircleBackslash
	EmojiZWJ
	EmojiVS15
	EmojiVS16
	EmojiTagBase
	EmojiTagSequence
	EmojiTagTerm
)

func (c EmojiCategory) String() string {
	switch c {
	case EmojiEmoji:
		return "Emoji"
	case EmojiTextPresentation:
		return "EmojiTextPresentation"
	case EmojiEmojiPresentation:
		return "EmojiEmojiPresentation"
	case EmojiModifierCategory:
		return "EmojiModifier"
	case EmojiModifierBaseCategory:
		return "EmojiModifierBase"
	case EmojiRegionalIndicator:
		return "RegionalIndicator"
	case EmojiKeyCapBase:
		return "KeyCapBase"
	case EmojiCombiningEnclosingKeyCap:
		return "CombiningEnclosingKeyCap"
	case EmojiCombiningEnclosingCircleBackslash:
		return "CombiningEnclosingCircleBackslash"
	case EmojiZWJ:
		return "ZWJ"
	case EmojiVS15:
		return "VS15"
	case EmojiVS16:
		return "VS16"
	case EmojiTagBase:
		return "TagBase"
	case EmojiTagSequence:
		return "TagSequence"
	case EmojiTagTerm:
		return "TagTerm"
	}
	return "Invalid"
}

// DeriveEmojiCategory computes the emoji segmentation category for a
// codepoint given its other, already-assigned, Record fields. Rules are
// evaluated top-to-bottom; the first match wins (UTS #51).
func DeriveEmojiCategory(cp rune, rec Record) EmojiCategory {
	switch cp {
	case 0x20E3:
		return EmojiCombiningEnclosingKeyCap
	case 0x20E0:
		return EmojiCombiningEnclosingCircleBackslash
	case 0x200D:
		return EmojiZWJ
	case 0xFE0E:
		return EmojiVS15
	case 0xFE0F:
		return EmojiVS16
	case 0x1F3F4:
		return EmojiTagBase
	case 0xE007F:
		return EmojiTagTerm
	}
	if (cp >= 0xE0030 && cp <= 0xE0039) || (cp >= 0xE0061 && cp <= 0xE007A) {
		return EmojiTagSequence
	}
	if rec.Flags.Has(EmojiModifierBase) {
		return EmojiModifierBaseCategory
	}
	if rec.Flags.Has(EmojiModifier) {
		return EmojiModifierCategory
	}
	if rec.GraphemeClusterBreak == GCBRegionalIndicator {
		return EmojiRegionalIndicator
	}
	if isKeyCapBase(cp) {
		return EmojiKeyCapBase
	}
	if rec.Flags.Has(EmojiPresentation) {
		return EmojiEmojiPresentation
	}
	if rec.Flags.Has(Emoji) {
		return EmojiTextPresentation
	}
	return EmojiInvalid
}

// isKeyCapBase reports whether cp is one of '0'..'9', '#' or '*', the
// base codepoints a combining keycap sequence may follow.
func isKeyCapBase(cp rune) bool {
	if cp >= '0' && cp <= '9' {
		return true
	}
	return cp == '#' || cp == '*'
}
