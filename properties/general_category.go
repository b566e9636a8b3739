package properties

// GeneralCategory is the Unicode General_Category property, abbreviated
// per UCD convention.
type GeneralCategory uint8

// General_Category values, as used by extracted/DerivedGeneralCategory.txt.
const (
	Cn GeneralCategory = iota // Unassigned (the default record's category)
	Lu                        // Uppercase_Letter
	Ll                        // Lowercase_Letter
	Lt                        // Titlecase_Letter
	Lm                        // Modifier_Letter
	Lo                        // Other_Letter
	Mn                        // Nonspacing_Mark
	Me                        // Enclosing_Mark
	Mc                        // Spacing_Mark
	Nd                        // Decimal_Number
	Nl                        // Letter_Number
	No                        // Other_Number
	Zs                        // Space_Separator
	Zl                        // Line_Separator
	Zp                        // Paragraph_Separator
	Cc                        // Control
	Cf                        // Format
	Co                        // Private_Use
	Cs                        // Surrogate
	Pd                        // Dash_Punctuation
	Ps                        // Open_Punctuation
	Pe                        // Close_Punctuation
	Pc                        // Connector_Punctuation
	Po                        // Other_Punctuation
	Sm                        // Math_Symbol
	Sc                        // Currency_Symbol
	Sk                        // Modifier_Symbol
	So                        // Other_Symbol
	Pi                        // Initial_Punctuation
	Pf                        // Final_Punctuation
)

var generalCategoryNames = map[string]GeneralCategory{
	"Cn": Cn, "Lu": Lu, "Ll": Ll, "Lt": Lt, "Lm": Lm, "Lo": Lo,
	"Mn": Mn, "Me": Me, "Mc": Mc, "Nd": Nd, "Nl": Nl, "No": No,
	"Zs": Zs, "Zl": Zl, "Zp": Zp, "Cc": Cc, "Cf": Cf, "Co": Co, "Cs": Cs,
	"Pd": Pd, "Ps": Ps, "Pe": Pe, "Pc": Pc, "Po": Po,
	"Sm": Sm, "Sc": Sc, "Sk": Sk, "So": So, "Pi": Pi, "Pf": Pf,
}

// GeneralCategoryByName looks up the two-letter abbreviation used by the
// UCD. The second return value is false for names the loader does not
// recognize; such names are silently ignored rather than treated as errors.
func GeneralCategoryByName(name string) (GeneralCategory, bool) {
	gc, ok := generalCategoryNames[name]
	return gc, ok
}

func (gc GeneralCategory) String() string {
	for name, v := range generalCategoryNames {
		if v == gc {
			return name
		}
	}
	return "Cn"
}
