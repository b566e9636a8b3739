package properties

// GraphemeClusterBreak is the Unicode Grapheme_Cluster_Break property
// (UAX #29, auxiliary/GraphemeBreakProperty.txt).
type GraphemeClusterBreak uint8

const (
	GCBOther             GraphemeClusterBreak = iota // Other (the default record's value)
	GCBCR                                             // CR
	GCBLF                                             // LF
	GCBControl                                        // Control
	GCBExtend                                         // Extend
	GCBZWJ                                            // ZWJ
	GCBRegionalIndicator                              // Regional_Indicator
	GCBPrepend                                        // Prepend
	GCBSpacingMark                                    // SpacingMark
	GCBL                                              // L
	GCBV                                              // V
	GCBT                                               // T
	GCBLV                                              // LV
	GCBLVT                                             // LVT
	GCBEBase                                          // E_Base (vestigial in modern UCDs, kept for record shape)
	GCBEBaseGAZ                                       // E_Base_GAZ
	GCBEModifier                                      // E_Modifier
	GCBGlueAfterZWJ                                   // Glue_After_Zwj
	GCBUndefined                                      // Undefined
)

var gcbNames = map[string]GraphemeClusterBreak{
	"Other": GCBOther, "CR": GCBCR, "LF": GCBLF, "Control": GCBControl,
	"Extend": GCBExtend, "ZWJ": GCBZWJ, "Regional_Indicator": GCBRegionalIndicator,
	"Prepend": GCBPrepend, "SpacingMark": GCBSpacingMark, "L": GCBL, "V": GCBV, "T": GCBT,
	"LV": GCBLV, "LVT": GCBLVT, "E_Base": GCBEBase, "E_Base_GAZ": GCBEBaseGAZ,
	"E_Modifier": GCBEModifier, "Glue_After_Zwj": GCBGlueAfterZWJ, "Undefined": GCBUndefined,
}

// GraphemeClusterBreakByName looks up the UCD name used by
// GraphemeBreakProperty.txt.
func GraphemeClusterBreakByName(name string) (GraphemeClusterBreak, bool) {
	g, ok := gcbNames[name]
	return g, ok
}

func (g GraphemeClusterBreak) String() string {
	for name, v := range gcbNames {
		if v == g {
			return name
		}
	}
	return "Other"
}
