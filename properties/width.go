package properties

// EastAsianWidth is the Unicode East_Asian_Width property (UAX #11).
type EastAsianWidth uint8

const (
	Neutral    EastAsianWidth = iota // N
	Ambiguous                        // A
	Wide                              // W
	Narrow                            // Na
	Halfwidth                        // H
	Fullwidth                        // F
)

var eastAsianWidthNames = map[string]EastAsianWidth{
	"N": Neutral, "A": Ambiguous, "W": Wide, "Na": Narrow, "H": Halfwidth, "F": Fullwidth,
}

// EastAsianWidthByName looks up the two-letter (or one-letter) abbreviation
// used by EastAsianWidth.txt.
func EastAsianWidthByName(name string) (EastAsianWidth, bool) {
	w, ok := eastAsianWidthNames[name]
	return w, ok
}

func (w EastAsianWidth) String() string {
	switch w {
	case Neutral:
		return "N"
	case Ambiguous:
		return "A"
	case Wide:
		return "W"
	case Narrow:
		return "Na"
	case Halfwidth:
		return "H"
	case Fullwidth:
		return "F"
	}
	return "N"
}
