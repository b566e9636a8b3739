package width

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"

	"github.com/Dooez/libunicode/properties"
)

func tracer() tracing.Trace {
	return tracing.Select("libunicode.width")
}

// Context carries the locale/script information UAX #11 calls "context":
// knowledge that lets an Ambiguous-width codepoint resolve to either
// narrow or wide, depending on whether the surrounding text is set in an
// East Asian script.
type Context struct {
	Script  language.Script
	Locale  string
	resolve func(int) int
}

// EastAsianContext resolves Ambiguous-width codepoints to wide (2 columns),
// appropriate for text set in Chinese, Japanese or Korean.
var EastAsianContext = &Context{
	Script:  language.MustParseScript("Hant"),
	Locale:  "zh-Hant",
	resolve: func(int) int { return 2 },
}

// LatinContext resolves Ambiguous-width codepoints to narrow (1 column),
// appropriate for text set in a Western script.
var LatinContext = &Context{
	Script:  language.MustParseScript("Latn"),
	Locale:  "en-US",
	resolve: func(int) int { return 1 },
}

// ContextFromEnvironment detects the host OS locale via jibber_jabber and
// returns a Context whose Ambiguous resolution matches that locale's
// script. On detection failure it falls back to LatinContext's behavior.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf("width: locale detection failed: %v", err)
		userLocale = "en-US"
	} else {
		tracer().Infof("width: detected locale %v", userLocale)
	}
	lang := language.Make(userLocale)
	script, _ := lang.Script()
	return &Context{
		Script:  script,
		Locale:  userLocale,
		resolve: resolverFor(script, lang),
	}
}

var eastAsianScripts = map[string]bool{
	"Bopo": true, "Hanb": true, "Hani": true, "Hans": true,
	"Hant": true, "Hang": true, "Hira": true, "Kana": true,
	"Lana": true, "Kitl": true, "Kits": true, "Nkdb": true,
	"Nkgb": true, "Plrd": true,
	"Batk": true, "Beng": true, "Bugi": true, "Mymr": true,
	"Cham": true, "Java": true, "Khmr": true, "Laoo": true,
	"Lisu": true, "Mtei": true, "Thai": true, "Yiii": true,
	"Bali": true, "Khar": true, "Rjng": true, "Roro": true,
	"Tglg": true, "Wole": true, "Buhd": true, "Tagb": true,
}

var eastAsianMatch = language.NewMatcher([]language.Tag{
	language.Chinese,
	language.Japanese,
	language.Korean,
	language.Vietnamese,
	language.Thai,
	language.Mongolian,
	language.Burmese,
	language.Khmer,
})

func resolverFor(script language.Script, lang language.Tag) func(int) int {
	if eastAsianScripts[script.String()] {
		return func(int) int { return 2 }
	}
	if _, _, confidence := eastAsianMatch.Match(lang); confidence != language.No {
		return func(int) int { return 2 }
	}
	return func(int) int { return 1 }
}

// Resolve returns the column width for rec, consulting ctx only when
// rec.EastAsianWidth is Ambiguous. A nil ctx behaves like LatinContext,
// the documented default for Ambiguous-width resolution (see DESIGN.md).
func Resolve(rec properties.Record, ctx *Context) int {
	if rec.EastAsianWidth != properties.Ambiguous {
		return Of(rec)
	}
	if isZeroWidth(rec) {
		return 0
	}
	if ctx == nil || ctx.resolve == nil {
		return 1
	}
	return ctx.resolve(1)
}

// ResolveCluster is Cluster, but resolving each codepoint's width through
// ctx the way Resolve does for a single record. Scanners building up a
// cluster's records incrementally should call this once per completed
// cluster rather than summing Resolve results themselves, since the VS16
// override has to see the whole cluster at once.
func ResolveCluster(recs []properties.Record, ctx *Context) int {
	if len(recs) == 0 {
		return 0
	}
	w := Resolve(recs[0], ctx)
	for _, rec := range recs[1:] {
		if rec.EmojiCategory == properties.EmojiVS16 && w < 2 {
			w = 2
		}
	}
	return w
}
