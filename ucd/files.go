package ucd

import (
	"os"
	"path/filepath"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/Dooez/libunicode/properties"
)

// fieldApplier applies a single Token's range to the growing perCP table.
// Each UCD file gets its own fieldApplier, called once per data line.
type fieldApplier func(perCP []properties.Record, tok *Token)

// fileSpec pairs a UCD file name, relative to the loader's root directory,
// with the applier that interprets its fields. Order matters: later files
// may refine records set by earlier ones, so applyFiles visits fileSpecs
// in exactly the order given here, mirroring the field-application order
// the original implementation this loader is adapted from uses.
type fileSpec struct {
	relPath string
	apply   fieldApplier
}

func defaultFileSpecs() []fileSpec {
	return []fileSpec{
		{"Scripts.txt", applyScripts},
		{"DerivedCoreProperties.txt", applyDerivedCoreProperties},
		{filepath.Join("extracted", "DerivedGeneralCategory.txt"), applyDerivedGeneralCategory},
		{filepath.Join("auxiliary", "GraphemeBreakProperty.txt"), applyGraphemeBreakProperty},
		{"EastAsianWidth.txt", applyEastAsianWidth},
		{filepath.Join("emoji", "emoji-data.txt"), applyEmojiData},
	}
}

// applyFiles walks defaultFileSpecs in order, applying each present file's
// fields to perCP. Missing files are not an error (a loader root need not
// carry every UCD file this package knows how to read), but they are
// accumulated into missing via an arraylist, the same accumulate-then-walk
// shape the field-grouping tooling this package is grounded on uses, so
// LoadDirectory can report every skipped file in one pass rather than
// failing on the first.
func applyFiles(root string, perCP []properties.Record) ([]string, error) {
	missing := arraylist.New()
	for _, spec := range defaultFileSpecs() {
		path := filepath.Join(root, spec.relPath)
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				missing.Add(path)
				continue
			}
			return nil, err
		}
		sc := newScanner(f)
		for {
			tok, ok, err := sc.Next()
			if err != nil {
				f.Close()
				return nil, err
			}
			if !ok {
				break
			}
			spec.apply(perCP, tok)
		}
		f.Close()
	}

	paths := make([]string, missing.Size())
	it := missing.Iterator()
	for it.Next() {
		paths[it.Index()] = it.Value().(string)
	}
	return paths, nil
}

func forEachRune(tok *Token, f func(rune)) {
	for r := tok.From; r <= tok.To; r++ {
		f(r)
	}
}

func applyScripts(perCP []properties.Record, tok *Token) {
	name := tok.Field(0)
	s, ok := properties.ScriptByName(name)
	if !ok {
		return
	}
	forEachRune(tok, func(r rune) {
		perCP[r].Script = s
	})
}

func applyDerivedGeneralCategory(perCP []properties.Record, tok *Token) {
	gc, ok := properties.GeneralCategoryByName(tok.Field(0))
	if !ok {
		return
	}
	forEachRune(tok, func(r rune) {
		perCP[r].GeneralCategory = gc
	})
}

func applyEastAsianWidth(perCP []properties.Record, tok *Token) {
	w, ok := properties.EastAsianWidthByName(tok.Field(0))
	if !ok {
		return
	}
	forEachRune(tok, func(r rune) {
		perCP[r].EastAsianWidth = w
	})
}

func applyGraphemeBreakProperty(perCP []properties.Record, tok *Token) {
	gcb, ok := properties.GraphemeClusterBreakByName(tok.Field(0))
	if !ok {
		return
	}
	forEachRune(tok, func(r rune) {
		perCP[r].GraphemeClusterBreak = gcb
	})
}

func applyDerivedCoreProperties(perCP []properties.Record, tok *Token) {
	if tok.Field(0) != "Grapheme_Extend" {
		return
	}
	forEachRune(tok, func(r rune) {
		perCP[r].Flags |= properties.GraphemeExtendCoreProperty
	})
}

func applyEmojiData(perCP []properties.Record, tok *Token) {
	flag, ok := properties.FlagByName(tok.Field(0))
	if !ok {
		return
	}
	forEachRune(tok, func(r rune) {
		perCP[r].Flags |= flag
	})
}
