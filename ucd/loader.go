// Package ucd builds a properties.Table from a directory of raw Unicode
// Character Database files, applying them in the field-precedence order
// the domain stack's bootstrap table otherwise only approximates.
package ucd

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/Dooez/libunicode/properties"
)

func tracer() tracing.Trace {
	return tracing.Select("libunicode.ucd")
}

// LoadDirectory reads the UCD files defaultFileSpecs lists out of root and
// builds a properties.Table from them. Files the root does not contain are
// skipped, not fatal: a directory holding only EastAsianWidth.txt still
// produces a usable, if partial, table.
//
// Fields are applied in the fixed order Scripts.txt,
// DerivedCoreProperties.txt, extracted/DerivedGeneralCategory.txt,
// auxiliary/GraphemeBreakProperty.txt, EastAsianWidth.txt,
// emoji/emoji-data.txt, so that a later file's fields always take
// precedence over an earlier file's for the same codepoint and property.
func LoadDirectory(root string, opts ...Option) (*properties.Table, error) {
	cfg := &loadConfig{blockSize: properties.DefaultBlockSize}
	for _, opt := range opts {
		opt(cfg)
	}
	trace := cfg.logSink
	if trace == nil {
		trace = tracer()
	}

	perCP := make([]properties.Record, properties.MaxCodepoint)
	for i := range perCP {
		perCP[i] = properties.DefaultRecord
	}

	missing, err := applyFiles(root, perCP)
	if err != nil {
		return nil, fmt.Errorf("ucd: loading %s: %w", root, err)
	}
	for _, path := range missing {
		trace.Infof("ucd: %s not found, skipping", path)
	}

	for i := range perCP {
		perCP[i].EmojiCategory = properties.DeriveEmojiCategory(rune(i), perCP[i])
	}

	t, err := properties.BuildTable(perCP, cfg.blockSize)
	if err != nil {
		return nil, fmt.Errorf("ucd: building table: %w", err)
	}
	trace.Debugf("ucd: built table with %d unique records, %d stage2 blocks", t.NumProperties(), t.NumStage2Blocks())
	return t, nil
}
