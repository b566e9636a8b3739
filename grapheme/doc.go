/*
Package grapheme implements Unicode Annex #29 extended grapheme cluster
breaking, extended by UTS #51's emoji ZWJ-sequence and regional-indicator
flag rules.

Breaker is a small stateful value, not a pooled automaton: the full GB1-GB999
rule table only ever needs the previous codepoint's break class plus two
extra bits of history (an emoji-ZWJ-sequence in progress, and the parity of
a run of regional indicators), so there is nothing here worth pooling.

  var b grapheme.Breaker
  table := properties.Default()
  for _, r := range []rune(s) {
      if b.Breakable(table.Get(r)) {
          // a grapheme cluster boundary precedes r
      }
  }

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.
*/
package grapheme

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("libunicode.grapheme")
}

// Version is the Unicode version this package's rule table conforms to.
const Version = "15.0.0"
