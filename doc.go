/*
Package libunicode provides building blocks for Unicode-aware text
processing: codepoint property lookup, a resumable UTF-8 decoder,
column-width resolution, UAX #29 grapheme cluster segmentation, and a
scanner that ties all of them together to turn a byte slice into
grapheme clusters under a caller-supplied column budget.

Description

libunicode is organized as a small stack of packages, each usable on
its own:

  properties  codepoint -> Record (script, category, width, grapheme
              class, emoji category) via a two-stage lookup table,
              either the process-wide bootstrap table from Default()
              or one built from a real UCD checkout via ucd.LoadDirectory
  ucd         UCD file scanner and loader, used to build properties
              tables at program startup or offline via cmd/gentables
  utf8stream  byte-at-a-time, resumable UTF-8 decoder
  width       East Asian Width resolution, including locale-sensitive
              handling of the Ambiguous category
  grapheme    a small stateful Breaker implementing UAX #29 grapheme
              cluster boundaries plus the UTS #51 emoji ZWJ and
              regional-indicator extensions
  scanner     ScanText, which decodes, segments and measures a byte
              slice in one pass, honoring a column budget and rolling
              back cleanly when a cluster would not fit
  simd        ASCII-run prescanning, dispatched to a scalar or SWAR
              kernel chosen once at startup based on CPU features

Attention

Before calling properties.Default(), or any function that calls it
implicitly (scanner.NewState with a nil table), the bootstrap table is built lazily and cached; there is
nothing to set up explicitly. Programs that need exact UCD conformance
rather than the bootstrap approximation should build a table with
ucd.LoadDirectory against a UCD release directory and pass it to
scanner.NewState.

BSD License

Copyright (c) 2017–20, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRETC, INDIRETC, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRATC, STRITC LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package libunicode

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer, for callers that have not set up a
// package-scoped trace of their own.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Version identifies the Unicode release this module's bundled
// property data and rule tables are written against.
const Version = "15.0.0"
