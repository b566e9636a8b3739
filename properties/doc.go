/*
Package properties implements the codepoint-property table described by
UAX #11, UAX #29 and UTS #51: a fixed-width Record for every Unicode scalar
value, and a two-stage compressed Table for looking such records up in
constant time.

Records are built either by the offline/build-time loader in package ucd
(authoritative, parses a real UCD checkout) or by Default, a process-wide
bootstrap table assembled from the Go standard library's unicode tables and
golang.org/x/text/width plus a small number of hand-curated
supplementary ranges for properties the standard library does not expose
(Grapheme_Cluster_Break, the emoji properties). Both paths produce the same
Table shape and are safe for unsynchronized concurrent reads once built.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'
*/
package properties
