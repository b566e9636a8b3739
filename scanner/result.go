package scanner

// Result reports how far ScanText got: the number of display columns it
// consumed, and the byte range [Start, End) of the input that those
// columns came from. End never splits a grapheme cluster; rollback
// guarantees every cluster included is either wholly consumed or not
// consumed at all.
type Result struct {
	Columns int
	Start   int
	End     int
}
