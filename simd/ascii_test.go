package simd

import "testing"

var kernels = map[string]func([]byte) int{
	"scalar": scalarASCII,
	"swar128": swar128ASCII,
	"swar256": swar256ASCII,
}

func TestKernelsAgree(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("hello"),
		[]byte("hello, world, this is a longer all-ascii run of text"),
		append([]byte("short"), 0xC3, 0xA9),
		append(make([]byte, 40, 48), 0xE4, 0xBD, 0xA0, 0xE5, 0xA5, 0xBD, 0x21, 0x21),
		[]byte{0x80},
		[]byte("a\tb"),
		[]byte("tabs\tand\nnewlines"),
		append([]byte("twentynineprintablebytes!!!!!"), 0x7F),
		[]byte{0x7F},
		[]byte{0x1F},
	}
	for ci, c := range cases {
		want := scalarASCII(c)
		for name, k := range kernels {
			if got := k(c); got != want {
				t.Errorf("case %d: kernel %s = %d, want %d (scalar)", ci, name, got, want)
			}
		}
	}
}

func TestPrescanASCIIStopsAtControlBytes(t *testing.T) {
	if got := PrescanASCII([]byte("a\tb"), 3); got != 1 {
		t.Errorf("PrescanASCII(%q, 3) = %d, want 1", "a\tb", got)
	}
	if got := PrescanASCII([]byte{'x', 0x7F, 'y'}, 3); got != 1 {
		t.Errorf("PrescanASCII with DEL = %d, want 1", got)
	}
}

func TestPrescanASCIIRespectsLimit(t *testing.T) {
	b := []byte("abcdefghij")
	if got := PrescanASCII(b, 4); got != 4 {
		t.Errorf("PrescanASCII with limit 4 = %d, want 4", got)
	}
	if got := PrescanASCII(b, 100); got != len(b) {
		t.Errorf("PrescanASCII with limit 100 = %d, want %d", got, len(b))
	}
}
