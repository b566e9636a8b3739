package simd

import "golang.org/x/sys/cpu"

// selectKernel picks the widest ASCII-prescan kernel the running CPU
// supports. It runs once, at package init, mirroring the original
// implementation's one-shot max_simd_size() resolution: there is no value
// in re-probing CPU features on every call.
func selectKernel() func([]byte) int {
	switch {
	case cpu.X86.HasAVX2:
		return swar256ASCII
	case cpu.X86.HasSSE42 || cpu.X86.HasSSE41:
		return swar128ASCII
	case cpu.ARM64.HasASIMD:
		return swar128ASCII
	default:
		return scalarASCII
	}
}
