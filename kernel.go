package fastxor

// Kernel names, as returned by Kernel.
const (
	KernelAVX2       = "avx2"
	KernelSSE2       = "sse2"
	KernelUnrolled64 = "unrolled64"
	KernelUnrolled32 = "unrolled32"
)

// kernel is one implementation of dst[i] ^= src[i].
// requires == nil means it runs anywhere.
type kernel struct {
	name     string
	requires func(f Features) bool
	fn       func(src, dst []byte)
}

func (k kernel) usable(f Features) bool {
	return k.requires == nil || k.requires(f)
}

// policy is ordered by preference: widest vector first,
// then the native word, then the 32bit word which is always there.
//
// xorBytes isn't listed, it's only used for remainders.
var policy = []kernel{
	{name: KernelAVX2, requires: func(f Features) bool { return f.HasAVX2 }, fn: xorAVX2},
	{name: KernelSSE2, requires: func(f Features) bool { return f.HasSSE2 }, fn: xorSSE2},
	{name: KernelUnrolled64, requires: func(f Features) bool { return f.Is64Bit }, fn: xorUnrolled64},
	{name: KernelUnrolled32, fn: xorUnrolled32},
}
