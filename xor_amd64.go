package fastxor

// Both take whole blocks only: len(dst) == len(src) and
// it's a multiple of the vector width. Slices may be unaligned.

//go:noescape
func avx2Blocks(dst, src []byte)

//go:noescape
func sse2Blocks(dst, src []byte)
