//go:build !amd64
// +build !amd64

package fastxor

import "encoding/binary"

// Portable block bodies with the same contract as the amd64 assembly.
// hostFeatures never reports vectors here, so Xor won't pick them;
// they exist for keeping the block & tail bookkeeping testable.

func avx2Blocks(dst, src []byte) {
	for len(dst) >= avx2Width {
		xorWord64(dst[0:8], src[0:8])
		xorWord64(dst[8:16], src[8:16])
		xorWord64(dst[16:24], src[16:24])
		xorWord64(dst[24:32], src[24:32])
		dst, src = dst[avx2Width:], src[avx2Width:]
	}
}

func sse2Blocks(dst, src []byte) {
	for len(dst) >= sse2Width {
		xorWord64(dst[0:8], src[0:8])
		xorWord64(dst[8:16], src[8:16])
		dst, src = dst[sse2Width:], src[sse2Width:]
	}
}

func xorWord64(dst, src []byte) {
	binary.LittleEndian.PutUint64(dst, binary.LittleEndian.Uint64(dst)^binary.LittleEndian.Uint64(src))
}
