package fastxor

import "encoding/binary"

const (
	avx2Width = 32
	sse2Width = 16
)

// All kernels assume len(src) == len(dst), Xor checks it.

// xorAVX2 needs Features.HasAVX2.
func xorAVX2(src, dst []byte) {
	n := len(dst)
	done := (n / avx2Width) * avx2Width
	if done > 0 {
		avx2Blocks(dst[:done], src[:done])
	}
	if done < n {
		xorBytes(src[done:n], dst[done:])
	}
}

// xorSSE2 needs Features.HasSSE2.
func xorSSE2(src, dst []byte) {
	n := len(dst)
	done := (n / sse2Width) * sse2Width
	if done > 0 {
		sse2Blocks(dst[:done], src[:done])
	}
	if done < n {
		xorBytes(src[done:n], dst[done:])
	}
}

// xorUnrolled64 XORs 8 Bytes at a time.
// Words are read from byte offsets, so alignment doesn't matter,
// and the byte order doesn't matter either as long as reads & writes agree.
func xorUnrolled64(src, dst []byte) {
	n := len(dst)
	src = src[:n]
	done := n - n%8
	for i := 0; i < done; i += 8 {
		v := binary.LittleEndian.Uint64(dst[i:]) ^ binary.LittleEndian.Uint64(src[i:])
		binary.LittleEndian.PutUint64(dst[i:], v)
	}
	if done < n {
		xorBytes(src[done:], dst[done:])
	}
}

// xorUnrolled32 XORs 4 Bytes at a time. It works everywhere.
func xorUnrolled32(src, dst []byte) {
	n := len(dst)
	src = src[:n]
	done := n - n%4
	for i := 0; i < done; i += 4 {
		v := binary.LittleEndian.Uint32(dst[i:]) ^ binary.LittleEndian.Uint32(src[i:])
		binary.LittleEndian.PutUint32(dst[i:], v)
	}
	if done < n {
		xorBytes(src[done:], dst[done:])
	}
}

// xorBytes is the reference: dst[i] ^= src[i].
// Other kernels use it for the tail.
func xorBytes(src, dst []byte) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] ^= src[i]
	}
}
