package fastxor

import (
	"math/bits"

	"github.com/templexxx/cpu"
)

// cpu.X86.HasAVX2 is false unless the OS saves YMM registers too.
func hostFeatures() Features {
	return Features{
		HasAVX2: cpu.X86.HasAVX2,
		HasSSE2: cpu.X86.HasSSE2,
		Is64Bit: bits.UintSize == 64,
	}
}
