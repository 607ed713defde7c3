//go:build !amd64
// +build !amd64

package fastxor

import "math/bits"

// There are no vector kernels for this GOARCH.
func hostFeatures() Features {
	return Features{Is64Bit: bits.UintSize == 64}
}
