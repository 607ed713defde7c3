// Copyright (c) 2020 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package fastxor XORs one byte slice into another in place,
// picking the widest kernel the CPU supports:
//
//	AVX2 (32 Bytes) > SSE2 (16 Bytes) > 64bit words > 32bit words
//
// Remainders shorter than a kernel's width are finished byte by byte.
// Slices needn't be aligned.
package fastxor

import (
	"github.com/pkg/errors"
)

// ErrLengthMismatch is the cause of the error returned when src and dst
// have different lengths.
var ErrLengthMismatch = errors.New("fastxor: length mismatch")

// Dispatcher selects a kernel for each call by asking its Prober.
type Dispatcher struct {
	probe  Prober
	policy []kernel
}

// New returns a Dispatcher driven by p.
// Use Mask(HostProber, ...) for turning off some features.
func New(p Prober) *Dispatcher {
	return &Dispatcher{probe: p, policy: policy}
}

var std = New(HostProber)

// Xor XORs src into dst: dst[i] ^= src[i].
// It returns an error (cause: ErrLengthMismatch) without touching dst
// if len(src) != len(dst).
func Xor(src, dst []byte) error {
	return std.Xor(src, dst)
}

// Kernel returns the name of the kernel Xor runs on this host.
func Kernel() string {
	return std.Kernel()
}

// Xor XORs src into dst with the kernel chosen by d's Prober.
func (d *Dispatcher) Xor(src, dst []byte) (err error) {
	if len(src) != len(dst) {
		err = errors.Wrapf(ErrLengthMismatch, "src: %d, dst: %d", len(src), len(dst))
		return
	}
	if len(src) == 0 {
		return
	}
	d.pick(d.probe.Features()).fn(src, dst)
	return
}

// Kernel returns the name of the kernel d would run right now.
func (d *Dispatcher) Kernel() string {
	return d.pick(d.probe.Features()).name
}

// pick returns the first kernel in d.policy which f can run.
// The last entry has no requirement, so there is always one.
func (d *Dispatcher) pick(f Features) kernel {
	for _, k := range d.policy {
		if k.usable(f) {
			return k
		}
	}
	return d.policy[len(d.policy)-1]
}
