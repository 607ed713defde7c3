package fastxor

// Features are the CPU & process properties kernels depend on.
type Features struct {
	HasAVX2 bool // 256bit integer vectors.
	HasSSE2 bool // 128bit integer vectors.
	Is64Bit bool // Native word is 8 Bytes.
}

// Prober reports Features. It's asked once per Xor call,
// so it should be cheap and must not have side effects.
type Prober interface {
	Features() Features
}

// ProberFunc adapts a function to Prober.
type ProberFunc func() Features

// Features implements Prober.
func (f ProberFunc) Features() Features {
	return f()
}

// HostProber reports what the running CPU & process support.
// Vector features are only reported on amd64.
var HostProber Prober = ProberFunc(hostFeatures)

// Mask returns a Prober reporting p's Features minus the ones set in off.
// e.g. Mask(HostProber, Features{HasAVX2: true}) makes SSE2 the best choice.
//
// Mask can only hide features, never add them.
func Mask(p Prober, off Features) Prober {
	return ProberFunc(func() Features {
		f := p.Features()
		f.HasAVX2 = f.HasAVX2 && !off.HasAVX2
		f.HasSSE2 = f.HasSSE2 && !off.HasSSE2
		f.Is64Bit = f.Is64Bit && !off.Is64Bit
		return f
	})
}
