// Package dsp implements the streaming DSP primitives used to turn a raw
// I/Q sample stream into demodulated baseband audio: FIR filtering,
// fractional-rate downsampling, FM/AM demodulation, pilot-locked stereo
// separation, and de-emphasis.
package dsp

// FirFilter applies a fixed FIR kernel to a streaming real sequence with a
// configurable stride. Stride 2 lets one filter serve an interleaved I/Q
// buffer without deinterlacing it first; stride 1 serves a plain real
// stream. The filter owns a history buffer so that output is identical to
// filtering an infinite stream, independent of how the caller chops it into
// blocks.
type FirFilter struct {
	coeffs  []float32 // stored in reverse so Get can walk forward
	stride  int
	history []float32
	window  []float32
}

// NewFirFilter builds a filter from a coefficient kernel and a stride. The
// kernel is copied and reversed; the caller's slice is not retained.
func NewFirFilter(coeffs []float32, stride int) *FirFilter {
	n := len(coeffs)
	rev := make([]float32, n)
	for i, c := range coeffs {
		rev[n-1-i] = c
	}
	return &FirFilter{
		coeffs:  rev,
		stride:  stride,
		history: make([]float32, (n-1)*stride),
	}
}

// LoadSamples prepends the retained history to block, forming the working
// window that Get reads from, then updates the history from the tail of
// that window for the next call.
func (f *FirFilter) LoadSamples(block []float32) {
	needed := len(f.history) + len(block)
	if cap(f.window) < needed {
		f.window = make([]float32, needed)
	} else {
		f.window = f.window[:needed]
	}
	copy(f.window, f.history)
	copy(f.window[len(f.history):], block)
	copy(f.history, f.window[len(f.window)-len(f.history):])
}

// Get returns the filtered sample at position i of the window last loaded
// via LoadSamples. For stride 1, i ranges over 0..block_len-1; for stride 2,
// i must be even to read I and odd to read Q.
func (f *FirFilter) Get(i int) float32 {
	var acc float32
	for k, c := range f.coeffs {
		acc += c * f.window[i+k*f.stride]
	}
	return acc
}
