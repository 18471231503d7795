package dsp

import "math"

// carrierPowerThreshold is the mean I²+Q² power, in the [-1,1] byte-sample
// convention, above which a block is considered to carry signal rather than
// noise. Empirically tuned in the reference implementation this is ported
// from; §4.6's pilot-lock threshold assumes this same convention.
const carrierPowerThreshold = 0.002

// FmDemodulator converts an interleaved I/Q stream at fsIn into an
// instantaneous-frequency audio stream at fsOut using a polar discriminator,
// after anti-alias filtering and downsampling to fsOut.
type FmDemodulator struct {
	downsampler  *IqDownsampler
	amplConv     float32
	lastI, lastQ float32
}

// NewFmDemodulator builds a demodulator. filterCutoff and kernelLen size the
// anti-alias low-pass applied before downsampling to fsOut; maxDeviation is
// the peak frequency deviation used to scale the discriminator output to
// full-scale audio.
func NewFmDemodulator(fsIn, fsOut, maxDeviation, filterCutoff float64, kernelLen int) *FmDemodulator {
	coeffs := LowPassKernel(fsIn, filterCutoff, kernelLen)
	return &FmDemodulator{
		downsampler: NewIqDownsampler(fsIn, fsOut, coeffs),
		amplConv:    float32(fsOut / (2 * math.Pi * maxDeviation)),
	}
}

// Demodulate downsamples iq to the output rate and produces one
// instantaneous-frequency sample per output I/Q pair, plus a carrier flag
// for the block.
func (f *FmDemodulator) Demodulate(iq []float32) (audio []float32, carrier bool) {
	i, q := f.downsampler.Downsample(iq)
	n := len(i)
	audio = make([]float32, n)

	li, lq := f.lastI, f.lastQ
	var sumPower float32
	for k := 0; k < n; k++ {
		curI, curQ := i[k], q[k]
		real := li*curI + lq*curQ
		imag := li*curQ - curI*lq
		audio[k] = float32(math.Atan2(float64(imag), float64(real))) * f.amplConv
		li, lq = curI, curQ
		sumPower += curI*curI + curQ*curQ
	}
	f.lastI, f.lastQ = li, lq

	if n > 0 {
		carrier = sumPower/float32(n) > carrierPowerThreshold
	}
	return audio, carrier
}
