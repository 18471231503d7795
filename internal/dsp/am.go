package dsp

import "math"

// AmDemodulator converts an interleaved I/Q stream into an amplitude-
// envelope audio stream, after anti-alias filtering and downsampling.
// DC removal and amplitude normalization are computed per block rather than
// carried as running state: an AM station's mean amplitude drifts slowly
// compared to a block's duration, so a stateful estimator buys nothing.
type AmDemodulator struct {
	downsampler *IqDownsampler
}

// NewAmDemodulator builds a demodulator. filterCutoff and kernelLen size the
// anti-alias low-pass applied before downsampling to fsOut.
func NewAmDemodulator(fsIn, fsOut, filterCutoff float64, kernelLen int) *AmDemodulator {
	coeffs := LowPassKernel(fsIn, filterCutoff, kernelLen)
	return &AmDemodulator{downsampler: NewIqDownsampler(fsIn, fsOut, coeffs)}
}

// Demodulate downsamples iq to the output rate, removes the per-block DC
// offset, and emits the normalized envelope (ampl-mean)/mean, plus a carrier
// flag for the block.
func (a *AmDemodulator) Demodulate(iq []float32) (audio []float32, carrier bool) {
	i, q := a.downsampler.Downsample(iq)
	n := len(i)
	if n == 0 {
		return nil, false
	}

	var meanI, meanQ float32
	for k := 0; k < n; k++ {
		meanI += i[k]
		meanQ += q[k]
	}
	meanI /= float32(n)
	meanQ /= float32(n)

	audio = make([]float32, n)
	var sumAmpl, sumPower float32
	for k := 0; k < n; k++ {
		di, dq := i[k]-meanI, q[k]-meanQ
		power := di*di + dq*dq
		ampl := float32(math.Sqrt(float64(power)))
		audio[k] = ampl
		sumAmpl += ampl
		sumPower += power
	}

	mean := sumAmpl / float32(n)
	if mean == 0 {
		for k := range audio {
			audio[k] = 0
		}
	} else {
		for k := range audio {
			audio[k] = (audio[k] - mean) / mean
		}
	}

	carrier = sumPower/float32(n) > carrierPowerThreshold
	return audio, carrier
}
