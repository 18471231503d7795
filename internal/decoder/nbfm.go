package decoder

import "go-sdr-baseband/internal/dsp"

const (
	nbfmInterRate  = 48000
	nbfmFilterFreq = 10000
	nbfmFilterLen  = 41
)

// nbfmChain demodulates narrowband FM; right is always a copy of left and
// de-emphasis does not apply to NBFM.
type nbfmChain struct {
	demod *dsp.FmDemodulator
	down  *dsp.Downsampler
}

func newNbfmChain(inRate, outRate, maxDeviation float64) *nbfmChain {
	audioCoeffs := dsp.LowPassKernel(nbfmInterRate, nbfmFilterFreq, nbfmFilterLen)
	return &nbfmChain{
		demod: dsp.NewFmDemodulator(inRate, nbfmInterRate, maxDeviation, maxDeviation*0.8, 351),
		down:  dsp.NewDownsampler(nbfmInterRate, outRate, audioCoeffs),
	}
}

func (c *nbfmChain) process(iq []float32, _ bool) StereoAudio {
	demodulated, carrier := c.demod.Demodulate(iq)
	left := c.down.Downsample(demodulated)
	right := make([]float32, len(left))
	copy(right, left)
	return StereoAudio{Left: left, Right: right, InStereo: false, Carrier: carrier}
}
