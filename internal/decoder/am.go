package decoder

import "go-sdr-baseband/internal/dsp"

const (
	amInterRate  = 336000
	amFilterFreq = 10000
	amFilterLen  = 41
)

// amChain demodulates AM; right is always a copy of left, and AM skips
// de-emphasis entirely (it has no pre-emphasis to undo).
type amChain struct {
	demod *dsp.AmDemodulator
	down  *dsp.Downsampler
}

func newAmChain(inRate, outRate, bandwidth float64) *amChain {
	audioCoeffs := dsp.LowPassKernel(amInterRate, amFilterFreq, amFilterLen)
	return &amChain{
		demod: dsp.NewAmDemodulator(inRate, amInterRate, bandwidth, 101),
		down:  dsp.NewDownsampler(amInterRate, outRate, audioCoeffs),
	}
}

func (c *amChain) process(iq []float32, _ bool) StereoAudio {
	demodulated, carrier := c.demod.Demodulate(iq)
	left := c.down.Downsample(demodulated)
	right := make([]float32, len(left))
	copy(right, left)
	return StereoAudio{Left: left, Right: right, InStereo: false, Carrier: carrier}
}
