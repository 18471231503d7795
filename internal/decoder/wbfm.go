package decoder

import "go-sdr-baseband/internal/dsp"

// WBFM constants, matching the reference decoder's rate plan: demodulate at
// 336 kHz, a 19 kHz pilot, 50 microsecond (Europe) de-emphasis by default.
const (
	wbfmInterRate  = 336000
	wbfmMaxF       = 75000
	wbfmPilotFreq  = 19000
	wbfmDeemphTc   = 50
	wbfmFilterFreq = 10000
	wbfmFilterLen  = 41
)

// wbfmChain demodulates wideband FM, recovers the stereo L−R subchannel
// when requested and pilot-locked, and de-emphasizes each channel
// independently. Stereo separator and both downsamplers are distinct
// instances: each carries its own block-bridging filter history.
type wbfmChain struct {
	demod       *dsp.FmDemodulator
	monoDown    *dsp.Downsampler
	stereoDown  *dsp.Downsampler
	separator   *dsp.StereoSeparator
	leftDeemph  *dsp.Deemphasizer
	rightDeemph *dsp.Deemphasizer
}

func newWbfmChain(inRate, outRate float64) *wbfmChain {
	audioCoeffs := dsp.LowPassKernel(wbfmInterRate, wbfmFilterFreq, wbfmFilterLen)
	return &wbfmChain{
		demod:       dsp.NewFmDemodulator(inRate, wbfmInterRate, wbfmMaxF, wbfmMaxF*0.9, 101),
		monoDown:    dsp.NewDownsampler(wbfmInterRate, outRate, audioCoeffs),
		stereoDown:  dsp.NewDownsampler(wbfmInterRate, outRate, audioCoeffs),
		separator:   dsp.NewStereoSeparator(wbfmInterRate, wbfmPilotFreq),
		leftDeemph:  dsp.NewDeemphasizer(outRate, wbfmDeemphTc),
		rightDeemph: dsp.NewDeemphasizer(outRate, wbfmDeemphTc),
	}
}

func (c *wbfmChain) process(iq []float32, stereoRequested bool) StereoAudio {
	demodulated, carrier := c.demod.Demodulate(iq)

	left := c.monoDown.Downsample(demodulated)
	right := make([]float32, len(left))
	copy(right, left)
	inStereo := false

	if stereoRequested {
		signal := c.separator.Separate(demodulated)
		if signal.HasPilot {
			diff := c.stereoDown.Downsample(signal.Diff)
			n := len(diff)
			if n > len(left) {
				n = len(left)
			}
			for i := 0; i < n; i++ {
				left[i] += 2 * diff[i]
				right[i] -= 2 * diff[i]
			}
			inStereo = true
		}
	}

	c.leftDeemph.Process(left)
	c.rightDeemph.Process(right)

	return StereoAudio{Left: left, Right: right, InStereo: inStereo, Carrier: carrier}
}
