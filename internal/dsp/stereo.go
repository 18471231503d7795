package dsp

import "math"

// pilotCorrThreshold is the mean-squared correlation below which the pilot
// loop is considered locked. The lookup tables are fixed at an 80 Hz
// capture range (±40 Hz) with 0.01 Hz resolution; enlarging or shrinking
// that range invalidates this threshold and must not be done without
// re-deriving it.
const pilotCorrThreshold = 4

// expAverage is an exponential moving average with a weight proportional to
// the number of samples it should effectively average over.
type expAverage struct {
	weight float64
	avg    float64
}

func newExpAverage(weight float64) *expAverage {
	return &expAverage{weight: weight}
}

func (e *expAverage) add(v float32) float32 {
	e.avg = (e.weight*e.avg + float64(v)) / (e.weight + 1)
	return float32(e.avg)
}

// StereoSignal is the result of pilot-locked stereo separation: whether the
// pilot was detected as locked, and the mixed 38 kHz-shifted L−R product
// before downstream low-pass filtering and decimation.
type StereoSignal struct {
	HasPilot bool
	Diff     []float32
}

// StereoSeparator recovers the DSB-SC L−R subchannel by locking a local
// quadrature oscillator to the 19 kHz pilot and mixing with its doubled
// (38 kHz) frequency. It does not filter its output; that is the caller's
// job via a Downsampler on Diff.
type StereoSeparator struct {
	sinTable [8001]float32
	cosTable [8001]float32

	sin, cos float32 // unit phasor state

	iavg, qavg, cavg *expAverage
}

// NewStereoSeparator builds a separator for the given sample rate and pilot
// frequency (nominally 19000 Hz). The detune tables span pilotFreq±40 Hz at
// 0.01 Hz resolution.
func NewStereoSeparator(sampleRate, pilotFreq float64) *StereoSeparator {
	s := &StereoSeparator{
		sin:  0,
		cos:  1,
		iavg: newExpAverage(sampleRate * 0.03),
		qavg: newExpAverage(sampleRate * 0.03),
		cavg: newExpAverage(sampleRate * 0.15),
	}
	// Start the correlation average at the lock threshold, so a stream with
	// no pilot never reports lock while the average is still warming up.
	s.cavg.avg = pilotCorrThreshold
	for i := 0; i <= 8000; i++ {
		freq := (pilotFreq + float64(i)/100.0 - 40) * 2 * math.Pi / sampleRate
		s.sinTable[i] = float32(math.Sin(freq))
		s.cosTable[i] = float32(math.Cos(freq))
	}
	return s
}

func clampCorr(v float32) float32 {
	if v > 4 {
		return 4
	}
	if v < -4 {
		return -4
	}
	return v
}

// Separate mixes samples down with the locked 38 kHz local oscillator and
// reports whether the pilot loop is tracking the block.
func (s *StereoSeparator) Separate(samples []float32) StereoSignal {
	out := make([]float32, len(samples))
	sin, cos := s.sin, s.cos

	for i, x := range samples {
		hdev := s.qavg.add(x * cos)
		vdev := s.iavg.add(x * sin)
		out[i] = x * sin * cos * 2

		var corr float32
		switch {
		case vdev > 0:
			corr = clampCorr(hdev / vdev)
		case hdev == 0:
			corr = 0
		case hdev > 0:
			corr = 4
		default:
			corr = -4
		}

		idx := int(math.Round(float64((corr + 4) * 1000)))
		if idx < 0 {
			idx = 0
		} else if idx > 8000 {
			idx = 8000
		}
		newSin := sin*s.cosTable[idx] + cos*s.sinTable[idx]
		cos = cos*s.cosTable[idx] - sin*s.sinTable[idx]
		sin = newSin
		if mag := float32(math.Sqrt(float64(sin*sin + cos*cos))); mag > 0 {
			sin /= mag
			cos /= mag
		}

		s.cavg.add(corr * corr)
	}
	s.sin, s.cos = sin, cos

	return StereoSignal{HasPilot: s.cavg.avg < pilotCorrThreshold, Diff: out}
}
