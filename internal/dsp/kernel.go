package dsp

import "math"

// LowPassKernel generates a Blackman-windowed-sinc low-pass FIR kernel for
// the given sample rate and half-amplitude cutoff. length is forced odd.
//
// The window indexing uses (i+1)/(length+1), not the textbook (i)/(length-1)
// form — this asymmetric convention is load-bearing for audio parity with
// the reference implementation and must not be "simplified" away.
func LowPassKernel(sampleRate, halfAmplFreq float64, length int) []float32 {
	if length%2 == 0 {
		length++
	}
	omega := 2 * math.Pi * halfAmplFreq / sampleRate
	center := float64(length-1) / 2

	h := make([]float64, length)
	var sum float64
	for i := 0; i < length; i++ {
		x := float64(i) - center
		var v float64
		if x == 0 {
			v = omega
		} else {
			angle := 2 * math.Pi * float64(i+1) / float64(length+1)
			window := 0.42 - 0.5*math.Cos(angle) + 0.08*math.Cos(2*angle)
			v = math.Sin(omega*x) / x * window
		}
		h[i] = v
		sum += v
	}

	out := make([]float32, length)
	for i, v := range h {
		out[i] = float32(v / sum)
	}
	return out
}
