package dsp

import "math"

// Deemphasizer is a one-pole IIR low-pass that undoes a transmitter's
// pre-emphasis. Each audio channel needs its own instance: the filter's
// last output is per-channel state and must never be shared across L/R.
type Deemphasizer struct {
	mult float64
	val  float64
}

// NewDeemphasizer builds a de-emphasis filter for the given sample rate and
// time constant in microseconds (50 for Europe, 75 for the US).
func NewDeemphasizer(sampleRate, timeConstantMicros float64) *Deemphasizer {
	tau := timeConstantMicros / 1e6
	return &Deemphasizer{mult: math.Exp(-1 / (tau * sampleRate))}
}

// Process de-emphasizes block in place.
func (d *Deemphasizer) Process(block []float32) {
	for i, x := range block {
		d.val = (1-d.mult)*float64(x) + d.mult*d.val
		block[i] = float32(d.val)
	}
}
