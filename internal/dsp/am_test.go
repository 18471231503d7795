package dsp

import (
	"math"
	"testing"
)

func generateAmTone(fs, toneFreq, carrierAmpl float64, n int) []float32 {
	block := make([]float32, 2*n)
	for i := 0; i < n; i++ {
		mod := 1 + 0.5*math.Sin(2*math.Pi*toneFreq*float64(i)/fs)
		block[2*i] = float32(carrierAmpl * mod)
		block[2*i+1] = 0
	}
	return block
}

func TestAmDemodulator_CarrierDetection(t *testing.T) {
	d := NewAmDemodulator(1024000, 336000, 10000, 41)
	iq := generateAmTone(1024000, 1000, 0.5, 8192)
	_, carrier := d.Demodulate(iq)
	if !carrier {
		t.Error("expected carrier=true for a strong AM carrier")
	}

	noisy := NewAmDemodulator(1024000, 336000, 10000, 41)
	noise := make([]float32, len(iq))
	for i := range noise {
		noise[i] = 0.01
	}
	_, carrier2 := noisy.Demodulate(noise)
	if carrier2 {
		t.Error("expected carrier=false for a near-zero-power block")
	}
}

func TestAmDemodulator_ZeroMeanYieldsZeroOutput(t *testing.T) {
	d := NewAmDemodulator(1024000, 336000, 10000, 41)
	zeros := make([]float32, 2*8192)
	audio, carrier := d.Demodulate(zeros)
	if carrier {
		t.Error("expected carrier=false for an all-zero block")
	}
	for i, v := range audio {
		if v != 0 {
			t.Fatalf("expected zero output at %d, got %f", i, v)
		}
	}
}

func TestAmDemodulator_OutputLengthMatchesDownsample(t *testing.T) {
	d := NewAmDemodulator(1024000, 336000, 10000, 41)
	iq := generateAmTone(1024000, 1000, 0.5, 8192)
	audio, _ := d.Demodulate(iq)
	want := int(float64(len(iq)/2) / (1024000.0 / 336000.0))
	if len(audio) != want {
		t.Fatalf("expected %d samples, got %d", want, len(audio))
	}
}
