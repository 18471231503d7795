package dsp

import (
	"math"
	"testing"
)

// generateTone builds an interleaved I/Q block for a tone at toneFreq
// modulating an FM carrier with peak deviation maxDeviation, sampled at fs.
func generateTone(fs, toneFreq, maxDeviation float64, n int) []float32 {
	block := make([]float32, 2*n)
	var phase float64
	for i := 0; i < n; i++ {
		dev := maxDeviation * math.Sin(2*math.Pi*toneFreq*float64(i)/fs)
		phase += 2 * math.Pi * dev / fs
		block[2*i] = float32(math.Cos(phase))
		block[2*i+1] = float32(math.Sin(phase))
	}
	return block
}

func TestFmDemodulator_CarrierDetection(t *testing.T) {
	const fsIn, fsOut = 336000.0, 336000.0
	d := NewFmDemodulator(fsIn, fsOut, 75000, 67500, 101)

	iq := generateTone(fsIn, 1000, 75000, 4096)
	_, carrier := d.Demodulate(iq)
	if !carrier {
		t.Error("expected carrier=true for a full-amplitude FM tone")
	}

	noise := make([]float32, len(iq))
	for i := range noise {
		noise[i] = 0.01
	}
	d2 := NewFmDemodulator(fsIn, fsOut, 75000, 67500, 101)
	_, carrier2 := d2.Demodulate(noise)
	if carrier2 {
		t.Error("expected carrier=false for a near-zero-power block")
	}
}

func TestFmDemodulator_ZeroBlockDecaysToZero(t *testing.T) {
	d := NewFmDemodulator(336000, 336000, 75000, 67500, 101)

	zeros := make([]float32, 2*4096)
	audio, _ := d.Demodulate(zeros)
	for i, v := range audio {
		if math.Abs(float64(v)) > 1e-3 {
			t.Fatalf("expected near-zero output at %d, got %f", i, v)
		}
	}
}

func TestFmDemodulator_StatefulAcrossBlocks(t *testing.T) {
	fullSignal := generateTone(336000, 1000, 50000, 256)

	whole := NewFmDemodulator(336000, 336000, 75000, 67500, 101)
	wholeOut, _ := whole.Demodulate(fullSignal)

	chunked := NewFmDemodulator(336000, 336000, 75000, 67500, 101)
	var chunkedOut []float32
	half := len(fullSignal) / 2
	half -= half % 2
	for _, part := range [][]float32{fullSignal[:half], fullSignal[half:]} {
		out, _ := chunked.Demodulate(part)
		chunkedOut = append(chunkedOut, out...)
	}

	if len(wholeOut) != len(chunkedOut) {
		t.Fatalf("mismatched lengths: whole=%d chunked=%d", len(wholeOut), len(chunkedOut))
	}
	for i := 1; i < len(wholeOut); i++ {
		if math.Abs(float64(wholeOut[i]-chunkedOut[i])) > 1e-3 {
			t.Fatalf("mismatch at %d: whole=%f chunked=%f", i, wholeOut[i], chunkedOut[i])
		}
	}
}
