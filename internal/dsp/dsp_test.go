package dsp

import (
	"math"
	"testing"
)

const float32EqualityThreshold = 1e-4

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= float32EqualityThreshold
}

func TestLowPassKernel_SymmetryAndUnityGain(t *testing.T) {
	const length = 51
	taps := LowPassKernel(240000, 15000, length)

	if len(taps) != length {
		t.Fatalf("expected %d taps, got %d", length, len(taps))
	}

	for i := 0; i < length/2; i++ {
		if !almostEqual(taps[i], taps[length-1-i]) {
			t.Errorf("tap %d (%f) != tap %d (%f)", i, taps[i], length-1-i, taps[length-1-i])
		}
	}

	var sum float32
	for _, tap := range taps {
		sum += tap
	}
	if !almostEqual(sum, 1.0) {
		t.Errorf("expected sum of taps to be 1.0, got %f", sum)
	}
}

func TestLowPassKernel_ForcesOddLength(t *testing.T) {
	taps := LowPassKernel(48000, 10000, 40)
	if len(taps)%2 == 0 {
		t.Fatalf("expected odd kernel length, got %d", len(taps))
	}
}

func TestFirFilter_ContinuityAcrossBlocks(t *testing.T) {
	coeffs := []float32{0.1, 0.2, 0.4, 0.2, 0.1}

	input := make([]float32, 100)
	for i := range input {
		input[i] = float32(i)
	}

	whole := NewFirFilter(coeffs, 1)
	whole.LoadSamples(input)
	wholeOut := make([]float32, len(input))
	for i := range wholeOut {
		wholeOut[i] = whole.Get(i)
	}

	chunked := NewFirFilter(coeffs, 1)
	var chunkedOut []float32
	for _, half := range [][]float32{input[:50], input[50:]} {
		chunked.LoadSamples(half)
		for i := range half {
			chunkedOut = append(chunkedOut, chunked.Get(i))
		}
	}

	if len(wholeOut) != len(chunkedOut) {
		t.Fatalf("mismatched lengths: whole=%d chunked=%d", len(wholeOut), len(chunkedOut))
	}
	for i := range wholeOut {
		if !almostEqual(wholeOut[i], chunkedOut[i]) {
			t.Errorf("mismatch at %d: whole=%f chunked=%f", i, wholeOut[i], chunkedOut[i])
		}
	}
}

func TestDownsampler_OutputLength(t *testing.T) {
	coeffs := LowPassKernel(240000, 15000, 41)
	d := NewDownsampler(240000, 48000, coeffs)

	input := make([]float32, 1000)
	out := d.Downsample(input)

	want := int(float64(len(input)) / 5.0)
	if len(out) != want {
		t.Fatalf("expected %d samples, got %d", want, len(out))
	}
}

func TestDownsampler_ShortBlockYieldsEmptyOutput(t *testing.T) {
	coeffs := LowPassKernel(240000, 15000, 41)
	d := NewDownsampler(240000, 48000, coeffs)

	out := d.Downsample(make([]float32, 2))
	if len(out) != 0 {
		t.Fatalf("expected empty output for a short block, got %d samples", len(out))
	}
}

func TestIqDownsampler_Deinterlaces(t *testing.T) {
	coeffs := LowPassKernel(1024000, 400000, 41)
	d := NewIqDownsampler(1024000, 336000, coeffs)

	block := make([]float32, 2000)
	for k := 0; k < len(block)/2; k++ {
		block[2*k] = 1
		block[2*k+1] = -1
	}
	i, q := d.Downsample(block)
	if len(i) != len(q) {
		t.Fatalf("I/Q length mismatch: %d vs %d", len(i), len(q))
	}
	if len(i) == 0 {
		t.Fatal("expected non-empty output")
	}
}

func TestDeemphasizer_StepResponse(t *testing.T) {
	d := NewDeemphasizer(48000, 50)

	block := make([]float32, 100)
	for i := range block {
		block[i] = 1
	}
	d.Process(block)

	for i := 1; i < len(block); i++ {
		if block[i] < block[i-1] {
			t.Fatalf("output decreased on step input at sample %d", i)
		}
		if block[i] > 1 {
			t.Fatalf("output exceeded input at sample %d", i)
		}
	}

	settle := make([]float32, 48000)
	for i := range settle {
		settle[i] = 1
	}
	d.Process(settle)
	if !almostEqual(settle[len(settle)-1], 1.0) {
		t.Errorf("expected de-emphasis to settle near 1.0, got %f", settle[len(settle)-1])
	}
}

func TestDeemphasizer_PerChannelStateIsIndependent(t *testing.T) {
	left := NewDeemphasizer(48000, 50)
	right := NewDeemphasizer(48000, 50)

	leftBlock := make([]float32, 10)
	for i := range leftBlock {
		leftBlock[i] = 1
	}
	left.Process(leftBlock)

	rightBlock := make([]float32, 10)
	right.Process(rightBlock)

	if rightBlock[len(rightBlock)-1] != 0 {
		t.Fatalf("expected right channel to remain at zero, got %f", rightBlock[len(rightBlock)-1])
	}
}
