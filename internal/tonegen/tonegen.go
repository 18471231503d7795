// Package tonegen generates synthetic modulated I/Q test vectors for
// exercising the decode chains end to end. Unlike the original signal
// generator this is ported from, which carried its oscillator phase as
// process-wide static state, every generator here threads phase explicitly
// through its arguments and return values so callers can run multiple
// independent generators, or resume one across calls, without aliasing.
package tonegen

import "math"

// byteFromSample maps a float sample in [-1, 1] to the unsigned-byte
// convention used by the decoder: 128 is zero, 0 is -1, 255 is +0.992.
func byteFromSample(x float64) byte {
	v := math.Round((x + 1.0) * 128.0)
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return byte(v)
}

func wrap(phase float64) float64 {
	return math.Mod(phase, 2*math.Pi)
}

// FmPhases is the oscillator state threaded through GenerateFM: the
// baseband tone's phase and the FM carrier's integrated phase.
type FmPhases struct {
	Tone    float64
	Carrier float64
}

// GenerateFM produces n I/Q pairs (2n interleaved bytes) of an FM-modulated tone at
// toneFreq with peak deviation maxDeviation, sampled at fs. It mutates
// phases in place so the caller can continue generation across calls.
func GenerateFM(fs, toneFreq, maxDeviation float64, n int, phases *FmPhases) []byte {
	out := make([]byte, 2*n)
	toneStep := 2 * math.Pi * toneFreq / fs
	for i := 0; i < n; i++ {
		dev := maxDeviation * math.Sin(phases.Tone)
		phases.Carrier += 2 * math.Pi * dev / fs
		out[2*i] = byteFromSample(math.Cos(phases.Carrier))
		out[2*i+1] = byteFromSample(math.Sin(phases.Carrier))
		phases.Tone += toneStep
	}
	phases.Tone = wrap(phases.Tone)
	phases.Carrier = wrap(phases.Carrier)
	return out
}

// AmPhases is the oscillator state threaded through GenerateAM.
type AmPhases struct {
	Tone float64
}

// GenerateAM produces n I/Q pairs (2n interleaved bytes) of an AM-modulated tone at
// toneFreq with the given carrier amplitude and modulation depth.
func GenerateAM(fs, toneFreq, carrierAmpl, depth float64, n int, phases *AmPhases) []byte {
	out := make([]byte, 2*n)
	toneStep := 2 * math.Pi * toneFreq / fs
	for i := 0; i < n; i++ {
		envelope := carrierAmpl * (1 + depth*math.Sin(phases.Tone))
		out[2*i] = byteFromSample(envelope)
		out[2*i+1] = byteFromSample(0)
		phases.Tone += toneStep
	}
	phases.Tone = wrap(phases.Tone)
	return out
}

// WbfmPhases is the oscillator state threaded through GenerateWbfmStereo:
// the left and right tone phases, the 19 kHz pilot phase, and the FM
// carrier's integrated phase.
type WbfmPhases struct {
	Left, Right, Pilot float64
	Carrier            float64
}

// GenerateWbfmStereo produces n I/Q pairs (2n interleaved bytes) of a WBFM
// stereo multiplex: 0.45·(L+R) mono content, a pilotAmpl-scaled 19 kHz pilot,
// and a 38 kHz-shifted 0.45·(L−R) subchannel, FM-modulated with peak
// deviation maxDev.
// Passing pilotAmpl == 0 generates a mono-only (no pilot) signal.
func GenerateWbfmStereo(fs, leftFreq, rightFreq, pilotFreq, pilotAmpl, maxDev float64, n int, phases *WbfmPhases) []byte {
	out := make([]byte, 2*n)
	leftStep := 2 * math.Pi * leftFreq / fs
	rightStep := 2 * math.Pi * rightFreq / fs
	pilotStep := 2 * math.Pi * pilotFreq / fs

	for i := 0; i < n; i++ {
		left := math.Sin(phases.Left)
		right := math.Sin(phases.Right)
		pilot := pilotAmpl * math.Sin(phases.Pilot)
		diff := 0.45 * (left - right) * math.Sin(2*phases.Pilot)
		mono := 0.45 * (left + right)
		composite := mono + pilot + diff

		dev := maxDev * composite
		phases.Carrier += 2 * math.Pi * dev / fs
		out[2*i] = byteFromSample(math.Cos(phases.Carrier))
		out[2*i+1] = byteFromSample(math.Sin(phases.Carrier))

		phases.Left += leftStep
		phases.Right += rightStep
		phases.Pilot += pilotStep
	}

	phases.Left = wrap(phases.Left)
	phases.Right = wrap(phases.Right)
	phases.Pilot = wrap(phases.Pilot)
	phases.Carrier = wrap(phases.Carrier)
	return out
}
