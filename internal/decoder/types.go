// Package decoder composes the dsp package's leaf operators into
// per-modulation decode chains (WBFM, NBFM, AM) and a host that owns the
// current chain and dispatches raw byte blocks to it.
package decoder

// SampleBlock is a block of audio or baseband samples at an implicit
// sample rate tracked by whichever operator produced it.
type SampleBlock = []float32

// StereoAudio is the output of a decode chain for one input block.
type StereoAudio struct {
	Left, Right SampleBlock
	InStereo    bool
	Carrier     bool
}

// Modulation selects which decode chain a ModeConfig builds.
type Modulation int

const (
	WBFM Modulation = iota
	NBFM
	AM
)

// ModeConfig is the tagged variant controlling chain construction:
// WBFM carries no extra parameters, NBFM carries MaxDeviation, AM carries
// Bandwidth.
type ModeConfig struct {
	Modulation   Modulation
	MaxDeviation float64 // NBFM only, Hz
	Bandwidth    float64 // AM only, Hz
}
