package decoder

// DecoderHost owns exactly one decode chain at a time. Replacing the chain
// (SetMode) destroys the prior one; process and SetMode serialize naturally
// in the single-threaded model — the host does not lock.
type DecoderHost struct {
	inRate, outRate float64
	current         *chain
}

// NewDecoderHost builds a host for the given fixed input/output rates,
// starting in WBFM mode.
func NewDecoderHost(inRate, outRate float64) *DecoderHost {
	return &DecoderHost{
		inRate:  inRate,
		outRate: outRate,
		current: newChain(ModeConfig{Modulation: WBFM}, inRate, outRate),
	}
}

// SetMode atomically replaces the current chain. Any block already handed
// to Process completes before the swap takes effect, by construction of
// the single-threaded call model.
func (h *DecoderHost) SetMode(cfg ModeConfig) {
	h.current = newChain(cfg, h.inRate, h.outRate)
}

// Process converts a raw interleaved-unsigned-byte I/Q block into stereo
// audio. An empty or odd-length block is a contract violation by the
// caller and yields an empty StereoAudio rather than an error.
func (h *DecoderHost) Process(raw []byte, stereoRequested bool) StereoAudio {
	if len(raw) == 0 || len(raw)%2 != 0 {
		return StereoAudio{}
	}
	return h.current.process(bytesToSamples(raw), stereoRequested)
}

// bytesToSamples converts unsigned-byte samples to the [-1, 0.992] float
// convention: byte 128 is zero, 0 is -1, 255 is +0.992.
func bytesToSamples(raw []byte) []float32 {
	out := make([]float32, len(raw))
	for i, b := range raw {
		out[i] = float32(b)/128.0 - 1.0
	}
	return out
}
