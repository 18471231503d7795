// Package config holds the CLI-facing defaults for the decoder harness:
// the fixed rate plan and the block/buffer sizes the reader and processor
// goroutines agree on.
package config

import "go-sdr-baseband/internal/decoder"

// Config holds the tunable parameters for cmd/sdrdecode. The decoder core itself only ever sees InputRate,
// OutputRate and a ModeConfig built from these fields — everything else is
// CLI/harness plumbing.
type Config struct {
	InputRate      int
	OutputRate     int
	BlockSize      int // interleaved I/Q bytes per Process call
	RingBufferSize int
	Modulation     decoder.Modulation
	MaxDeviation   int // NBFM
	Bandwidth      int // AM
	Mono           bool
}

// New returns a Config with the reference rate plan: 1.024 MHz input,
// 48 kHz output, WBFM by default.
func New() *Config {
	return &Config{
		InputRate:      1_024_000,
		OutputRate:     48_000,
		BlockSize:      16384,
		RingBufferSize: 4 * 1_024_000, // ~2s of interleaved I/Q bytes
		Modulation:     decoder.WBFM,
		MaxDeviation:   8_000,
		Bandwidth:      10_000,
	}
}

// ModeConfig builds the decoder.ModeConfig this Config currently selects.
func (c *Config) ModeConfig() decoder.ModeConfig {
	switch c.Modulation {
	case decoder.AM:
		return decoder.ModeConfig{Modulation: decoder.AM, Bandwidth: float64(c.Bandwidth)}
	case decoder.NBFM:
		return decoder.ModeConfig{Modulation: decoder.NBFM, MaxDeviation: float64(c.MaxDeviation)}
	default:
		return decoder.ModeConfig{Modulation: decoder.WBFM}
	}
}
