// Package iqsource abstracts over raw and WAV-wrapped I/Q capture files so
// cmd/sdrdecode reads both through one open/detect/read path,
// mirroring the teacher's dual-path readFileIntoBuffer (raw fallback vs
// WAV container) but yielding the decoder's own unsigned 8-bit convention
// instead of int16 PCM.
package iqsource

import (
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Source yields raw unsigned 8-bit interleaved I/Q bytes.
type Source struct {
	read func([]byte) (int, error)
}

func (s *Source) Read(p []byte) (int, error) { return s.read(p) }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open opens path (or standard input, for "-" or "") and returns a Source
// producing unsigned 8-bit interleaved I/Q bytes regardless of whether the
// underlying file is a raw capture or a WAV container.
func Open(path string) (*Source, io.Closer, error) {
	if path == "" || path == "-" {
		return &Source{read: os.Stdin.Read}, nopCloser{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return nil, nil, err
		}
		return &Source{read: f.Read}, f, nil
	}

	if err := dec.FwdToPCM(); err != nil {
		f.Close()
		return nil, nil, err
	}
	return &Source{read: wavReader(dec)}, f, nil
}

// wavReader adapts go-audio/wav's block-oriented PCMBuffer API to a plain
// io.Reader over the unsigned 8-bit I/Q convention, rescaling if the WAV
// container carries wider PCM samples.
func wavReader(dec *wav.Decoder) func([]byte) (int, error) {
	buf := &audio.IntBuffer{Format: dec.Format(), Data: make([]int, 8192)}
	var carry []byte
	var eof bool

	return func(p []byte) (int, error) {
		for len(carry) == 0 {
			if eof {
				return 0, io.EOF
			}
			n, err := dec.PCMBuffer(buf)
			if err == io.EOF {
				eof = true
			} else if err != nil {
				return 0, err
			}
			carry = samplesToBytes(buf.Data[:n], int(dec.BitDepth))
			if n == 0 && eof {
				return 0, io.EOF
			}
		}
		n := copy(p, carry)
		carry = carry[n:]
		return n, nil
	}
}

// samplesToBytes rescales signed N-bit PCM samples to the unsigned 8-bit
// convention (byte 128 is zero). 8-bit WAV data, which go-audio/wav also
// represents as signed ints, is shifted back to unsigned range.
func samplesToBytes(data []int, bitDepth int) []byte {
	out := make([]byte, len(data))
	if bitDepth <= 8 {
		for i, v := range data {
			out[i] = byte(v + 128)
		}
		return out
	}
	shift := uint(bitDepth - 8)
	for i, v := range data {
		out[i] = byte((v >> shift) + 128)
	}
	return out
}
