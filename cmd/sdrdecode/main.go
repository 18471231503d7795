// Command sdrdecode is the test-harness CLI surface for the decoder core:
// it reads raw or WAV-wrapped I/Q bytes from a file or standard input,
// decodes them with a DecoderHost, and writes signed 16-bit stereo audio
// frames to standard output (or, with -play, to a live speaker stream).
package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/ebitengine/oto/v3"
	"github.com/spf13/pflag"

	"go-sdr-baseband/internal/config"
	"go-sdr-baseband/internal/decoder"
	"go-sdr-baseband/internal/iqsource"
	"go-sdr-baseband/internal/ringbuffer"
)

func main() {
	cfg := config.New()

	var (
		mod       = pflag.String("mod", "WBFM", "Modulation: AM, WBFM, or NBFM.")
		maxF      = pflag.Int("maxf", cfg.MaxDeviation, "NBFM maximum frequency deviation, in Hz.")
		bandwidth = pflag.Int("bandwidth", cfg.Bandwidth, "AM bandwidth, in Hz.")
		mono      = pflag.Bool("mono", false, "Never request the stereo subchannel.")
		blockSize = pflag.Int("blocksize", cfg.BlockSize, "I/Q bytes per decode block (rounded down to even).")
		inRate    = pflag.Int("inrate", cfg.InputRate, "Input I/Q sample rate, in Hz.")
		outRate   = pflag.Int("outrate", cfg.OutputRate, "Output audio sample rate, in Hz.")
		input     = pflag.String("input", "-", "Input file (raw or WAV I/Q capture); - for standard input.")
		play      = pflag.Bool("play", false, "Play decoded audio live instead of writing to standard output.")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	switch *mod {
	case "AM":
		cfg.Modulation = decoder.AM
	case "NBFM":
		cfg.Modulation = decoder.NBFM
	default:
		cfg.Modulation = decoder.WBFM
	}
	cfg.MaxDeviation = *maxF
	cfg.Bandwidth = *bandwidth
	cfg.Mono = *mono
	cfg.InputRate = *inRate
	cfg.OutputRate = *outRate
	cfg.BlockSize = *blockSize - (*blockSize % 2)
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = 2
	}

	src, closer, err := iqsource.Open(*input)
	if err != nil {
		log.Fatalf("opening input: %v", err)
	}
	defer closer.Close()

	host := decoder.NewDecoderHost(float64(cfg.InputRate), float64(cfg.OutputRate))
	host.SetMode(cfg.ModeConfig())

	var out io.Writer
	var player *oto.Player
	if *play {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   cfg.OutputRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			log.Fatalf("opening audio output: %v", err)
		}
		<-ready
		reader, writer := io.Pipe()
		player = ctx.NewPlayer(reader)
		defer player.Close()
		go player.Play()
		out = writer
	} else {
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		out = w
	}

	rb := ringbuffer.New[byte](cfg.RingBufferSize)
	go readIntoBuffer(src, rb, cfg.BlockSize)

	fmt.Fprintf(os.Stderr, "decoding %s, %d Hz -> %d Hz\n", *mod, cfg.InputRate, cfg.OutputRate)
	processLoop(rb, host, cfg, out)
}

func readIntoBuffer(src io.Reader, rb *ringbuffer.RingBuffer[byte], blockSize int) {
	defer rb.Close()
	buf := make([]byte, blockSize)
	for {
		n, err := io.ReadFull(src, buf)
		if n > 0 {
			rb.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

func processLoop(rb *ringbuffer.RingBuffer[byte], host *decoder.DecoderHost, cfg *config.Config, out io.Writer) {
	frame := make([]byte, 4) // one int16 L + one int16 R
	for {
		block := rb.Read(cfg.BlockSize)
		if block == nil {
			return
		}
		audio := host.Process(block, !cfg.Mono)
		for i := range audio.Left {
			binary.LittleEndian.PutUint16(frame[0:2], uint16(toInt16(audio.Left[i])))
			binary.LittleEndian.PutUint16(frame[2:4], uint16(toInt16(audio.Right[i])))
			if _, err := out.Write(frame); err != nil {
				return
			}
		}
	}
}

func toInt16(f float32) int16 {
	v := math.Round(float64(f) * 32767)
	if v > 32767 {
		v = 32767
	} else if v < -32767 {
		v = -32767
	}
	return int16(v)
}
