// Command genmodtones writes synthetic modulated I/Q test vectors to
// standard output, for exercising cmd/sdrdecode or the decoder package's
// tests end to end without a real tuner.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"go-sdr-baseband/internal/tonegen"
)

func main() {
	var (
		mod       = pflag.String("mod", "WBFM", "Modulation to synthesize: AM, WBFM, or NBFM.")
		inRate    = pflag.Float64("inrate", 1_024_000, "Output I/Q sample rate, in Hz.")
		freq      = pflag.Float64("freq", 997, "Left-channel (or mono) tone frequency, in Hz.")
		rightFreq = pflag.Float64("rightfreq", 1499, "Right-channel tone frequency, in Hz (WBFM stereo only).")
		pilot     = pflag.Float64("pilot", 0.1, "19kHz pilot amplitude as a fraction of full scale (WBFM only); 0 disables stereo.")
		maxF      = pflag.Float64("maxf", 75000, "Peak frequency deviation, in Hz (WBFM/NBFM).")
		bandwidth = pflag.Float64("bandwidth", 0.5, "Carrier amplitude as a fraction of full scale (AM only).")
		duration  = pflag.Float64("duration", 2.0, "Signal length, in seconds.")
		blockSize = pflag.Int("blocksize", 16384, "I/Q pairs generated per write.")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] > out.iq\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	totalPairs := int(*duration * *inRate)

	switch *mod {
	case "AM":
		var phases tonegen.AmPhases
		for n := 0; n < totalPairs; n += *blockSize {
			count := *blockSize
			if n+count > totalPairs {
				count = totalPairs - n
			}
			out.Write(tonegen.GenerateAM(*inRate, *freq, *bandwidth, 0.8, count, &phases))
		}
	case "NBFM":
		var phases tonegen.FmPhases
		for n := 0; n < totalPairs; n += *blockSize {
			count := *blockSize
			if n+count > totalPairs {
				count = totalPairs - n
			}
			out.Write(tonegen.GenerateFM(*inRate, *freq, *maxF, count, &phases))
		}
	default:
		var phases tonegen.WbfmPhases
		for n := 0; n < totalPairs; n += *blockSize {
			count := *blockSize
			if n+count > totalPairs {
				count = totalPairs - n
			}
			out.Write(tonegen.GenerateWbfmStereo(*inRate, *freq, *rightFreq, 19000, *pilot, *maxF, count, &phases))
		}
	}
}
