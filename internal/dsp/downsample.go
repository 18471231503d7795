package dsp

// Downsampler applies a low-pass FIR filter and decimates a real-valued
// stream by a rational factor. The ratio is not required to be an integer:
// a fractional read cursor is advanced by ratio per output sample and
// truncated to an integer input index.
type Downsampler struct {
	filter *FirFilter
	ratio  float64 // fsIn / fsOut
}

// NewDownsampler builds a downsampler for the given input/output rates
// using coeffs as the anti-aliasing low-pass kernel.
func NewDownsampler(fsIn, fsOut float64, coeffs []float32) *Downsampler {
	return &Downsampler{
		filter: NewFirFilter(coeffs, 1),
		ratio:  fsIn / fsOut,
	}
}

// Downsample filters and decimates block, returning floor(len(block)/ratio)
// output samples. A block shorter than ratio yields an empty output; filter
// history still advances.
func (d *Downsampler) Downsample(block []float32) []float32 {
	d.filter.LoadSamples(block)
	n := int(float64(len(block)) / d.ratio)
	out := make([]float32, n)
	readFrom := 0.0
	for i := 0; i < n; i++ {
		out[i] = d.filter.Get(int(readFrom))
		readFrom += d.ratio
	}
	return out
}

// IqDownsampler filters and decimates an interleaved I/Q stream, producing
// deinterlaced I and Q output streams. Each I/Q pair counts as one input
// sample for the purposes of the decimation ratio.
type IqDownsampler struct {
	filter *FirFilter
	ratio  float64
}

// NewIqDownsampler builds an I/Q downsampler for the given input/output
// rates using coeffs as the anti-aliasing low-pass kernel.
func NewIqDownsampler(fsIn, fsOut float64, coeffs []float32) *IqDownsampler {
	return &IqDownsampler{
		filter: NewFirFilter(coeffs, 2),
		ratio:  fsIn / fsOut,
	}
}

// Downsample filters and decimates an interleaved I,Q,I,Q… block, returning
// the deinterlaced I and Q output streams.
func (d *IqDownsampler) Downsample(block []float32) (i, q []float32) {
	d.filter.LoadSamples(block)
	pairs := len(block) / 2
	n := int(float64(pairs) / d.ratio)
	i = make([]float32, n)
	q = make([]float32, n)
	readFrom := 0.0
	for k := 0; k < n; k++ {
		idx := 2 * int(readFrom)
		i[k] = d.filter.Get(idx)
		q[k] = d.filter.Get(idx + 1)
		readFrom += d.ratio
	}
	return i, q
}
