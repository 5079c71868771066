// Package testutil holds deterministic signals and measurement helpers
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine returns length samples of amplitude*sin(2*pi*freq*n/sampleRate).
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	w := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}
	return out
}

// Noise returns uniform white noise in [-amplitude, amplitude) from a fixed
// seed.
func Noise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// Impulse returns a unit impulse at pos. An out-of-range pos yields silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Constant returns length copies of v.
func Constant(v float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = v
	}
	return out
}

// Planes returns channels copies of src, one plane each.
func Planes(src []float64, channels int) [][]float64 {
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = append([]float64(nil), src...)
	}
	return out
}

// Blocks slices every plane into consecutive views of at most size frames,
// returning one [][]float64 per block. The views alias the input.
func Blocks(planes [][]float64, size int) [][][]float64 {
	if len(planes) == 0 || size <= 0 {
		return nil
	}

	frames := len(planes[0])
	var out [][][]float64
	for start := 0; start < frames; start += size {
		end := min(start+size, frames)
		blk := make([][]float64, len(planes))
		for ch := range planes {
			blk[ch] = planes[ch][start:end]
		}
		out = append(out, blk)
	}
	return out
}
