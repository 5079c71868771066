package response

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the analyzer.
var (
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive and finite")
	ErrInvalidLength     = errors.New("response: length must be positive")
	ErrInvalidSize       = errors.New("response: FFT size must be a power of two >= 2")
	ErrInvalidFrequency  = errors.New("response: frequency must be in (0, sampleRate/2)")
)

// dbFloor bounds magnitudes of silent bins.
const dbFloor = -300.0

// BlockProcessor is the part of a processor the analyzer drives.
type BlockProcessor interface {
	ProcessBlock(buf [][]float64) error
}

// Analyzer measures processors prepared for a fixed sample rate, channel
// count and block size.
type Analyzer struct {
	SampleRate float64
	Channels   int
	BlockSize  int
}

// NewAnalyzer validates its arguments and returns an Analyzer.
func NewAnalyzer(sampleRate float64, channels, blockSize int) (*Analyzer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if channels <= 0 || blockSize <= 0 {
		return nil, fmt.Errorf("%w: channels=%d block=%d", ErrInvalidLength, channels, blockSize)
	}
	return &Analyzer{SampleRate: sampleRate, Channels: channels, BlockSize: blockSize}, nil
}

// Drive pushes signal through p on every channel and returns channel 0 of
// the output.
func (a *Analyzer) Drive(p BlockProcessor, signal []float64) ([]float64, error) {
	out := make([]float64, len(signal))
	buf := make([][]float64, a.Channels)

	for off := 0; off < len(signal); off += a.BlockSize {
		end := min(off+a.BlockSize, len(signal))
		for ch := range buf {
			buf[ch] = core.EnsureLen(buf[ch], end-off)
			copy(buf[ch], signal[off:end])
		}
		if err := p.ProcessBlock(buf); err != nil {
			return nil, fmt.Errorf("response: process block at %d: %w", off, err)
		}
		copy(out[off:end], buf[0])
	}
	return out, nil
}

// ImpulseResponse returns the first n samples of p's response to a unit
// impulse.
func (a *Analyzer) ImpulseResponse(p BlockProcessor, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	x := make([]float64, n)
	x[0] = 1
	return a.Drive(p, x)
}

// Spectrum returns the magnitude response in dB of ir on size/2+1 bins
// from DC to Nyquist, with the bin frequencies. ir is zero-padded or
// truncated to size.
func (a *Analyzer) Spectrum(ir []float64, size int) (freqs, magDB []float64, err error) {
	if size < 2 || bits.OnesCount(uint(size)) != 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, nil, fmt.Errorf("response: fft plan: %w", err)
	}

	buf := make([]complex128, size)
	for i := range min(len(ir), size) {
		buf[i] = complex(ir[i], 0)
	}
	if err := plan.Forward(buf, buf); err != nil {
		return nil, nil, fmt.Errorf("response: fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(buf[k])
		im[k] = imag(buf[k])
	}

	magDB = make([]float64, bins)
	vecmath.Magnitude(magDB, re, im)

	freqs = make([]float64, bins)
	for k := range bins {
		freqs[k] = float64(k) * a.SampleRate / float64(size)
		magDB[k] = toDB(magDB[k])
	}
	return freqs, magDB, nil
}

// ResponseAt evaluates the DTFT magnitude of ir at freq in dB.
func (a *Analyzer) ResponseAt(ir []float64, freq float64) (float64, error) {
	if err := a.checkFrequency(freq); err != nil {
		return 0, err
	}
	return toDB(dtftMagnitude(ir, freq, a.SampleRate)), nil
}

// ToneGainDB drives p with a unit sine at freq for the given duration and
// returns the gain at freq measured over the second half, after transients
// and parameter ramps have settled.
func (a *Analyzer) ToneGainDB(p BlockProcessor, freq, seconds float64) (float64, error) {
	if err := a.checkFrequency(freq); err != nil {
		return 0, err
	}

	n := int(seconds * a.SampleRate)
	if n < 2 {
		return 0, fmt.Errorf("%w: %v s", ErrInvalidLength, seconds)
	}

	in := make([]float64, n)
	w := 2 * math.Pi * freq / a.SampleRate
	for i := range in {
		in[i] = math.Sin(w * float64(i))
	}

	out, err := a.Drive(p, in)
	if err != nil {
		return 0, err
	}

	half := n / 2
	ref := dtftMagnitude(in[half:], freq, a.SampleRate)
	got := dtftMagnitude(out[half:], freq, a.SampleRate)
	return toDB(got / ref), nil
}

func (a *Analyzer) checkFrequency(freq float64) error {
	if !(freq > 0 && freq < a.SampleRate/2) {
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, freq)
	}
	return nil
}

// dtftMagnitude runs the Goertzel recurrence over x and returns |X(freq)|.
func dtftMagnitude(x []float64, freq, sampleRate float64) float64 {
	w := 2 * math.Pi * freq / sampleRate
	cw, sw := math.Cos(w), math.Sin(w)
	coeff := 2 * cw

	var s0, s1 float64
	for _, v := range x {
		s0, s1 = v+coeff*s0-s1, s0
	}
	re := s0 - s1*cw
	im := s1 * sw
	return math.Hypot(re, im)
}

func toDB(mag float64) float64 {
	if mag <= 0 || math.IsNaN(mag) {
		return dbFloor
	}
	return max(20*math.Log10(mag), dbFloor)
}
