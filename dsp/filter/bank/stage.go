package bank

import (
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// Params are the design inputs of a stage.
type Params struct {
	Type   design.Type
	Freq   float64 // Hz
	GainDB float64
	Q      float64
}

// DefaultParams is a flat 1 kHz peak.
var DefaultParams = Params{
	Type: design.Peak,
	Freq: 1000,
	Q:    design.DefaultQ,
}

// Stage is one biquad band with per-channel state. All channels share the
// coefficients.
type Stage struct {
	coeffs   biquad.Coefficients
	sections []biquad.Section
	params   Params
	rate     float64
	bypass   bool
}

func newStage() Stage {
	return Stage{coeffs: biquad.Passthrough, params: DefaultParams}
}

// SetParameters designs coefficients for the given inputs and installs them
// on every channel without touching the filter state. Identical inputs give
// bit-identical coefficients.
func (s *Stage) SetParameters(freq, gainDB, q float64, t design.Type, sampleRate float64) {
	s.params = Params{Type: t, Freq: freq, GainDB: gainDB, Q: q}
	s.rate = sampleRate
	s.install(design.Design(t, freq, gainDB, q, sampleRate))
}

func (s *Stage) install(c biquad.Coefficients) {
	s.coeffs = c
	for i := range s.sections {
		s.sections[i].Coefficients = c
	}
}

// Params returns the inputs of the last SetParameters call.
func (s *Stage) Params() Params { return s.params }

// Coefficients returns the installed coefficients.
func (s *Stage) Coefficients() biquad.Coefficients { return s.coeffs }

// SetBypass enables or disables the stage. A bypassed stage passes its
// input through and holds its state, so re-enabling it resumes where it
// stopped.
func (s *Stage) SetBypass(bypass bool) { s.bypass = bypass }

// Bypassed reports whether the stage is bypassed.
func (s *Stage) Bypassed() bool { return s.bypass }

// ProcessSample filters one sample of channel ch. Out-of-range channels and
// a bypassed stage return x unchanged.
func (s *Stage) ProcessSample(ch int, x float64) float64 {
	if s.bypass || ch < 0 || ch >= len(s.sections) {
		return x
	}
	return s.sections[ch].ProcessSample(x)
}

// State returns the delay line of channel ch.
func (s *Stage) State(ch int) [2]float64 {
	if ch < 0 || ch >= len(s.sections) {
		return [2]float64{}
	}
	return s.sections[ch].State()
}

// MagnitudeDB returns the stage response at freq, 0 dB when bypassed.
func (s *Stage) MagnitudeDB(freq, sampleRate float64) float64 {
	if s.bypass {
		return 0
	}
	return s.coeffs.MagnitudeDB(freq, sampleRate)
}

func (s *Stage) prepare(channels int, sampleRate float64) {
	s.sections = make([]biquad.Section, channels)
	p := s.params
	s.SetParameters(p.Freq, p.GainDB, p.Q, p.Type, sampleRate)
}

func (s *Stage) reset() {
	for i := range s.sections {
		s.sections[i].Reset()
	}
}
