package param

import (
	"math"
	"sync/atomic"
)

// DefaultSmoothingMs is the ramp time used when Prepare is given a negative
// or non-finite smoothing time.
const DefaultSmoothingMs = 20.0

// Mode selects the ramp shape.
type Mode int

const (
	// Linear ramps at a constant rate.
	Linear Mode = iota
	// Exponential approaches the target along a one-pole curve. The curve
	// falls to -60 dB of the ramp span at the smoothing time, where it snaps.
	Exponential
	// Logarithmic ramps linearly in log domain; suited to frequencies.
	// Non-positive endpoints fall back to Linear.
	Logarithmic
	// Step jumps to the target on the next Advance.
	Step
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	case Logarithmic:
		return "logarithmic"
	case Step:
		return "step"
	default:
		return "unknown"
	}
}

// residual is the fraction of the ramp span left when an exponential ramp
// snaps (-60 dB).
const residual = 1e-3

// Smoother converts target writes into a ramp. SetTarget and Smoothed are
// safe from any goroutine; every other method belongs to the audio
// goroutine (or to setup code that does not run concurrently with it).
type Smoother struct {
	slot     Slot
	smoothed atomic.Uint64

	mode    Mode
	rampLen int
	seq     uint64

	current float64
	target  float64
	start   float64

	// Ramp progress in samples; elapsed == rampLen means idle.
	elapsed int

	// Per-sample increment in the ramp domain (Linear, Logarithmic) or the
	// per-sample decay factor (Exponential).
	step    float64
	logMode bool
}

// NewSmoother returns an idle smoother holding initial. Until Prepare is
// called the smoothing time is zero and targets apply immediately.
func NewSmoother(mode Mode, initial float64) *Smoother {
	s := &Smoother{mode: mode}
	s.Reset(initial)
	return s
}

// Prepare sets the smoothing time for the given sample rate. A negative or
// non-finite smoothingMs selects DefaultSmoothingMs; zero disables
// smoothing. Any ramp in flight is completed.
func (s *Smoother) Prepare(sampleRate, smoothingMs float64) {
	if smoothingMs < 0 || math.IsNaN(smoothingMs) || math.IsInf(smoothingMs, 0) {
		smoothingMs = DefaultSmoothingMs
	}

	n := 0
	if sampleRate > 0 && !math.IsInf(sampleRate, 0) {
		n = int(math.Round(sampleRate * smoothingMs / 1000))
	}

	s.rampLen = n
	target, seq := s.slot.Load()
	s.seq = seq
	s.snap(target)
}

// RampLength returns the ramp length in samples.
func (s *Smoother) RampLength() int { return s.rampLen }

// Mode returns the ramp shape.
func (s *Smoother) Mode() Mode { return s.mode }

// SetTarget publishes a new target. It may be called from any goroutine.
func (s *Smoother) SetTarget(v float64) {
	s.slot.Store(v)
}

// Slot exposes the smoother's target mailbox.
func (s *Smoother) Slot() *Slot { return &s.slot }

// Reset snaps both the current value and the target to v.
func (s *Smoother) Reset(v float64) {
	s.slot.Store(v)
	_, s.seq = s.slot.Load()
	s.snap(v)
}

// Advance picks up a newly published target, steps the ramp n samples and
// returns the smoothed value. n <= 0 only picks up the target.
func (s *Smoother) Advance(n int) float64 {
	if target, seq := s.slot.Load(); seq != s.seq {
		s.seq = seq
		s.retarget(target)
	}

	if n <= 0 || s.elapsed >= s.rampLen {
		return s.current
	}

	s.elapsed += n
	if s.elapsed >= s.rampLen {
		s.snap(s.target)
		return s.current
	}

	switch {
	case s.mode == Exponential:
		s.current = s.target + (s.start-s.target)*math.Pow(s.step, float64(s.elapsed))
	case s.logMode:
		s.current = math.Exp(math.Log(s.start) + s.step*float64(s.elapsed))
	default:
		s.current = s.start + s.step*float64(s.elapsed)
	}

	s.current = s.bounded(s.current)
	s.smoothed.Store(math.Float64bits(s.current))

	return s.current
}

// Current returns the smoothed value after the last Advance.
func (s *Smoother) Current() float64 { return s.current }

// Target returns the target the current ramp is heading to.
func (s *Smoother) Target() float64 { return s.target }

// IsSmoothing reports whether a ramp is in flight.
func (s *Smoother) IsSmoothing() bool { return s.elapsed < s.rampLen }

// Smoothed returns the last value produced by Advance. It may be called from
// any goroutine.
func (s *Smoother) Smoothed() float64 {
	return math.Float64frombits(s.smoothed.Load())
}

func (s *Smoother) retarget(v float64) {
	if v == s.target {
		return
	}

	if s.mode == Step || s.rampLen == 0 || v == s.current {
		s.snap(v)
		return
	}

	s.start = s.current
	s.target = v
	s.elapsed = 0
	s.logMode = false

	n := float64(s.rampLen)
	switch {
	case s.mode == Exponential:
		s.step = math.Pow(residual, 1/n)
	case s.mode == Logarithmic && s.start > 0 && v > 0:
		s.logMode = true
		s.step = (math.Log(v) - math.Log(s.start)) / n
	default:
		s.step = (v - s.start) / n
	}
}

// bounded keeps rounding from carrying v past either ramp endpoint.
func (s *Smoother) bounded(v float64) float64 {
	lo, hi := s.start, s.target
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Min(math.Max(v, lo), hi)
}

func (s *Smoother) snap(v float64) {
	s.current = v
	s.target = v
	s.start = v
	s.elapsed = s.rampLen
	s.logMode = false
	s.smoothed.Store(math.Float64bits(v))
}
