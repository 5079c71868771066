package eq

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// coeffsPerBand is five coefficient words plus the bypass flag.
const coeffsPerBand = 6

// loadAttempts bounds the retries of a reader racing the publisher.
const loadAttempts = 64

// snapshot publishes the band coefficients from the audio goroutine to
// display readers. It is a sequence lock over atomic words: the writer
// makes seq odd, stores, then makes it even again; readers retry until they
// see the same even seq on both sides of their loads.
type snapshot struct {
	seq   atomic.Uint64
	words []atomic.Uint64
	rate  atomic.Uint64

	// last is the most recent consistent copy any reader saw.
	last atomic.Pointer[[]bandView]
}

func newSnapshot(bands int) *snapshot {
	return &snapshot{words: make([]atomic.Uint64, bands*coeffsPerBand)}
}

func (s *snapshot) setRate(sampleRate float64) {
	s.rate.Store(math.Float64bits(sampleRate))
}

func (s *snapshot) begin() { s.seq.Add(1) }
func (s *snapshot) end()   { s.seq.Add(1) }

func (s *snapshot) storeBand(b int, c biquad.Coefficients, bypass bool) {
	w := s.words[b*coeffsPerBand : (b+1)*coeffsPerBand]
	w[0].Store(math.Float64bits(c.B0))
	w[1].Store(math.Float64bits(c.B1))
	w[2].Store(math.Float64bits(c.B2))
	w[3].Store(math.Float64bits(c.A1))
	w[4].Store(math.Float64bits(c.A2))

	var flag uint64
	if bypass {
		flag = 1
	}
	w[5].Store(flag)
}

// load copies the published bands into dst and reports the sample rate.
// When every attempt is torn by a concurrent publish, dst gets the last
// consistent copy instead.
func (s *snapshot) load(dst []bandView) float64 {
	rate := math.Float64frombits(s.rate.Load())
	for range loadAttempts {
		before := s.seq.Load()
		if before&1 == 1 {
			continue
		}
		s.copyOut(dst)
		if s.seq.Load() == before {
			kept := append([]bandView(nil), dst...)
			s.last.Store(&kept)
			return rate
		}
	}

	if last := s.last.Load(); last != nil {
		copy(dst, *last)
	}
	return rate
}

// prime records a consistent copy while no publisher runs, so readers
// always have a fallback.
func (s *snapshot) prime() {
	s.load(make([]bandView, len(s.words)/coeffsPerBand))
}

func (s *snapshot) copyOut(dst []bandView) {
	for b := range dst {
		if (b+1)*coeffsPerBand > len(s.words) {
			return
		}
		w := s.words[b*coeffsPerBand : (b+1)*coeffsPerBand]
		dst[b] = bandView{
			Coefficients: biquad.Coefficients{
				B0: math.Float64frombits(w[0].Load()),
				B1: math.Float64frombits(w[1].Load()),
				B2: math.Float64frombits(w[2].Load()),
				A1: math.Float64frombits(w[3].Load()),
				A2: math.Float64frombits(w[4].Load()),
			},
			bypass: w[5].Load() == 1,
		}
	}
}

type bandView struct {
	biquad.Coefficients
	bypass bool
}
