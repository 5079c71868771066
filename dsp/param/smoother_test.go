package param

import (
	"math"
	"sync"
	"testing"
)

const (
	testRate = 48000.0
	testMs   = 20.0
	rampLen  = 960 // testRate * testMs / 1000
)

func prepared(mode Mode, initial float64) *Smoother {
	s := NewSmoother(mode, initial)
	s.Prepare(testRate, testMs)
	return s
}

func TestSmoother_RampLength(t *testing.T) {
	s := prepared(Linear, 0)
	if got := s.RampLength(); got != rampLen {
		t.Fatalf("RampLength = %d, want %d", got, rampLen)
	}

	s.Prepare(testRate, -1)
	if got := s.RampLength(); got != rampLen {
		t.Fatalf("negative time: RampLength = %d, want default %d", got, rampLen)
	}

	s.Prepare(testRate, math.NaN())
	if got := s.RampLength(); got != rampLen {
		t.Fatalf("NaN time: RampLength = %d, want default %d", got, rampLen)
	}

	s.Prepare(testRate, 0)
	if got := s.RampLength(); got != 0 {
		t.Fatalf("zero time: RampLength = %d, want 0", got)
	}
}

func TestSmoother_ZeroTimeJumps(t *testing.T) {
	s := NewSmoother(Linear, 1)
	s.Prepare(testRate, 0)
	s.SetTarget(5)

	if got := s.Advance(1); got != 5 {
		t.Fatalf("Advance = %v, want 5", got)
	}
	if s.IsSmoothing() {
		t.Fatal("should be idle")
	}
}

func TestSmoother_StepMode(t *testing.T) {
	s := prepared(Step, 0)
	s.SetTarget(3)
	if got := s.Advance(1); got != 3 {
		t.Fatalf("Advance = %v, want 3", got)
	}
}

func TestSmoother_MonotonicAndReaches(t *testing.T) {
	modes := []Mode{Linear, Exponential, Logarithmic}
	blocks := []int{1, 7, 32, 64, 1000}

	for _, mode := range modes {
		for _, block := range blocks {
			for _, tc := range []struct{ from, to float64 }{
				{100, 10000},
				{10000, 100},
				{-6, 12},
				{12, -6},
			} {
				s := prepared(mode, tc.from)
				s.SetTarget(tc.to)

				dir := math.Copysign(1, tc.to-tc.from)
				prev := tc.from
				reached := -1

				for done := 0; done <= rampLen+block; done += block {
					v := s.Advance(block)
					if (v-prev)*dir < 0 {
						t.Fatalf("%s block=%d %v->%v: not monotonic at %d: %v after %v",
							mode, block, tc.from, tc.to, done, v, prev)
					}
					if (v-tc.to)*dir > 0 {
						t.Fatalf("%s block=%d: overshoot %v past %v", mode, block, v, tc.to)
					}
					prev = v
					if v == tc.to && reached < 0 {
						reached = done + block
					}
				}

				if reached < 0 {
					t.Fatalf("%s block=%d %v->%v: target never reached", mode, block, tc.from, tc.to)
				}
				if reached > rampLen+block {
					t.Fatalf("%s block=%d: reached after %d samples, want <= %d",
						mode, block, reached, rampLen+block)
				}
			}
		}
	}
}

func TestSmoother_LinearMidpoint(t *testing.T) {
	s := prepared(Linear, 0)
	s.SetTarget(1)
	if got := s.Advance(rampLen / 2); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("midpoint = %v, want 0.5", got)
	}
}

func TestSmoother_LogarithmicMidpoint(t *testing.T) {
	s := prepared(Logarithmic, 100)
	s.SetTarget(10000)
	if got := s.Advance(rampLen / 2); math.Abs(got-1000) > 1e-6 {
		t.Fatalf("log midpoint = %v, want 1000 (geometric mean)", got)
	}
}

func TestSmoother_LogarithmicNonPositiveFallsBack(t *testing.T) {
	s := prepared(Logarithmic, -1)
	s.SetTarget(1)
	if got := s.Advance(rampLen / 2); math.Abs(got) > 1e-12 {
		t.Fatalf("fallback midpoint = %v, want 0", got)
	}
}

func TestSmoother_ExponentialSnapsAtResidual(t *testing.T) {
	s := prepared(Exponential, 0)
	s.SetTarget(1)

	v := s.Advance(rampLen - 1)
	if gap := 1 - v; gap <= 0 || gap > 1.01*residual {
		t.Fatalf("gap before snap = %v, want just above %v", gap, residual)
	}
	if got := s.Advance(1); got != 1 {
		t.Fatalf("after snap = %v, want 1", got)
	}
}

func TestSmoother_RetargetStartsFromCurrent(t *testing.T) {
	for _, mode := range []Mode{Linear, Exponential, Logarithmic} {
		s := prepared(mode, 100)
		s.SetTarget(1000)
		mid := s.Advance(rampLen / 3)

		s.SetTarget(200)
		next := s.Advance(1)

		// The first step of the new ramp must move only a fraction of the
		// remaining distance from the value reached so far.
		if math.Abs(next-mid) > math.Abs(mid-200)/float64(rampLen)*10 {
			t.Fatalf("%s: discontinuity after retarget: %v -> %v", mode, mid, next)
		}
		if next > mid {
			t.Fatalf("%s: moved away from new target: %v -> %v", mode, mid, next)
		}
		if s.Target() != 200 || !s.IsSmoothing() {
			t.Fatalf("%s: target = %v smoothing=%v", mode, s.Target(), s.IsSmoothing())
		}
	}
}

func TestSmoother_RepeatedTargetDoesNotRestart(t *testing.T) {
	s := prepared(Linear, 0)
	s.SetTarget(1)
	s.Advance(rampLen / 2)
	s.SetTarget(1)
	if got := s.Advance(rampLen / 2); got != 1 {
		t.Fatalf("got %v, want ramp to finish on schedule", got)
	}
}

func TestSmoother_Reset(t *testing.T) {
	s := prepared(Linear, 0)
	s.SetTarget(10)
	s.Advance(10)
	s.Reset(3)

	if s.Current() != 3 || s.Target() != 3 || s.IsSmoothing() {
		t.Fatalf("after Reset: current=%v target=%v smoothing=%v", s.Current(), s.Target(), s.IsSmoothing())
	}
	if got := s.Advance(rampLen); got != 3 {
		t.Fatalf("Advance after Reset = %v, want 3", got)
	}
	if s.Smoothed() != 3 {
		t.Fatalf("Smoothed = %v, want 3", s.Smoothed())
	}
}

func TestSmoother_AdvanceZero(t *testing.T) {
	s := prepared(Linear, 0)
	s.SetTarget(1)
	if got := s.Advance(0); got != 0 {
		t.Fatalf("Advance(0) = %v, want 0", got)
	}
	if s.Target() != 1 {
		t.Fatalf("Advance(0) did not pick up target: %v", s.Target())
	}
}

func TestSmoother_ConcurrentSetTarget(t *testing.T) {
	s := prepared(Linear, 0)

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				s.SetTarget(float64(w*500 + i))
				_ = s.Smoothed()
			}
		}()
	}

	for range 500 {
		v := s.Advance(32)
		if math.IsNaN(v) || v < 0 || v > 2000 {
			t.Fatalf("Advance = %v out of written range", v)
		}
	}
	wg.Wait()
}

func BenchmarkSmoother_Advance(b *testing.B) {
	s := prepared(Logarithmic, 100)
	b.ReportAllocs()
	for i := range b.N {
		if i%64 == 0 {
			s.SetTarget(float64(100 + i%10000))
		}
		s.Advance(32)
	}
}
