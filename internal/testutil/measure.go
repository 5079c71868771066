package testutil

import (
	"fmt"
	"math"
	"testing"
)

// Peak returns the largest absolute sample.
func Peak(x []float64) float64 {
	var p float64
	for _, v := range x {
		p = math.Max(p, math.Abs(v))
	}
	return p
}

// RMS returns the root mean square of x, 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

// GainDB returns 20*log10(RMS(out)/RMS(in)).
func GainDB(in, out []float64) float64 {
	return 20 * math.Log10(RMS(out)/RMS(in))
}

// MaxAbsDiff returns the largest element-wise difference of a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	var d float64
	for i := range a {
		d = math.Max(d, math.Abs(a[i]-b[i]))
	}
	return d, nil
}

// MaxStep returns the largest absolute difference between neighboring
// samples.
func MaxStep(x []float64) float64 {
	var d float64
	for i := 1; i < len(x); i++ {
		d = math.Max(d, math.Abs(x[i]-x[i-1]))
	}
	return d
}

// RequireFinite fails t at the first NaN or Inf in any plane.
func RequireFinite(t testing.TB, planes ...[]float64) {
	t.Helper()
	for ch, x := range planes {
		for i, v := range x {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("channel %d index %d: non-finite value %v", ch, i, v)
			}
		}
	}
}

// RequireNearlyEqual fails t if got and want differ in length or any pair
// differs by more than eps.
func RequireNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > %v)", i, got[i], want[i], d, eps)
		}
	}
}
