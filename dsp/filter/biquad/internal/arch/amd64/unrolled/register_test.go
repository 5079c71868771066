//go:build amd64 && !purego

package unrolled

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/generic"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/registry"
)

func TestUnrolledMatchesGenericBitExact(t *testing.T) {
	c := registry.Coefficients{B0: 1.02, B1: -1.91, B2: 0.90, A1: -1.91, A2: 0.92}
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{0, 1, 3, 4, 5, 17, 256} {
		ref := make([]float64, n)
		for i := range ref {
			ref[i] = rng.Float64()*2 - 1
		}
		got := append([]float64(nil), ref...)

		rd0, rd1 := generic.ProcessBlock(c, 0.1, -0.05, ref)
		gd0, gd1 := ProcessBlock(c, 0.1, -0.05, got)

		if rd0 != gd0 || rd1 != gd1 {
			t.Fatalf("n=%d: state mismatch generic=(%v,%v) unrolled=(%v,%v)", n, rd0, rd1, gd0, gd1)
		}
		for i := range ref {
			if ref[i] != got[i] {
				t.Fatalf("n=%d sample %d: generic=%v unrolled=%v", n, i, ref[i], got[i])
			}
		}
	}
}
