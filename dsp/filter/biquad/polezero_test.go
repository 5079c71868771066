package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestPoles_ConjugatePair(t *testing.T) {
	p1 := complex(0.72, 0.19)
	p2 := cmplx.Conj(p1)
	c := Coefficients{B0: 1, A1: -real(p1 + p2), A2: real(p1 * p2)}

	poles := c.Poles()
	ok := (cmplx.Abs(poles[0]-p1) < 1e-12 && cmplx.Abs(poles[1]-p2) < 1e-12) ||
		(cmplx.Abs(poles[0]-p2) < 1e-12 && cmplx.Abs(poles[1]-p1) < 1e-12)
	if !ok {
		t.Fatalf("unexpected poles: got=%v want={%v,%v}", poles, p1, p2)
	}
	if r := c.PoleRadius(); !almostEqual(r, cmplx.Abs(p1), 1e-12) {
		t.Fatalf("PoleRadius = %v, want %v", r, cmplx.Abs(p1))
	}
}

func TestIsStable(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want bool
	}{
		{name: "passthrough", c: Passthrough, want: true},
		{name: "lowpassish", c: lowpassish, want: true},
		{name: "pole on unit circle", c: Coefficients{B0: 1, A1: 0, A2: 1}, want: false},
		{name: "real pole outside", c: Coefficients{B0: 1, A1: -2.1, A2: 1.1 * 0.9}, want: false},
		{name: "nan", c: Coefficients{B0: math.NaN()}, want: false},
		{name: "inf feedback", c: Coefficients{B0: 1, A1: math.Inf(1)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsStable(); got != tt.want {
				t.Fatalf("IsStable() = %v, want %v (pole radius %v)", got, tt.want, tt.c.PoleRadius())
			}
		})
	}
}
