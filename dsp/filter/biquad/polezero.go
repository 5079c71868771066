package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
func (c *Coefficients) Poles() [2]complex128 {
	half := complex(-c.A1/2, 0)
	root := cmplx.Sqrt(complex(c.A1*c.A1-4*c.A2, 0)) / 2
	return [2]complex128{half + root, half - root}
}

// PoleRadius returns the largest pole magnitude.
func (c *Coefficients) PoleRadius() float64 {
	p := c.Poles()
	return math.Max(cmplx.Abs(p[0]), cmplx.Abs(p[1]))
}

// IsFinite reports whether every coefficient is finite.
func (c *Coefficients) IsFinite() bool {
	for _, v := range [...]float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IsStable reports whether the section is finite and both poles lie
// strictly inside the unit circle.
//
// It uses the stability triangle |A2| < 1, |A1| < 1 + A2 rather than root
// finding, so it is exact at the boundary.
func (c *Coefficients) IsStable() bool {
	if !c.IsFinite() {
		return false
	}
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}
