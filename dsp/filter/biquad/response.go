package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates H(z) on the unit circle at freqHz.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	z1 := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate) // z^-1
	num := complex(c.B0, 0) + z1*(complex(c.B1, 0)+z1*complex(c.B2, 0))
	den := 1 + z1*(complex(c.A1, 0)+z1*complex(c.A2, 0))
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 in closed form, without complex
// arithmetic. The bank and the engine call it per display point.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	k := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*k)*k
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+a2*k)*k
	return num / den
}

// MagnitudeDB returns |H(f)| in dB.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}
