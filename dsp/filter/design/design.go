package design

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// Clamping envelope applied before every design.
const (
	MinFrequency      = 1.0
	MaxFrequencyRatio = 0.49 // of the sample rate
	MinQ              = 0.025
	MaxQ              = 40.0
	MaxGainDB         = 48.0

	// DefaultQ is used when q is NaN.
	DefaultQ = 1 / math.Sqrt2
)

// Design returns the coefficients for one band. Inputs outside the
// clamping envelope are pulled into it; a non-positive or non-finite sample
// rate yields [biquad.Passthrough].
func Design(t Type, freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return biquad.Passthrough
	}

	freq = ClampFrequency(freq, sampleRate)
	q = ClampQ(q)
	gainDB = ClampGain(gainDB)

	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	var c biquad.Coefficients
	switch t {
	case LowShelf:
		c = lowShelf(cw, alpha, gainDB)
	case HighShelf:
		c = highShelf(cw, alpha, gainDB)
	case Lowpass:
		c = normalize((1-cw)/2, 1-cw, (1-cw)/2, 1+alpha, -2*cw, 1-alpha)
	case Highpass:
		c = normalize((1+cw)/2, -(1 + cw), (1+cw)/2, 1+alpha, -2*cw, 1-alpha)
	case Bandpass:
		// Constant 0 dB peak gain.
		c = normalize(alpha, 0, -alpha, 1+alpha, -2*cw, 1-alpha)
	case Notch:
		c = normalize(1, -2*cw, 1, 1+alpha, -2*cw, 1-alpha)
	default:
		c = peak(cw, alpha, gainDB)
	}

	if !c.IsStable() {
		return biquad.Passthrough
	}
	return c
}

// ClampFrequency pulls freq into [MinFrequency, MaxFrequencyRatio*sampleRate].
// NaN maps to the lower bound.
func ClampFrequency(freq, sampleRate float64) float64 {
	upper := MaxFrequencyRatio * sampleRate
	if upper < MinFrequency {
		upper = MinFrequency
	}
	return core.Clamp(freq, MinFrequency, upper)
}

// ClampQ pulls q into [MinQ, MaxQ]. NaN maps to DefaultQ.
func ClampQ(q float64) float64 {
	if math.IsNaN(q) {
		return DefaultQ
	}
	return core.Clamp(q, MinQ, MaxQ)
}

// ClampGain pulls gainDB into ±MaxGainDB. NaN maps to 0 dB.
func ClampGain(gainDB float64) float64 {
	if math.IsNaN(gainDB) {
		return 0
	}
	return core.Clamp(gainDB, -MaxGainDB, MaxGainDB)
}

func peak(cw, alpha, gainDB float64) biquad.Coefficients {
	a := math.Pow(10, gainDB/40)

	return normalize(
		1+alpha*a, -2*cw, 1-alpha*a,
		1+alpha/a, -2*cw, 1-alpha/a,
	)
}

func lowShelf(cw, alpha, gainDB float64) biquad.Coefficients {
	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * alpha

	return normalize(
		a*((a+1)-(a-1)*cw+beta),
		2*a*((a-1)-(a+1)*cw),
		a*((a+1)-(a-1)*cw-beta),
		(a+1)+(a-1)*cw+beta,
		-2*((a-1)+(a+1)*cw),
		(a+1)+(a-1)*cw-beta,
	)
}

func highShelf(cw, alpha, gainDB float64) biquad.Coefficients {
	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * alpha

	return normalize(
		a*((a+1)+(a-1)*cw+beta),
		-2*a*((a-1)+(a+1)*cw),
		a*((a+1)+(a-1)*cw-beta),
		(a+1)-(a-1)*cw+beta,
		2*((a-1)-(a+1)*cw),
		(a+1)-(a-1)*cw-beta,
	)
}

func normalize(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || !core.IsFinite(a0) {
		return biquad.Passthrough
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
