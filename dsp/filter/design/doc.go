// Package design computes biquad coefficients for parametric EQ bands.
//
// All designers follow the RBJ audio-EQ cookbook. Unlike a general-purpose
// designer they never reject their inputs: frequency, Q and gain are clamped
// into a safe envelope first, so the returned [biquad.Coefficients] are
// always finite with both poles strictly inside the unit circle. An EQ band
// can therefore be driven by any host value, including NaN or a frequency at
// or above Nyquist, without the cascade diverging.
package design
