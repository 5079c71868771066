// Package biquad provides the second-order IIR runtime used by the EQ stages.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Block processing is
// dispatched once to the fastest kernel registered for the running CPU;
// every kernel performs the same operations in the same order, so results
// are bit-identical across kernels.
//
// Coefficient design (peaking, shelving, pass filters) lives in
// dsp/filter/design.
package biquad
