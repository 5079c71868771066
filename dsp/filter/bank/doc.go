// Package bank implements a fixed cascade of parametric EQ stages over a
// multi-channel buffer.
//
// A [Stage] is one band: a designed biquad with one delay line per
// channel. A [Bank] runs every channel through every active stage in band
// order, in place. Prepare is the only allocating call; ProcessBlock
// neither allocates nor blocks.
package bank
