// Package response measures the frequency response of a block processor
// from the outside: it drives the processor with impulses and tones and
// inspects what comes back. Use it to check an analytic response against
// the signal path that actually runs.
package response
