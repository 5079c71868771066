// Package param provides lock-free parameter targets and per-block
// smoothing for real-time processors.
//
// A [Slot] carries the latest target from any goroutine to the audio
// goroutine with one atomic store. A [Smoother] owns a slot and turns the
// stream of targets into a ramp that is advanced a block at a time:
//
//	s := param.NewSmoother(param.Linear, 0)
//	s.Prepare(48000, 20)
//	s.SetTarget(6)        // any goroutine
//	v := s.Advance(32)    // audio goroutine only
//
// Retargeting while a ramp is in flight starts the new ramp from the current
// smoothed value, so the output never jumps.
package param
