// Package eq implements a real-time multi-band parametric equalizer.
//
// An [Engine] owns a cascade of biquad bands (see package bank) and a table
// of smoothed parameters. Hosts call Prepare once per configuration change,
// then ProcessBlock from the audio goroutine for every buffer. Parameter
// writes go through a [Port], which is safe from any goroutine:
//
//	e := eq.New(eq.WithBands(4))
//	if err := e.Prepare(core.DefaultProcessorConfig()); err != nil {
//		return err
//	}
//	_ = e.SetParameter(eq.ParamID{Band: 0, Role: eq.RoleGain}, 6)
//	_ = e.ProcessBlock(buf) // audio goroutine
//
// After Prepare, ProcessBlock performs no heap allocation, takes no lock and
// never blocks. Coefficients are redesigned at most once per update
// interval, and only for bands whose smoothed inputs actually moved.
package eq
