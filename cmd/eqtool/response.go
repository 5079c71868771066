package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/measure/response"
	"github.com/spf13/cobra"
)

type responseOptions struct {
	sampleRate float64
	points     int
	minHz      float64
	maxHz      float64
	fftSize    int
}

func newResponseCmd(g *globalOptions) *cobra.Command {
	o := &responseOptions{}

	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print the analytic and measured magnitude response",
		Long: `Configure the engine from --set assignments and print, at log-spaced
frequencies, the analytic cascade response next to the response measured
from the FFT of the engine's impulse response.

Example:
  eqtool response --set band0.freq=1000 --set band0.gain=6 --points 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResponse(cmd, g, o)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&o.sampleRate, "rate", 48000, "sample rate in Hz")
	f.IntVar(&o.points, "points", 24, "number of frequencies")
	f.Float64Var(&o.minHz, "min", 20, "lowest frequency in Hz")
	f.Float64Var(&o.maxHz, "max", 20000, "highest frequency in Hz")
	f.IntVar(&o.fftSize, "fft", 16384, "FFT size for the measured response (power of two)")

	return cmd
}

// responseRow is one line of the response table.
type responseRow struct {
	freq, analytic, measured float64
}

func measureResponse(g *globalOptions, o *responseOptions) ([]responseRow, error) {
	settings, err := parseSettings(g.sets)
	if err != nil {
		return nil, err
	}
	if o.points < 1 || !(o.minHz > 0 && o.maxHz >= o.minHz) {
		return nil, fmt.Errorf("invalid frequency grid: %d points over [%v, %v]", o.points, o.minHz, o.maxHz)
	}

	const block = 1024
	// Static measurement: targets apply at once.
	e := g.newEngine(eq.WithSmoothingTime(0))
	cfg := core.ApplyProcessorOptions(core.WithMaxBlockSize(block), core.WithChannels(1))
	cfg.SampleRate = o.sampleRate
	if err := e.Prepare(cfg); err != nil {
		return nil, err
	}
	if err := applySettings(e, settings, func(msg string) { g.logger.Warn(msg) }); err != nil {
		return nil, err
	}

	a, err := response.NewAnalyzer(o.sampleRate, 1, block)
	if err != nil {
		return nil, err
	}
	ir, err := a.ImpulseResponse(e, o.fftSize)
	if err != nil {
		return nil, err
	}
	freqs, mag, err := a.Spectrum(ir, o.fftSize)
	if err != nil {
		return nil, err
	}

	rows := make([]responseRow, o.points)
	for i := range rows {
		f := o.minHz
		if o.points > 1 {
			f = o.minHz * math.Pow(o.maxHz/o.minHz, float64(i)/float64(o.points-1))
		}
		rows[i] = responseRow{
			freq:     f,
			analytic: e.MagnitudeDB(f),
			measured: interpolate(freqs, mag, f),
		}
	}
	return rows, nil
}

func runResponse(cmd *cobra.Command, g *globalOptions, o *responseOptions) error {
	rows, err := measureResponse(g, o)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tAnalytic [dB]\tMeasured [dB]\n")
	fmt.Fprintf(tw, "---------\t-------------\t-------------\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "%.1f\t%+.3f\t%+.3f\n", r.freq, r.analytic, r.measured)
	}
	return tw.Flush()
}

// interpolate reads ys at x from the uniform grid xs.
func interpolate(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}

	step := xs[1] - xs[0]
	k := int(x / step)
	frac := (x - xs[k]) / step
	return ys[k] + frac*(ys[k+1]-ys[k])
}
