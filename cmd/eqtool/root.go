package main

import (
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// globalOptions are shared by every subcommand.
type globalOptions struct {
	bands       int
	smoothingMs float64
	interval    int
	sets        []string
	logLevel    string
	logFormat   string

	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{logger: logrus.New()}

	root := &cobra.Command{
		Use:   "eqtool",
		Short: "Render audio through the parametric EQ and inspect its response",
		Long: `eqtool drives the real-time EQ engine offline: render WAV files,
print the analytic and measured frequency response, and list parameters.

Parameters are set with --set id=value, for example:
  --set band0.freq=1000 --set band0.gain=6 --set band0.q=0.7
  --set band1.type=highshelf --set output=-3 --set bypass=off`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return opts.configureLogger(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&opts.bands, "bands", 8, "number of EQ bands")
	pf.Float64Var(&opts.smoothingMs, "smoothing", 20, "parameter smoothing time in ms")
	pf.IntVar(&opts.interval, "interval", 32, "coefficient update interval in samples")
	pf.StringArrayVar(&opts.sets, "set", nil, "parameter assignment id=value (repeatable)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newResponseCmd(opts))
	root.AddCommand(newParamsCmd(opts))

	return root
}

// validate rejects engine flags the eq options would otherwise ignore.
func (o *globalOptions) validate() error {
	if o.bands < 1 || o.bands > eq.MaxBands {
		return fmt.Errorf("--bands must be in 1..%d, got %d", eq.MaxBands, o.bands)
	}
	if o.smoothingMs < 0 || math.IsNaN(o.smoothingMs) {
		return fmt.Errorf("--smoothing must be non-negative, got %g", o.smoothingMs)
	}
	if o.interval <= 0 {
		return fmt.Errorf("--interval must be positive, got %d", o.interval)
	}
	return nil
}

func (o *globalOptions) configureLogger(w io.Writer) error {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	o.logger.SetOutput(w)
	o.logger.SetLevel(level)

	switch o.logFormat {
	case "text":
		o.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		o.logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid --log-format %q (text, json)", o.logFormat)
	}
	return nil
}

// newEngine builds an engine from the global flags. Settings are applied
// separately so they can follow Prepare.
func (o *globalOptions) newEngine(extra ...eq.Option) *eq.Engine {
	opts := []eq.Option{
		eq.WithBands(o.bands),
		eq.WithSmoothingTime(o.smoothingMs),
		eq.WithUpdateInterval(o.interval),
		eq.WithLogger(o.logger),
	}
	return eq.New(append(opts, extra...)...)
}
