package eq

import (
	"github.com/cwbudde/algo-eq/dsp/param"
	"github.com/sirupsen/logrus"
)

// MaxBands is the largest band count WithBands accepts.
const MaxBands = 64

const (
	defaultBands          = 8
	defaultUpdateInterval = 32
)

type config struct {
	bands          int
	smoothingMs    float64
	updateInterval int
	logger         logrus.FieldLogger
}

func defaultConfig() config {
	return config{
		bands:          defaultBands,
		smoothingMs:    param.DefaultSmoothingMs,
		updateInterval: defaultUpdateInterval,
		logger:         logrus.StandardLogger(),
	}
}

// Option configures an Engine at construction.
type Option func(*config)

// WithBands sets the number of bands, 1..MaxBands. Other values are
// ignored. Defaults to 8.
func WithBands(n int) Option {
	return func(cfg *config) {
		if n > 0 && n <= MaxBands {
			cfg.bands = n
		}
	}
}

// WithSmoothingTime sets the parameter ramp time in milliseconds. Zero
// disables smoothing. Defaults to 20 ms.
func WithSmoothingTime(ms float64) Option {
	return func(cfg *config) {
		if ms >= 0 {
			cfg.smoothingMs = ms
		}
	}
}

// WithUpdateInterval sets the sub-block length in samples at which
// smoothers advance and coefficients may be redesigned. Defaults to 32.
func WithUpdateInterval(samples int) Option {
	return func(cfg *config) {
		if samples > 0 {
			cfg.updateInterval = samples
		}
	}
}

// WithLogger sets the logger for lifecycle events. Nothing is logged from
// the audio path.
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}
