package core

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by ProcessorConfig.Validate.
var (
	ErrInvalidSampleRate = errors.New("core: sample rate must be positive and finite")
	ErrInvalidBlockSize  = errors.New("core: max block size must be positive")
	ErrInvalidChannels   = errors.New("core: channel count must be positive")
)

// MaxChannels bounds the channel count accepted by Validate.
const MaxChannels = 64

// ProcessorConfig holds the settings a host supplies once per prepare call.
type ProcessorConfig struct {
	SampleRate   float64
	MaxBlockSize int
	Channels     int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a stereo 48 kHz configuration.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:   48000,
		MaxBlockSize: 1024,
		Channels:     2,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithMaxBlockSize sets the largest block the host will ever pass.
func WithMaxBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.MaxBlockSize = blockSize
		}
	}
}

// WithChannels sets the negotiated channel count.
func WithChannels(channels int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if channels > 0 {
			cfg.Channels = channels
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports the first invalid field, if any.
func (c ProcessorConfig) Validate() error {
	if c.SampleRate <= 0 || math.IsNaN(c.SampleRate) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, c.SampleRate)
	}
	if c.MaxBlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, c.MaxBlockSize)
	}
	if c.Channels <= 0 || c.Channels > MaxChannels {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidChannels, c.Channels, MaxChannels)
	}
	return nil
}
