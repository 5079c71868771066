package bank

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// Errors returned by Bank.
var (
	ErrNotPrepared     = errors.New("bank: not prepared")
	ErrChannelMismatch = errors.New("bank: channel count mismatch")
	ErrBlockTooLarge   = errors.New("bank: block exceeds max block size")
)

// Bank is an ordered cascade of stages.
type Bank struct {
	stages []Stage

	sampleRate   float64
	maxBlockSize int
	channels     int
	prepared     bool
}

// New returns a bank of numBands flat peak stages. Negative counts are
// treated as zero.
func New(numBands int) *Bank {
	numBands = max(numBands, 0)

	b := &Bank{stages: make([]Stage, numBands)}
	for i := range b.stages {
		b.stages[i] = newStage()
	}
	return b
}

// Prepare allocates and clears per-channel state and redesigns every stage
// for sampleRate. It is the only method that allocates.
func (b *Bank) Prepare(sampleRate float64, maxBlockSize, numChannels int) error {
	cfg := core.ProcessorConfig{
		SampleRate:   sampleRate,
		MaxBlockSize: maxBlockSize,
		Channels:     numChannels,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("bank: prepare: %w", err)
	}

	biquad.Init()
	for i := range b.stages {
		b.stages[i].prepare(numChannels, sampleRate)
	}

	b.sampleRate = sampleRate
	b.maxBlockSize = maxBlockSize
	b.channels = numChannels
	b.prepared = true
	return nil
}

// Release drops per-channel state. The bank must be prepared again before
// processing.
func (b *Bank) Release() {
	for i := range b.stages {
		b.stages[i].sections = nil
	}
	b.prepared = false
}

// ProcessBlock filters every channel of buf through every active stage in
// band order, in place. A block whose channels are all empty is a no-op.
func (b *Bank) ProcessBlock(buf [][]float64) error {
	if !b.prepared {
		return ErrNotPrepared
	}
	if len(buf) != b.channels {
		return ErrChannelMismatch
	}
	for _, ch := range buf {
		if len(ch) > b.maxBlockSize {
			return ErrBlockTooLarge
		}
	}

	for i := range b.stages {
		st := &b.stages[i]
		if st.bypass {
			continue
		}
		for ch, samples := range buf {
			st.sections[ch].ProcessBlock(samples)
		}
	}
	return nil
}

// Reset clears the state of every stage. Coefficients are kept.
func (b *Bank) Reset() {
	for i := range b.stages {
		b.stages[i].reset()
	}
}

// Stage returns band i, or nil when i is out of range.
func (b *Bank) Stage(i int) *Stage {
	if i < 0 || i >= len(b.stages) {
		return nil
	}
	return &b.stages[i]
}

// NumBands returns the number of stages.
func (b *Bank) NumBands() int { return len(b.stages) }

// NumChannels returns the prepared channel count.
func (b *Bank) NumChannels() int { return b.channels }

// SampleRate returns the prepared sample rate.
func (b *Bank) SampleRate() float64 { return b.sampleRate }

// MaxBlockSize returns the prepared block limit.
func (b *Bank) MaxBlockSize() int { return b.maxBlockSize }

// Prepared reports whether Prepare has succeeded since the last Release.
func (b *Bank) Prepared() bool { return b.prepared }

// MagnitudeDB returns the analytic cascade response at freq.
func (b *Bank) MagnitudeDB(freq float64) float64 {
	if !b.prepared {
		return 0
	}

	var sum float64
	for i := range b.stages {
		sum += b.stages[i].MagnitudeDB(freq, b.sampleRate)
	}
	return sum
}
