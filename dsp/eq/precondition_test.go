//go:build !eqdebug

package eq

import (
	"testing"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_PreconditionsReportAndCount(t *testing.T) {
	unprepared := New()
	require.ErrorIs(t, unprepared.ProcessBlock([][]float64{{1}, {1}}), ErrNotPrepared)
	require.ErrorIs(t, unprepared.ProcessInterleaved([]float64{1, 1}), ErrNotPrepared)
	assert.Equal(t, uint64(2), unprepared.Stats().Violations)

	e, _ := newEngine(t, 64, 2)
	x := []float64{0.25, 0.5, 0.75}

	tests := []struct {
		name string
		buf  [][]float64
		want error
	}{
		{"one channel of two", [][]float64{x}, ErrChannelMismatch},
		{"three channels of two", [][]float64{x, x, x}, ErrChannelMismatch},
		{"ragged", [][]float64{x, x[:2]}, ErrFrameMismatch},
		{"too large", [][]float64{make([]float64, 65), make([]float64, 65)}, ErrBlockTooLarge},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, e.ProcessBlock(tt.buf), tt.want)
			assert.Equal(t, uint64(i+1), e.Stats().Violations)
		})
	}
	assert.Equal(t, []float64{0.25, 0.5, 0.75}, x, "rejected blocks must be untouched")
	assert.Zero(t, e.Stats().Blocks)

	require.ErrorIs(t, e.ProcessInterleaved(make([]float64, 3)), ErrChannelMismatch)

	e.ReleaseResources()
	require.ErrorIs(t, e.ProcessBlock([][]float64{{0}, {0}}), ErrNotPrepared)
}

func TestEngine_PrepareRejectsBadConfig(t *testing.T) {
	e := New()
	tests := []struct {
		cfg  core.ProcessorConfig
		want error
	}{
		{core.ProcessorConfig{SampleRate: 0, MaxBlockSize: 64, Channels: 2}, core.ErrInvalidSampleRate},
		{core.ProcessorConfig{SampleRate: 48000, MaxBlockSize: 0, Channels: 2}, core.ErrInvalidBlockSize},
		{core.ProcessorConfig{SampleRate: 48000, MaxBlockSize: 64, Channels: 0}, core.ErrInvalidChannels},
	}
	for _, tt := range tests {
		require.ErrorIs(t, e.Prepare(tt.cfg), tt.want)
	}
	require.ErrorIs(t, e.ProcessBlock([][]float64{{0}, {0}}), ErrNotPrepared)
}
