package eq

import (
	"testing"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_LoadReturnsPublishedBands(t *testing.T) {
	s := newSnapshot(2)
	s.setRate(48000)

	c := biquad.Coefficients{B0: 0.5, B1: 0.1, B2: 0.2, A1: -0.3, A2: 0.1}
	s.begin()
	s.storeBand(0, c, false)
	s.storeBand(1, biquad.Passthrough, true)
	s.end()

	views := make([]bandView, 2)
	assert.Equal(t, 48000.0, s.load(views))
	assert.Equal(t, c, views[0].Coefficients)
	assert.False(t, views[0].bypass)
	assert.Equal(t, biquad.Passthrough, views[1].Coefficients)
	assert.True(t, views[1].bypass)
}

func TestSnapshot_StalledPublishFallsBackToLastConsistentCopy(t *testing.T) {
	s := newSnapshot(1)
	s.setRate(48000)

	good := biquad.Coefficients{B0: 0.9, A1: -0.1}
	s.begin()
	s.storeBand(0, good, false)
	s.end()
	s.prime()

	// A publish that never finishes keeps seq odd for every attempt.
	s.begin()
	s.storeBand(0, biquad.Coefficients{B0: 7}, true)

	views := make([]bandView, 1)
	s.load(views)
	assert.Equal(t, good, views[0].Coefficients)
	assert.False(t, views[0].bypass)
}

func TestEngine_MagnitudeDBSurvivesStalledPublish(t *testing.T) {
	e, _ := newEngine(t, 64, 1, WithBands(1), WithSmoothingTime(0))
	set(t, e, BandParam(0, RoleType), float64(design.Peak))
	set(t, e, BandParam(0, RoleFrequency), 1000)
	set(t, e, BandParam(0, RoleGain), 6)
	require.NoError(t, e.ProcessBlock([][]float64{make([]float64, 64)}))

	want := e.MagnitudeDB(1000)
	require.InDelta(t, 6.0, want, 1e-6)

	e.snap.begin()
	assert.InDelta(t, want, e.MagnitudeDB(1000), 1e-12)
	e.snap.end()
}
