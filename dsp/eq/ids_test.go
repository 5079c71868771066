package eq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamID_RoundTrip(t *testing.T) {
	ids := []ParamID{
		BandParam(0, RoleFrequency),
		BandParam(3, RoleGain),
		BandParam(7, RoleQ),
		BandParam(12, RoleType),
		BandParam(1, RoleBypass),
		MasterBypass,
		OutputGain,
	}
	for _, id := range ids {
		got, err := ParseParamID(id.String())
		require.NoError(t, err, id.String())
		assert.Equal(t, id, got)
	}
}

func TestParseParamID(t *testing.T) {
	tests := []struct {
		in   string
		want ParamID
	}{
		{"band2.frequency", BandParam(2, RoleFrequency)},
		{" BAND0.Gain ", BandParam(0, RoleGain)},
		{"band5.shape", BandParam(5, RoleType)},
		{"master.bypass", MasterBypass},
		{"outputgain", OutputGain},
	}
	for _, tt := range tests {
		got, err := ParseParamID(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "band", "band.freq", "band-1.freq", "bandx.gain", "band0.width", "eq0.freq"} {
		_, err := ParseParamID(bad)
		assert.ErrorIs(t, err, ErrUnknownParameter, bad)
	}
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "freq", RoleFrequency.String())
	assert.Equal(t, "output", RoleOutputGain.String())
	assert.Equal(t, "Role(42)", Role(42).String())
	assert.True(t, RoleMasterBypass.Global())
	assert.False(t, RoleBypass.Global())
}
