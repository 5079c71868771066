package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/dsp/param"
)

// Parameter ranges. Frequency and Q are further clamped against the sample
// rate at design time.
var (
	FrequencyRange  = param.Range{Min: 10, Max: 30000, Default: 1000}
	GainRange       = param.Range{Min: -24, Max: 24, Default: 0}
	QRange          = param.Range{Min: 0.1, Max: 18, Default: design.DefaultQ}
	TypeRange       = param.Range{Min: 0, Max: float64(design.NumTypes - 1), Default: float64(design.Peak)}
	SwitchRange     = param.Range{Min: 0, Max: 1, Default: 0}
	OutputGainRange = param.Range{Min: -24, Max: 24, Default: 0}
)

// Descriptor describes one parameter for display.
type Descriptor struct {
	ID    ParamID
	Range param.Range
	Mode  param.Mode
	Unit  string
}

type parameter struct {
	desc     Descriptor
	smoother *param.Smoother
}

// paramTable lays out numBands*numBandRoles band parameters followed by the
// global ones.
type paramTable struct {
	bands  int
	params []parameter
}

func newParamTable(bands int) *paramTable {
	t := &paramTable{bands: bands}
	t.params = make([]parameter, 0, bands*int(numBandRoles)+int(numRoles-numBandRoles))

	for b := range bands {
		for r := RoleFrequency; r < numBandRoles; r++ {
			t.add(bandDescriptor(b, bands, r))
		}
	}
	t.add(Descriptor{ID: MasterBypass, Range: SwitchRange, Mode: param.Step})
	t.add(Descriptor{ID: OutputGain, Range: OutputGainRange, Mode: param.Linear, Unit: "dB"})

	return t
}

func (t *paramTable) add(d Descriptor) {
	t.params = append(t.params, parameter{
		desc:     d,
		smoother: param.NewSmoother(d.Mode, d.Range.Default),
	})
}

func (t *paramTable) index(id ParamID) (int, bool) {
	switch {
	case id.Role.Global():
		if id.Band != GlobalBand {
			return 0, false
		}
		return t.bands*int(numBandRoles) + int(id.Role-numBandRoles), true
	case id.Role >= 0 && id.Role < numBandRoles && id.Band >= 0 && id.Band < t.bands:
		return id.Band*int(numBandRoles) + int(id.Role), true
	default:
		return 0, false
	}
}

func (t *paramTable) lookup(id ParamID) (*parameter, bool) {
	i, ok := t.index(id)
	if !ok {
		return nil, false
	}
	return &t.params[i], true
}

// band returns the smoothers of band b in role order.
func (t *paramTable) band(b int) []parameter {
	off := b * int(numBandRoles)
	return t.params[off : off+int(numBandRoles)]
}

func (t *paramTable) global(r Role) *param.Smoother {
	return t.params[t.bands*int(numBandRoles)+int(r-numBandRoles)].smoother
}

// bandDescriptor spreads the default band frequencies log-uniformly over
// 50 Hz .. 12 kHz and shapes the outer bands as shelves.
func bandDescriptor(b, bands int, r Role) Descriptor {
	id := BandParam(b, r)

	switch r {
	case RoleFrequency:
		rng := FrequencyRange
		rng.Default = defaultFrequency(b, bands)
		return Descriptor{ID: id, Range: rng, Mode: param.Logarithmic, Unit: "Hz"}
	case RoleGain:
		return Descriptor{ID: id, Range: GainRange, Mode: param.Linear, Unit: "dB"}
	case RoleQ:
		return Descriptor{ID: id, Range: QRange, Mode: param.Linear}
	case RoleType:
		rng := TypeRange
		rng.Default = float64(defaultType(b, bands))
		return Descriptor{ID: id, Range: rng, Mode: param.Step}
	default:
		return Descriptor{ID: id, Range: SwitchRange, Mode: param.Step}
	}
}

func defaultFrequency(b, bands int) float64 {
	const lo, hi = 50.0, 12000.0
	if bands <= 1 {
		return FrequencyRange.Default
	}
	f := lo * math.Pow(hi/lo, float64(b)/float64(bands-1))
	return math.Round(f)
}

func defaultType(b, bands int) design.Type {
	switch {
	case bands < 3:
		return design.Peak
	case b == 0:
		return design.LowShelf
	case b == bands-1:
		return design.HighShelf
	default:
		return design.Peak
	}
}
