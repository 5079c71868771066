package param

import (
	"fmt"
	"math"
)

// Range is the valid interval of a parameter and its default value.
type Range struct {
	Min, Max float64
	Default  float64
}

// Clamp pulls v into [Min, Max]. NaN maps to Default.
func (r Range) Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return r.Default
	case v < r.Min:
		return r.Min
	case v > r.Max:
		return r.Max
	default:
		return v
	}
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g] default %g", r.Min, r.Max, r.Default)
}
