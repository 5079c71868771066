package design

import (
	"fmt"
	"math"
	"strings"
)

// Type selects the response of one EQ band.
type Type int

// Filter types, in parameter-value order.
const (
	Peak Type = iota
	LowShelf
	HighShelf
	Lowpass
	Highpass
	Bandpass
	Notch

	numTypes
)

var typeNames = [numTypes]string{
	Peak:      "peak",
	LowShelf:  "lowshelf",
	HighShelf: "highshelf",
	Lowpass:   "lowpass",
	Highpass:  "highpass",
	Bandpass:  "bandpass",
	Notch:     "notch",
}

// NumTypes is the number of defined filter types. Type values are dense in
// [0, NumTypes).
const NumTypes = int(numTypes)

// String returns the lower-case name of t.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Valid reports whether t is a defined filter type.
func (t Type) Valid() bool {
	return t >= 0 && t < numTypes
}

// UsesGain reports whether the gain parameter affects t's response.
func (t Type) UsesGain() bool {
	return t == Peak || t == LowShelf || t == HighShelf
}

// TypeFromValue maps a continuous parameter value onto a Type by rounding
// and clamping, as hosts transmit enum parameters as floats.
func TypeFromValue(v float64) Type {
	if math.IsNaN(v) || v < 0 {
		return Peak
	}
	n := int(v + 0.5)
	if n >= NumTypes {
		return numTypes - 1
	}
	return Type(n)
}

// ParseType resolves a type name, case-insensitively. A few common aliases
// (lp, hp, bp, bell, ...) are accepted.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "peak", "peaking", "bell":
		return Peak, nil
	case "lowshelf", "low-shelf", "ls":
		return LowShelf, nil
	case "highshelf", "high-shelf", "hs":
		return HighShelf, nil
	case "lowpass", "low-pass", "lp":
		return Lowpass, nil
	case "highpass", "high-pass", "hp":
		return Highpass, nil
	case "bandpass", "band-pass", "bp":
		return Bandpass, nil
	case "notch", "bandstop":
		return Notch, nil
	default:
		return Peak, fmt.Errorf("design: unknown filter type %q", name)
	}
}
