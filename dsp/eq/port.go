package eq

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Port is the non-real-time face of an Engine. All methods are safe from
// any goroutine and never block the audio goroutine: each write is one
// atomic store into the parameter's slot.
//
// Writes to one parameter are observed in order, and a burst may coalesce
// to its latest value. Writes to different parameters carry no relative
// ordering.
type Port struct {
	table  *paramTable
	logger logrus.FieldLogger
}

// SetParameter validates v, clamps it into the parameter's range and
// publishes it. A clamped value is still applied; the returned error wraps
// ErrClamped.
func (p *Port) SetParameter(id ParamID, v float64) error {
	prm, ok := p.table.lookup(id)
	if !ok {
		p.reject(id, v, ErrUnknownParameter)
		return fmt.Errorf("%w: %s", ErrUnknownParameter, id)
	}
	if math.IsNaN(v) {
		p.reject(id, v, ErrInvalidValue)
		return fmt.Errorf("%w: %s is NaN", ErrInvalidValue, id)
	}

	c := prm.desc.Range.Clamp(v)
	prm.smoother.SetTarget(c)

	if c != v {
		p.reject(id, v, ErrClamped)
		return fmt.Errorf("%w: %s=%g stored as %g", ErrClamped, id, v, c)
	}
	return nil
}

// Parameter returns the last published target of id.
func (p *Port) Parameter(id ParamID) (float64, error) {
	prm, ok := p.table.lookup(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownParameter, id)
	}
	return prm.smoother.Slot().Value(), nil
}

// Smoothed returns the smoothed value of id as of the last processed
// sub-block.
func (p *Port) Smoothed(id ParamID) (float64, error) {
	prm, ok := p.table.lookup(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownParameter, id)
	}
	return prm.smoother.Smoothed(), nil
}

// Params lists every parameter in table order: bands first, then the
// global parameters.
func (p *Port) Params() []Descriptor {
	out := make([]Descriptor, len(p.table.params))
	for i := range p.table.params {
		out[i] = p.table.params[i].desc
	}
	return out
}

func (p *Port) reject(id ParamID, v float64, reason error) {
	p.logger.WithFields(logrus.Fields{
		"function": "SetParameter",
		"param":    id.String(),
		"value":    v,
		"reason":   reason.Error(),
	}).Debug("Parameter write adjusted or rejected")
}
