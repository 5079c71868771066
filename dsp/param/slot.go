package param

import (
	"math"
	"sync/atomic"
)

// Slot is a single-value mailbox for a float64. Store and Load never block
// and never allocate. Concurrent stores are allowed; the last one wins.
//
// The zero Slot holds 0 with sequence 0.
type Slot struct {
	bits atomic.Uint64
	seq  atomic.Uint64
}

// Store publishes v and bumps the sequence number.
func (s *Slot) Store(v float64) {
	s.bits.Store(math.Float64bits(v))
	s.seq.Add(1)
}

// Load returns the latest value and its sequence number. A reader that
// observes sequence n sees a value at least as new as the n-th store.
func (s *Slot) Load() (float64, uint64) {
	seq := s.seq.Load()
	return math.Float64frombits(s.bits.Load()), seq
}

// Value returns the latest value.
func (s *Slot) Value() float64 {
	return math.Float64frombits(s.bits.Load())
}
