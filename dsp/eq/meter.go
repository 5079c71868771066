package eq

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// meterFloorDB is reported for silence.
const meterFloorDB = -120.0

// meter holds the output peak of the last processed block per channel.
type meter struct {
	peaks [core.MaxChannels]atomic.Uint64
}

func (m *meter) clear() {
	for i := range m.peaks {
		m.peaks[i].Store(0)
	}
}

func (m *meter) store(ch int, block []float64) {
	var p float64
	for _, v := range block {
		if a := math.Abs(v); a > p {
			p = a
		}
	}
	m.peaks[ch].Store(math.Float64bits(p))
}

func (m *meter) peak(ch int) float64 {
	if ch < 0 || ch >= len(m.peaks) {
		return 0
	}
	return math.Float64frombits(m.peaks[ch].Load())
}

func peakToDB(p float64) float64 {
	if p <= 0 || math.IsNaN(p) {
		return meterFloorDB
	}
	return max(amplitudeToDB(p), meterFloorDB)
}
