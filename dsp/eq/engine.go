package eq

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/bank"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-vecmath"
	"github.com/sirupsen/logrus"
)

// Recompute thresholds. A band is redesigned when a smoothed input moved
// further than these since its last design.
const (
	relativeEpsilon = 1e-6 // frequency and Q
	gainEpsilonDB   = 1e-4
)

// Processor is the host-facing contract of a block processor.
type Processor interface {
	Prepare(cfg core.ProcessorConfig) error
	ProcessBlock(buf [][]float64) error
	ReleaseResources()
	Parameter(id ParamID) (float64, error)
	SetParameter(id ParamID, v float64) error
}

var _ Processor = (*Engine)(nil)

// Stats are cumulative counters since construction.
type Stats struct {
	Blocks     uint64 // accepted ProcessBlock calls
	Frames     uint64 // frames processed
	Recomputes uint64 // band coefficient redesigns
	Violations uint64 // rejected ProcessBlock calls
}

// designed records the inputs of a band's last design.
type designed struct {
	freq, gain, q float64
	typ           design.Type
	valid         bool
}

// Engine runs a bank of EQ bands over planar blocks.
//
// Prepare and ReleaseResources must not run concurrently with ProcessBlock
// or with each other. The Port, Meter, Stats and MagnitudeDB are safe from
// any goroutine.
type Engine struct {
	cfg    config
	logger logrus.FieldLogger

	table *paramTable
	port  *Port
	bank  *bank.Bank
	last  []designed

	proc     core.ProcessorConfig
	prepared bool

	// sub holds the per-channel sub-block views handed to the bank.
	sub [][]float64
	// planes is the deinterleave scratch for ProcessInterleaved; chunk
	// holds views into it.
	planes [][]float64
	chunk  [][]float64

	gain         float64 // linear output gain applied to the previous sub-block
	masterBypass bool

	meter meter
	snap  *snapshot

	blocks     atomic.Uint64
	frames     atomic.Uint64
	recomputes atomic.Uint64
	violations atomic.Uint64
}

// New returns an unprepared engine.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	table := newParamTable(cfg.bands)
	e := &Engine{
		cfg:    cfg,
		logger: cfg.logger,
		table:  table,
		port:   &Port{table: table, logger: cfg.logger},
		bank:   bank.New(cfg.bands),
		last:   make([]designed, cfg.bands),
		gain:   1,
		snap:   newSnapshot(cfg.bands),
	}

	e.logger.WithFields(logrus.Fields{
		"function":        "New",
		"bands":           cfg.bands,
		"smoothing_ms":    cfg.smoothingMs,
		"update_interval": cfg.updateInterval,
	}).Debug("EQ engine created")

	return e
}

// Port returns the engine's parameter port.
func (e *Engine) Port() *Port { return e.port }

// NumBands returns the band count.
func (e *Engine) NumBands() int { return e.cfg.bands }

// Config returns the configuration of the last successful Prepare.
func (e *Engine) Config() core.ProcessorConfig { return e.proc }

// SetParameter forwards to the Port.
func (e *Engine) SetParameter(id ParamID, v float64) error {
	return e.port.SetParameter(id, v)
}

// Parameter forwards to the Port.
func (e *Engine) Parameter(id ParamID) (float64, error) {
	return e.port.Parameter(id)
}

// Prepare validates cfg, allocates every buffer the audio path needs and
// snaps all parameters to their latest targets.
func (e *Engine) Prepare(cfg core.ProcessorConfig) error {
	if err := cfg.Validate(); err != nil {
		e.logger.WithFields(logrus.Fields{
			"function": "Prepare",
			"error":    err.Error(),
		}).Warn("Rejected processor configuration")
		return fmt.Errorf("eq: prepare: %w", err)
	}

	if err := e.bank.Prepare(cfg.SampleRate, cfg.MaxBlockSize, cfg.Channels); err != nil {
		return fmt.Errorf("eq: prepare: %w", err)
	}

	for i := range e.table.params {
		e.table.params[i].smoother.Prepare(cfg.SampleRate, e.cfg.smoothingMs)
	}

	e.sub = make([][]float64, cfg.Channels)
	e.chunk = make([][]float64, cfg.Channels)
	e.planes = make([][]float64, cfg.Channels)
	for ch := range e.planes {
		e.planes[ch] = make([]float64, cfg.MaxBlockSize)
	}

	e.proc = cfg
	e.snap.setRate(cfg.SampleRate)
	e.meter.clear()

	for b := range e.last {
		e.last[b] = designed{}
	}
	e.update(0)
	e.snap.prime()
	e.gain = core.DBToLinear(e.table.global(RoleOutputGain).Current())
	e.prepared = true

	e.logger.WithFields(logrus.Fields{
		"function":       "Prepare",
		"sample_rate":    cfg.SampleRate,
		"max_block_size": cfg.MaxBlockSize,
		"channels":       cfg.Channels,
		"ramp_samples":   e.table.params[0].smoother.RampLength(),
	}).Info("EQ engine prepared")

	return nil
}

// ReleaseResources drops the buffers allocated by Prepare. Parameter
// targets are kept.
func (e *Engine) ReleaseResources() {
	e.prepared = false
	e.bank.Release()
	e.sub = nil
	e.chunk = nil
	e.planes = nil
	e.meter.clear()

	e.logger.WithFields(logrus.Fields{
		"function": "ReleaseResources",
	}).Info("EQ engine released")
}

// Reset clears the filter state without touching parameters.
func (e *Engine) Reset() {
	e.bank.Reset()
	e.meter.clear()
}

// ProcessBlock filters buf in place. Every channel must have the same
// length, at most the prepared max block size. A zero-length block is a
// no-op. Precondition violations leave buf untouched and return a sentinel
// error.
func (e *Engine) ProcessBlock(buf [][]float64) error {
	n, err := e.check(buf)
	if err != nil {
		return e.violation(err)
	}
	if n == 0 {
		return nil
	}

	e.run(buf, n)
	return nil
}

// ProcessInterleaved filters interleaved frames in place, in chunks of at
// most the max block size.
func (e *Engine) ProcessInterleaved(buf []float64) error {
	if !e.prepared {
		return e.violation(ErrNotPrepared)
	}

	channels := e.proc.Channels
	if len(buf)%channels != 0 {
		return e.violation(ErrChannelMismatch)
	}

	span := e.proc.MaxBlockSize * channels
	for off := 0; off < len(buf); off += span {
		part := buf[off:min(off+span, len(buf))]
		frames := len(part) / channels

		for ch := range e.planes {
			e.chunk[ch] = e.planes[ch][:frames]
		}
		core.Deinterleave(e.chunk, part)
		e.run(e.chunk, frames)
		core.Interleave(part, e.chunk, frames)
	}
	return nil
}

func (e *Engine) check(buf [][]float64) (int, error) {
	if !e.prepared {
		return 0, ErrNotPrepared
	}
	if len(buf) != e.proc.Channels {
		return 0, ErrChannelMismatch
	}

	n := len(buf[0])
	for _, ch := range buf[1:] {
		if len(ch) != n {
			return 0, ErrFrameMismatch
		}
	}
	if n > e.proc.MaxBlockSize {
		return 0, ErrBlockTooLarge
	}
	return n, nil
}

func (e *Engine) violation(err error) error {
	e.violations.Add(1)
	assertPrecondition(err)
	return err
}

// run processes n frames of buf in update-interval sub-blocks.
func (e *Engine) run(buf [][]float64, n int) {
	step := e.cfg.updateInterval
	dirty := false

	for off := 0; off < n; off += step {
		m := min(step, n-off)
		dirty = e.update(m) || dirty

		for ch := range buf {
			e.sub[ch] = buf[ch][off : off+m]
		}
		e.processSub(e.sub)
	}

	for ch := range buf {
		e.meter.store(ch, buf[ch][:n])
	}
	if dirty {
		e.publish()
	}

	e.blocks.Add(1)
	e.frames.Add(uint64(n))
}

// update advances every smoother by m samples and redesigns the bands whose
// inputs moved. m == 0 forces a design of every band. It reports whether any
// band changed.
func (e *Engine) update(m int) bool {
	force := m == 0
	rate := e.proc.SampleRate
	changed := false

	for b := range e.last {
		p := e.table.band(b)
		freq := p[RoleFrequency].smoother.Advance(m)
		gain := p[RoleGain].smoother.Advance(m)
		q := p[RoleQ].smoother.Advance(m)
		typ := design.TypeFromValue(p[RoleType].smoother.Advance(m))
		bypass := p[RoleBypass].smoother.Advance(m) >= 0.5

		st := e.bank.Stage(b)
		if st.Bypassed() != bypass {
			st.SetBypass(bypass)
			changed = true
		}

		last := &e.last[b]
		if !force && last.valid && !moved(last, freq, gain, q, typ) {
			continue
		}

		st.SetParameters(freq, gain, q, typ, rate)
		*last = designed{freq: freq, gain: gain, q: q, typ: typ, valid: true}
		e.recomputes.Add(1)
		changed = true
	}

	e.masterBypass = e.table.global(RoleMasterBypass).Advance(m) >= 0.5
	e.table.global(RoleOutputGain).Advance(m)

	if force {
		e.publish()
	}
	return changed
}

func moved(last *designed, freq, gain, q float64, typ design.Type) bool {
	return typ != last.typ ||
		!core.NearlyEqual(freq, last.freq, relativeEpsilon) ||
		!core.NearlyEqual(q, last.q, relativeEpsilon) ||
		math.Abs(gain-last.gain) > gainEpsilonDB
}

// processSub runs one sub-block through the bank and the output gain.
func (e *Engine) processSub(sub [][]float64) {
	if e.masterBypass {
		return
	}

	// check has already validated the shape; the bank cannot fail here.
	_ = e.bank.ProcessBlock(sub)

	target := core.DBToLinear(e.table.global(RoleOutputGain).Current())
	from := e.gain
	e.gain = target

	if from == target {
		if target == 1 {
			return
		}
		for _, x := range sub {
			vecmath.ScaleBlock(x, x, target)
		}
		return
	}

	// Interpolate across the sub-block so gain changes do not step.
	for _, x := range sub {
		if len(x) == 0 {
			continue
		}
		inc := (target - from) / float64(len(x))
		g := from
		for i := range x {
			g += inc
			x[i] *= g
		}
	}
}

func (e *Engine) publish() {
	e.snap.begin()
	for b := range e.last {
		st := e.bank.Stage(b)
		e.snap.storeBand(b, st.Coefficients(), st.Bypassed())
	}
	e.snap.end()
}

// Meter returns the linear output peak of channel ch over the last block.
func (e *Engine) Meter(ch int) float64 { return e.meter.peak(ch) }

// MeterDB is Meter in dBFS, floored at -120.
func (e *Engine) MeterDB(ch int) float64 { return peakToDB(e.meter.peak(ch)) }

// Stats returns the cumulative counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Blocks:     e.blocks.Load(),
		Frames:     e.frames.Load(),
		Recomputes: e.recomputes.Load(),
		Violations: e.violations.Load(),
	}
}

// MagnitudeDB returns the response of the most recently published
// coefficients at freq, including the output gain. It allocates and is
// meant for display goroutines, not the audio path.
func (e *Engine) MagnitudeDB(freq float64) float64 {
	if e.table.global(RoleMasterBypass).Smoothed() >= 0.5 {
		return 0
	}

	views := make([]bandView, e.cfg.bands)
	rate := e.snap.load(views)
	if rate <= 0 {
		return 0
	}

	sum := e.table.global(RoleOutputGain).Smoothed()
	for i := range views {
		if views[i].bypass {
			continue
		}
		sum += views[i].MagnitudeDB(freq, rate)
	}
	return sum
}
