package tickctx

import (
	"github.com/sergev/wwvbclock/internal/bits"
	"github.com/sergev/wwvbclock/internal/device"
)

// Orchestrator runs the per-tick sequence of spec.md §4.K from the
// interrupt context. It never blocks: no persistence, no UI rendering,
// no serial output beyond what a diagnostic byte callback (if any) can
// emit synchronously.
type Orchestrator struct {
	dev    *device.Device
	sample SampleSource
}

// NewOrchestrator builds an Orchestrator over dev, sampling input bits
// from sample.
func NewOrchestrator(dev *device.Device, sample SampleSource) *Orchestrator {
	return &Orchestrator{dev: dev, sample: sample}
}

// Tick runs one interrupt-context step: sample, correlate, score,
// detect, advance time, flag the UI. It must complete in bounded time.
func (o *Orchestrator) Tick() {
	d := o.dev

	bit := o.sample.ReadBit()
	d.Register.Sample.Shift(bit)

	zeroScore, oneScore, markerScore := bits.ScoreAll(d.Register.Sample.AsBits())
	d.Register.Zero.Shift(zeroScore)
	d.Register.One.Shift(oneScore)
	d.Register.Marker.Shift(markerScore)

	d.TicksSinceSync++
	d.TicksSinceParameterSave++

	if req := d.Acquisition.Tick(&d.Register.Zero, &d.Register.One, &d.Register.Marker, d.Symbol); req != nil {
		d.Discipline.Adjust(req.LocalTicks, req.ApparentTicks)
		d.Flags.ParamsUnsaved = true
		d.Flags.TickIntervalChanged = true
	}
	if d.Symbol.ValidFrame() {
		d.Flags.ValidFrame = true
	}
	if d.Acquisition.PersistDue {
		d.Flags.ParamsUnsaved = true
	}

	d.TimeOfDay.Tick()

	d.Flags.NeedsUIRefresh = true
}
