// Package gpio wires the receiver core to real GPIO hardware through
// github.com/warthog618/go-gpiocdev: one input line carries the
// demodulated WWVB envelope bit. The fractional-divider tick comes from a
// software timer, not from a GPIO line.
package gpio

import (
	"fmt"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// Line mirrors the subset of *gpiocdev.Line our SampleSource needs,
// narrow enough to fake in tests without touching real hardware.
type Line interface {
	Value() (int, error)
	Close() error
}

// SampleSource reads the current level of a requested GPIO input line as
// the tick orchestrator's one demodulated bit per tick (spec.md §4.L).
type SampleSource struct {
	line Line
}

// NewSampleSource requests chip/offset as an input line and wraps it.
func NewSampleSource(chip string, offset int) (*SampleSource, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsInput)
	if err != nil {
		return nil, fmt.Errorf("failed to request GPIO line %s:%d as input: %w", chip, offset, err)
	}
	return &SampleSource{line: line}, nil
}

// ReadBit implements tickctx.SampleSource.
func (s *SampleSource) ReadBit() byte {
	v, err := s.line.Value()
	if err != nil {
		// A stuck-high reading is the safer failure: it deprives the
		// correlators of marker/zero matches rather than fabricating a
		// spurious frame boundary.
		return 1
	}
	return byte(v)
}

// Close releases the underlying GPIO line.
func (s *SampleSource) Close() error {
	return s.line.Close()
}

// TickSource implements tickctx.TickSource with a software timer whose
// duration is reprogrammed every period from the fractional-divider
// parameters the clock discipline loop computes. Real hardware PLL
// hardware is out of scope (spec.md §1 Non-goals); this is the
// between-ticks scheduling the core depends on to stay free-running at
// close to 60Hz regardless of host clock jitter.
type TickSource struct {
	tickNanos   int64 // whole-tick duration in nanoseconds
	fracNum     uint8
	fracDenom   uint16
	cycleIndex  uint16
	callback    func()
	timer       *time.Timer
	stopRequest chan struct{}
}

// NewTickSource builds a TickSource with tickNanos as the nominal
// single-tick duration (before any fractional stretching).
func NewTickSource(tickNanos int64) *TickSource {
	return &TickSource{tickNanos: tickNanos, fracDenom: 1, stopRequest: make(chan struct{})}
}

// SetPeriod reprograms the fractional cadence: every period lasts whole
// nanoseconds, and fracNum out of fracDenom periods in the repeating
// pattern get one extra nanosecond.
func (t *TickSource) SetPeriod(whole uint16, fracNum uint8, fracDenom uint16) {
	t.tickNanos = int64(whole)
	t.fracNum = fracNum
	t.fracDenom = fracDenom
	t.cycleIndex = 0
}

// OnTick registers the periodic callback and starts the timer loop.
func (t *TickSource) OnTick(callback func()) {
	t.callback = callback
	go t.run()
}

func (t *TickSource) run() {
	for {
		select {
		case <-t.stopRequest:
			return
		default:
		}
		time.Sleep(t.nextDuration())
		if t.callback != nil {
			t.callback()
		}
	}
}

// nextDuration returns the duration for the current cycle position,
// stretching fracNum-out-of-fracDenom cycles by one extra nanosecond's
// worth of whole-tick granularity, then advances the cycle.
func (t *TickSource) nextDuration() time.Duration {
	d := t.tickNanos
	if t.fracDenom > 0 && uint16(t.cycleIndex) < uint16(t.fracNum) {
		d++
	}
	t.cycleIndex++
	if t.cycleIndex >= t.fracDenom {
		t.cycleIndex = 0
	}
	return time.Duration(d)
}

// Stop halts the background timer loop.
func (t *TickSource) Stop() {
	close(t.stopRequest)
}
