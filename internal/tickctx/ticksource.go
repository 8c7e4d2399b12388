// Package tickctx implements the per-tick sequencing the interrupt
// context runs (spec.md §4.K) and the abstract interfaces it depends on
// for sampling input and scheduling the next tick (§4.L).
package tickctx

// TickSource is the abstract interface the core depends on for its
// periodic tick interrupt. The concrete source (internal/gpio's
// software-timer implementation, or a simulated source in tests) must
// deliver the fractional cadence exactly -- no long-run drift from
// rounding -- and its callback must execute in bounded time, well under
// one tick period.
type TickSource interface {
	// SetPeriod reprograms the next period: fracNum out of fracDenom
	// periods in the cycle are "whole+1" cycles long, the rest are
	// "whole" cycles.
	SetPeriod(whole uint16, fracNum uint8, fracDenom uint16)

	// OnTick registers the callback invoked once per tick. Only one
	// callback is ever registered; a second call replaces the first.
	OnTick(callback func())
}

// SampleSource delivers the single demodulated input bit for the
// current tick. This is the out-of-scope GPIO collaborator spec.md §1
// names; internal/gpio provides the real implementation.
type SampleSource interface {
	ReadBit() byte
}
