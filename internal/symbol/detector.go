// Package symbol turns scoreboard peaks into WWVB symbols, assembles
// them into a 60-symbol frame, and decodes a fully-aligned frame's BCD
// fields.
package symbol

import "github.com/sergev/wwvbclock/internal/scoreboard"

// Symbol is one of the three WWVB symbols, or Missing when no board
// peaked above threshold during a SYNC peek.
type Symbol byte

const (
	Zero    Symbol = '0'
	One     Symbol = '1'
	Marker  Symbol = 'M'
	Missing Symbol = '-'
)

// Detector decides, from the three per-template scoreboards, whether a
// symbol has just been received. The boards are mutually exclusive by
// threshold choice: at most one should peak above Threshold on a given
// tick. Ties are broken in a fixed order: ZERO, ONE, MARKER.
type Detector struct {
	Threshold uint8
}

// NewDetector returns a Detector using the fixed near-70-of-80 threshold
// spec.md §4.D calls for.
func NewDetector(threshold uint8) *Detector {
	return &Detector{Threshold: threshold}
}

// DetectCenter is the SEEK-mode check: a symbol only counts when its
// board's peak sits exactly in the center slot.
func (d *Detector) DetectCenter(zero, one, marker *scoreboard.Board) (sym Symbol, ok bool) {
	for _, cand := range []struct {
		board *scoreboard.Board
		sym   Symbol
	}{
		{zero, Zero}, {one, One}, {marker, Marker},
	} {
		value, index, over := cand.board.MaxOverThreshold(d.Threshold)
		if over && index == scoreboard.Center {
			_ = value
			return cand.sym, true
		}
	}
	return Missing, false
}

// DetectAny is the SYNC-mode peek: any peak above threshold counts,
// wherever it sits. The returned offset is center-minus-peak-index, the
// drift signal.
func (d *Detector) DetectAny(zero, one, marker *scoreboard.Board) (sym Symbol, offset int, ok bool) {
	for _, cand := range []struct {
		board *scoreboard.Board
		sym   Symbol
	}{
		{zero, Zero}, {one, One}, {marker, Marker},
	} {
		_, index, over := cand.board.MaxOverThreshold(d.Threshold)
		if over {
			return cand.sym, scoreboard.Center - index, true
		}
	}
	return Missing, 0, false
}
