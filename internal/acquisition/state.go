// Package acquisition implements the SEEK/SYNC state machine that turns
// scoreboard peaks into a steady stream of decoded symbols and drives
// clock discipline from the observed arrival offset.
package acquisition

import (
	"github.com/sergev/wwvbclock/internal/scoreboard"
	"github.com/sergev/wwvbclock/internal/symbol"
)

// Mode is the acquisition state.
type Mode int

const (
	Seek Mode = iota
	Sync
)

func (m Mode) String() string {
	if m == Sync {
		return "SYNC"
	}
	return "SEEK"
}

// Thresholds bundles the tunable counters spec.md §4.G and §6 name as
// compile-time constants.
type Thresholds struct {
	SeekDetected  int // SEEK_DETECTED_THRESHOLD
	SyncMiss      int // SYNC_MISS_THRESHOLD
	DriftTrigger  int // DRIFT_TRIGGER
	MinDiscipline int // MIN_DISCIPLINE_TICKS
	PersistAfter  int // PERSIST_AFTER_TICKS, continuous SYNC ticks before persisting
}

// DefaultThresholds matches the nominal values spec.md §4.G gives.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SeekDetected:  10,
		SyncMiss:      6,
		DriftTrigger:  15,
		MinDiscipline: 1000,
		PersistAfter:  500000,
	}
}

// DisciplineRequest is emitted when accumulated drift has crossed the
// trigger and enough ticks have elapsed since the last correction; the
// caller passes it to the clock-discipline component's Adjust.
type DisciplineRequest struct {
	LocalTicks    int
	ApparentTicks int
}

// State is the SEEK/SYNC machine. All fields are tick-context-owned;
// see spec.md §5.
type State struct {
	Mode Mode

	thresholds Thresholds
	detector   *symbol.Detector

	seekDetections int

	peekIn               int
	missedSymbols        int
	accumulatedOffset    int
	ticksSinceDiscipline int
	ticksSinceSync       int
	ticksSincePersist    int

	// PersistDue is raised once SYNC has been held continuously for
	// thresholds.PersistAfter ticks; the main loop clears it after
	// writing calibration.
	PersistDue bool
}

// NewState returns a fresh SEEK-mode state machine.
func NewState(thresholds Thresholds, detector *symbol.Detector) *State {
	return &State{
		Mode:       Seek,
		thresholds: thresholds,
		detector:   detector,
		peekIn:     symbol.FrameLen,
	}
}

// Tick drives the state machine for one tick. It reads the three
// scoreboards (already shifted for this tick by the orchestrator),
// optionally pushes a symbol into stream, and returns a non-nil
// DisciplineRequest when the accumulated drift has crossed the trigger.
func (s *State) Tick(zero, one, marker *scoreboard.Board, stream *symbol.Stream) *DisciplineRequest {
	switch s.Mode {
	case Seek:
		s.tickSeek(zero, one, marker, stream)
		return nil
	default:
		return s.tickSync(zero, one, marker, stream)
	}
}

func (s *State) tickSeek(zero, one, marker *scoreboard.Board, stream *symbol.Stream) {
	sym, ok := s.detector.DetectCenter(zero, one, marker)
	if !ok {
		return
	}
	stream.Shift(sym)
	s.seekDetections++
	if s.seekDetections >= s.thresholds.SeekDetected {
		s.enterSync()
	}
}

func (s *State) enterSync() {
	s.Mode = Sync
	s.seekDetections = 0
	s.peekIn = symbol.FrameLen
	s.missedSymbols = 0
	s.accumulatedOffset = 0
	s.ticksSinceDiscipline = 0
	s.ticksSinceSync = 0
}

func (s *State) enterSeek() {
	s.Mode = Seek
	s.seekDetections = 0
	s.ticksSincePersist = 0
}

func (s *State) tickSync(zero, one, marker *scoreboard.Board, stream *symbol.Stream) *DisciplineRequest {
	s.ticksSinceSync++
	s.ticksSinceDiscipline++
	s.ticksSincePersist++

	s.peekIn--
	if s.peekIn > 0 {
		return nil
	}

	sym, offset, ok := s.detector.DetectAny(zero, one, marker)
	if ok {
		stream.Shift(sym)
		s.missedSymbols = 0
		s.accumulatedOffset += offset
		s.peekIn = symbol.FrameLen + offset
	} else {
		stream.Shift(symbol.Missing)
		s.missedSymbols++
		s.peekIn = symbol.FrameLen
		if s.missedSymbols >= s.thresholds.SyncMiss {
			s.enterSeek()
			return nil
		}
	}

	if s.ticksSincePersist >= s.thresholds.PersistAfter {
		s.PersistDue = true
	}

	if abs(s.accumulatedOffset) > s.thresholds.DriftTrigger && s.ticksSinceDiscipline > s.thresholds.MinDiscipline {
		req := &DisciplineRequest{
			LocalTicks:    s.ticksSinceDiscipline,
			ApparentTicks: s.ticksSinceDiscipline - s.accumulatedOffset,
		}
		s.accumulatedOffset = 0
		s.ticksSinceDiscipline = 0
		return req
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
