package symbol

// FrameLen is the number of symbols in one WWVB minute frame.
const FrameLen = 60

// markerPositions are the 0-indexed slots that must carry a MARKER
// symbol for the frame to be considered aligned.
var markerPositions = [7]int{0, 9, 19, 29, 39, 49, 59}

func isMarkerPosition(i int) bool {
	for _, p := range markerPositions {
		if p == i {
			return true
		}
	}
	return false
}

// Stream is the 60-slot symbol FIFO. Slot 0 is the oldest symbol, slot
// 59 the newest; Shift inserts at 59 and displaces everything else
// toward 0.
type Stream struct {
	slots [FrameLen]Symbol
	score int
}

// NewStream returns a Stream with every slot set to Missing.
func NewStream() *Stream {
	s := &Stream{}
	for i := range s.slots {
		s.slots[i] = Missing
	}
	return s
}

// Shift inserts sym as the newest symbol and recomputes the
// frame-alignment score.
func (s *Stream) Shift(sym Symbol) {
	copy(s.slots[:FrameLen-1], s.slots[1:])
	s.slots[FrameLen-1] = sym
	s.score = s.computeAlignment()
}

func (s *Stream) computeAlignment() int {
	score := 0
	for i, sym := range s.slots {
		if isMarkerPosition(i) {
			if sym == Marker {
				score++
			}
			continue
		}
		if sym == Zero || sym == One {
			score++
		}
	}
	return score
}

// AlignmentScore returns the cached frame-alignment score, in [0, 60].
func (s *Stream) AlignmentScore() int {
	return s.score
}

// ValidFrame reports whether the stream currently holds a structurally
// valid 60-symbol frame (alignment score == FrameLen).
func (s *Stream) ValidFrame() bool {
	return s.score == FrameLen
}

// Slot returns the symbol at position i (0 = oldest, 59 = newest).
func (s *Stream) Slot(i int) Symbol {
	return s.slots[i]
}

// Slots returns a copy of the full 60-symbol buffer, oldest first.
func (s *Stream) Slots() [FrameLen]Symbol {
	return s.slots
}
