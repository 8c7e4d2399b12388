// Package device wraps every piece of process-wide receiver state in a
// single value, passed by reference to every component, per spec.md
// §9's "avoid hidden globals: wrap all core state in a single 'device'
// value, pass references explicitly."
package device

import (
	"github.com/sergev/wwvbclock/internal/acquisition"
	"github.com/sergev/wwvbclock/internal/bits"
	"github.com/sergev/wwvbclock/internal/clock"
	"github.com/sergev/wwvbclock/internal/scoreboard"
	"github.com/sergev/wwvbclock/internal/symbol"
)

// Flags are the single-producer/single-consumer edge signals spec.md §5
// describes: the tick context sets them true, the main loop reads and
// clears them. Nothing outside the tick context may set them; nothing
// outside the main loop may clear them. second_changed/minute_changed
// live directly on TimeOfDay, which follows the same discipline.
type Flags struct {
	ValidFrame          bool
	ParamsUnsaved       bool
	NeedsUIRefresh      bool
	TickIntervalChanged bool
}

// Device owns every piece of tick-context state: the sample register,
// the three per-template scoreboards, the symbol stream, the
// acquisition state machine, the clock discipline loop, and the
// time-of-day counter. The tick orchestrator is the sole writer; the
// main loop only reads these and the Flags it owns.
type Device struct {
	Register Bits

	Symbol      *symbol.Stream
	Acquisition *acquisition.State
	Discipline  *clock.Discipline
	TimeOfDay   *clock.TimeOfDay
	Flags       Flags

	TicksSinceSync          int
	TicksSinceParameterSave int
}

// Bits bundles the sample register and its three per-template
// scoreboards, since they always move together on every tick.
type Bits struct {
	Sample bits.Register
	Zero   scoreboard.Board
	One    scoreboard.Board
	Marker scoreboard.Board
}

// New constructs a Device at its zero/SEEK initial state, with
// discipline seeded at the nominal period nominalWhole/nominalFrac/denom.
// A stored calibration (spec.md §4.J) is applied afterwards, by
// mainloop.LoadCalibration, and replaces only the current period.
func New(detector *symbol.Detector, thresholds acquisition.Thresholds, nominalWhole uint16, nominalFrac uint8, denom uint16) *Device {
	return &Device{
		Symbol:      symbol.NewStream(),
		Acquisition: acquisition.NewState(thresholds, detector),
		Discipline:  clock.NewDiscipline(nominalWhole, nominalFrac, denom),
		TimeOfDay:   &clock.TimeOfDay{},
	}
}
