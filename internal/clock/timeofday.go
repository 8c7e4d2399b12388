package clock

// TicksPerSecond is the number of 60Hz ticks making up one second.
const TicksPerSecond = 60

func daysInYear(leap bool) int {
	if leap {
		return 366
	}
	return 365
}

// TimeOfDay is the free-running UTC clock the tick orchestrator advances
// once per tick. It is tick-context-owned state (spec.md §5): the main
// loop only reads it and clears the edge flags it owns.
type TimeOfDay struct {
	Ticks        int // 0..59
	Seconds      int // 0..59, or 0..60 during a leap minute
	Minutes      int // 0..59
	Hours        int // 0..23
	DayOfYear    int // 1..365/366
	Year         int // last two digits
	IsDST        bool
	IsLeapMinute bool
	IsLeapYear   bool
	HasFix       bool

	SecondChanged bool
	MinuteChanged bool
}

// blankAfterTicks is how long the display stays on after the last second
// boundary before a no-fix clock blanks itself (spec.md §4.I).
const blankAfterTicks = 45

// Tick advances the clock by one 60Hz tick, cascading seconds into
// minutes/hours/day/year as needed and raising the edge flags.
func (t *TimeOfDay) Tick() {
	t.Ticks++
	if t.Ticks < TicksPerSecond {
		return
	}
	t.Ticks = 0
	t.Seconds++
	t.SecondChanged = true

	secondsInMinute := 60
	if t.IsLeapMinute {
		secondsInMinute = 61
	}
	if t.Seconds < secondsInMinute {
		return
	}
	t.Seconds = 0
	t.IsLeapMinute = false
	t.Minutes++
	t.MinuteChanged = true

	if t.Minutes < 60 {
		return
	}
	t.Minutes = 0
	t.Hours++

	if t.Hours < 24 {
		return
	}
	t.Hours = 0
	t.DayOfYear++

	if t.DayOfYear <= daysInYear(t.IsLeapYear) {
		return
	}
	t.DayOfYear = 1
	t.Year = (t.Year + 1) % 100
}

// ShouldBlank reports whether the display should blank because no fix
// has been acquired yet and enough ticks have elapsed this second.
func (t *TimeOfDay) ShouldBlank() bool {
	return !t.HasFix && t.Ticks > blankAfterTicks
}

// SetFromFrame applies a decoded, latency-adjusted frame to the clock
// and marks it as having a fix.
func (t *TimeOfDay) SetFromFrame(minutes, hours, dayOfYear, year int, leapYear bool, remainderTicks int) {
	t.Minutes = minutes
	t.Hours = hours
	t.DayOfYear = dayOfYear
	t.Year = year
	t.IsLeapYear = leapYear
	t.Seconds = 0
	t.Ticks = remainderTicks % TicksPerSecond
	t.HasFix = true
}

// ClearFlags is called by the main loop after observing the edge flags.
func (t *TimeOfDay) ClearFlags() {
	t.SecondChanged = false
	t.MinuteChanged = false
}
