package symbol

import "fmt"

// daysInYear returns 366 for a leap year, 365 otherwise.
func daysInYear(leap bool) int {
	if leap {
		return 366
	}
	return 365
}

// Fields are the BCD-decoded date/time fields from one valid WWVB
// frame, per spec.md §6's bit layout.
type Fields struct {
	Minutes   int // 0-59
	Hours     int // 0-23
	DayOfYear int // 1-365/366
	Year      int // last two digits, 0-99
	LeapYear  bool
}

type bcdField struct {
	positions []int
	weights   []int
}

func (f bcdField) decode(s *Stream) int {
	sum := 0
	for i, p := range f.positions {
		if s.Slot(p) == One {
			sum += f.weights[i]
		}
	}
	return sum
}

var (
	minutesTens  = bcdField{[]int{1, 2, 3}, []int{40, 20, 10}}
	minutesUnits = bcdField{[]int{5, 6, 7, 8}, []int{8, 4, 2, 1}}
	hoursTens    = bcdField{[]int{12, 13}, []int{20, 10}}
	hoursUnits   = bcdField{[]int{15, 16, 17, 18}, []int{8, 4, 2, 1}}
	dayHundreds  = bcdField{[]int{22, 23}, []int{200, 100}}
	dayTens      = bcdField{[]int{25, 26, 27, 28}, []int{80, 40, 20, 10}}
	dayUnits     = bcdField{[]int{30, 31, 32, 33}, []int{8, 4, 2, 1}}
	yearTens     = bcdField{[]int{45, 46, 47, 48}, []int{80, 40, 20, 10}}
	yearUnits    = bcdField{[]int{50, 51, 52, 53}, []int{8, 4, 2, 1}}

	leapYearPosition = 55
)

// DecodeFrame extracts BCD date/time fields from a stream known to be
// aligned (AlignmentScore() == FrameLen). It does not apply the
// next-minute/latency adjustment; call AdjustForLatency for that.
func DecodeFrame(s *Stream) (Fields, error) {
	if !s.ValidFrame() {
		return Fields{}, fmt.Errorf("frame not aligned: score=%d want %d", s.AlignmentScore(), FrameLen)
	}
	return Fields{
		Minutes:   minutesTens.decode(s) + minutesUnits.decode(s),
		Hours:     hoursTens.decode(s) + hoursUnits.decode(s),
		DayOfYear: dayHundreds.decode(s) + dayTens.decode(s) + dayUnits.decode(s),
		Year:      yearTens.decode(s) + yearUnits.decode(s),
		LeapYear:  s.Slot(leapYearPosition) == One,
	}, nil
}

// AdjustForLatency advances decoded fields by one minute (the decoded
// time is the time at the frame's first mark, so the minute currently
// being displayed is decoded+1) plus ticksDelta ticks of additional
// processing latency, cascading the carry through hours/day/year as
// needed. It returns the adjusted fields and the leftover sub-minute
// tick count the caller should seed into TimeOfDay.Ticks/Seconds.
func AdjustForLatency(f Fields, ticksDelta, ticksPerSecond int) (Fields, int) {
	totalSeconds := ticksDelta / ticksPerSecond
	remainderTicks := ticksDelta % ticksPerSecond

	extraMinutes := 1 + totalSeconds/60

	f.Minutes += extraMinutes
	for f.Minutes >= 60 {
		f.Minutes -= 60
		f.Hours++
	}
	for f.Hours >= 24 {
		f.Hours -= 24
		f.DayOfYear++
	}
	daysThisYear := daysInYear(f.LeapYear)
	for f.DayOfYear > daysThisYear {
		f.DayOfYear -= daysThisYear
		f.Year = (f.Year + 1) % 100
	}
	return f, remainderTicks
}
