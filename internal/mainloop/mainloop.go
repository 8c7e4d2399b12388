// Package mainloop implements the background-context responsibilities
// spec.md §5 assigns away from the tick orchestrator: decoding a valid
// frame into wall-clock fields, persisting calibration, and logging
// diagnostics. It is the sole reader and clearer of device.Flags.
package mainloop

import (
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"

	"github.com/sergev/wwvbclock/internal/calibration"
	"github.com/sergev/wwvbclock/internal/clock"
	"github.com/sergev/wwvbclock/internal/device"
	"github.com/sergev/wwvbclock/internal/symbol"
)

// defaultTimestampFormat is the strftime format used for the periodic
// minute-boundary log line, matching the original's periodic UTC print.
const defaultTimestampFormat = "%Y-%m-%d %H:%M:%S UTC"

// Loop drives the background-context work for one Device: decoding
// frames, saving calibration, and logging. It holds no tick-context
// state of its own.
type Loop struct {
	dev             *device.Device
	store           calibration.ByteStore
	log             *charmlog.Logger
	timestampFormat string
}

// New builds a Loop over dev, persisting calibration through store and
// logging through logger. logger may be nil to use charmlog's default.
func New(dev *device.Device, store calibration.ByteStore, logger *charmlog.Logger) *Loop {
	if logger == nil {
		logger = charmlog.Default()
	}
	return &Loop{dev: dev, store: store, log: logger, timestampFormat: defaultTimestampFormat}
}

// Step runs one pass of background work, intended to be called from a
// goroutine on a cadence much slower than the tick rate (e.g. once per
// display refresh). It is safe to call concurrently with tick-context
// ticks: it only reads/clears the Flags the tick context raises and
// only writes fields the tick context never touches.
func (l *Loop) Step() {
	d := l.dev

	if d.Flags.ValidFrame {
		l.decodeFrame()
		d.Flags.ValidFrame = false
	}

	if d.Flags.ParamsUnsaved {
		l.persistCalibration()
		d.Flags.ParamsUnsaved = false
		d.Acquisition.PersistDue = false
		d.TicksSinceParameterSave = 0
	}

	if d.Flags.TickIntervalChanged {
		l.log.Debug("clock discipline adjusted", "scaled", d.Discipline.Current.Scaled())
		d.Flags.TickIntervalChanged = false
	}

	if d.TimeOfDay.MinuteChanged {
		if formatted, err := strftime.Format(l.timestampFormat, time.Now().UTC()); err != nil {
			l.log.Error("invalid timestamp format", "err", err)
		} else {
			l.log.Info(formatted, "hours", d.TimeOfDay.Hours, "minutes", d.TimeOfDay.Minutes)
		}
	}

	if d.TimeOfDay.SecondChanged || d.TimeOfDay.MinuteChanged {
		d.TimeOfDay.ClearFlags()
	}

	d.Flags.NeedsUIRefresh = false
}

func (l *Loop) decodeFrame() {
	d := l.dev

	fields, err := symbol.DecodeFrame(d.Symbol)
	if err != nil {
		l.log.Warn("valid-frame flag raised but frame failed to decode", "err", err)
		return
	}

	adjusted, remainderTicks := symbol.AdjustForLatency(fields, d.TicksSinceSync, clock.TicksPerSecond)
	d.TimeOfDay.SetFromFrame(adjusted.Minutes, adjusted.Hours, adjusted.DayOfYear, adjusted.Year, adjusted.LeapYear, remainderTicks)
	d.TicksSinceSync = 0

	l.log.Info("frame decoded",
		"minutes", adjusted.Minutes,
		"hours", adjusted.Hours,
		"day_of_year", adjusted.DayOfYear,
		"year", adjusted.Year,
		"leap_year", adjusted.LeapYear,
	)
}

func (l *Loop) persistCalibration() {
	if l.store == nil {
		return
	}
	if err := calibration.Save(l.store, l.dev.Discipline.Current); err != nil {
		l.log.Error("failed to persist calibration", "err", err)
	}
}

// LoadCalibration reads calibration from store and applies it to dev's
// discipline loop. On any error it logs a warning and keeps the nominal
// period dev was built with (spec.md §4.J: absence or corruption of
// calibration is not fatal).
func LoadCalibration(dev *device.Device, store calibration.ByteStore, logger *charmlog.Logger) {
	if logger == nil {
		logger = charmlog.Default()
	}
	params, err := calibration.Load(store)
	if err != nil {
		logger.Warn("calibration load failed, keeping compiled-in nominal", "err", err)
		return
	}
	dev.Discipline.Current = params
	logger.Info("calibration loaded", "scaled", params.Scaled())
}
