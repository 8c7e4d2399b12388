package mainloop

import (
	"testing"

	"github.com/sergev/wwvbclock/internal/acquisition"
	"github.com/sergev/wwvbclock/internal/calibration"
	"github.com/sergev/wwvbclock/internal/clock"
	"github.com/sergev/wwvbclock/internal/device"
	"github.com/sergev/wwvbclock/internal/symbol"
	"github.com/sergev/wwvbclock/internal/tickctx"
	"github.com/sergev/wwvbclock/internal/testgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	data [calibration.RecordSize]byte
}

func (m *memStore) ReadAt(p []byte, off int64) (int, error) {
	return copy(p, m.data[off:]), nil
}

func (m *memStore) WriteAt(p []byte, off int64) (int, error) {
	return copy(m.data[off:], p), nil
}

func zeroFrame() []testgen.SymbolKind {
	pattern := make([]testgen.SymbolKind, 60)
	for i := range pattern {
		pattern[i] = testgen.KindZero
	}
	for _, p := range []int{0, 9, 19, 29, 39, 49, 59} {
		pattern[p] = testgen.KindMarker
	}
	return pattern
}

func TestStepDecodesValidFrameAndClearsFlag(t *testing.T) {
	detector := &symbol.Detector{Threshold: 70}
	dev := device.New(detector, acquisition.DefaultThresholds(), 33333, 0, 64)
	orch := tickctx.NewOrchestrator(dev, testgen.NewGenerator(zeroFrame()))
	loop := New(dev, &memStore{}, nil)

	const maxTicks = 60 * 60 * 4
	for i := 0; i < maxTicks && !dev.Flags.ValidFrame; i++ {
		orch.Tick()
	}
	require.True(t, dev.Flags.ValidFrame, "expected a valid frame within %d ticks", maxTicks)

	loop.Step()
	assert.False(t, dev.Flags.ValidFrame)
	assert.True(t, dev.TimeOfDay.HasFix)
	assert.Equal(t, 0, dev.TimeOfDay.Hours)
}

func TestStepPersistsCalibrationAndClearsFlag(t *testing.T) {
	detector := &symbol.Detector{Threshold: 70}
	dev := device.New(detector, acquisition.DefaultThresholds(), 33333, 5, 64)
	store := &memStore{}
	loop := New(dev, store, nil)

	dev.Flags.ParamsUnsaved = true
	loop.Step()

	assert.False(t, dev.Flags.ParamsUnsaved)
	got, err := calibration.Load(store)
	require.NoError(t, err)
	assert.Equal(t, dev.Discipline.Current.Scaled(), got.Scaled())
}

func TestLoadCalibrationAppliesStoredParams(t *testing.T) {
	store := &memStore{}
	require.NoError(t, calibration.Save(store, clock.Params{Whole: 777, FracNumerator: 9, Denom: calibration.DenomV2}))

	detector := &symbol.Detector{Threshold: 70}
	dev := device.New(detector, acquisition.DefaultThresholds(), 1, 0, 64)
	LoadCalibration(dev, store, nil)

	assert.EqualValues(t, 777, dev.Discipline.Current.Whole)
	assert.EqualValues(t, 9, dev.Discipline.Current.FracNumerator)
}
