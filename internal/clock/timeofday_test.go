package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestTickNormalizesAfterEveryTick(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var tod TimeOfDay
		tod.Year = rapid.IntRange(0, 99).Draw(t, "year")
		tod.IsLeapYear = rapid.Bool().Draw(t, "leap")
		tod.DayOfYear = 1

		n := rapid.IntRange(1, 20000).Draw(t, "n")
		for i := 0; i < n; i++ {
			tod.Tick()
		}

		assert.True(t, tod.Ticks >= 0 && tod.Ticks < TicksPerSecond)
		assert.True(t, tod.Seconds >= 0 && tod.Seconds < 61)
		assert.True(t, tod.Minutes >= 0 && tod.Minutes < 60)
		assert.True(t, tod.Hours >= 0 && tod.Hours < 24)
		assert.True(t, tod.DayOfYear >= 1 && tod.DayOfYear <= 366)
	})
}

func TestTickRaisesSecondChanged(t *testing.T) {
	var tod TimeOfDay
	for i := 0; i < TicksPerSecond-1; i++ {
		tod.Tick()
		assert.False(t, tod.SecondChanged)
	}
	tod.Tick()
	assert.True(t, tod.SecondChanged)
	assert.Equal(t, 1, tod.Seconds)
}

func TestMinuteChangedAtSixtySeconds(t *testing.T) {
	var tod TimeOfDay
	for s := 0; s < 60; s++ {
		for i := 0; i < TicksPerSecond; i++ {
			tod.Tick()
		}
	}
	assert.True(t, tod.MinuteChanged)
	assert.Equal(t, 1, tod.Minutes)
	assert.Equal(t, 0, tod.Seconds)
}

func TestLeapMinuteAddsExtraSecond(t *testing.T) {
	var tod TimeOfDay
	tod.IsLeapMinute = true
	for s := 0; s < 61; s++ {
		for i := 0; i < TicksPerSecond; i++ {
			tod.Tick()
		}
	}
	assert.Equal(t, 1, tod.Minutes)
	assert.False(t, tod.IsLeapMinute, "leap-minute flag clears after the extra second")
}

func TestShouldBlankWithoutFix(t *testing.T) {
	var tod TimeOfDay
	for i := 0; i <= blankAfterTicks; i++ {
		tod.Tick()
	}
	assert.True(t, tod.ShouldBlank())
	tod.HasFix = true
	assert.False(t, tod.ShouldBlank())
}

func TestSetFromFrame(t *testing.T) {
	var tod TimeOfDay
	tod.SetFromFrame(36, 10, 152, 17, false, 3)
	assert.Equal(t, 36, tod.Minutes)
	assert.Equal(t, 10, tod.Hours)
	assert.Equal(t, 152, tod.DayOfYear)
	assert.Equal(t, 17, tod.Year)
	assert.True(t, tod.HasFix)
	assert.Equal(t, 3, tod.Ticks)
}
