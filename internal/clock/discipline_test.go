package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustStaysWithinFivePercentOfNominal(t *testing.T) {
	d := NewDiscipline(1041, 0, 64) // ~16.67ms nominal, DENOM=64

	// Simulate a wildly fast local clock (ratio way past 5%).
	d.Adjust(1000, 10)

	lo := uint32(uint64(d.Nominal) * 95 / 100)
	hi := uint32(uint64(d.Nominal) * 105 / 100)
	assert.GreaterOrEqual(t, d.Current.Scaled(), lo)
	assert.LessOrEqual(t, d.Current.Scaled(), hi)
}

func TestAdjustIncreasesScaledWhenLocalIsFast(t *testing.T) {
	// apparentTicks < localTicks => local clock is fast => scaled increases.
	d := NewDiscipline(1041, 0, 64)
	before := d.Current.Scaled()
	d.Adjust(1000, 999)
	assert.Greater(t, d.Current.Scaled(), before)
}

func TestAdjustDecreasesScaledWhenLocalIsSlow(t *testing.T) {
	d := NewDiscipline(1041, 0, 64)
	before := d.Current.Scaled()
	d.Adjust(999, 1000)
	assert.Less(t, d.Current.Scaled(), before)
}

func TestFromScaledRoundTrips(t *testing.T) {
	p := Params{Whole: 1234, FracNumerator: 5, Denom: 64}
	got := FromScaled(p.Scaled(), p.Denom)
	assert.Equal(t, p, got)
}

func TestOscillatorPointOnePercentFastMovesTowardCorrection(t *testing.T) {
	// spec.md §8 scenario 2: local oscillator runs 0.1% fast (apparent
	// ticks < local ticks). A single discipline cycle should move scaled
	// up toward nominal*1.001, damped by half via the low-pass filter,
	// and stay within 1% of the fully-corrected target.
	d := NewDiscipline(1041, 0, 64)
	nominal := float64(d.Nominal)

	local := 100000
	apparent := int(float64(local) * 0.999)
	d.Adjust(local, apparent)

	target := nominal * 1.001
	assert.Greater(t, float64(d.Current.Scaled()), nominal)
	assert.InEpsilon(t, target, float64(d.Current.Scaled()), 0.01)
}
