package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPeakIndexPointsAtMax(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var b Board
		n := rapid.IntRange(1, 50).Draw(t, "n")
		for i := 0; i < n; i++ {
			b.Shift(uint8(rapid.IntRange(0, 80).Draw(t, "score")))
		}
		value, index := b.Peak()
		assert.Equal(t, value, b.SlotValue(index))
		for i := 0; i < Len; i++ {
			assert.LessOrEqual(t, b.SlotValue(i), value)
		}
	})
}

func TestMaxOverThreshold(t *testing.T) {
	var b Board
	for _, s := range []uint8{10, 20, 75, 30, 5, 5, 5, 5, 5, 5, 5} {
		b.Shift(s)
	}
	value, index, ok := b.MaxOverThreshold(70)
	assert.True(t, ok)
	assert.Equal(t, uint8(75), value)
	assert.True(t, index >= 0 && index < Len)

	_, _, ok = b.MaxOverThreshold(76)
	assert.False(t, ok)
}

func TestCenterIsMiddleSlot(t *testing.T) {
	assert.Equal(t, 5, Center)
	assert.Equal(t, 11, Len)
}
