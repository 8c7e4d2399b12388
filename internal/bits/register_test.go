package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestShiftKeepsEightyBits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var reg Register
		n := rapid.IntRange(1, 500).Draw(t, "n")
		for i := 0; i < n; i++ {
			bit := byte(rapid.IntRange(0, 1).Draw(t, "bit"))
			reg.Shift(bit)
		}
		assert.Len(t, reg.Bytes, 10, "register is always 80 bits / 10 bytes")
	})
}

func TestShiftNewestBitIsLSBOfByteZero(t *testing.T) {
	var reg Register
	reg.Shift(1)
	assert.Equal(t, byte(1), reg.Bytes[0]&1)
	reg.Shift(0)
	assert.Equal(t, byte(0), reg.Bytes[0]&1)
	assert.Equal(t, byte(1), (reg.Bytes[0]>>1)&1, "previous bit moved up one position")
}

func TestShiftEvictsOldestAfterEightyTicks(t *testing.T) {
	var reg Register
	reg.Shift(1)
	for i := 0; i < 79; i++ {
		reg.Shift(0)
	}
	// The marker bit has aged all the way to the oldest position (MSB of Bytes[9]).
	assert.Equal(t, byte(0x80), reg.Bytes[9])
	reg.Shift(0)
	// One more shift evicts it entirely.
	assert.Equal(t, byte(0), reg.Bytes[9])
}
