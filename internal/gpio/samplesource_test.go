package gpio

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeLine struct {
	value int
	err   error
}

func (f *fakeLine) Value() (int, error) { return f.value, f.err }
func (f *fakeLine) Close() error        { return nil }

func TestSampleSourceReadsLineValue(t *testing.T) {
	line := &fakeLine{value: 1}
	s := &SampleSource{line: line}
	assert.EqualValues(t, 1, s.ReadBit())

	line.value = 0
	assert.EqualValues(t, 0, s.ReadBit())
}

func TestSampleSourceFailsSafeOnReadError(t *testing.T) {
	line := &fakeLine{err: errors.New("gpio read failed")}
	s := &SampleSource{line: line}
	assert.EqualValues(t, 1, s.ReadBit())
}

func TestTickSourceStretchesFractionalCycles(t *testing.T) {
	ts := NewTickSource(100)
	ts.SetPeriod(100, 2, 4)

	durations := make([]time.Duration, 4)
	for i := range durations {
		durations[i] = ts.nextDuration()
	}
	// 2 of every 4 cycles get the extra nanosecond.
	stretched := 0
	for _, d := range durations {
		if d == 101 {
			stretched++
		}
	}
	assert.Equal(t, 2, stretched)
}
