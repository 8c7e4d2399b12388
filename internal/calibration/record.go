// Package calibration implements the versioned on-device persistence of
// clock-discipline calibration: spec.md §4.J and §6's little-endian
// record layout.
package calibration

import (
	"encoding/binary"
	"fmt"

	"github.com/sergev/wwvbclock/internal/clock"
)

// Version identifiers for the persisted record. v1 used a denominator of
// 16; v2 (current) uses 64. v1 is converted to v2 on read by multiplying
// the fraction numerator by 4.
const (
	VersionV1     uint8 = 1
	VersionV2     uint8 = 2
	VersionLatest       = VersionV2

	DenomV1 uint16 = 16
	DenomV2 uint16 = 64

	// RecordSize is the on-disk record length: 1 version byte + 4
	// little-endian scaled_counts bytes.
	RecordSize = 5
)

// ByteStore is the narrow interface the out-of-scope persistent byte
// store is consumed through (spec.md §1's "byte-persistent store for
// calibration"). It mirrors io.ReaderAt/io.WriterAt so both a plain file
// and an I2C EEPROM can implement it.
type ByteStore interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
}

// ErrUnsupportedVersion is returned by Load when the stored version byte
// is neither 1 nor 2.
type ErrUnsupportedVersion struct{ Version uint8 }

func (e ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("calibration: unsupported record version %d", e.Version)
}

// Load reads and validates the calibration record, returning clock
// Params decoded at the current (v2) denominator. Per spec.md §7, the
// caller is expected to fall back to compile-time defaults on any
// returned error rather than treat this as fatal.
func Load(store ByteStore) (clock.Params, error) {
	buf := make([]byte, RecordSize)
	n, err := store.ReadAt(buf, 0)
	if err != nil {
		return clock.Params{}, fmt.Errorf("calibration: read failed: %w", err)
	}
	if n < RecordSize {
		return clock.Params{}, fmt.Errorf("calibration: short read: got %d bytes, want %d", n, RecordSize)
	}

	version := buf[0]
	scaled := binary.LittleEndian.Uint32(buf[1:5])

	switch version {
	case VersionV1:
		return convertV1ToV2(scaled), nil
	case VersionV2:
		return clock.FromScaled(scaled, DenomV2), nil
	default:
		return clock.Params{}, ErrUnsupportedVersion{Version: version}
	}
}

// convertV1ToV2 re-expresses a v1 (denom 16) scaled count at denom 64 by
// scaling the fraction numerator, per spec.md §6.
func convertV1ToV2(scaledV1 uint32) clock.Params {
	v1 := clock.FromScaled(scaledV1, DenomV1)
	return clock.Params{
		Whole:         v1.Whole,
		FracNumerator: v1.FracNumerator * 4,
		Denom:         DenomV2,
	}
}

// Save writes the current calibration as a v2 record.
func Save(store ByteStore, params clock.Params) error {
	buf := make([]byte, RecordSize)
	buf[0] = VersionLatest
	binary.LittleEndian.PutUint32(buf[1:5], params.Scaled())
	_, err := store.WriteAt(buf, 0)
	if err != nil {
		return fmt.Errorf("calibration: write failed: %w", err)
	}
	return nil
}
