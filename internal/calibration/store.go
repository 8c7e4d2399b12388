package calibration

import (
	"fmt"
	"os"

	"github.com/go-daq/smbus"
)

// busNumber extracts the numeric bus id from a device path such as
// "/dev/i2c-1", matching the form github.com/go-daq/smbus.Open expects.
func busNumber(busPath string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(busPath, "/dev/i2c-%d", &n); err != nil {
		return 0, fmt.Errorf("calibration: invalid smbus device path %q: %w", busPath, err)
	}
	return n, nil
}

// FileStore is a ByteStore backed by a plain file, for development hosts;
// the CLI uses it when calibration.store is "file", at calibration.path
// from the config. Grounded on hfe/read.go's
// open-then-seek-then-read/write shape.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore for path, creating it with zeroed
// content if it does not already exist.
func NewFileStore(path string) (*FileStore, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, make([]byte, RecordSize), 0644); err != nil {
			return nil, fmt.Errorf("calibration: failed to create %s: %w", path, err)
		}
	}
	return &FileStore{path: path}, nil
}

func (f *FileStore) ReadAt(p []byte, off int64) (int, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	defer file.Close()
	return file.ReadAt(p, off)
}

func (f *FileStore) WriteAt(p []byte, off int64) (int, error) {
	file, err := os.OpenFile(f.path, os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s for write: %w", f.path, err)
	}
	defer file.Close()
	return file.WriteAt(p, off)
}

// EEPROMStore is a ByteStore backed by a byte-addressable I2C EEPROM
// reachable over SMBus, the real target device for this receiver's
// "byte-persistent store for calibration" collaborator (spec.md §1).
// Each byte is addressed as an SMBus "command" register, matching how
// small I2C EEPROMs expose their address space.
type EEPROMStore struct {
	dev     *smbus.Conn
	address uint8
}

// NewEEPROMStore opens the SMBus device at busPath (e.g. "/dev/i2c-1")
// and targets the EEPROM at the given 7-bit address.
func NewEEPROMStore(busPath string, address uint8) (*EEPROMStore, error) {
	bus, err := busNumber(busPath)
	if err != nil {
		return nil, err
	}
	conn, err := smbus.Open(bus, address)
	if err != nil {
		return nil, fmt.Errorf("calibration: failed to open smbus device %s: %w", busPath, err)
	}
	return &EEPROMStore{dev: conn, address: address}, nil
}

func (e *EEPROMStore) ReadAt(p []byte, off int64) (int, error) {
	for i := range p {
		v, err := e.dev.ReadReg(e.address, uint8(off)+uint8(i))
		if err != nil {
			return i, fmt.Errorf("calibration: smbus read at offset %d: %w", off+int64(i), err)
		}
		p[i] = v
	}
	return len(p), nil
}

func (e *EEPROMStore) WriteAt(p []byte, off int64) (int, error) {
	for i, b := range p {
		if err := e.dev.WriteReg(e.address, uint8(off)+uint8(i), b); err != nil {
			return i, fmt.Errorf("calibration: smbus write at offset %d: %w", off+int64(i), err)
		}
	}
	return len(p), nil
}

// Close releases the underlying SMBus device handle.
func (e *EEPROMStore) Close() error {
	return e.dev.Close()
}
