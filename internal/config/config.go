// Package config loads the receiver's TOML configuration, the same way
// the teacher's floppy config package does: an embedded default is
// written out on first run, then parsed and validated into a typed
// struct.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

//go:embed receiver.toml
var defaultConfigData []byte

// Config is the parsed receiver.toml structure.
type Config struct {
	Clock       ClockConfig       `toml:"clock"`
	Acquisition AcquisitionConfig `toml:"acquisition"`
	Timezone    TimezoneConfig    `toml:"timezone"`
	Calibration CalibrationConfig `toml:"calibration"`
}

// ClockConfig holds the nominal fractional-divider period, spec.md §6.
type ClockConfig struct {
	NominalWhole uint16 `toml:"nominal_whole"`
	NominalFrac  uint8  `toml:"nominal_frac"`
	Denom        uint16 `toml:"denom"`
}

// AcquisitionConfig holds the SEEK/SYNC thresholds, spec.md §4.G/§6.
type AcquisitionConfig struct {
	ScoreThreshold        uint8 `toml:"score_threshold"`
	ScoreboardLen         int   `toml:"scoreboard_len"`
	SeekDetectedThreshold int   `toml:"seek_detected_threshold"`
	SyncMissThreshold     int   `toml:"sync_miss_threshold"`
	DriftTrigger          int   `toml:"drift_trigger"`
	MinDisciplineTicks    int   `toml:"min_discipline_ticks"`
	PersistAfterTicks     int   `toml:"persist_after_ticks"`
}

// TimezoneConfig holds the local-time display offset, spec.md §6.
type TimezoneConfig struct {
	TZHours    int  `toml:"tz_hours"`
	TZMinutes  int  `toml:"tz_minutes"`
	ObserveDST bool `toml:"observe_dst"`
}

// CalibrationConfig selects and configures the calibration ByteStore.
type CalibrationConfig struct {
	Store      string `toml:"store"`
	Path       string `toml:"path"`
	I2CBus     string `toml:"i2c_bus"`
	I2CAddress uint8  `toml:"i2c_address"`
}

// DefaultPath returns the per-OS location receiver.toml is read from and
// written to, mirroring the teacher's floppy config path logic.
func DefaultPath() (string, error) {
	var dir string
	var err error

	switch runtime.GOOS {
	case "windows":
		dir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine user config directory: %w", err)
		}
		dir = filepath.Join(dir, "wwvbclock")
	default:
		dir, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine user home directory: %w", err)
		}
	}

	return filepath.Join(dir, ".wwvbclock.toml"), nil
}

// Load reads the config at path, creating it from the embedded default
// if it doesn't exist yet, then parses and validates it.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return Config{}, fmt.Errorf("failed to create config directory for %s: %w", path, err)
		}
		if err := os.WriteFile(path, defaultConfigData, 0644); err != nil {
			return Config{}, fmt.Errorf("failed to create default config file at %s: %w", path, err)
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML config at %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Clock.Denom == 0 {
		return fmt.Errorf("clock.denom must be positive")
	}
	if c.Acquisition.ScoreboardLen <= 0 {
		return fmt.Errorf("acquisition.scoreboard_len must be positive")
	}
	if c.Acquisition.SeekDetectedThreshold <= 0 {
		return fmt.Errorf("acquisition.seek_detected_threshold must be positive")
	}
	switch c.Calibration.Store {
	case "file", "eeprom":
	default:
		return fmt.Errorf("calibration.store must be %q or %q, got %q", "file", "eeprom", c.Calibration.Store)
	}
	return nil
}
