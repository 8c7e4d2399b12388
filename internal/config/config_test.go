package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receiver.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 64, cfg.Clock.Denom)
	assert.EqualValues(t, 70, cfg.Acquisition.ScoreThreshold)
	assert.Equal(t, "file", cfg.Calibration.Store)
}

func TestLoadRejectsZeroDenom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receiver.toml")
	contents := []byte("[clock]\ndenom = 0\n[acquisition]\nscoreboard_len = 11\nseek_detected_threshold = 10\n[calibration]\nstore = \"file\"\n")
	require.NoError(t, os.WriteFile(path, contents, 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receiver.toml")
	contents := []byte("[clock]\ndenom = 64\n[acquisition]\nscoreboard_len = 11\nseek_detected_threshold = 10\n[calibration]\nstore = \"carrier-pigeon\"\n")
	require.NoError(t, os.WriteFile(path, contents, 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
