package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFromFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"max_history": 7, "bottom_strip_height": 0}`), 0644))

	flagConfig = path
	defer func() { flagConfig = "" }()

	cfg := loadSettings()

	assert.Equal(t, 7, cfg.MaxHistory)
	assert.Equal(t, 0, cfg.BottomStripHeight)
	assert.Equal(t, "arial.ttf", cfg.Font.Name, "unset keys keep their defaults")
}

func TestLoadSettingsMalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	flagConfig = path
	defer func() { flagConfig = "" }()

	cfg := loadSettings()

	assert.Equal(t, 100, cfg.MaxHistory)
	assert.Equal(t, 40, cfg.Font.Size)
}

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["version"])
	assert.True(t, names["history"])
}
