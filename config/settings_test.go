package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSettingsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)

	s, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := writeSettings(t, `{"font": {"size": 64}, "max_history": 10}`)

	s, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "arial.ttf", s.Font.Name, "missing nested key should keep its default")
	assert.Equal(t, 64, s.Font.Size)
	assert.Equal(t, 50, s.BottomStripHeight)
	assert.Equal(t, 10, s.MaxHistory)
	assert.Equal(t, DefaultSettings().Subreddits, s.Subreddits)
}

func TestLoadSettingsFullFile(t *testing.T) {
	path := writeSettings(t, `{
		"font": {"name": "DejaVuSans.ttf", "size": 32},
		"bottom_strip_height": 0,
		"max_history": 5,
		"subreddits": [null, "ProgrammerHumor"]
	}`)

	s, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, FontSettings{Name: "DejaVuSans.ttf", Size: 32}, s.Font)
	assert.Equal(t, 0, s.BottomStripHeight, "explicit zero strip is allowed")
	assert.Equal(t, 5, s.MaxHistory)
	require.Len(t, s.Subreddits, 2)
	assert.True(t, s.Subreddits[0].IsAny(), "null entry should decode to the no-filter sentinel")
	assert.Equal(t, "ProgrammerHumor", s.Subreddits[1].Name)
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	path := writeSettings(t, `{"font": `)

	s, err := LoadSettings(path)

	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), s, "malformed file should fall back to full defaults")
}

func TestLoadSettingsEmptySubredditList(t *testing.T) {
	path := writeSettings(t, `{"subreddits": []}`)

	s, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings().Subreddits, s.Subreddits)
}

func TestLoadSettingsFloorsInvalidValues(t *testing.T) {
	path := writeSettings(t, `{"font": {"size": -1}, "bottom_strip_height": -5, "max_history": 0}`)

	s, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, 40, s.Font.Size)
	assert.Equal(t, 50, s.BottomStripHeight)
	assert.Equal(t, 100, s.MaxHistory)
}

func TestCategoryJSONRoundTrip(t *testing.T) {
	in := []Category{AnyCategory, {Name: "lotrmemes"}}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[null, "lotrmemes"]`, string(data))

	var out []Category
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Default", AnyCategory.String())
	assert.Equal(t, "MEOW_IRL", Category{Name: "MEOW_IRL"}.String())
}
