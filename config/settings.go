package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Category selects which feed of the meme source to query. The zero value
// means "no filter": the source picks from its default rotation.
type Category struct {
	Name string
}

// AnyCategory queries the source without a feed filter.
var AnyCategory = Category{}

// IsAny reports whether the category applies no filter.
func (c Category) IsAny() bool {
	return c.Name == ""
}

func (c Category) String() string {
	if c.IsAny() {
		return "Default"
	}
	return c.Name
}

// UnmarshalJSON decodes a category from a settings entry. A JSON null (or
// empty string) is the "no filter" sentinel.
func (c *Category) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = AnyCategory
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("invalid category entry: %w", err)
	}
	c.Name = name
	return nil
}

// MarshalJSON encodes the "no filter" sentinel back to JSON null.
func (c Category) MarshalJSON() ([]byte, error) {
	if c.IsAny() {
		return []byte("null"), nil
	}
	return json.Marshal(c.Name)
}

// FontSettings selects the caption typeface.
type FontSettings struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Settings holds the per-user configuration. All keys are optional in the
// settings file; absent keys keep their built-in defaults.
type Settings struct {
	Font              FontSettings `json:"font"`
	BottomStripHeight int          `json:"bottom_strip_height"`
	MaxHistory        int          `json:"max_history"`
	Subreddits        []Category   `json:"subreddits"`
}

// DefaultSettings returns the built-in configuration used when no settings
// file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Font:              FontSettings{Name: "arial.ttf", Size: 40},
		BottomStripHeight: 50,
		MaxHistory:        100,
		Subreddits: []Category{
			AnyCategory,
			{Name: "programmingmemes"},
			{Name: "ProgrammerHumor"},
			{Name: "lotrmemes"},
			{Name: "MEOW_IRL"},
			{Name: "YouSeeComrade"},
			{Name: "DunderMifflin"},
			{Name: "workmemes"},
		},
	}
}

// LoadSettings reads the settings file at path and overlays it on the
// defaults, so each missing key falls back individually. It always returns a
// usable Settings; the error only reports why file content was ignored.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// normalize floors nonsense values back to their defaults so a sparse or
// hand-edited file cannot break the pipeline.
func (s *Settings) normalize() {
	d := DefaultSettings()
	if s.Font.Name == "" {
		s.Font.Name = d.Font.Name
	}
	if s.Font.Size <= 0 {
		s.Font.Size = d.Font.Size
	}
	if s.BottomStripHeight < 0 {
		s.BottomStripHeight = d.BottomStripHeight
	}
	if s.MaxHistory <= 0 {
		s.MaxHistory = d.MaxHistory
	}
	if len(s.Subreddits) == 0 {
		s.Subreddits = d.Subreddits
	}
}

// SettingsFilename returns the first settings file found in the search
// order: beside the executable, then the user config directory. When neither
// exists it returns the executable-relative path, which LoadSettings treats
// as "use defaults".
func SettingsFilename() string {
	var beside string
	if exe, err := os.Executable(); err == nil {
		beside = filepath.Join(filepath.Dir(exe), SettingsFileName)
		if _, err := os.Stat(beside); err == nil {
			return beside
		}
	}
	userCfg := filepath.Join(xdg.ConfigHome, AppName, SettingsFileName)
	if _, err := os.Stat(userCfg); err == nil {
		return userCfg
	}
	if beside != "" {
		return beside
	}
	return SettingsFileName
}

// HistoryFilename returns the path of the shown-meme history file, kept
// beside the executable.
func HistoryFilename() string {
	exe, err := os.Executable()
	if err != nil {
		return HistoryFileName
	}
	return filepath.Join(filepath.Dir(exe), HistoryFileName)
}

// WallpaperFilename returns the fixed temp path the rendered wallpaper is
// written to on every run.
func WallpaperFilename() string {
	return filepath.Join(os.TempDir(), WallpaperFileName)
}
