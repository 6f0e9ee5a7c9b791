package config

import (
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/lucasb-eyer/go-colorful"
)

// AppDir is the directory name used under the user's config home.
const AppDir = "ninepatch-editor"

// Config holds editor preferences. Fields are loaded from a JSON file in the user's
// config directory and written back when the editor remembers a directory.
type Config struct {
	Debug    bool `json:"debug"`
	DarkMode bool `json:"dark_mode"`

	// Preview guides
	GuideColor   string `json:"guide_color"`
	StretchWidth int    `json:"stretch_width"`
	PaddingWidth int    `json:"padding_width"`

	// Display-only downscale limits for large images; 0 disables.
	PreviewMaxW int `json:"preview_max_w"`
	PreviewMaxH int `json:"preview_max_h"`

	// Dialog start directories
	LastOpenDir string `json:"last_open_dir"`
	LastSaveDir string `json:"last_save_dir"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		DarkMode:     false,
		GuideColor:   "#ff0000",
		StretchWidth: 7,
		PaddingWidth: 3,
		PreviewMaxW:  1600,
		PreviewMaxH:  1000,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if _, err := colorful.Hex(c.GuideColor); err != nil {
		c.GuideColor = d.GuideColor
	}
	if c.StretchWidth < 1 || c.StretchWidth > 64 {
		c.StretchWidth = d.StretchWidth
	}
	if c.PaddingWidth < 1 || c.PaddingWidth > 64 {
		c.PaddingWidth = d.PaddingWidth
	}
	if c.PreviewMaxW < 0 {
		c.PreviewMaxW = 0
	}
	if c.PreviewMaxH < 0 {
		c.PreviewMaxH = 0
	}
	return nil
}

// Guide returns the parsed guide line colour, falling back to red on a bad value.
func (c *Config) Guide() color.Color {
	if c != nil {
		if col, err := colorful.Hex(c.GuideColor); err == nil {
			return col
		}
	}
	return color.NRGBA{R: 0xff, A: 0xff}
}

// DefaultPath returns the config file location under the XDG config home,
// creating the parent directory if needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(AppDir, "config.json"))
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	if path == "" {
		return nil
	}
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
