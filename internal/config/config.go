package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"

	"github.com/zhubert/inkwell/internal/errors"
	"github.com/zhubert/inkwell/internal/logger"
)

// DefaultSplitRatio is the editor's share of the width when nothing is configured
const DefaultSplitRatio = 0.5

// Config holds the application configuration. Values from the config file are
// overridden by INKWELL_* environment variables.
type Config struct {
	Theme      string  `json:"theme,omitempty" env:"INKWELL_THEME"`             // UI theme name (e.g., "dark-purple", "nord")
	ScratchURL string  `json:"scratch_url,omitempty" env:"INKWELL_SCRATCH_URL"` // Where the initial document is fetched from
	SplitRatio float64 `json:"split_ratio,omitempty" env:"INKWELL_SPLIT_RATIO"` // Editor share of the width, in (0,1)
	HideHeader bool    `json:"hide_header,omitempty" env:"INKWELL_HIDE_HEADER"` // Start without the header row

	// stored mirrors what is on disk so Save never writes environment overrides
	stored   fileConfig
	mu       sync.RWMutex
	filePath string
}

type fileConfig struct {
	Theme      string  `json:"theme,omitempty"`
	ScratchURL string  `json:"scratch_url,omitempty"`
	SplitRatio float64 `json:"split_ratio,omitempty"`
	HideHeader bool    `json:"hide_header,omitempty"`
}

// ThemeValidator reports whether a theme name is known. It is set by the
// caller so this package does not depend on the UI.
var ThemeValidator func(name string) bool

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".inkwell"), nil
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default location, or returns defaults if it
// doesn't exist
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.inkwell/config.json", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, applies environment overrides and
// validates the result. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	log := logger.WithComponent("config")
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Debug("No config file, using defaults", "path", path)
	case err != nil:
		return nil, errors.ConfigLoadFailed(path, err)
	default:
		if err := json.Unmarshal(data, &cfg.stored); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	}

	cfg.Theme = cfg.stored.Theme
	cfg.ScratchURL = cfg.stored.ScratchURL
	cfg.SplitRatio = cfg.stored.SplitRatio
	cfg.HideHeader = cfg.stored.HideHeader

	if err := env.Parse(cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, fmt.Errorf("parse env: %w", err))
	}

	if cfg.SplitRatio == 0 {
		cfg.SplitRatio = DefaultSplitRatio
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug("Config loaded", "path", path, "theme", cfg.Theme, "splitRatio", cfg.SplitRatio)
	return cfg, nil
}

// Validate checks the config for invalid values
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.SplitRatio <= 0 || c.SplitRatio >= 1 {
		return errors.ConfigInvalid(fmt.Sprintf("split_ratio %v must be between 0 and 1", c.SplitRatio))
	}
	if c.Theme != "" && ThemeValidator != nil && !ThemeValidator(c.Theme) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown theme %q", c.Theme))
	}
	return nil
}

// Save writes the file-backed values to disk. Environment overrides are not
// persisted.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.ConfigSaveFailed("", fmt.Errorf("config has no file path"))
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c.stored, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	return c.filePath
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
	c.stored.Theme = theme
}

// GetScratchURL returns where the initial document is fetched from
func (c *Config) GetScratchURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ScratchURL
}

// GetSplitRatio returns the editor's share of the width
func (c *Config) GetSplitRatio() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SplitRatio
}

// SetSplitRatio records a new split ratio. Values outside (0,1) are ignored.
func (c *Config) SetSplitRatio(ratio float64) {
	if ratio <= 0 || ratio >= 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SplitRatio = ratio
	c.stored.SplitRatio = ratio
}

// GetHideHeader returns whether the header row starts hidden
func (c *Config) GetHideHeader() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.HideHeader
}
