// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger   LoggerConfig   `toml:"logger"`
	Editor   EditorConfig   `toml:"editor"`
	Autosave AutosaveConfig `toml:"autosave"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	// Level is the minimum level to log: debug, info, warn, error.
	Level string `toml:"level"`
	// File is the log output path. Empty or "-" means stderr.
	File string `toml:"file"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	// DefaultFile is the location loaded at startup when no file argument
	// is given. A load failure is reported in the status bar, not fatal.
	DefaultFile     string `toml:"default_file"`
	TabWidth        int    `toml:"tab_width"`
	SystemClipboard bool   `toml:"system_clipboard"`
}

// AutosaveConfig controls the periodic save-if-dirty collaborator.
type AutosaveConfig struct {
	Enabled         bool `toml:"enabled"`
	IntervalSeconds int  `toml:"interval_seconds"`
}

// NewDefaultConfig creates a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level: "info",
			File:  "",
		},
		Editor: EditorConfig{
			DefaultFile:     "",
			TabWidth:        DefaultTabWidth,
			SystemClipboard: SystemClipboard,
		},
		Autosave: AutosaveConfig{
			Enabled:         false,
			IntervalSeconds: DefaultAutosaveInterval,
		},
	}
}

// loadFromFile overlays a TOML file onto cfg. Decoding straight into the
// populated struct keeps defaults for anything the file leaves unset. A
// missing file is not an error; the defaults simply apply.
func loadFromFile(filePath string, cfg *Config) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file %q: %w", filePath, err)
	}

	if _, err := toml.DecodeFile(filePath, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", filePath, err)
	}
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()
	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Logger.Level == "" {
		c.Logger.Level = defaults.Logger.Level
	}
	if c.Autosave.IntervalSeconds <= 0 {
		c.Autosave.IntervalSeconds = defaults.Autosave.IntervalSeconds
	}
}

// Load orchestrates defaults, file, flag overrides, and validation:
// defaults first, then the config file (explicit path or the user config
// dir), then flag overrides, then a validation pass.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			effectivePath = filepath.Join(configDir, AppName, DefaultConfigFileName)
		}
	}

	if effectivePath != "" {
		if err := loadFromFile(effectivePath, cfg); err != nil {
			return cfg, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, nil
}
