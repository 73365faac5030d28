// Package config handles configuration loading and validation for redline.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	APIKey  string        `yaml:"api_key"`
	TUI     TUIConfig     `yaml:"tui"`
	Picker  PickerConfig  `yaml:"picker"`
}

// ServiceConfig points at the extraction/analysis backend.
type ServiceConfig struct {
	BaseURL string `yaml:"base_url"`
}

// TUIConfig holds presentation settings. Sidebar widths are terminal
// cells; the result pane clamps them against half the window width.
type TUIConfig struct {
	Theme           string `yaml:"theme"`
	SidebarMinWidth int    `yaml:"sidebar_min_width"`
	SidebarWidth    int    `yaml:"sidebar_width"`
}

// PickerConfig controls contract discovery for the upload form.
type PickerConfig struct {
	// Patterns are doublestar globs evaluated from the working directory.
	Patterns []string `yaml:"patterns"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			BaseURL: "http://127.0.0.1:8000",
		},
		TUI: TUIConfig{
			Theme:           "tokyo-night",
			SidebarMinWidth: 36,
			SidebarWidth:    50,
		},
		Picker: PickerConfig{
			Patterns: []string{"**/*.pdf"},
		},
	}
}

// Load reads the config file at path, overlaying it on the defaults.
// A missing file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
