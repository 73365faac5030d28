package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.Service.BaseURL)
	assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
	assert.Equal(t, []string{"**/*.pdf"}, cfg.Picker.Patterns)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
service:
  base_url: https://review.example.com
api_key: from-file
tui:
  theme: gruvbox
  sidebar_width: 60
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://review.example.com", cfg.Service.BaseURL)
	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, 60, cfg.TUI.SidebarWidth)
	// Untouched keys keep their defaults.
	assert.Equal(t, 36, cfg.TUI.SidebarMinWidth)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty base url",
			mutate:  func(c *Config) { c.Service.BaseURL = "" },
			wantErr: "base_url",
		},
		{
			name:    "bad scheme",
			mutate:  func(c *Config) { c.Service.BaseURL = "ftp://example.com" },
			wantErr: "scheme",
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.TUI.Theme = "solarized-disco" },
			wantErr: "theme",
		},
		{
			name:    "sidebar width below minimum",
			mutate:  func(c *Config) { c.TUI.SidebarWidth = 10 },
			wantErr: "sidebar_width",
		},
		{
			name:    "invalid glob",
			mutate:  func(c *Config) { c.Picker.Patterns = []string{"[oops"} },
			wantErr: "patterns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
