package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/redline/internal/core/styles"
)

// Validate checks the configuration for structural problems. It is
// called on every load, before anything else touches the config.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("service.base_url", c.Service.BaseURL, validBaseURL),
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		c.validateWidths(),
		c.validatePatterns(),
	)
}

func validBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func (c *Config) validateWidths() error {
	var errs criterio.FieldErrorsBuilder
	if c.TUI.SidebarMinWidth < 1 {
		errs = errs.Append("tui.sidebar_min_width", fmt.Errorf("must be positive, got %d", c.TUI.SidebarMinWidth))
	}
	if c.TUI.SidebarWidth < c.TUI.SidebarMinWidth {
		errs = errs.Append("tui.sidebar_width", fmt.Errorf("must be at least sidebar_min_width (%d), got %d", c.TUI.SidebarMinWidth, c.TUI.SidebarWidth))
	}
	return errs.ToError()
}

func (c *Config) validatePatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range c.Picker.Patterns {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("picker.patterns[%d]", i), fmt.Errorf("invalid glob %q", p))
		}
	}
	return errs.ToError()
}
