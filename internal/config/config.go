package config

import (
	"fmt"
	"path"
	"regexp"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	UI      UIConfig      `yaml:"ui" json:"ui"`
	Theme   ThemeConfig   `yaml:"theme" json:"theme"`
	Session SessionConfig `yaml:"session" json:"session"`
	Output  OutputConfig  `yaml:"output" json:"output"`
}

// UIConfig configures the interactive workspace
type UIConfig struct {
	Theme        string `yaml:"theme" json:"theme"`                 // brand|high-contrast|minimal
	SidebarWidth int    `yaml:"sidebar_width" json:"sidebar_width"` // side panel width in columns
	AltScreen    bool   `yaml:"alt_screen" json:"alt_screen"`       // use the alternate screen buffer
	AutoReload   bool   `yaml:"auto_reload" json:"auto_reload"`     // reload theme when the config file changes
}

// ThemeConfig configures the brand palette and the regions it applies to
type ThemeConfig struct {
	Brand   BrandPalette `yaml:"brand" json:"brand"`
	Content []string     `yaml:"content" json:"content"` // region globs, e.g. "workspace/*"
}

// BrandPalette holds the named brand colors
type BrandPalette struct {
	Yellow string `yaml:"yellow" json:"yellow"`
	Dark   string `yaml:"dark" json:"dark"`
	Light  string `yaml:"light" json:"light"`
	Border string `yaml:"border" json:"border"`
}

// SessionConfig configures the initial session and the result feed
type SessionConfig struct {
	InitialResult  string        `yaml:"initial_result" json:"initial_result"`
	ResultFile     string        `yaml:"result_file" json:"result_file"`
	ReloadDebounce time.Duration `yaml:"reload_debounce" json:"reload_debounce"`
}

// OutputConfig configures output and logging
type OutputConfig struct {
	ColorMode string `yaml:"color_mode" json:"color_mode"` // auto|always|never
	Verbose   bool   `yaml:"verbose" json:"verbose"`
	LogFile   string `yaml:"log_file" json:"log_file"` // log destination while the workspace owns the terminal
	Emoji     bool   `yaml:"emoji" json:"emoji"`
}

// Sidebar widths in columns. The minimum fits the border, the padding and
// one column of text.
const (
	DefaultSidebarWidth = 24
	MinSidebarWidth     = 4
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		UI: UIConfig{
			Theme:        "brand",
			SidebarWidth: DefaultSidebarWidth,
			AltScreen:    true,
			AutoReload:   true,
		},
		Theme: ThemeConfig{
			Brand:   DefaultBrandPalette(),
			Content: []string{"welcome/*", "workspace/*"},
		},
		Session: SessionConfig{
			ReloadDebounce: 100 * time.Millisecond,
		},
		Output: OutputConfig{
			ColorMode: "auto",
			Verbose:   false,
			LogFile:   "",
			Emoji:     true,
		},
	}
}

// DefaultBrandPalette returns the stock brand colors
func DefaultBrandPalette() BrandPalette {
	return BrandPalette{
		Yellow: "#F2C811",
		Dark:   "#333333",
		Light:  "#F3F2F1",
		Border: "#EDEBE9",
	}
}

// ValidThemes lists the built-in theme names
var ValidThemes = []string{"brand", "high-contrast", "minimal"}

var colorPattern = regexp.MustCompile(`^(#[0-9A-Fa-f]{6}|#[0-9A-Fa-f]{3}|[0-9]{1,3})$`)

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateThemeConfig(); err != nil {
		return err
	}
	if err := c.validateSessionConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

// validateUIConfig validates workspace settings
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" && !isValidTheme(c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s (must be one of: brand, high-contrast, minimal)", c.UI.Theme)
	}
	if c.UI.SidebarWidth < MinSidebarWidth {
		return fmt.Errorf("sidebar_width must be at least %d", MinSidebarWidth)
	}
	return nil
}

// validateThemeConfig validates palette colors and content globs
func (c *Config) validateThemeConfig() error {
	colors := []struct {
		name  string
		value string
	}{
		{"brand.yellow", c.Theme.Brand.Yellow},
		{"brand.dark", c.Theme.Brand.Dark},
		{"brand.light", c.Theme.Brand.Light},
		{"brand.border", c.Theme.Brand.Border},
	}
	for _, col := range colors {
		if col.value == "" {
			continue
		}
		if !colorPattern.MatchString(col.value) {
			return fmt.Errorf("invalid color for %s: %s (use #RRGGBB, #RGB or an ANSI number)", col.name, col.value)
		}
	}

	for _, glob := range c.Theme.Content {
		if _, err := path.Match(glob, ""); err != nil {
			return fmt.Errorf("invalid content pattern %q: %w", glob, err)
		}
	}
	return nil
}

// validateSessionConfig validates session settings
func (c *Config) validateSessionConfig() error {
	if c.Session.ReloadDebounce < 0 {
		return fmt.Errorf("reload_debounce must be non-negative")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

func isValidTheme(name string) bool {
	for _, t := range ValidThemes {
		if t == name {
			return true
		}
	}
	return false
}
