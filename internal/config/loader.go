package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.dataplatform.yaml",               // Project-specific config (highest priority)
	"~/.config/dataplatform/config.yaml", // User config
	"/etc/dataplatform/config.yaml",      // System config (lowest priority)
}

// EnvPrefix prefixes every environment override
const EnvPrefix = "DATAPLATFORM_"

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	loaded      []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.dataplatform.yaml
// 4. ~/.config/dataplatform/config.yaml
// 5. /etc/dataplatform/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()
	l.loaded = nil

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Lowest priority first so higher priority files overwrite
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
			}
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadedFiles returns the files applied by the last LoadConfig call,
// lowest priority first
func (l *Loader) LoadedFiles() []string {
	files := make([]string, len(l.loaded))
	copy(files, l.loaded)
	return files
}

// loadFromFile decodes a YAML file over the existing config.
// Keys absent from the file keep their current value.
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.loaded = append(l.loaded, path)
	return nil
}

// ParseTheme decodes the theme section of a config file.
// Used to re-read the palette when the file changes during a session.
func ParseTheme(data []byte) (ThemeConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return ThemeConfig{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.validateThemeConfig(); err != nil {
		return ThemeConfig{}, err
	}
	return cfg.Theme, nil
}

// applyEnvOverrides applies environment variable overrides to the config
func applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// UI Config
		"UI_THEME":         func(v string) error { config.UI.Theme = v; return nil },
		"UI_SIDEBAR_WIDTH": func(v string) error { return parseInt(v, &config.UI.SidebarWidth) },
		"UI_ALT_SCREEN":    func(v string) error { return parseBool(v, &config.UI.AltScreen) },
		"UI_AUTO_RELOAD":   func(v string) error { return parseBool(v, &config.UI.AutoReload) },

		// Theme Config
		"THEME_BRAND_YELLOW": func(v string) error { config.Theme.Brand.Yellow = v; return nil },
		"THEME_BRAND_DARK":   func(v string) error { config.Theme.Brand.Dark = v; return nil },
		"THEME_BRAND_LIGHT":  func(v string) error { config.Theme.Brand.Light = v; return nil },
		"THEME_BRAND_BORDER": func(v string) error { config.Theme.Brand.Border = v; return nil },

		// Session Config
		"SESSION_INITIAL_RESULT":  func(v string) error { config.Session.InitialResult = v; return nil },
		"SESSION_RESULT_FILE":     func(v string) error { config.Session.ResultFile = v; return nil },
		"SESSION_RELOAD_DEBOUNCE": func(v string) error { return parseDuration(v, &config.Session.ReloadDebounce) },

		// Output Config
		"OUTPUT_COLOR_MODE": func(v string) error { config.Output.ColorMode = v; return nil },
		"OUTPUT_VERBOSE":    func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"OUTPUT_LOG_FILE":   func(v string) error { config.Output.LogFile = v; return nil },
		"OUTPUT_EMOJI":      func(v string) error { return parseBool(v, &config.Output.Emoji) },
	}

	for suffix, setter := range envMappings {
		envVar := EnvPrefix + suffix
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	// Content globs are a comma-separated list
	if globs := os.Getenv(EnvPrefix + "THEME_CONTENT"); globs != "" {
		config.Theme.Content = strings.Split(globs, ",")
		for i, glob := range config.Theme.Content {
			config.Theme.Content[i] = strings.TrimSpace(glob)
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// ExpandPath is the exported form of expandPath for paths taken from flags
func ExpandPath(path string) string {
	return expandPath(path)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
