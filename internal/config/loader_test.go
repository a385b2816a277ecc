package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	loader := &Loader{configPaths: []string{filepath.Join(t.TempDir(), "missing.yaml")}}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}
	if cfg.UI.Theme != "brand" {
		t.Errorf("Expected default theme brand, got %s", cfg.UI.Theme)
	}
	if len(loader.LoadedFiles()) != 0 {
		t.Errorf("Expected no loaded files, got %v", loader.LoadedFiles())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test-config.yaml")

	configContent := `version: "1.0"
ui:
  theme: minimal
  sidebar_width: 30
theme:
  brand:
    yellow: "#FFD700"
  content: ["workspace/sidebar"]
session:
  initial_result: "42"
  reload_debounce: 250ms
output:
  verbose: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	loader := NewLoader()
	cfg, err := loader.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	if cfg.UI.Theme != "minimal" {
		t.Errorf("Expected theme minimal, got %s", cfg.UI.Theme)
	}
	if cfg.UI.SidebarWidth != 30 {
		t.Errorf("Expected sidebar width 30, got %d", cfg.UI.SidebarWidth)
	}
	if cfg.Theme.Brand.Yellow != "#FFD700" {
		t.Errorf("Expected yellow #FFD700, got %s", cfg.Theme.Brand.Yellow)
	}
	// keys absent from the file keep their defaults
	if cfg.Theme.Brand.Dark != "#333333" {
		t.Errorf("Expected dark to keep default, got %s", cfg.Theme.Brand.Dark)
	}
	if !cfg.UI.AltScreen {
		t.Errorf("Expected alt_screen to keep default true")
	}
	if len(cfg.Theme.Content) != 1 || cfg.Theme.Content[0] != "workspace/sidebar" {
		t.Errorf("Expected content to be replaced, got %v", cfg.Theme.Content)
	}
	if cfg.Session.InitialResult != "42" {
		t.Errorf("Expected initial result 42, got %s", cfg.Session.InitialResult)
	}
	if cfg.Session.ReloadDebounce != 250*time.Millisecond {
		t.Errorf("Expected debounce 250ms, got %v", cfg.Session.ReloadDebounce)
	}
	if !cfg.Output.Verbose {
		t.Errorf("Expected verbose to be true")
	}

	loaded := loader.LoadedFiles()
	if len(loaded) != 1 || loaded[0] != configPath {
		t.Errorf("Expected loaded files [%s], got %v", configPath, loaded)
	}
}

func TestLoadConfigPriority(t *testing.T) {
	tempDir := t.TempDir()
	high := filepath.Join(tempDir, "high.yaml")
	low := filepath.Join(tempDir, "low.yaml")

	if err := os.WriteFile(low, []byte("ui:\n  theme: minimal\n  sidebar_width: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(high, []byte("ui:\n  theme: high-contrast\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := &Loader{configPaths: []string{high, low}}
	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.UI.Theme != "high-contrast" {
		t.Errorf("Expected higher priority theme, got %s", cfg.UI.Theme)
	}
	if cfg.UI.SidebarWidth != 40 {
		t.Errorf("Expected sidebar width from lower priority file, got %d", cfg.UI.SidebarWidth)
	}
	loaded := loader.LoadedFiles()
	if len(loaded) != 2 || loaded[0] != low || loaded[1] != high {
		t.Errorf("Expected files loaded lowest priority first, got %v", loaded)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configPath, []byte("ui: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader().LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestLoadConfigValidationFailure(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(configPath, []byte("ui:\n  theme: neon\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader().LoadConfig(configPath)
	if err == nil || !strings.Contains(err.Error(), "configuration validation failed") {
		t.Errorf("Expected validation failure, got %v", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DATAPLATFORM_UI_THEME", "minimal")
	t.Setenv("DATAPLATFORM_UI_SIDEBAR_WIDTH", "18")
	t.Setenv("DATAPLATFORM_UI_ALT_SCREEN", "false")
	t.Setenv("DATAPLATFORM_THEME_BRAND_BORDER", "#CCCCCC")
	t.Setenv("DATAPLATFORM_THEME_CONTENT", "welcome/title, workspace/result")
	t.Setenv("DATAPLATFORM_SESSION_INITIAL_RESULT", "42")
	t.Setenv("DATAPLATFORM_SESSION_RELOAD_DEBOUNCE", "1s")
	t.Setenv("DATAPLATFORM_OUTPUT_EMOJI", "false")

	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg); err != nil {
		t.Fatalf("Failed to apply env overrides: %v", err)
	}

	if cfg.UI.Theme != "minimal" {
		t.Errorf("Expected theme minimal, got %s", cfg.UI.Theme)
	}
	if cfg.UI.SidebarWidth != 18 {
		t.Errorf("Expected sidebar width 18, got %d", cfg.UI.SidebarWidth)
	}
	if cfg.UI.AltScreen {
		t.Errorf("Expected alt screen disabled")
	}
	if cfg.Theme.Brand.Border != "#CCCCCC" {
		t.Errorf("Expected border #CCCCCC, got %s", cfg.Theme.Brand.Border)
	}
	if len(cfg.Theme.Content) != 2 || cfg.Theme.Content[1] != "workspace/result" {
		t.Errorf("Expected trimmed content globs, got %v", cfg.Theme.Content)
	}
	if cfg.Session.InitialResult != "42" {
		t.Errorf("Expected initial result 42, got %s", cfg.Session.InitialResult)
	}
	if cfg.Session.ReloadDebounce != time.Second {
		t.Errorf("Expected debounce 1s, got %v", cfg.Session.ReloadDebounce)
	}
	if cfg.Output.Emoji {
		t.Errorf("Expected emoji disabled")
	}
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{"invalid int", "DATAPLATFORM_UI_SIDEBAR_WIDTH", "wide"},
		{"invalid bool", "DATAPLATFORM_OUTPUT_VERBOSE", "maybe"},
		{"invalid duration", "DATAPLATFORM_SESSION_RELOAD_DEBOUNCE", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)
			err := applyEnvOverrides(DefaultConfig())
			if err == nil {
				t.Fatalf("Expected error for %s=%s", tt.envVar, tt.value)
			}
			if !strings.Contains(err.Error(), tt.envVar) {
				t.Errorf("Expected error to name %s, got %v", tt.envVar, err)
			}
		})
	}
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme([]byte("theme:\n  brand:\n    yellow: \"#FFFF00\"\n"))
	if err != nil {
		t.Fatalf("ParseTheme failed: %v", err)
	}
	if theme.Brand.Yellow != "#FFFF00" {
		t.Errorf("Expected yellow #FFFF00, got %s", theme.Brand.Yellow)
	}
	if theme.Brand.Light != "#F3F2F1" {
		t.Errorf("Expected light to keep default, got %s", theme.Brand.Light)
	}

	if _, err := ParseTheme([]byte("theme:\n  content: [\"[\"]\n")); err == nil {
		t.Error("Expected error for invalid content glob")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"config.yaml", false},
		{"config.yml", false},
		{"/tmp/dataplatform/config.yaml", false},
		{"../config.yaml", true},
		{"config.json", true},
		{"/proc/self/config.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfigPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exists.yaml")
	if fileExists(path) {
		t.Errorf("Expected %s to not exist", path)
	}
	if err := os.WriteFile(path, []byte("version: \"1.0\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if !fileExists(path) {
		t.Errorf("Expected %s to exist", path)
	}
}
