package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yildizm/DataPlatform/internal/config"
	"github.com/yildizm/DataPlatform/internal/emoji"
	"github.com/yildizm/DataPlatform/internal/logger"
	"github.com/yildizm/DataPlatform/internal/ui"
	"github.com/yildizm/go-termfmt"
)

// loadedConfig is the effective configuration plus the file it came from
type loadedConfig struct {
	*config.Config
	// Path of the highest priority file applied, empty when only defaults
	Path string
}

// loadConfig loads configuration honoring --config and folds the
// config's verbosity and emoji settings into the global flags
func loadConfig() (*loadedConfig, error) {
	loader := config.NewLoader()
	cfg, err := loader.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.Output.Verbose {
		verbose = true
	}
	if !cfg.Output.Emoji {
		emoji.SetEmojiDisabled(true)
	}

	lc := &loadedConfig{Config: cfg}
	if files := loader.LoadedFiles(); len(files) > 0 {
		lc.Path = files[len(files)-1]
	}
	return lc, nil
}

// colorEnabled resolves color for this invocation and applies the
// configured color profile
func colorEnabled(cfg *config.Config) bool {
	enabled := ui.ColorEnabled(cfg.Output.ColorMode, noColor)
	if enabled {
		ui.ApplyColorMode(cfg.Output.ColorMode)
	}
	return enabled
}

// sessionLogger returns the logger for an interactive session. The
// terminal belongs to the workspace, so lines go to output.log_file or
// nowhere.
func sessionLogger(cfg *config.Config) (*logger.Logger, func(), error) {
	log := logger.NewWithCallback("dataplatform", isVerbose)
	if cfg.Output.LogFile == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	path := config.ExpandPath(cfg.Output.LogFile)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}
	// #nosec G304 - log path comes from the user's own configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)

	cleanup := func() {
		if err := f.Close(); err != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
	}
	return log, cleanup, nil
}

// terminalOptions returns go-termfmt options matching the global flags
func terminalOptions(color bool) *termfmt.TerminalOptions {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return opts
}
