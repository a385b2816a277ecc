package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/DataPlatform/internal/config"
	"github.com/yildizm/DataPlatform/internal/logger"
	"github.com/yildizm/DataPlatform/internal/monitor"
	"github.com/yildizm/DataPlatform/internal/viewstate"
	"github.com/yildizm/DataPlatform/internal/watch"
)

// RunOptions configures an interactive session
type RunOptions struct {
	Config *config.Config
	// ConfigFile is watched for theme changes when auto reload is on
	ConfigFile string
	Color      bool
	Logger     *logger.Logger
	Tracker    *monitor.Tracker

	// Input and Output override the terminal, mainly for tests
	Input  io.Reader
	Output io.Writer
}

// Run starts the workspace and blocks until the user quits or ctx is
// cancelled. Watchers started for the session stop before Run returns.
func Run(ctx context.Context, state *viewstate.ViewState, opts RunOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	theme, err := NewTheme(cfg.UI.Theme, cfg.Theme)
	if err != nil {
		return err
	}

	app := NewApp(state, AppOptions{
		Theme:        theme,
		Color:        opts.Color,
		SidebarWidth: cfg.UI.SidebarWidth,
		Logger:       log.WithComponent("ui"),
		Tracker:      opts.Tracker,
	})

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	p := tea.NewProgram(app, programOpts...)

	watchCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	watchers, err := sessionWatchers(cfg, opts.ConfigFile, p, log.WithComponent("watch"))
	if err != nil {
		return err
	}
	for _, w := range watchers {
		wg.Add(1)
		go func(w *watch.FileWatcher) {
			defer wg.Done()
			if err := w.Run(watchCtx); err != nil {
				p.Send(WatchErrorMsg{Source: w.Path(), Err: err})
			}
		}(w)
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("workspace failed: %w", err)
	}
	return nil
}

// sessionWatchers builds the result feed and theme reload watchers
func sessionWatchers(cfg *config.Config, configFile string, p *tea.Program, log *logger.Logger) ([]*watch.FileWatcher, error) {
	var watchers []*watch.FileWatcher
	onError := func(source string) watch.ErrorHandler {
		return func(err error) { p.Send(WatchErrorMsg{Source: source, Err: err}) }
	}

	if cfg.Session.ResultFile != "" {
		path := config.ExpandPath(cfg.Session.ResultFile)
		w, err := watch.New(path,
			func(c watch.Change) { p.Send(ResultFromChange(c)) },
			watch.WithDebounce(cfg.Session.ReloadDebounce),
			watch.WithInitialRead(),
			watch.WithErrorHandler(onError(path)),
			watch.WithLogger(log),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to watch result file: %w", err)
		}
		watchers = append(watchers, w)
	}

	if cfg.UI.AutoReload && configFile != "" {
		themeName := cfg.UI.Theme
		w, err := watch.New(configFile,
			func(c watch.Change) {
				if msg := ThemeFromChange(c, themeName); msg != nil {
					p.Send(msg)
				}
			},
			watch.WithDebounce(cfg.Session.ReloadDebounce),
			watch.WithErrorHandler(onError(configFile)),
			watch.WithLogger(log),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to watch config file: %w", err)
		}
		watchers = append(watchers, w)
	}

	return watchers, nil
}
