package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/DataPlatform/internal/logger"
	"github.com/yildizm/DataPlatform/internal/monitor"
	"github.com/yildizm/DataPlatform/internal/viewstate"
)

// AppOptions configures the interactive workspace
type AppOptions struct {
	Theme        Theme
	Color        bool
	SidebarWidth int
	Logger       *logger.Logger
	Tracker      *monitor.Tracker
}

// App is the bubbletea model of the workspace. It owns no session data:
// the view state is passed in and mutated only through Login/Logout.
type App struct {
	state        *viewstate.ViewState
	styles       *Styles
	color        bool
	sidebarWidth int

	keys KeyMap
	help help.Model

	width  int
	height int

	log      *logger.Logger
	tracker  *monitor.Tracker
	lastErr  error
	quitting bool
}

// NewApp creates the workspace model around state
func NewApp(state *viewstate.ViewState, opts AppOptions) *App {
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	opts.SidebarWidth = clampSidebarWidth(opts.SidebarWidth)

	a := &App{
		state:        state,
		styles:       NewStyles(opts.Theme, opts.Color),
		color:        opts.Color,
		sidebarWidth: opts.SidebarWidth,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		log:          opts.Logger,
		tracker:      opts.Tracker,
	}
	a.keys.SyncScreen(state.Screen())
	return a
}

// State returns the view state driven by the app
func (a *App) State() *viewstate.ViewState {
	return a.state
}

// Styles returns the active region styles
func (a *App) Styles() *Styles {
	return a.styles
}

// LastError returns the most recent watcher error, if any
func (a *App) LastError() error {
	return a.lastErr
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages. Each action runs to completion here.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.quitting = true
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
		case key.Matches(msg, a.keys.Login):
			a.apply(viewstate.ActionLogin)
		case key.Matches(msg, a.keys.Logout):
			a.apply(viewstate.ActionLogout)
		}

	case ResultUpdatedMsg:
		if msg.Clear {
			a.state.ClearAnalysisResult()
			a.log.Debug("analysis result cleared")
		} else {
			a.state.SetAnalysisResult(msg.Result)
			a.log.DebugWithFields("analysis result updated", []logger.Field{logger.F("result", msg.Result)})
		}

	case ThemeReloadedMsg:
		a.styles = NewStyles(msg.Theme, a.color)
		a.lastErr = nil
		a.log.InfoWithFields("theme reloaded", []logger.Field{logger.F("theme", msg.Theme.Name)})

	case WatchErrorMsg:
		a.lastErr = msg.Err
		a.log.WarnWithFields("watch failed", []logger.Field{logger.Path(msg.Source), logger.Error(msg.Err)})
	}

	return a, nil
}

// apply runs a transition and reports it
func (a *App) apply(action viewstate.Action) {
	tr := a.state.Apply(action)
	a.keys.SyncScreen(a.state.Screen())
	if a.tracker != nil {
		a.tracker.Record(tr)
	}
	a.log.InfoWithFields("transition", []logger.Field{
		logger.F("action", tr.Action),
		logger.F("from", tr.From),
		logger.F("to", tr.To),
	})
}

// View implements tea.Model
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	footer := a.styles.FooterHelp.Render(a.help.View(a.keys))
	bodyHeight := 0
	if a.height > 0 {
		bodyHeight = a.height - lipgloss.Height(footer)
		if bodyHeight < 1 {
			bodyHeight = 1
		}
	}

	body := Render(a.state, Layout{
		Width:        a.width,
		Height:       bodyHeight,
		SidebarWidth: a.sidebarWidth,
		Styles:       a.styles,
	})

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
