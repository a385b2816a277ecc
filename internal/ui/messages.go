package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/DataPlatform/internal/config"
	"github.com/yildizm/DataPlatform/internal/watch"
)

// ResultUpdatedMsg replaces the analysis result shown in the workspace
type ResultUpdatedMsg struct {
	Result string
	Clear  bool
}

// ThemeReloadedMsg swaps the active theme
type ThemeReloadedMsg struct {
	Theme Theme
}

// WatchErrorMsg reports a failure in a background watcher
type WatchErrorMsg struct {
	Source string
	Err    error
}

// ResultFromChange converts a result file change into a message.
// A removed or blank file clears the result.
func ResultFromChange(c watch.Change) tea.Msg {
	result := strings.TrimSpace(string(c.Data))
	if c.Removed || result == "" {
		return ResultUpdatedMsg{Clear: true}
	}
	return ResultUpdatedMsg{Result: result}
}

// ThemeFromChange re-reads the theme section of a changed config file
func ThemeFromChange(c watch.Change, themeName string) tea.Msg {
	if c.Removed {
		return nil
	}
	tc, err := config.ParseTheme(c.Data)
	if err != nil {
		return WatchErrorMsg{Source: c.Path, Err: err}
	}
	theme, err := NewTheme(themeName, tc)
	if err != nil {
		return WatchErrorMsg{Source: c.Path, Err: err}
	}
	return ThemeReloadedMsg{Theme: theme}
}
