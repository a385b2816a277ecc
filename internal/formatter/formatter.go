package formatter

import (
	"fmt"

	"github.com/yildizm/DataPlatform/internal/viewstate"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(snap *ScreenSnapshot) ([]byte, error)
}

// ScreenSnapshot captures a session state and its rendered screen
type ScreenSnapshot struct {
	Screen        string  `json:"screen"`
	Authenticated bool    `json:"authenticated"`
	Result        *string `json:"analysis_result"`
	// Display is the result text as shown; empty on the welcome screen
	Display  string `json:"display_result,omitempty"`
	Rendered string `json:"-"`
}

// Capture records state and the screen rendered for it
func Capture(state *viewstate.ViewState, rendered string) *ScreenSnapshot {
	snap := &ScreenSnapshot{
		Screen:        state.Screen().String(),
		Authenticated: state.Authenticated(),
		Rendered:      rendered,
	}
	if result, ok := state.AnalysisResult(); ok {
		snap.Result = &result
	}
	if state.Authenticated() {
		snap.Display = state.DisplayResult()
	}
	return snap
}

// New returns the formatter for format
func New(format string) (Formatter, error) {
	switch format {
	case "", "text":
		return NewText(), nil
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use text, json or markdown)", format)
	}
}
