package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/DataPlatform/internal/config"
	"github.com/yildizm/DataPlatform/internal/viewstate"
)

// Screen text
const (
	WelcomeTitle     = "Welcome to AI Data Platform"
	LoginLabel       = "Login / Start"
	SidebarText      = "Sidebar Content"
	WorkspaceHeading = "Dashboard Workspace"
	ResultLabel      = "Analysis Result: "
	LogoutLabel      = "Logout"
)

// Layout carries everything Render needs besides the state
type Layout struct {
	// Width and Height of the drawing area; zero renders at natural size
	Width  int
	Height int

	SidebarWidth int
	Styles       *Styles
}

// Render draws the screen selected by state. It has no side effects.
func Render(state *viewstate.ViewState, layout Layout) string {
	if layout.Styles == nil {
		layout.Styles = NewStyles(Theme{}, false)
	}
	layout.SidebarWidth = clampSidebarWidth(layout.SidebarWidth)

	switch state.Screen() {
	case viewstate.ScreenWorkspace:
		return renderWorkspace(state, layout)
	default:
		return renderWelcome(layout)
	}
}

// renderWelcome draws the title and the single login control
func renderWelcome(layout Layout) string {
	s := layout.Styles
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.WelcomeTitle.Render(WelcomeTitle),
		button(s.WelcomeAction, LoginLabel),
	)

	if layout.Width > 0 && layout.Height > 0 {
		return lipgloss.Place(layout.Width, layout.Height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderWorkspace draws the fixed-width side panel next to the main region
func renderWorkspace(state *viewstate.ViewState, layout Layout) string {
	s := layout.Styles

	// the right border takes one column
	sidebar := s.Sidebar.Width(layout.SidebarWidth - 1)
	main := s.Main
	if layout.Height > 0 {
		sidebar = sidebar.Height(layout.Height)
		main = main.Height(layout.Height)
	}
	if layout.Width > layout.SidebarWidth {
		main = main.Width(layout.Width - layout.SidebarWidth)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Heading.Render(WorkspaceHeading),
		s.Result.Render(ResultLabel+state.DisplayResult()),
		button(s.WorkspaceAction, LogoutLabel),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebar.Render(SidebarText),
		main.Render(body),
	)
}

// clampSidebarWidth falls back to the default for unset widths and keeps
// set widths at the minimum the panel can draw at a fixed size
func clampSidebarWidth(w int) int {
	switch {
	case w <= 0:
		return config.DefaultSidebarWidth
	case w < config.MinSidebarWidth:
		return config.MinSidebarWidth
	default:
		return w
	}
}

func button(style lipgloss.Style, label string) string {
	return style.Render("[ " + label + " ]")
}
