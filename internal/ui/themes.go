package ui

import (
	"fmt"
	"os"
	"path"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yildizm/DataPlatform/internal/config"
)

// Region names addressable by theme content globs
const (
	RegionWelcomeTitle    = "welcome/title"
	RegionWelcomeAction   = "welcome/action"
	RegionSidebar         = "workspace/sidebar"
	RegionHeading         = "workspace/heading"
	RegionResult          = "workspace/result"
	RegionWorkspaceAction = "workspace/action"
	RegionFooterHelp      = "footer/help"
)

// Regions lists every styled region in render order
var Regions = []string{
	RegionWelcomeTitle,
	RegionWelcomeAction,
	RegionSidebar,
	RegionHeading,
	RegionResult,
	RegionWorkspaceAction,
	RegionFooterHelp,
}

// Theme represents the brand palette and the regions it applies to
type Theme struct {
	Name string

	Yellow lipgloss.Color
	Dark   lipgloss.Color
	Light  lipgloss.Color
	Border lipgloss.Color

	// Content globs selecting the regions the palette applies to
	Content []string
}

// fixed palettes for the non-brand themes, [yellow, dark, light, border]
var builtinPalettes = map[string][4]string{
	"high-contrast": {"#FFFF00", "#000000", "#FFFFFF", "#FFFFFF"},
	"minimal":       {"#A0AEC0", "#2D3748", "#F7FAFC", "#4A5568"},
}

// NewTheme builds a theme by name. The brand theme takes its colors from
// tc; the other themes keep their own palette. Every theme uses tc's
// content scope.
func NewTheme(name string, tc config.ThemeConfig) (Theme, error) {
	if name == "" {
		name = "brand"
	}

	content := make([]string, len(tc.Content))
	copy(content, tc.Content)
	for _, glob := range content {
		if _, err := path.Match(glob, ""); err != nil {
			return Theme{}, fmt.Errorf("invalid content pattern %q: %w", glob, err)
		}
	}

	if name == "brand" {
		brand := config.DefaultBrandPalette()
		return Theme{
			Name:    name,
			Yellow:  lipgloss.Color(orDefault(tc.Brand.Yellow, brand.Yellow)),
			Dark:    lipgloss.Color(orDefault(tc.Brand.Dark, brand.Dark)),
			Light:   lipgloss.Color(orDefault(tc.Brand.Light, brand.Light)),
			Border:  lipgloss.Color(orDefault(tc.Brand.Border, brand.Border)),
			Content: content,
		}, nil
	}

	palette, ok := builtinPalettes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme: %s (available: %v)", name, GetAvailableThemes())
	}
	return Theme{
		Name:    name,
		Yellow:  lipgloss.Color(palette[0]),
		Dark:    lipgloss.Color(palette[1]),
		Light:   lipgloss.Color(palette[2]),
		Border:  lipgloss.Color(palette[3]),
		Content: content,
	}, nil
}

// InScope reports whether the palette applies to region
func (t Theme) InScope(region string) bool {
	for _, glob := range t.Content {
		if ok, err := path.Match(glob, region); err == nil && ok {
			return true
		}
	}
	return false
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"brand", "high-contrast", "minimal"}
}

// IsColorDisabled checks if colors should be disabled by the environment
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// ColorEnabled resolves the configured color mode against the --no-color
// flag and NO_COLOR
func ColorEnabled(mode string, noColorFlag bool) bool {
	if noColorFlag || IsColorDisabled() {
		return false
	}
	return mode != "never"
}

// ApplyColorMode forces a color profile when color is requested
// regardless of the terminal
func ApplyColorMode(mode string) {
	if mode == "always" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// Styles contains the style of every region
type Styles struct {
	Theme Theme

	WelcomeTitle    lipgloss.Style
	WelcomeAction   lipgloss.Style
	Sidebar         lipgloss.Style
	Heading         lipgloss.Style
	Result          lipgloss.Style
	WorkspaceAction lipgloss.Style
	FooterHelp      lipgloss.Style
	Main            lipgloss.Style
}

// NewStyles builds region styles for theme. Layout (padding, borders) is
// always applied; colors only when color is true and the region is in
// the theme's content scope.
func NewStyles(theme Theme, color bool) *Styles {
	painted := func(region string) bool {
		return color && theme.InScope(region)
	}

	s := &Styles{
		Theme:           theme,
		WelcomeTitle:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
		WelcomeAction:   lipgloss.NewStyle(),
		Sidebar:         lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).Padding(1, 1),
		Heading:         lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Result:          lipgloss.NewStyle().MarginBottom(1),
		WorkspaceAction: lipgloss.NewStyle(),
		FooterHelp:      lipgloss.NewStyle().Padding(0, 1),
		Main:            lipgloss.NewStyle().Padding(1, 2),
	}

	if painted(RegionWelcomeTitle) {
		s.WelcomeTitle = s.WelcomeTitle.Foreground(theme.Yellow)
	}
	if painted(RegionWelcomeAction) {
		s.WelcomeAction = s.WelcomeAction.Foreground(theme.Dark).Background(theme.Yellow).Bold(true)
	}
	if painted(RegionSidebar) {
		s.Sidebar = s.Sidebar.BorderForeground(theme.Border).Foreground(theme.Light)
	}
	if painted(RegionHeading) {
		s.Heading = s.Heading.Foreground(theme.Yellow)
	}
	if painted(RegionResult) {
		s.Result = s.Result.Foreground(theme.Light)
	}
	if painted(RegionWorkspaceAction) {
		s.WorkspaceAction = s.WorkspaceAction.Foreground(theme.Dark).Background(theme.Yellow).Bold(true)
	}
	if painted(RegionFooterHelp) {
		s.FooterHelp = s.FooterHelp.Foreground(theme.Border)
	}

	return s
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
