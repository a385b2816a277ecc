package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/yildizm/DataPlatform/internal/viewstate"
)

// KeyMap binds keys to the workspace actions
type KeyMap struct {
	Login  key.Binding
	Logout key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Login: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter", "login / start"),
		),
		Logout: key.NewBinding(
			key.WithKeys("o", "ctrl+l"),
			key.WithHelp("o", "logout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SyncScreen enables only the action that is valid on screen
func (k *KeyMap) SyncScreen(screen viewstate.Screen) {
	k.Login.SetEnabled(screen == viewstate.ScreenWelcome)
	k.Logout.SetEnabled(screen == viewstate.ScreenWorkspace)
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Login, k.Logout, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Login, k.Logout},
		{k.Help, k.Quit},
	}
}
