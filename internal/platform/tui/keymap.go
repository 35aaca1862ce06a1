package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keyboard bindings of a training session.
// Mouse clicks fire as well; Fire covers aiming with the last hovered cell.
type KeyMap struct {
	Fire       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fire, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("click/space", "fire"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}
