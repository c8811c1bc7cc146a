package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the terminal key bindings. Tiles are moved with the mouse
// only; the keyboard just quits.
type keyMap struct {
	// Slide is shown in help only. Clicks arrive as tea.MouseMsg and never
	// match it; the placeholder key keeps it enabled so help renders it.
	Slide key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Slide: key.NewBinding(
			key.WithKeys("click"),
			key.WithHelp("click", "slide tile"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Slide, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
