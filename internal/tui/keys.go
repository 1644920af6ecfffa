package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keybindings for the main view.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Toggle  key.Binding
	Add     key.Binding
	Remove  key.Binding
	Scope   key.Binding
	Folders key.Binding
	Track   key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap for the bottom help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Enter, k.Scope, k.Folders, k.Quit}
}

// FullHelp implements help.KeyMap. The short view is all we render.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.Add, k.Remove, k.Scope, k.Folders, k.Track, k.Refresh, k.Quit},
	}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add hook"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "remove"),
	),
	Scope: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "scope"),
	),
	Folders: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "folders"),
	),
	Track: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "track folder"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// wizardKeyHelp is the hint line shown while a wizard is open.
const wizardKeyHelp = "↑/↓ navigate • space toggle • enter next • esc back • q quit"
