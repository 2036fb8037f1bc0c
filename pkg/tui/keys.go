package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Travel       key.Binding
	Observe      key.Binding
	Tab          key.Binding
	Levels       key.Binding
	Achievements key.Binding
	NewMission   key.Binding
	Sync         key.Binding
	Help         key.Binding
	Close        key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Travel: key.NewBinding(
			key.WithKeys("enter", "t"),
			key.WithHelp("enter/t", "travel"),
		),
		Observe: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "observe"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Levels: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "levels"),
		),
		Achievements: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "achievements"),
		),
		NewMission: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new mission"),
		),
		Sync: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sync content"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the footer help text.
func (k KeyMap) ShortHelp() string {
	return "↑↓ select  enter travel  o observe  tab pane  L levels  a achievements  r new  ? help  q quit"
}

// FullHelp returns all key bindings for the help modal.
func (k KeyMap) FullHelp() [][]string {
	return [][]string{
		{"↑/k", "Move up / scroll details"},
		{"↓/j", "Move down / scroll details"},
		{"enter/t", "Travel to the selected body"},
		{"o", "Observe the selected body"},
		{"tab", "Switch pane (bodies / details)"},
		{"L", "Choose a level"},
		{"a", "Achievements and knowledge"},
		{"r", "Start a new free-play mission"},
		{"s", "Git sync the content directory"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
}
