package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the book screen.
type keyMap struct {
	// Global
	Quit       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Refresh    key.Binding

	// Form
	NewBook  key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Confirm  key.Binding
	Escape   key.Binding

	// Table
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	EditTitle key.Binding
	EditYear  key.Binding
	Delete    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload books"),
		),

		NewBook: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "Add book"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Submit / close field"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close editing"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/↑", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/↓", "Down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Bottom"),
		),
		EditTitle: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit title"),
		),
		EditYear: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Edit year"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "Delete book"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.EditTitle, k.EditYear, k.Delete, k.NewBook, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.EditTitle, k.EditYear, k.Delete, k.Escape},
		{k.NewBook, k.Tab, k.ShiftTab, k.Confirm},
		{k.Refresh, k.CycleTheme, k.Help, k.Quit},
	}
}

// editingHelp is shown in the footer while an inline input has focus.
func (k keyMap) editingHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Close field")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Close all")),
		k.ForceQuit,
	}
}

// formHelp is shown in the footer while the create form has focus.
func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{
		k.Tab,
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Add book")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Back to list")),
		k.ForceQuit,
	}
}
