package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit          key.Binding
	Help          key.Binding
	CycleTheme    key.Binding
	ToggleSnippet key.Binding
	Escape        key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Form actions
	Edit     key.Binding
	ClearRow key.Binding
	Bump     key.Binding
	Unbump   key.Binding
	Reset    key.Binding
	Undo     key.Binding
	Now      key.Binding
	Copy     key.Binding

	// Modals
	Confirm   key.Binding
	NextInput key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleSnippet: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Show/hide snippet"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close dialog"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First field"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last field"),
		),

		// Form actions
		Edit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Choose value"),
		),
		ClearRow: key.NewBinding(
			key.WithKeys("x", "backspace", "delete"),
			key.WithHelp("x", "Clear field"),
		),
		Bump: key.NewBinding(
			key.WithKeys("+", "=", "right", "l"),
			key.WithHelp("+", "Next value / later"),
		),
		Unbump: key.NewBinding(
			key.WithKeys("-", "left"),
			key.WithHelp("-", "Previous value / earlier"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset all"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Undo"),
		),
		Now: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Set date to now"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "Copy snippet"),
		),

		// Modals
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		NextInput: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Switch date/time"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.ClearRow, k.Copy, k.Undo, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Edit, k.ClearRow, k.Bump, k.Unbump},
		{k.Now, k.Reset, k.Undo, k.Copy},
		{k.CycleTheme, k.ToggleSnippet, k.Help, k.Quit},
	}
}
