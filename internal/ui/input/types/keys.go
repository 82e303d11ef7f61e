package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding of the advocates screen.
// It implements help.KeyMap so the footer and the help page stay in sync with the handlers.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Search    key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Reset     key.Binding
	Clear     key.Binding
	Refresh   key.Binding
	Detail    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "top")),
		Bottom:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Reset:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset search")),
		Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset search")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Detail:    key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter/i", "details")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Keys is the key map shared by all modes
var Keys = DefaultKeyMap()

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Reset, k.Detail, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Search, k.Submit, k.Cancel, k.Reset, k.Clear},
		{k.Detail, k.Refresh, k.Help, k.Quit},
	}
}

// SearchHelp is the footer shown while the search field has focus
func (k KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.Reset, k.ForceQuit}
}
