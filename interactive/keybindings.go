package interactive

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the pager's own bindings; scrolling is left to the viewport
type KeyMap struct {
	Quit   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "back to menu"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
	}
}

func (it KeyMap) hints() []key.Binding {
	return []key.Binding{it.Top, it.Bottom, it.Quit}
}
