package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send      key.Binding
	quit      key.Binding
	copy      key.Binding
	buildInfo key.Binding
	esc       key.Binding
	pageUp    key.Binding
	pageDown  key.Binding
}

var keys = keyMap{
	send:      key.NewBinding(key.WithKeys("enter")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	pageUp:    key.NewBinding(key.WithKeys("pgup")),
	pageDown:  key.NewBinding(key.WithKeys("pgdown")),
}
