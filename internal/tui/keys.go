package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	refresh    key.Binding
	search     key.Binding
	editQuery  key.Binding
	notes      key.Binding
	quiz       key.Binding
	flashcards key.Binding
	copy       key.Binding
	export     key.Binding
	flip       key.Binding
	answer     key.Binding
	easy       key.Binding
	medium     key.Binding
	hard       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	search:     key.NewBinding(key.WithKeys("s")),
	editQuery:  key.NewBinding(key.WithKeys("/")),
	notes:      key.NewBinding(key.WithKeys("n")),
	quiz:       key.NewBinding(key.WithKeys("q")),
	flashcards: key.NewBinding(key.WithKeys("f")),
	copy:       key.NewBinding(key.WithKeys("c")),
	export:     key.NewBinding(key.WithKeys("e")),
	flip:       key.NewBinding(key.WithKeys(" ", "enter")),
	answer:     key.NewBinding(key.WithKeys(" ", "enter")),
	easy:       key.NewBinding(key.WithKeys("1")),
	medium:     key.NewBinding(key.WithKeys("2")),
	hard:       key.NewBinding(key.WithKeys("3")),
}
