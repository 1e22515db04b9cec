package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	toggle    key.Binding
	create    key.Binding
	move      key.Binding
	sendLeft  key.Binding
	sendRight key.Binding
	update    key.Binding
	cancel    key.Binding
	retry     key.Binding
	help      key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev list")),
		right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next list")),
		toggle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select list")),
		create:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "create a new list")),
		move:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "move to new list")),
		sendLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "send left")),
		sendRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "send right")),
		update:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "update")),
		cancel:    key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "cancel")),
		retry:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right},
		{k.toggle, k.create},
		{k.move, k.sendLeft, k.sendRight},
		{k.update, k.cancel, k.quit},
	}
}
