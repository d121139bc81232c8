package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	save      key.Binding
	newText   key.Binding
	newCanvas key.Binding
	edit      key.Binding
	pin       key.Binding
	color     key.Binding
	archive   key.Binding
	unarchive key.Binding
	trash     key.Binding
	restore   key.Binding
	purge     key.Binding
	summarize key.Binding
	copy      key.Binding
	search    key.Binding
	tagFilter key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	newText:   key.NewBinding(key.WithKeys("n")),
	newCanvas: key.NewBinding(key.WithKeys("N")),
	edit:      key.NewBinding(key.WithKeys("e")),
	pin:       key.NewBinding(key.WithKeys("p")),
	color:     key.NewBinding(key.WithKeys("o")),
	archive:   key.NewBinding(key.WithKeys("a")),
	unarchive: key.NewBinding(key.WithKeys("u")),
	trash:     key.NewBinding(key.WithKeys("d")),
	restore:   key.NewBinding(key.WithKeys("r")),
	purge:     key.NewBinding(key.WithKeys("x")),
	summarize: key.NewBinding(key.WithKeys("s")),
	copy:      key.NewBinding(key.WithKeys("c")),
	search:    key.NewBinding(key.WithKeys("/")),
	tagFilter: key.NewBinding(key.WithKeys("t")),
	info:      key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}

// canvasKeyMap holds the canvas editor bindings. They overlap with the
// board keys, so the editor matches against its own map.
type canvasKeyMap struct {
	penDown key.Binding
	pencil  key.Binding
	eraser  key.Binding
	wider   key.Binding
	thinner key.Binding
	color   key.Binding
	undo    key.Binding
	clear   key.Binding
}

var canvasKeys = canvasKeyMap{
	penDown: key.NewBinding(key.WithKeys(" ")),
	pencil:  key.NewBinding(key.WithKeys("b")),
	eraser:  key.NewBinding(key.WithKeys("e")),
	wider:   key.NewBinding(key.WithKeys("+", "=")),
	thinner: key.NewBinding(key.WithKeys("-")),
	color:   key.NewBinding(key.WithKeys("c")),
	undo:    key.NewBinding(key.WithKeys("u", "ctrl+z")),
	clear:   key.NewBinding(key.WithKeys("X")),
}
