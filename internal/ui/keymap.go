package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play        key.Binding
	Toggle      key.Binding
	Next        key.Binding
	Prev        key.Binding
	SeekFwd     key.Binding
	SeekBack    key.Binding
	VolUp       key.Binding
	VolDown     key.Binding
	Shuffle     key.Binding
	Repeat      key.Binding
	Like        key.Binding
	AddTo       key.Binding
	Delete      key.Binding
	Rename      key.Binding
	Back        key.Binding
	NewPlaylist key.Binding
	Search      key.Binding
	NextView    key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Play:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Next:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		Prev:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous")),
		SeekFwd:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "seek +5s")),
		SeekBack:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "seek -5s")),
		VolUp:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "volume up")),
		VolDown:     key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "volume down")),
		Shuffle:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		Repeat:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "repeat")),
		Like:        key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
		AddTo:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to playlist")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Rename:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename playlist")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		NewPlaylist: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "new playlist")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextView:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
