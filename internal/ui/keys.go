package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding a surface or the app reacts to.
type KeyMap struct {
	Up, Down       key.Binding
	Toggle, Delete key.Binding
	Edit, Add      key.Binding
	Leave          key.Binding
	NextSurface    key.Binding
	PrevSurface    key.Binding
	Help, Quit     key.Binding
	ForceQuit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done")),
		Delete:      key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Edit:        key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "new todo")),
		Add:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Leave:       key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "back to list")),
		NextSurface: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next list")),
		PrevSurface: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev list")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// listKeys is the help.KeyMap shown while a list has focus.
type listKeys struct {
	k     KeyMap
	multi bool
}

func (l listKeys) ShortHelp() []key.Binding {
	b := []key.Binding{l.k.Toggle, l.k.Delete, l.k.Edit}
	if l.multi {
		b = append(b, l.k.NextSurface)
	}
	return append(b, l.k.Quit)
}

func (l listKeys) FullHelp() [][]key.Binding {
	nav := []key.Binding{l.k.Up, l.k.Down}
	if l.multi {
		nav = append(nav, l.k.NextSurface, l.k.PrevSurface)
	}
	return [][]key.Binding{
		nav,
		{l.k.Toggle, l.k.Delete, l.k.Edit},
		{l.k.Help, l.k.Quit},
	}
}

// inputKeys is the help.KeyMap shown while typing.
type inputKeys struct{ k KeyMap }

func (i inputKeys) ShortHelp() []key.Binding { return []key.Binding{i.k.Add, i.k.Leave} }

func (i inputKeys) FullHelp() [][]key.Binding { return [][]key.Binding{i.ShortHelp()} }
