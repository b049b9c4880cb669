package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
)

// TodoState is what a surface needs from the state it displays.
// *state.Manager satisfies it.
type TodoState interface {
	Todos() []model.Todo
	Pending() string
	Version() uint64
	SetPending(text string)
	Add() error
	ToggleDone(id int) bool
	Delete(id int) bool
}

const (
	inputLabel       = "New todo"
	inputPlaceholder = "Insert next todo"
	defaultWidth     = 40
)

// Surface renders one todo list and turns key presses into state calls.
// Several surfaces may share one TodoState; each reads it fresh on View.
type Surface struct {
	title  string
	state  TodoState
	keys   KeyMap
	input  textinput.Model
	typing bool
	cursor int
	notice string
	seen   uint64
	active bool
	width  int
}

func NewSurface(title string, st TodoState) Surface {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = inputPlaceholder
	ti.CharLimit = 200
	ti.Width = defaultWidth - 6
	ti.SetValue(st.Pending())
	ti.Focus()

	return Surface{
		title:  title,
		state:  st,
		keys:   DefaultKeyMap(),
		input:  ti,
		typing: true,
		seen:   st.Version(),
		active: true,
		width:  defaultWidth,
	}
}

func (s Surface) Title() string    { return s.title }
func (s Surface) State() TodoState { return s.state }
func (s Surface) Typing() bool     { return s.typing }
func (s Surface) Cursor() int      { return s.cursor }
func (s Surface) Notice() string   { return s.notice }

// SetActive marks the surface as the one receiving keys. An inactive surface
// drops input focus but keeps its mode for when it comes back.
func (s *Surface) SetActive(active bool) tea.Cmd {
	s.active = active
	if !active {
		s.input.Blur()
		return nil
	}
	if s.typing {
		return s.input.Focus()
	}
	return nil
}

func (s *Surface) SetWidth(w int) {
	if w < 20 {
		w = 20
	}
	s.width = w
	s.input.Width = w - 6
}

// sync pulls the shared pending buffer and clamps the cursor after another
// surface changed the list.
func (s *Surface) sync() {
	if v := s.state.Pending(); v != s.input.Value() {
		s.input.SetValue(v)
		s.input.CursorEnd()
	}
	if v := s.state.Version(); v != s.seen {
		s.seen = v
		s.clampCursor(len(s.state.Todos()))
	}
}

func (s *Surface) clampCursor(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s Surface) Update(msg tea.Msg) (Surface, tea.Cmd) {
	s.sync()

	km, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	if s.typing {
		return s.updateTyping(km)
	}
	return s.updateList(km)
}

func (s Surface) updateTyping(msg tea.KeyMsg) (Surface, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Add):
		if err := s.state.Add(); err != nil {
			s.notice = err.Error()
			return s, nil
		}
		s.notice = ""
		s.sync()
		if n := len(s.state.Todos()); n > 0 {
			s.cursor = n - 1
		}
		return s, nil
	case key.Matches(msg, s.keys.Leave):
		s.typing = false
		s.input.Blur()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if v := s.input.Value(); v != s.state.Pending() {
		s.state.SetPending(v)
		s.notice = ""
	}
	return s, cmd
}

func (s Surface) updateList(msg tea.KeyMsg) (Surface, tea.Cmd) {
	todos := s.state.Todos()
	switch {
	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, s.keys.Down):
		if s.cursor < len(todos)-1 {
			s.cursor++
		}
	case key.Matches(msg, s.keys.Toggle):
		if s.cursor < len(todos) {
			s.state.ToggleDone(todos[s.cursor].ID)
			s.notice = ""
		}
	case key.Matches(msg, s.keys.Delete):
		if s.cursor < len(todos) {
			s.state.Delete(todos[s.cursor].ID)
			s.notice = ""
			s.sync()
		}
	case key.Matches(msg, s.keys.Edit):
		s.typing = true
		return s, s.input.Focus()
	}
	return s, nil
}

func (s Surface) View() string {
	s.sync()
	t := Current()

	var b strings.Builder
	b.WriteString(t.Title.Render(s.title))
	b.WriteString("\n\n")
	label := inputLabel
	if s.typing && s.active {
		label = t.Accent.Render(label)
	} else {
		label = t.Muted.Render(label)
	}
	b.WriteString(label + "\n")
	b.WriteString(s.input.View() + "\n")
	if s.notice != "" {
		b.WriteString(t.Error.Render(s.notice) + "\n")
	}
	b.WriteString("\n")

	todos := s.state.Todos()
	if len(todos) == 0 {
		b.WriteString(t.Muted.Render("no todos yet"))
	}
	for i, todo := range todos {
		prefix := "  "
		if !s.typing && s.active && i == s.cursor {
			prefix = t.Selected.Render(t.Cursor)
		}
		b.WriteString(prefix + TodoLine(todo))
		if i < len(todos)-1 {
			b.WriteString("\n")
		}
	}

	border := t.BorderColor
	if s.active {
		border = t.ActiveBorderColor
	}
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(border).
		Padding(0, 1).
		Width(s.width).
		Render(b.String())
}
