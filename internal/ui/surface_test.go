package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/state"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(s Surface, msgs ...tea.Msg) Surface {
	for _, msg := range msgs {
		s, _ = s.Update(msg)
	}
	return s
}

func TestSurface_TypingUpdatesPendingBuffer(t *testing.T) {
	m := state.New()
	s := NewSurface("Basic Todo", m)

	s = send(s, runes("Buy"), runes(" milk"))

	assert.Equal(t, "Buy milk", m.Pending())
	assert.Empty(t, m.Todos())
}

func TestSurface_EnterAdds(t *testing.T) {
	m := state.New()
	s := NewSurface("Basic Todo", m)

	s = send(s, runes("Buy milk"), keyEnter)

	assert.Equal(t, []model.Todo{{ID: 1, Text: "Buy milk"}}, m.Todos())
	assert.Equal(t, "", m.Pending())
	assert.Contains(t, s.View(), "Buy milk")
	assert.Contains(t, s.View(), "Basic Todo")
}

func TestSurface_EmptyAddIgnored(t *testing.T) {
	m := state.New(state.WithEmptyPolicy(state.EmptyIgnore))
	s := NewSurface("Basic Todo", m)

	s = send(s, keyEnter)

	assert.Empty(t, m.Todos())
	assert.Empty(t, s.Notice())
	assert.NotContains(t, s.View(), "cannot add empty todo")
}

func TestSurface_EmptyAddRejectedShowsNotice(t *testing.T) {
	m := state.New(state.WithEmptyPolicy(state.EmptyReject))
	s := NewSurface("Todo With Local Storage", m)

	s = send(s, keyEnter)
	assert.Empty(t, m.Todos())
	assert.Equal(t, "cannot add empty todo", s.Notice())
	assert.Contains(t, s.View(), "cannot add empty todo")

	s = send(s, runes("x"))
	assert.Empty(t, s.Notice(), "typing clears the notice")
}

func TestSurface_ListModeToggleAndDelete(t *testing.T) {
	m := state.New()
	s := NewSurface("t", m)
	s = send(s, runes("a"), keyEnter, runes("b"), keyEnter, runes("c"), keyEnter)
	require.Len(t, m.Todos(), 3)

	s = send(s, keyEsc)
	require.False(t, s.Typing())
	assert.Equal(t, 2, s.Cursor(), "cursor sits on the newest todo")

	s = send(s, runes("k"), keySpace)
	assert.True(t, m.Todos()[1].Done)

	s = send(s, runes("d"))
	assert.Equal(t, []model.Todo{{ID: 1, Text: "a"}, {ID: 3, Text: "c"}}, m.Todos())
	assert.Equal(t, 1, s.Cursor())

	s = send(s, runes("d"), runes("d"))
	assert.Empty(t, m.Todos())
	assert.Equal(t, 0, s.Cursor())

	// Nothing left to act on.
	s = send(s, keySpace, runes("d"), runes("j"))
	assert.Empty(t, m.Todos())
	assert.Contains(t, s.View(), "no todos yet")
}

func TestSurface_CursorStaysInBounds(t *testing.T) {
	m := state.New()
	s := NewSurface("t", m)
	s = send(s, runes("a"), keyEnter, runes("b"), keyEnter, keyTab)

	s = send(s, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 1, s.Cursor())
	s = send(s, runes("k"), runes("k"), runes("k"))
	assert.Equal(t, 0, s.Cursor())
}

func TestSurface_EditReturnsToInput(t *testing.T) {
	m := state.New()
	s := NewSurface("t", m)
	s = send(s, keyEsc, runes("a"))

	require.True(t, s.Typing())
	s = send(s, runes("d"))
	assert.Equal(t, "d", m.Pending(), "keys go to the input while typing")
}

func TestSurface_SeesChangesFromOtherSurface(t *testing.T) {
	m := state.New(state.WithEmptyPolicy(state.EmptyReject))
	a := NewSurface("Todo List 1", m)
	b := NewSurface("Todo List 2", m)

	a = send(a, runes("Walk dog"), keyEnter)

	assert.Contains(t, b.View(), "Walk dog")
	assert.Contains(t, a.View(), "Walk dog")
}

func TestSurface_CursorClampedAfterRemoteDelete(t *testing.T) {
	m := state.New()
	a := NewSurface("a", m)
	b := NewSurface("b", m)
	a = send(a, runes("x"), keyEnter, runes("y"), keyEnter, keyEsc)
	b = send(b, keyEsc, runes("j"))
	require.Equal(t, 1, a.Cursor())

	b = send(b, runes("d"))
	require.Len(t, m.Todos(), 1)

	a = send(a, keySpace)
	assert.Equal(t, 0, a.Cursor())
	assert.True(t, m.Todos()[0].Done)
}
