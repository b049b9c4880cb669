package variant

import (
	"bytes"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/persist"
	"github.com/Makepad-fr/tada/internal/shared"
	"github.com/Makepad-fr/tada/internal/state"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

func typeAndAdd(t *testing.T, app ui.App, text string) ui.App {
	t.Helper()
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)},
		tea.KeyMsg{Type: tea.KeyEnter},
	} {
		m, _ := app.Update(msg)
		var ok bool
		app, ok = m.(ui.App)
		require.True(t, ok)
	}
	return app
}

func TestKinds_ExampleOrder(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 3)
	assert.Equal(t, Basic, kinds[0].Kind)
	assert.Equal(t, Local, kinds[1].Kind)
	assert.Equal(t, Shared, kinds[2].Kind)
	assert.Equal(t, "ls-todos", kinds[1].Key)
	assert.Equal(t, "ctx-todos", kinds[2].Key)
	assert.NotEqual(t, kinds[1].Key, kinds[2].Key)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("fancy")
	assert.Error(t, err)
}

func TestBuild_BasicIsEphemeral(t *testing.T) {
	st := store.NewMemory()
	app, err := Build(Basic, Options{Store: st})
	require.NoError(t, err)

	app = typeAndAdd(t, app, "")
	assert.NotContains(t, app.View(), "cannot add empty todo")

	app = typeAndAdd(t, app, "Buy milk")
	assert.Contains(t, app.View(), "Buy milk")

	for _, key := range []string{LocalKey, shared.Key} {
		_, ok, err := st.Get(key)
		require.NoError(t, err)
		assert.False(t, ok, "basic variant must not touch %s", key)
	}
}

func TestBuild_LocalPersists(t *testing.T) {
	st := store.NewMemory()
	app, err := Build(Local, Options{Store: st})
	require.NoError(t, err)

	app = typeAndAdd(t, app, "")
	assert.Contains(t, app.View(), "cannot add empty todo")

	typeAndAdd(t, app, "Buy milk")
	todos, err := persist.Load(st, LocalKey)
	require.NoError(t, err)
	assert.Equal(t, []model.Todo{{ID: 1, Text: "Buy milk"}}, todos)

	again, err := Build(Local, Options{Store: st})
	require.NoError(t, err)
	assert.Contains(t, again.View(), "Buy milk")
}

func TestBuild_SharedSurfaces(t *testing.T) {
	st := store.NewMemory()
	app, err := Build(Shared, Options{Store: st})
	require.NoError(t, err)
	require.Len(t, app.Surfaces(), 2)
	assert.Equal(t, "Todo List 1", app.Surfaces()[0].Title())
	assert.Equal(t, "Todo list 2", app.Surfaces()[1].Title())

	app = typeAndAdd(t, app, "Walk dog")
	assert.Contains(t, app.Surfaces()[1].View(), "Walk dog")

	todos, err := persist.Load(st, shared.Key)
	require.NoError(t, err)
	assert.Len(t, todos, 1)

	three, err := Build(Shared, Options{Store: st, Surfaces: 3})
	require.NoError(t, err)
	assert.Len(t, three.Surfaces(), 3)
	assert.Equal(t, "Todo List 3", three.Surfaces()[2].Title())
}

func TestBuild_NeedsStore(t *testing.T) {
	_, err := Build(Local, Options{})
	assert.Error(t, err)
	_, err = Build(Shared, Options{})
	assert.Error(t, err)
	_, err = Build(Basic, Options{})
	assert.NoError(t, err)
}

func TestManager(t *testing.T) {
	st := store.NewMemory()

	_, err := Manager(Basic, Options{Store: st})
	assert.Error(t, err)

	m, err := Manager(Local, Options{Store: st, IDPolicy: state.IDMonotonic})
	require.NoError(t, err)
	assert.ErrorIs(t, m.Add(), state.ErrEmptyTodo)
	m.SetPending("a")
	require.NoError(t, m.Add())

	s, err := Manager(Shared, Options{Store: st})
	require.NoError(t, err)
	assert.Empty(t, s.Todos(), "shared and local lists are separate")
}

func TestManager_LogsCarryStoreKey(t *testing.T) {
	for kind, key := range map[Kind]string{Local: LocalKey, Shared: shared.Key} {
		t.Run(string(kind), func(t *testing.T) {
			st := store.NewMemory()
			require.NoError(t, st.Set(key, "{not json"))

			var buf bytes.Buffer
			m, err := Manager(kind, Options{Store: st, Logger: logging.New(&buf, slog.LevelDebug)})
			require.NoError(t, err)
			assert.Empty(t, m.Todos())

			out := buf.String()
			assert.Contains(t, out, "load failed")
			assert.Contains(t, out, "key="+key)
			assert.Contains(t, out, "variant="+string(kind))
		})
	}
}
