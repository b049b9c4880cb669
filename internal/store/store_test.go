package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetAbsent(t *testing.T) {
	m := NewMemory()

	v, ok, err := m.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestMemory_SetThenGet(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Set("k", "v1"))
	require.NoError(t, m.Set("k", "v2"))

	v, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestMemory_KeysAreIndependent(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set("ls-todos", "a"))
	require.NoError(t, m.Set("ctx-todos", "b"))

	v, _, _ := m.Get("ls-todos")
	assert.Equal(t, "a", v)
	v, _, _ = m.Get("ctx-todos")
	assert.Equal(t, "b", v)
}

func TestMemory_Closed(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Close())

	_, _, err := m.Get("k")
	assert.True(t, errors.Is(err, ErrClosed))
	assert.ErrorIs(t, m.Set("k", "v"), ErrClosed)
}

func TestUnknownBackendError(t *testing.T) {
	err := &UnknownBackendError{Name: "redis"}
	assert.Contains(t, err.Error(), `"redis"`)
}
