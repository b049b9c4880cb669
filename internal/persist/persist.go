// Package persist mirrors a todo list into a key/value store as a JSON array
// of {"id","text","done"} records.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

// ErrCorrupt marks stored content that does not decode as a todo list.
var ErrCorrupt = errors.New("stored todo list is corrupt")

// Load reads the list stored under key. An absent key yields an empty list.
func Load(s store.Store, key string) ([]model.Todo, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	if !ok {
		return []model.Todo{}, nil
	}
	var todos []model.Todo
	if err := json.Unmarshal([]byte(raw), &todos); err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", ErrCorrupt, key, err)
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}

// Save writes the full list under key, replacing whatever was there.
func Save(s store.Store, todos []model.Todo, key string) error {
	if todos == nil {
		todos = []model.Todo{}
	}
	b, err := json.Marshal(todos)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.Set(key, string(b)); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Adapter binds a store and a key so a state.Manager can load and save
// through it.
type Adapter struct {
	Store store.Store
	Key   string
}

func NewAdapter(s store.Store, key string) *Adapter {
	return &Adapter{Store: s, Key: key}
}

func (a *Adapter) Load() ([]model.Todo, error) { return Load(a.Store, a.Key) }

func (a *Adapter) Save(todos []model.Todo) error { return Save(a.Store, todos, a.Key) }
