// Package state owns a todo list and its pending-input buffer.
//
// A Manager never edits its list in place: every change builds a new slice,
// swaps it in and bumps Version. Display surfaces compare versions to know
// when to refresh, and subscribers are told about each new snapshot.
// When a Persister is configured the full list is saved after every change.
package state

import (
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
)

// ErrEmptyTodo is returned by Add under EmptyReject when the pending buffer
// is empty.
var ErrEmptyTodo = errors.New("cannot add empty todo")

// Persister loads the initial list and receives every new list.
type Persister interface {
	Load() ([]model.Todo, error)
	Save(todos []model.Todo) error
}

// EmptyPolicy decides what Add does with an empty pending buffer.
type EmptyPolicy int

const (
	EmptyIgnore EmptyPolicy = iota // silently do nothing
	EmptyReject                    // return ErrEmptyTodo
)

// IDPolicy decides the id given to a new todo.
type IDPolicy int

const (
	IDLength    IDPolicy = iota // len(list)+1; may repeat an id after a delete
	IDMonotonic                 // max(id)+1; never collides with a live id
)

// Snapshot is an immutable view of the manager at one version.
type Snapshot struct {
	Todos   []model.Todo
	Pending string
	Version uint64
}

type Manager struct {
	mu      sync.RWMutex
	todos   []model.Todo
	pending string
	version uint64
	saveErr error

	persister   Persister
	emptyPolicy EmptyPolicy
	idPolicy    IDPolicy
	logger      *slog.Logger

	subs   map[int]func(Snapshot)
	nextID int
}

type Option func(*Manager)

func WithPersister(p Persister) Option     { return func(m *Manager) { m.persister = p } }
func WithEmptyPolicy(p EmptyPolicy) Option { return func(m *Manager) { m.emptyPolicy = p } }
func WithIDPolicy(p IDPolicy) Option       { return func(m *Manager) { m.idPolicy = p } }
func WithLogger(l *slog.Logger) Option     { return func(m *Manager) { m.logger = l } }

// New builds a manager. With a Persister the list is seeded from Load; a load
// failure leaves the list empty rather than failing construction.
// Nothing is saved here: the loaded list is not written back, so the store is
// first touched by the first list change.
func New(opts ...Option) *Manager {
	m := &Manager{
		todos:  []model.Todo{},
		subs:   make(map[int]func(Snapshot)),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	if m.persister != nil {
		todos, err := m.persister.Load()
		if err != nil {
			m.logger.Warn("load failed, starting with an empty list", logging.Error(err))
		} else if todos != nil {
			m.todos = todos
			m.logger.Debug("loaded todos", logging.Count(len(todos)))
		}
	}
	return m
}

func (m *Manager) Todos() []model.Todo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.todos)
}

func (m *Manager) Pending() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pending
}

// Version increases by one on every list change. The pending buffer does not
// count as a list change.
func (m *Manager) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Err returns the error from the most recent save, nil once a save succeeds.
func (m *Manager) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saveErr
}

// SetPending replaces the pending-input buffer. No validation happens here.
func (m *Manager) SetPending(text string) {
	m.mu.Lock()
	m.pending = text
	m.mu.Unlock()
}

// Add commits the pending buffer as a new todo and clears the buffer.
func (m *Manager) Add() error {
	m.mu.Lock()
	if m.pending == "" {
		m.mu.Unlock()
		if m.emptyPolicy == EmptyReject {
			return ErrEmptyTodo
		}
		return nil
	}
	todo := model.Todo{ID: m.newIDLocked(), Text: m.pending}
	next := make([]model.Todo, len(m.todos), len(m.todos)+1)
	copy(next, m.todos)
	next = append(next, todo)
	m.pending = ""
	m.logger.Debug("todo added", logging.TodoID(todo.ID))
	m.commit(next)
	return nil
}

// ToggleDone flips Done on the todo with the given id. It reports whether the
// list changed; an unknown id is a no-op.
func (m *Manager) ToggleDone(id int) bool {
	m.mu.Lock()
	idx := m.indexLocked(id)
	if idx < 0 {
		m.mu.Unlock()
		return false
	}
	next := make([]model.Todo, len(m.todos))
	for i, t := range m.todos {
		if t.ID == id {
			t = t.Toggled()
		}
		next[i] = t
	}
	m.logger.Debug("todo toggled", logging.TodoID(id))
	m.commit(next)
	return true
}

// Delete removes the todo with the given id, keeping the others in order.
// It reports whether the list changed; an unknown id is a no-op.
func (m *Manager) Delete(id int) bool {
	m.mu.Lock()
	if m.indexLocked(id) < 0 {
		m.mu.Unlock()
		return false
	}
	next := make([]model.Todo, 0, len(m.todos))
	for _, t := range m.todos {
		if t.ID != id {
			next = append(next, t)
		}
	}
	m.logger.Debug("todo deleted", logging.TodoID(id))
	m.commit(next)
	return true
}

// Subscribe registers fn to be called with each new snapshot after a list
// change. The returned func removes the subscription.
func (m *Manager) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// commit swaps in next, saves it and notifies subscribers.
// Called with mu held; returns with mu released.
func (m *Manager) commit(next []model.Todo) {
	m.todos = next
	m.version++
	if m.persister != nil {
		m.saveErr = m.persister.Save(next)
		if m.saveErr != nil {
			m.logger.Error("save failed", logging.Error(m.saveErr), logging.Version(m.version))
		}
	}
	snap := m.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(m.subs))
	for _, id := range sortedKeys(m.subs) {
		subs = append(subs, m.subs[id])
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (m *Manager) snapshotLocked() Snapshot {
	return Snapshot{
		Todos:   slices.Clone(m.todos),
		Pending: m.pending,
		Version: m.version,
	}
}

func (m *Manager) indexLocked(id int) int {
	return slices.IndexFunc(m.todos, func(t model.Todo) bool { return t.ID == id })
}

func (m *Manager) newIDLocked() int {
	if m.idPolicy == IDMonotonic {
		highest := 0
		for _, t := range m.todos {
			highest = max(highest, t.ID)
		}
		return highest + 1
	}
	return len(m.todos) + 1
}

func sortedKeys(subs map[int]func(Snapshot)) []int {
	keys := make([]int, 0, len(subs))
	for k := range subs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
