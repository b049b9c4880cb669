// Package store defines the string-keyed key/value store the todo lists are
// persisted into, plus an in-memory implementation.
package store

import (
	"errors"
	"fmt"
	"sync"
)

// ErrClosed is returned by operations on a store after Close.
var ErrClosed = errors.New("store closed")

// Store is a persistent string-keyed string-value store.
// Get reports ok=false when the key is absent.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Memory keeps entries in a map. It lives as long as the process does.
type Memory struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

// Backend names accepted by the configuration.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// UnknownBackendError reports a backend name no store is registered for.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown store backend %q (want %s, %s or %s)",
		e.Name, BackendJSON, BackendSQLite, BackendMemory)
}
