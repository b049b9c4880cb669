// Package backend opens the store.Store implementation named by configuration.
package backend

import (
	"fmt"
	"os"

	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
	"github.com/Makepad-fr/tada/internal/store/sqlitestore"
)

// Open returns the store for name, keeping its files under dataDir.
func Open(name, dataDir string) (store.Store, error) {
	switch name {
	case store.BackendMemory:
		return store.NewMemory(), nil
	case store.BackendJSON, "":
		if err := os.MkdirAll(dataDir, 0o750); err != nil {
			return nil, fmt.Errorf("mkdir: %w", err)
		}
		return jsonstore.InDir(dataDir), nil
	case store.BackendSQLite:
		if err := os.MkdirAll(dataDir, 0o750); err != nil {
			return nil, fmt.Errorf("mkdir: %w", err)
		}
		return sqlitestore.OpenInDir(dataDir)
	}
	return nil, &store.UnknownBackendError{Name: name}
}
