// Package shared hands one todo list manager to many display surfaces.
//
// Surfaces do not hold copies: each one is built around the same
// *state.Manager, so a change made through any of them is what every other
// surface renders next.
package shared

import (
	"slices"

	"github.com/Makepad-fr/tada/internal/persist"
	"github.com/Makepad-fr/tada/internal/state"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Key is the store key the shared list is persisted under.
const Key = "ctx-todos"

type Distributor struct {
	manager *state.Manager
	titles  []string
}

// New builds the single shared manager, persisted to st under Key.
// Empty adds are rejected; opts may override that or add a logger.
func New(st store.Store, opts ...state.Option) *Distributor {
	base := []state.Option{
		state.WithPersister(persist.NewAdapter(st, Key)),
		state.WithEmptyPolicy(state.EmptyReject),
	}
	return &Distributor{manager: state.New(append(base, opts...)...)}
}

// Manager returns the shared handle.
func (d *Distributor) Manager() *state.Manager { return d.manager }

// Attach builds a surface titled title over the shared manager.
func (d *Distributor) Attach(title string) ui.Surface {
	d.titles = append(d.titles, title)
	return ui.NewSurface(title, d.manager)
}

// Titles lists the titles of the surfaces attached so far, in attach order.
// The surfaces themselves belong to whoever hosts them.
func (d *Distributor) Titles() []string {
	return slices.Clone(d.titles)
}
