// Package variant wires the three example flavours of the todo app:
// an ephemeral list, a list persisted to the store, and one list shared by
// several surfaces.
package variant

import (
	"fmt"
	"log/slog"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/persist"
	"github.com/Makepad-fr/tada/internal/shared"
	"github.com/Makepad-fr/tada/internal/state"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

type Kind string

const (
	Basic  Kind = "basic"
	Local  Kind = "local"
	Shared Kind = "shared"
)

// LocalKey is the store key of the persisted variant. The shared variant
// uses shared.Key.
const LocalKey = "ls-todos"

// Info describes one variant for listings.
type Info struct {
	Kind  Kind
	Name  string
	Title string
	Key   string
}

var infos = []Info{
	{Kind: Basic, Name: "1. Basic Todo", Title: "Basic Todo"},
	{Kind: Local, Name: "2. Todo with Local Storage", Title: "Todo With Local Storage", Key: LocalKey},
	{Kind: Shared, Name: "3. Todo with Context", Title: "Todo with Context", Key: shared.Key},
}

// Kinds lists the variants in example order.
func Kinds() []Info {
	out := make([]Info, len(infos))
	copy(out, infos)
	return out
}

func Lookup(k Kind) (Info, error) {
	for _, info := range infos {
		if info.Kind == k {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("unknown variant %q", k)
}

// Options tune how a variant is built.
type Options struct {
	Store    store.Store
	Logger   *slog.Logger
	IDPolicy state.IDPolicy
	Surfaces int // shared only; defaults to 2
}

func (o Options) stateOptions(k Kind) []state.Option {
	logger := o.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.With(logging.Variant(string(k)))
	if info, err := Lookup(k); err == nil && info.Key != "" {
		logger = logger.With(logging.Key(info.Key))
	}
	return []state.Option{
		state.WithLogger(logger),
		state.WithIDPolicy(o.IDPolicy),
	}
}

// Manager builds the state manager of a persisted variant on its own, for
// one-shot commands that need no surface.
func Manager(k Kind, o Options) (*state.Manager, error) {
	if o.Store == nil {
		return nil, fmt.Errorf("variant %q needs a store", k)
	}
	switch k {
	case Local:
		opts := append(o.stateOptions(k),
			state.WithPersister(persist.NewAdapter(o.Store, LocalKey)),
			state.WithEmptyPolicy(state.EmptyReject),
		)
		return state.New(opts...), nil
	case Shared:
		return shared.New(o.Store, o.stateOptions(k)...).Manager(), nil
	}
	return nil, fmt.Errorf("variant %q is not persisted", k)
}

// Build returns the Bubble Tea model for a variant.
func Build(k Kind, o Options) (ui.App, error) {
	info, err := Lookup(k)
	if err != nil {
		return ui.App{}, err
	}

	switch k {
	case Basic:
		m := state.New(append(o.stateOptions(k), state.WithEmptyPolicy(state.EmptyIgnore))...)
		return ui.NewApp(info.Title, ui.NewSurface(info.Title, m)), nil

	case Local:
		m, err := Manager(k, o)
		if err != nil {
			return ui.App{}, err
		}
		return ui.NewApp(info.Title, ui.NewSurface(info.Title, m)), nil

	case Shared:
		if o.Store == nil {
			return ui.App{}, fmt.Errorf("variant %q needs a store", k)
		}
		n := o.Surfaces
		if n <= 0 {
			n = 2
		}
		d := shared.New(o.Store, o.stateOptions(k)...)
		surfaces := make([]ui.Surface, 0, n)
		for i := 1; i <= n; i++ {
			surfaces = append(surfaces, d.Attach(surfaceTitle(i)))
		}
		return ui.NewApp(info.Title, surfaces...), nil
	}
	return ui.App{}, fmt.Errorf("unknown variant %q", k)
}

// surfaceTitle keeps the original pair's titles and numbers the rest.
func surfaceTitle(i int) string {
	if i == 2 {
		return "Todo list 2"
	}
	return fmt.Sprintf("Todo List %d", i)
}
