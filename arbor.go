package arbor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// ErrNoSnapshotStore is returned by SaveSnapshot/RestoreSnapshot when no
// store was configured.
var ErrNoSnapshotStore = errors.New("no snapshot store configured")

// Store is the high-level entry point for the Arbor library.
// It wraps the internal runtime container and provides a simplified API
// for consumers. Construct instances explicitly and pass them to whatever
// code needs to dispatch, read, or subscribe; there is no package-level
// singleton, so independent containers can coexist (e.g. in tests).
type Store struct {
	container *runtime.Container
	snapshots ports.SnapshotStore
	logger    *slog.Logger
	hooks     []domain.LifecycleHooks
	Name      string
}

// Option defines a functional option for configuring the Store.
type Option func(*Store)

// WithLogger configures the structured logger used for deferred dispatch
// faults.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. May be given multiple
// times; all hook sets are invoked.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Store) {
		s.hooks = append(s.hooks, hooks)
	}
}

// WithSnapshotStore configures persistence for SaveSnapshot/RestoreSnapshot.
func WithSnapshotStore(store ports.SnapshotStore) Option {
	return func(s *Store) {
		s.snapshots = store
	}
}

// WithName sets a display name for the store (used by tooling).
func WithName(name string) Option {
	return func(s *Store) {
		s.Name = name
	}
}

// New creates an empty Store. Register slices before the first Dispatch.
func New(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}

	runtimeOpts := make([]runtime.Option, 0, len(s.hooks)+1)
	if s.logger != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(s.logger))
	}
	for _, h := range s.hooks {
		runtimeOpts = append(runtimeOpts, runtime.WithHooks(h))
	}
	s.container = runtime.NewContainer(runtimeOpts...)
	return s
}

// RegisterSlice registers a named partition of the tree with its initial
// value and transition table. Fails with domain.ErrDuplicateSlice if the
// name is taken and domain.ErrContainerSealed after the first Dispatch.
func (s *Store) RegisterSlice(name string, initial any, reducers map[string]domain.Reducer) error {
	return s.container.RegisterSlice(domain.Slice{
		Name:     name,
		Initial:  initial,
		Reducers: reducers,
	})
}

// Dispatch submits an action and returns it for composability.
// See the concurrency notes on internal/runtime.Container: re-entrant
// dispatches are queued FIFO and processed after the current fan-out.
func (s *Store) Dispatch(a domain.Action) (domain.Action, error) {
	return s.container.Dispatch(a)
}

// Send is a convenience wrapper building the action from a type and payload.
func (s *Store) Send(actionType string, payload any) (domain.Action, error) {
	return s.Dispatch(domain.Action{Type: actionType, Payload: payload})
}

// GetState returns the current tree snapshot. Treat it as read-only.
func (s *Store) GetState() domain.Tree {
	return s.container.GetState()
}

// Select resolves a dotted key path ("counter", "prefs.theme") against the
// current tree. Fails with domain.ErrNotFound when the path does not
// resolve.
func (s *Store) Select(path string) (any, error) {
	return s.container.Select(path)
}

// Subscribe registers a callback fired once per state-changing dispatch, in
// registration order. The returned function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	return s.container.Subscribe(fn)
}

// Version returns the number of trees published so far. It only moves when
// a dispatch actually changed state, so it doubles as a cheap "did anything
// change" signal for tooling.
func (s *Store) Version() uint64 {
	return s.container.Version()
}

// SaveSnapshot persists the current tree under the given key.
func (s *Store) SaveSnapshot(ctx context.Context, key string) error {
	if s.snapshots == nil {
		return ErrNoSnapshotStore
	}
	if err := s.snapshots.Save(ctx, key, s.GetState()); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", key, err)
	}
	return nil
}

// RestoreSnapshot hydrates registered slices from a persisted tree. It must
// run before the first Dispatch (the container seals on first dispatch);
// keys with no registered slice are ignored.
func (s *Store) RestoreSnapshot(ctx context.Context, key string) error {
	if s.snapshots == nil {
		return ErrNoSnapshotStore
	}
	tree, err := s.snapshots.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load snapshot %q: %w", key, err)
	}
	return s.container.Hydrate(tree)
}
