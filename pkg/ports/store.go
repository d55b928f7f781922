package ports

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

// SnapshotStore persists opaque state-tree snapshots taken via GetState.
// Persistence is an external collaborator: the container itself never does
// I/O, and a stored tree is just a serializable value keyed by name.
type SnapshotStore interface {
	// Save persists the tree under the given key.
	Save(ctx context.Context, key string, tree domain.Tree) error

	// Load retrieves the tree stored under the given key.
	// Returns domain.ErrSnapshotNotFound if the key does not exist.
	Load(ctx context.Context, key string) (domain.Tree, error)

	// Delete removes the snapshot for a key.
	Delete(ctx context.Context, key string) error

	// List returns the keys of stored snapshots.
	List(ctx context.Context) ([]string, error)
}
