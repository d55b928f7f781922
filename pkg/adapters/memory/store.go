package memory

import (
	"context"
	"sync"

	"github.com/aretw0/arbor/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Tree
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Tree),
	}
}

// Save persists the tree in memory.
func (s *Store) Save(ctx context.Context, key string, tree domain.Tree) error {
	// Deep copy to ensure isolation, similar to serialization
	copied := deepCopyTree(tree)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = copied
	return nil
}

// Load retrieves the tree from memory.
func (s *Store) Load(ctx context.Context, key string) (domain.Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tree, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}

	// Copy on read so the caller can't mutate stored state by reference
	return deepCopyTree(tree), nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns stored snapshot keys.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	return keys, nil
}

// deepCopyTree copies maps and slices recursively. Scalar values are shared,
// which is fine for serializable slice states treated as immutable.
func deepCopyTree(tree domain.Tree) domain.Tree {
	copied := make(domain.Tree, len(tree))
	for k, v := range tree {
		copied[k] = deepCopyValue(v)
	}
	return copied
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, inner := range val {
			m[k] = deepCopyValue(inner)
		}
		return m
	case domain.Tree:
		return map[string]any(deepCopyTree(val))
	case []any:
		list := make([]any, len(val))
		for i, inner := range val {
			list[i] = deepCopyValue(inner)
		}
		return list
	default:
		return v
	}
}
