package domain

import "strings"

// Tree is a published snapshot of the whole state: slice name -> slice state.
// Published trees are immutable by contract. The container never mutates a
// tree it has handed out; callers must treat reads as read-only.
type Tree map[string]any

// Clone returns a shallow copy of the top level. Unchanged slice values are
// shared structurally between the old and new tree.
func (t Tree) Clone() Tree {
	next := make(Tree, len(t))
	for k, v := range t {
		next[k] = v
	}
	return next
}

// Get resolves a dotted key path ("counter", "prefs.theme") against the tree.
// Intermediate segments must be maps. Returns ErrNotFound (wrapped with the
// path) when the path does not resolve.
func (t Tree) Get(path string) (any, error) {
	if path == "" {
		return nil, wrapNotFound(path)
	}

	var current any = map[string]any(t)
	for _, segment := range strings.Split(path, ".") {
		m, ok := asMap(current)
		if !ok {
			return nil, wrapNotFound(path)
		}
		current, ok = m[segment]
		if !ok {
			return nil, wrapNotFound(path)
		}
	}
	return current, nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Tree:
		return m, true
	default:
		return nil, false
	}
}
