package domain

import (
	"reflect"
	"sort"
)

// Equal reports structural equality between two slice states.
// This is the change signal for subscriber notification: a dispatch that
// produces a structurally equal value for every slice publishes nothing.
func Equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// Diff returns the names of slices whose value differs between two trees,
// sorted for stable output. Added and removed slices count as changed.
// Returns nil when the trees are structurally identical.
func Diff(old, next Tree) []string {
	var changed []string

	for name, nextVal := range next {
		oldVal, exists := old[name]
		if !exists || !Equal(oldVal, nextVal) {
			changed = append(changed, name)
		}
	}
	for name := range old {
		if _, exists := next[name]; !exists {
			changed = append(changed, name)
		}
	}

	if len(changed) == 0 {
		return nil
	}
	sort.Strings(changed)
	return changed
}
