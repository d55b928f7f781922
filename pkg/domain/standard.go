package domain

import "fmt"

// StandardReducers returns a generic transition table suitable for slices
// driven by tooling rather than hand-written reducers:
//
//   - "set":   replace the slice state with the payload
//   - "merge": merge a map payload into a map slice state
//   - "clear": reset the slice state to the given initial value
//
// The CLI registers these for slices declared in a store definition file.
func StandardReducers(initial any) map[string]Reducer {
	return map[string]Reducer{
		"set": func(_, payload any) (any, error) {
			return payload, nil
		},
		"merge": func(state, payload any) (any, error) {
			current, ok := asMap(state)
			if !ok {
				return nil, fmt.Errorf("merge requires a map slice state, got %T", state)
			}
			patch, ok := asMap(payload)
			if !ok {
				return nil, fmt.Errorf("merge requires a map payload, got %T", payload)
			}
			next := make(map[string]any, len(current)+len(patch))
			for k, v := range current {
				next[k] = v
			}
			for k, v := range patch {
				next[k] = v
			}
			return next, nil
		},
		"clear": func(_, _ any) (any, error) {
			return initial, nil
		},
	}
}
