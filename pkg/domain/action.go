package domain

import "strings"

// Action is the only input that can change state. Type identifies the
// transition to apply; Payload carries optional serializable data.
type Action struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Reducer is a pure transition function: it maps the current slice state and
// an action payload to the next slice state. Reducers must be deterministic,
// must not mutate their input, and must not touch state outside their slice.
type Reducer func(state any, payload any) (any, error)

// Slice associates a name with an initial value and a transition table.
// Reducer keys are action-type suffixes: a slice named "counter" with a
// reducer keyed "increment" handles the action type "counter/increment".
// A key containing the full action type (e.g. "session/reset") matches
// exactly, which lets a slice react to another slice's actions.
type Slice struct {
	Name     string
	Initial  any
	Reducers map[string]Reducer
}

// Match returns the reducer handling the given action type, if any.
// Full-type keys take precedence over suffix keys.
func (s Slice) Match(actionType string) (Reducer, bool) {
	if r, ok := s.Reducers[actionType]; ok {
		return r, true
	}
	if suffix, ok := strings.CutPrefix(actionType, s.Name+"/"); ok {
		if r, ok := s.Reducers[suffix]; ok {
			return r, true
		}
	}
	return nil, false
}
