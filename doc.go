/*
Package arbor is a synchronous, action-driven state container: a single
immutable-by-contract state tree partitioned into named slices, mutated only
through dispatched actions folded by pure transition functions (reducers),
with ordered subscriber notification after every published change.

# Concept

State lives in one tree keyed by slice name. Each slice owns its partition:
an initial value plus a table of reducers keyed by action-type suffix.
Dispatch is the single write entry point; given the same tree and the same
action, the resulting tree is always reproducible. Anything asynchronous
(fetching data, timers, user input) lives outside the container and feeds it
ordinary synchronous actions.

# Key Properties

  - Deterministic: dispatching a recorded action sequence onto a fresh
    container reproduces the same tree, byte for byte.
  - Atomic: a reducer fault aborts the whole dispatch; the tree is left
    exactly as it was.
  - Change-driven: subscribers fire only when at least one slice's value
    differs by structural equality, in registration order.
  - Closed-world: slice registration is rejected once the container has
    accepted its first dispatch.

# Usage

Construct a Store, register slices, then dispatch:

	st := arbor.New()

	err := st.RegisterSlice("counter", 0, map[string]domain.Reducer{
		"increment": func(state, _ any) (any, error) {
			return state.(int) + 1, nil
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	unsubscribe := st.Subscribe(func() {
		fmt.Println("changed:", st.GetState()["counter"])
	})
	defer unsubscribe()

	if _, err := st.Dispatch(domain.Action{Type: "counter/increment"}); err != nil {
		log.Fatal(err)
	}

Persistence, metrics, and logging are opt-in collaborators: see
pkg/adapters for snapshot stores, pkg/observability for Prometheus and slog
hooks, and pkg/replay for action journals.
*/
package arbor
