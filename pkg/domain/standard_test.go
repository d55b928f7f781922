package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardReducers(t *testing.T) {
	initial := map[string]any{"theme": "dark"}
	reducers := StandardReducers(initial)

	t.Run("set replaces", func(t *testing.T) {
		next, err := reducers["set"](initial, map[string]any{"theme": "light"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"theme": "light"}, next)
	})

	t.Run("merge patches without mutating", func(t *testing.T) {
		state := map[string]any{"theme": "dark", "tabs": 4}
		next, err := reducers["merge"](state, map[string]any{"theme": "light"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"theme": "light", "tabs": 4}, next)
		assert.Equal(t, "dark", state["theme"], "input state must not be mutated")
	})

	t.Run("merge rejects non-map state", func(t *testing.T) {
		_, err := reducers["merge"](42, map[string]any{})
		require.Error(t, err)
	})

	t.Run("merge rejects non-map payload", func(t *testing.T) {
		_, err := reducers["merge"](map[string]any{}, 42)
		require.Error(t, err)
	})

	t.Run("clear restores initial", func(t *testing.T) {
		next, err := reducers["clear"](map[string]any{"theme": "light"}, nil)
		require.NoError(t, err)
		assert.Equal(t, initial, next)
	})
}
