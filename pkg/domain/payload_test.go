package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addTodoPayload struct {
	Title string `mapstructure:"title"`
	Done  bool   `mapstructure:"done"`
	Order int    `mapstructure:"order"`
}

func TestDecodePayload(t *testing.T) {
	a := Action{
		Type: "todos/add",
		Payload: map[string]any{
			"title": "water the garden",
			"done":  false,
			// JSON numbers arrive as float64; weak typing must cope.
			"order": float64(2),
		},
	}

	var out addTodoPayload
	require.NoError(t, DecodePayload(a, &out))
	assert.Equal(t, "water the garden", out.Title)
	assert.False(t, out.Done)
	assert.Equal(t, 2, out.Order)
}

func TestDecodePayload_Mismatch(t *testing.T) {
	a := Action{
		Type:    "todos/add",
		Payload: map[string]any{"order": "not-a-number"},
	}

	var out addTodoPayload
	err := DecodePayload(a, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "todos/add")
}
