package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	st := arbor.New(arbor.WithLifecycleHooks(observability.LogHooks(logger)))
	err := st.RegisterSlice("counter", 0, map[string]domain.Reducer{
		"increment": func(state, _ any) (any, error) {
			return state.(int) + 1, nil
		},
	})
	require.NoError(t, err)

	_, err = st.Send("counter/increment", nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "action dispatched")
	assert.Contains(t, out, "state published")
	assert.Contains(t, out, "counter/increment")
}
