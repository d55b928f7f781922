package arbor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/domain"
)

func counterReducers() map[string]domain.Reducer {
	return map[string]domain.Reducer{
		"increment": func(state, _ any) (any, error) {
			return state.(int) + 1, nil
		},
	}
}

func TestStore_EndToEnd(t *testing.T) {
	st := arbor.New(arbor.WithName("test"))
	require.NoError(t, st.RegisterSlice("counter", 0, counterReducers()))

	notified := 0
	unsubscribe := st.Subscribe(func() { notified++ })
	defer unsubscribe()

	for i := 0; i < 3; i++ {
		_, err := st.Send("counter/increment", nil)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, st.GetState()["counter"])
	assert.Equal(t, 3, notified)
	assert.Equal(t, uint64(3), st.Version())

	got, err := st.Select("counter")
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestStore_IndependentContainersCoexist(t *testing.T) {
	a := arbor.New()
	b := arbor.New()
	require.NoError(t, a.RegisterSlice("counter", 0, counterReducers()))
	require.NoError(t, b.RegisterSlice("counter", 100, counterReducers()))

	_, err := a.Send("counter/increment", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, a.GetState()["counter"])
	assert.Equal(t, 100, b.GetState()["counter"], "stores must not share state")
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	snapshots := memory.NewStore()

	st := arbor.New(arbor.WithSnapshotStore(snapshots))
	require.NoError(t, st.RegisterSlice("counter", 0, counterReducers()))

	_, err := st.Send("counter/increment", nil)
	require.NoError(t, err)
	require.NoError(t, st.SaveSnapshot(ctx, "checkpoint"))

	// A fresh store restores the snapshot before its first dispatch.
	restored := arbor.New(arbor.WithSnapshotStore(snapshots))
	require.NoError(t, restored.RegisterSlice("counter", 0, counterReducers()))
	require.NoError(t, restored.RestoreSnapshot(ctx, "checkpoint"))

	assert.Equal(t, 1, restored.GetState()["counter"])

	// Restoring after sealing is a misconfiguration.
	_, err = restored.Send("counter/increment", nil)
	require.NoError(t, err)
	err = restored.RestoreSnapshot(ctx, "checkpoint")
	assert.ErrorIs(t, err, domain.ErrContainerSealed)
}

func TestStore_NoSnapshotStoreConfigured(t *testing.T) {
	st := arbor.New()
	err := st.SaveSnapshot(context.Background(), "x")
	assert.ErrorIs(t, err, arbor.ErrNoSnapshotStore)
	err = st.RestoreSnapshot(context.Background(), "x")
	assert.ErrorIs(t, err, arbor.ErrNoSnapshotStore)
}

func TestStore_HooksObserveDispatches(t *testing.T) {
	var dispatched []string
	var changes []uint64

	st := arbor.New(arbor.WithLifecycleHooks(domain.LifecycleHooks{
		OnDispatch: func(e *domain.DispatchEvent) {
			dispatched = append(dispatched, e.Action.Type)
		},
		OnStateChange: func(e *domain.ChangeEvent) {
			changes = append(changes, e.Version)
		},
	}))
	require.NoError(t, st.RegisterSlice("counter", 0, counterReducers()))

	_, err := st.Send("counter/increment", nil)
	require.NoError(t, err)
	_, err = st.Send("counter/unknown", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"counter/increment", "counter/unknown"}, dispatched)
	assert.Equal(t, []uint64{1}, changes, "no-op dispatch must not publish")
}

func TestStore_TransitionErrorSurfacesToCaller(t *testing.T) {
	st := arbor.New()
	err := st.RegisterSlice("counter", 0, map[string]domain.Reducer{
		"fail": func(_, _ any) (any, error) {
			return nil, errors.New("bad transition")
		},
	})
	require.NoError(t, err)

	_, err = st.Send("counter/fail", nil)
	var terr *domain.TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "counter", terr.Slice)
}
