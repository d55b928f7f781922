package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/adapters/file"
	"github.com/aretw0/arbor/pkg/adapters/redis"
	"github.com/aretw0/arbor/pkg/domain"
)

func plainRender(tree domain.Tree, version uint64) string {
	val, _ := tree.Get("counter")
	return fmt.Sprintf("counter=%v\n", val)
}

func newCounterStore(t *testing.T, opts ...arbor.Option) *arbor.Store {
	t.Helper()
	st := arbor.New(opts...)
	require.NoError(t, st.RegisterSlice("counter", 0, map[string]domain.Reducer{
		"increment": func(state, _ any) (any, error) {
			return state.(int) + 1, nil
		},
	}))
	return st
}

func TestRunREPL_DispatchAndRender(t *testing.T) {
	st := newCounterStore(t)

	input := strings.Join([]string{
		`{"type": "counter/increment"}`,
		`{"type": "counter/unknown"}`,
		`not json at all`,
		`:state`,
		`:quit`,
		`{"type": "counter/increment"}`, // never reached
	}, "\n")

	var out bytes.Buffer
	err := cli.RunREPL(context.Background(), strings.NewReader(input), &out, st, plainRender)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "counter=1")
	assert.Contains(t, output, "no change (counter/unknown)")
	assert.Contains(t, output, "invalid action")
	assert.Equal(t, 1, st.GetState()["counter"], "input after :quit must not be processed")
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	st := newCounterStore(t)

	var out bytes.Buffer
	err := cli.RunREPL(context.Background(), strings.NewReader(":nope\n"), &out, st, plainRender)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "unknown command")
}

func TestRunREPL_SaveAndLoadSnapshot(t *testing.T) {
	snapshots := file.NewStore(t.TempDir())

	// First session: mutate, persist, and show :load refusing once sealed.
	st := newCounterStore(t, arbor.WithSnapshotStore(snapshots))
	input := strings.Join([]string{
		`{"type": "counter/increment"}`,
		`:save`,
		`:save snap`,
		`:load snap`,
		`:quit`,
	}, "\n")

	var out bytes.Buffer
	err := cli.RunREPL(context.Background(), strings.NewReader(input), &out, st, plainRender)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "usage: :save <key>")
	assert.Contains(t, out.String(), `saved "snap"`)
	assert.Contains(t, out.String(), "load failed")

	// Second session: restore before the first dispatch.
	restored := newCounterStore(t, arbor.WithSnapshotStore(snapshots))
	out.Reset()
	err = cli.RunREPL(context.Background(), strings.NewReader(":load snap\n:quit\n"), &out, restored, plainRender)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "counter=1")
}

func TestBuildStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: demo
slices:
  - name: prefs
    initial:
      theme: dark
`), 0644))

	st, err := cli.BuildStore(path, logging.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "demo", st.Name)

	// Declared slices carry the standard transition table
	_, err = st.Send("prefs/merge", map[string]any{"theme": "light"})
	require.NoError(t, err)

	theme, err := st.Select("prefs.theme")
	require.NoError(t, err)
	assert.Equal(t, "light", theme)

	_, err = st.Send("prefs/clear", nil)
	require.NoError(t, err)
	theme, err = st.Select("prefs.theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestBuildStore_MissingFile(t *testing.T) {
	_, err := cli.BuildStore(filepath.Join(t.TempDir(), "absent.yaml"), logging.NewNop())
	require.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	// t.Setenv registers a restore; the unset below keeps the variable
	// clean for the assertion regardless of the host environment.
	t.Setenv("ARBOR_LOG_LEVEL", "x")
	os.Unsetenv("ARBOR_LOG_LEVEL")

	cfg, err := cli.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("ARBOR_LOG_LEVEL", "debug")
	t.Setenv("ARBOR_JOURNAL", "/tmp/journal.jsonl")

	cfg, err := cli.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/journal.jsonl", cfg.Journal)
}

func TestConfig_SnapshotStore(t *testing.T) {
	dir := t.TempDir()
	fs, ok := cli.Config{SnapshotDir: dir}.SnapshotStore().(*file.Store)
	require.True(t, ok, "expected the file adapter without a redis address")
	assert.Equal(t, dir, fs.BasePath)

	rs, ok := cli.Config{RedisAddr: "localhost:6379"}.SnapshotStore().(*redis.Store)
	require.True(t, ok, "expected the redis adapter when an address is set")
	require.NoError(t, rs.Close())
}
