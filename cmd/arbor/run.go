package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/replay"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive session against a store definition",
	Long:  `Reads JSON actions from stdin, one per line, dispatches them into the store, and prints the tree after every change. Set ARBOR_JOURNAL to record dispatched actions for later replay. Snapshots (:save/:load) go to redis when ARBOR_REDIS_ADDR is set, otherwise to JSON files under ARBOR_SNAPSHOT_DIR.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig()
		if err != nil {
			return err
		}
		logger := cfg.Logger()

		definition, _ := cmd.Flags().GetString("store")

		opts := []arbor.Option{arbor.WithSnapshotStore(cfg.SnapshotStore())}
		var recorder *replay.Recorder
		if cfg.Journal != "" {
			f, err := os.OpenFile(cfg.Journal, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open journal: %w", err)
			}
			defer f.Close()
			recorder = replay.NewRecorder(f)
			opts = append(opts, arbor.WithLifecycleHooks(recorder.Hooks()))
		}

		st, err := cli.BuildStore(definition, logger, opts...)
		if err != nil {
			return err
		}

		render := plainRender
		if tui.Interactive(os.Stdout) {
			markdown := tui.NewRenderer()
			render = func(tree domain.Tree, version uint64) string {
				out, err := markdown(tui.TreeMarkdown(tree, version))
				if err != nil {
					return plainRender(tree, version)
				}
				return out
			}
		}

		if err := cli.RunREPL(cmd.Context(), os.Stdin, os.Stdout, st, render); err != nil {
			return err
		}
		if recorder != nil {
			return recorder.Err()
		}
		return nil
	},
}

func plainRender(tree domain.Tree, version uint64) string {
	return fmt.Sprintf("v%d %s\n", version, tui.TreeJSON(tree))
}

func init() {
	rootCmd.AddCommand(runCmd)
}
