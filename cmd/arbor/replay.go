package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <journal>",
	Short: "Replay a recorded action journal and print the final tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig()
		if err != nil {
			return err
		}
		logger := cfg.Logger()

		definition, _ := cmd.Flags().GetString("store")
		st, err := cli.BuildStore(definition, logger)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		defer f.Close()

		entries, err := replay.ReadJournal(f)
		if err != nil {
			return err
		}
		if err := replay.Replay(st, entries); err != nil {
			return err
		}

		fmt.Printf("replayed %d actions\n", len(entries))
		fmt.Printf("v%d %s\n", st.Version(), tui.TreeJSON(st.GetState()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
