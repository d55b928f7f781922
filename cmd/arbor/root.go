package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor is an action-driven state container",
	Long:  `Arbor holds a state tree of named slices, folds dispatched actions through pure reducers, and notifies subscribers on every published change. This CLI drives a store defined in a YAML/JSON file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("store", "arbor.yaml", "Path to the store definition file")
}
