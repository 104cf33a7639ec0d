package cmd

import (
	"github.com/spf13/cobra"
)

var dryingCmd = &cobra.Command{
	Use:   "drying",
	Short: "Inspect the drying method catalog",
	Long: `Inspect the catalog of drying methods used by the production pipeline.

Each method carries an applicable input-moisture range, a fixed output
moisture and a process mass-loss fraction.

Subcommands:
  list        - Show the full catalog
  applicable  - Show methods applicable at a given moisture content`,
}

func init() {
	rootCmd.AddCommand(dryingCmd)
}
