package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yraslan/gosrf/internal/process"
)

var dryingApplicableMoisture float64

var dryingApplicableCmd = &cobra.Command{
	Use:   "applicable",
	Short: "Show methods applicable at a given moisture content",
	Long: `Filter the drying catalog down to the methods whose applicable
input-moisture range covers the given moisture content.

Example:
  gosrf drying applicable --moisture 30`,
	Run: runDryingApplicable,
}

func init() {
	dryingCmd.AddCommand(dryingApplicableCmd)

	dryingApplicableCmd.Flags().Float64VarP(&dryingApplicableMoisture, "moisture", "w", 0, "Moisture content (%) [required]")
	dryingApplicableCmd.MarkFlagRequired("moisture")
}

func runDryingApplicable(cmd *cobra.Command, args []string) {
	fmt.Println()
	if dryingApplicableMoisture < process.DryingThreshold {
		fmt.Printf("No drying required below %.0f%% moisture.\n", process.DryingThreshold)
		fmt.Println()
	}

	methods := process.Applicable(dryingApplicableMoisture)
	if len(methods) == 0 {
		fmt.Printf("No catalog method is applicable at %.1f%% moisture.\n", dryingApplicableMoisture)
		fmt.Println()
		return
	}

	fmt.Printf("METHODS APPLICABLE AT %.1f%% MOISTURE:\n", dryingApplicableMoisture)
	fmt.Println("───────────────────────────────────────────────────────────────")
	printMethods(methods)
}
