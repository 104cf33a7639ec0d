package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yraslan/gosrf/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gosrf",
	Short: "SRF Production Analysis Tool",
	Long: `gosrf - Solid Recovered Fuel Production Analyzer

A CLI tool for mass and energy balance analysis of SRF production
from mixed waste, with quality classification per EN 15359.

This tool helps waste-to-energy engineers perform:
  - Waste composition handling and heating value calculation
  - Mass balance through the SRF production stages
  - Energy content, coal/oil equivalence and avoided-CO2 estimation
  - SRF quality classification (NCV, chlorine, mercury)
  - PDF reports and chart export

Classification follows the EN 15359 standard for solid recovered fuels.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosrf v%-49s║\n", version.Version)
		fmt.Println("  ║   Solid Recovered Fuel Production Analyzer                ║")
		fmt.Println("  ║   Youssef Raslan ©  2026                                  ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for mass and energy balance analysis of SRF")
		fmt.Println("  production, with quality classification per EN 15359.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Composition normalization and weighted heating value")
		fmt.Println("    • Sequential mass-loss modeling through the process stages")
		fmt.Println("    • Drying method catalog with applicability filtering")
		fmt.Println("    • Coal/oil equivalents and avoided-CO2 estimation")
		fmt.Println("    • EN 15359 quality classes for NCV, chlorine and mercury")
		fmt.Println()
		fmt.Println("  Use 'gosrf --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
