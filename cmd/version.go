package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yraslan/gosrf/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosrf",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosrf v%s\n", version.Version)
		fmt.Println("SRF Production Analysis Tool")
		fmt.Println("Based on EN 15359 (Solid recovered fuels - Specifications and classes)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
