package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yraslan/gosrf/internal/process"
)

var dryingListVerbose bool

var dryingListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the drying method catalog",
	Run:   runDryingList,
}

func init() {
	dryingCmd.AddCommand(dryingListCmd)
	dryingListCmd.Flags().BoolVarP(&dryingListVerbose, "verbose", "v", false, "Include method descriptions")
}

func runDryingList(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("DRYING METHOD CATALOG:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	printMethods(process.Catalog)

	if dryingListVerbose {
		for _, m := range process.Catalog {
			fmt.Printf("  %s:\n    %s\n", m.Name, m.Info)
		}
		fmt.Println()
	}
}

func printMethods(methods []process.DryingMethod) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Method\tInput Moisture\tOutput\tMass Loss\tEnergy\tDuration\n")
	fmt.Fprintf(w, "  ──────\t──────────────\t──────\t─────────\t──────\t────────\n")
	for _, m := range methods {
		fmt.Fprintf(w, "  %s\t%.0f-%.0f %%\t%.0f %%\t%.1f %%\t%s\t%s\n",
			m.Name, m.MinMoisture, m.MaxMoisture, m.OutputMoisture, m.Loss*100, m.Energy, m.Duration)
	}
	w.Flush()
	fmt.Println()
}
