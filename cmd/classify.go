package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yraslan/gosrf/internal/analysis"
	"github.com/yraslan/gosrf/internal/diagram"
	"github.com/yraslan/gosrf/internal/en15359"
	"github.com/yraslan/gosrf/internal/waste"
)

var (
	classifyHHV      float64
	classifyMoisture float64
	classifyChlorine float64
	classifyHgMedian float64
	classifyHg80th   float64

	classifyShowBars  bool
	classifyChartFile string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a fuel per EN 15359 from direct measurements",
	Long: `Assign EN 15359 quality classes from measured fuel properties,
without running the production pipeline.

The net calorific value is derived from the higher heating value and the
moisture content; chlorine and mercury are graded against the standard's
class ceilings. The overall SRF class is the worst of the three.

Examples:
  # A 22 MJ/kg fuel at 12% moisture with low contaminant levels
  gosrf classify --hhv 22 --moisture 12 --chlorine 0.15 --hg-median 0.01 --hg-80th 0.03`,
	Run: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().Float64Var(&classifyHHV, "hhv", 0, "Higher heating value (MJ/kg) [required]")
	classifyCmd.Flags().Float64VarP(&classifyMoisture, "moisture", "w", 0, "Moisture content (%)")
	classifyCmd.Flags().Float64Var(&classifyChlorine, "chlorine", 0, "Chlorine content (%)")
	classifyCmd.Flags().Float64Var(&classifyHgMedian, "hg-median", 0, "Mercury median (mg/MJ, as received)")
	classifyCmd.Flags().Float64Var(&classifyHg80th, "hg-80th", 0, "Mercury 80th percentile (mg/MJ, as received)")

	classifyCmd.MarkFlagRequired("hhv")

	classifyCmd.Flags().BoolVar(&classifyShowBars, "diagram", false, "Show ASCII classification bars")
	classifyCmd.Flags().StringVarP(&classifyChartFile, "output", "o", "", "Export classification chart to file (png, svg, pdf)")
}

func runClassify(cmd *cobra.Command, args []string) {
	cont := waste.ContaminantProfile{
		Chlorine:      classifyChlorine,
		MercuryMedian: classifyHgMedian,
		Mercury80th:   classifyHg80th,
	}
	c := en15359.Classify(classifyHHV, classifyMoisture, cont)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SRF CLASSIFICATION - EN 15359")
	fmt.Println("═══════════════════════════════════════════════════════════════")

	res := analysis.Result{Classification: c}
	printClassification(res, cont)

	printWarnings(analysis.Collect(classifyMoisture, c))

	if classifyShowBars {
		fmt.Println(diagram.ClassBars(c, cont.Chlorine, cont.MercuryMedian, cont.Mercury80th))
	}

	if classifyChartFile != "" {
		if err := diagram.ExportClassification(c, classifyChartFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
			return
		}
		fmt.Printf("Classification chart exported to: %s\n", classifyChartFile)
	}
}
