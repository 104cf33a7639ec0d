package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yraslan/gosrf/internal/analysis"
	"github.com/yraslan/gosrf/internal/diagram"
	"github.com/yraslan/gosrf/internal/process"
	"github.com/yraslan/gosrf/internal/report"
	"github.com/yraslan/gosrf/internal/scenario"
	"github.com/yraslan/gosrf/internal/waste"
)

var (
	// Analysis inputs
	analyzeScenario   string
	analyzeMass       float64
	analyzeMoisture   float64
	analyzeComponents []string
	analyzeCategories string
	analyzeWasteType  string
	analyzeNormalize  bool

	// Contaminants
	analyzeChlorine float64
	analyzeHgMedian float64
	analyzeHg80th   float64

	// Process configuration
	analyzeDrying1  string
	analyzeDrying2  string
	analyzeShred2   bool
	analyzeParticle string
	analyzeSkipCO2  bool

	// Output options
	analyzeShowDiagram bool
	analyzeChartFile   string
	analyzeCompChart   string
	analyzeReportFile  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full SRF production analysis",
	Long: `Compute the mass and energy balance for converting mixed waste into
Solid Recovered Fuel, and classify the product per EN 15359.

The pipeline applies presorting, primary shredding, optional mechanical
separation, up to two drying stages and optional secondary shredding,
then derives energy content, coal/oil equivalents, the avoided-CO2
estimate and the quality classification.

Inputs come from flags or from a TOML scenario file (--scenario).

Examples:
  # 1000 kg of mixed waste at 30% moisture, rotary drum drying
  gosrf analyze --mass 1000 --moisture 30 \
    --component "Plastic=40" --component "Paper & Cardboard=30" \
    --component "Textiles=10" --component "Biogenic Waste=20" \
    --drying1 "Rotary Drum"

  # From a scenario file, with a PDF report
  gosrf analyze --scenario plant.toml --report analysis.pdf`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Input flags
	analyzeCmd.Flags().StringVarP(&analyzeScenario, "scenario", "s", "", "TOML scenario file (overrides input flags)")
	analyzeCmd.Flags().Float64VarP(&analyzeMass, "mass", "m", 0, "Total waste mass (kg)")
	analyzeCmd.Flags().Float64VarP(&analyzeMoisture, "moisture", "w", 25, "Initial moisture content (%)")
	analyzeCmd.Flags().StringArrayVarP(&analyzeComponents, "component", "c", nil, `Composition entry "Category=percent" (repeatable)`)
	analyzeCmd.Flags().StringVar(&analyzeCategories, "categories", "standard", "Category set (standard, extended)")
	analyzeCmd.Flags().StringVar(&analyzeWasteType, "waste-type", "Mixed", "Waste type label (Municipal, Industrial, Commercial, Mixed)")
	analyzeCmd.Flags().BoolVar(&analyzeNormalize, "normalize", false, "Normalize composition to 100% before the analysis")

	// Contaminant flags
	analyzeCmd.Flags().Float64Var(&analyzeChlorine, "chlorine", 0, "Chlorine content (%)")
	analyzeCmd.Flags().Float64Var(&analyzeHgMedian, "hg-median", 0, "Mercury median (mg/MJ, as received)")
	analyzeCmd.Flags().Float64Var(&analyzeHg80th, "hg-80th", 0, "Mercury 80th percentile (mg/MJ, as received)")

	// Process flags
	analyzeCmd.Flags().StringVar(&analyzeDrying1, "drying1", "", "Primary drying method (see 'gosrf drying list')")
	analyzeCmd.Flags().StringVar(&analyzeDrying2, "drying2", "", "Secondary drying method")
	analyzeCmd.Flags().BoolVar(&analyzeShred2, "secondary-shredding", false, "Include secondary shredding and mechanical separation")
	analyzeCmd.Flags().StringVar(&analyzeParticle, "particle", "Medium", "Particle size target for secondary shredding (Fine, Medium, Rough)")
	analyzeCmd.Flags().BoolVar(&analyzeSkipCO2, "skip-co2", false, "Skip the avoided-CO2 estimate")

	// Output options
	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII mass profile and classification bars")
	analyzeCmd.Flags().StringVarP(&analyzeChartFile, "output", "o", "", "Export classification chart to file (png, svg, pdf)")
	analyzeCmd.Flags().StringVar(&analyzeCompChart, "composition-chart", "", "Export composition chart to file (png, svg, pdf)")
	analyzeCmd.Flags().StringVar(&analyzeReportFile, "report", "", "Write a PDF analysis report to file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	in, err := analyzeInput()
	if err != nil {
		return err
	}

	// The organic fraction sets a floor on realistic input moisture.
	if floor := waste.MinimumMoisture(in.Composition, in.Categories); in.InitialMoisture < floor {
		fmt.Printf("Note: initial moisture raised to %.1f%% (floor implied by the organic fraction)\n", floor)
		in.InitialMoisture = floor
	}

	res := analysis.Run(in)
	printAnalysis(in, res)

	if analyzeShowDiagram {
		fmt.Println(diagram.MassProfile(in.InputMass, res.Process.Stages))
		fmt.Println(diagram.ClassBars(res.Classification,
			in.Contaminants.Chlorine, in.Contaminants.MercuryMedian, in.Contaminants.Mercury80th))
	}

	if analyzeCompChart != "" {
		if err := diagram.ExportComposition(in.Composition, in.Categories, analyzeCompChart); err != nil {
			return fmt.Errorf("exporting composition chart: %w", err)
		}
		fmt.Printf("Composition chart exported to: %s\n", analyzeCompChart)
	}
	if analyzeChartFile != "" {
		if err := diagram.ExportClassification(res.Classification, analyzeChartFile); err != nil {
			return fmt.Errorf("exporting classification chart: %w", err)
		}
		fmt.Printf("Classification chart exported to: %s\n", analyzeChartFile)
	}
	if analyzeReportFile != "" {
		if err := report.Write(in, res, analyzeReportFile); err != nil {
			return err
		}
		fmt.Printf("Report written to: %s\n", analyzeReportFile)
	}
	return nil
}

// analyzeInput assembles the analysis input from the scenario file or
// from the individual flags.
func analyzeInput() (analysis.Input, error) {
	if analyzeScenario != "" {
		s, err := scenario.Load(analyzeScenario)
		if err != nil {
			return analysis.Input{}, err
		}
		return s.Input()
	}

	set, ok := waste.CategorySetByName(analyzeCategories)
	if !ok {
		return analysis.Input{}, fmt.Errorf("unknown category set %q", analyzeCategories)
	}

	comp := set.Empty()
	for _, entry := range analyzeComponents {
		name, value, found := strings.Cut(entry, "=")
		if !found {
			return analysis.Input{}, fmt.Errorf("invalid --component %q, expected \"Category=percent\"", entry)
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || pct < 0 {
			return analysis.Input{}, fmt.Errorf("invalid percentage in --component %q", entry)
		}
		comp[strings.TrimSpace(name)] = pct
	}
	if analyzeNormalize {
		comp.Normalize()
	}

	in := analysis.Input{
		WasteType:       analyzeWasteType,
		InputMass:       analyzeMass,
		Composition:     comp,
		Categories:      set,
		InitialMoisture: analyzeMoisture,
		EstimateCO2:     !analyzeSkipCO2,
		Contaminants: waste.ContaminantProfile{
			Chlorine:      analyzeChlorine,
			MercuryMedian: analyzeHgMedian,
			Mercury80th:   analyzeHg80th,
		},
	}
	if in.InputMass < 0 {
		return analysis.Input{}, fmt.Errorf("mass must be >= 0, got %.2f", in.InputMass)
	}
	if in.InitialMoisture < 0 || in.InitialMoisture > 100 {
		return analysis.Input{}, fmt.Errorf("moisture must be within [0,100], got %.2f", in.InitialMoisture)
	}
	if analyzeChlorine < 0 || analyzeHgMedian < 0 || analyzeHg80th < 0 {
		return analysis.Input{}, fmt.Errorf("contaminant values must be >= 0")
	}

	if analyzeDrying1 != "" {
		m, ok := process.MethodByName(analyzeDrying1)
		if !ok {
			return analysis.Input{}, fmt.Errorf("unknown drying method %q", analyzeDrying1)
		}
		in.PrimaryDrying = &m
	}
	if analyzeDrying2 != "" {
		m, ok := process.MethodByName(analyzeDrying2)
		if !ok {
			return analysis.Input{}, fmt.Errorf("unknown drying method %q", analyzeDrying2)
		}
		in.SecondaryDrying = &m
	}
	if analyzeShred2 {
		t, ok := process.ParticleTargetByName(analyzeParticle)
		if !ok {
			return analysis.Input{}, fmt.Errorf("unknown particle target %q (Fine, Medium, Rough)", analyzeParticle)
		}
		in.SecondaryShredding = true
		in.Target = t
	}
	return in, nil
}

func printAnalysis(in analysis.Input, res analysis.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SRF PRODUCTION ANALYSIS - EN 15359")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Waste Type:\t%s\n", in.WasteType)
	fmt.Fprintf(w, "  Total Waste Mass:\t%.2f kg\n", in.InputMass)
	fmt.Fprintf(w, "  Initial Moisture:\t%.1f %%\n", in.InitialMoisture)
	fmt.Fprintf(w, "  Category Set:\t%s\n", in.Categories.Name)
	w.Flush()
	fmt.Println()

	fmt.Println("WASTE COMPOSITION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, cat := range in.Categories.Categories {
		fmt.Fprintf(w, "  %s:\t%.2f %%\n", cat.Name, in.Composition[cat.Name])
	}
	fmt.Fprintf(w, "  Total:\t%.2f %%\n", in.Composition.Total())
	w.Flush()
	fmt.Println()

	if in.InitialMoisture < process.DryingThreshold {
		fmt.Println("  No drying required: initial moisture is already below 20%.")
		fmt.Println()
	}

	fmt.Println("PROCESS STAGES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stage\tMass In\tMass Out\tMoisture\t\n")
	fmt.Fprintf(w, "  ─────\t───────\t────────\t────────\t\n")
	for _, s := range res.Process.Stages {
		name := s.Name
		if s.Method != "" {
			name = fmt.Sprintf("%s (%s)", s.Name, s.Method)
		}
		if s.Applied {
			fmt.Fprintf(w, "  %s\t%.1f kg\t%.1f kg\t%.1f %%\t\n", name, s.MassIn, s.MassOut, s.MoistureOut)
		} else {
			fmt.Fprintf(w, "  %s\t-\t-\t-\tskipped\n", name)
		}
	}
	w.Flush()
	fmt.Println()

	fmt.Println("PRODUCTION RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  FINAL SRF MASS = %.1f kg              \n", res.Process.OutputMass)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Effective Moisture:\t%.1f %%\n", res.Process.EffectiveMoisture)
	fmt.Fprintf(w, "  Heating Value (HHV):\t%.2f MJ/kg\n", res.HHV)
	fmt.Fprintf(w, "  Total Energy:\t%.1f MJ\n", res.Energy.TotalEnergy)
	fmt.Fprintf(w, "  Coal Equivalent:\t%.1f kg\n", res.Energy.CoalEquivalent)
	fmt.Fprintf(w, "  Oil Equivalent:\t%.1f kg\n", res.Energy.OilEquivalent)
	if in.EstimateCO2 {
		fmt.Fprintf(w, "  CO2 Avoided vs Coal:\t%.1f kg (%.1f %%)\n", res.Energy.CO2Avoided, res.Energy.CO2AvoidedPercent)
	}
	w.Flush()
	fmt.Println()

	printClassification(res, in.Contaminants)
	printWarnings(res.Warnings)
}

func printClassification(res analysis.Result, cont waste.ContaminantProfile) {
	c := res.Classification
	fmt.Println("SRF CLASSIFICATION (EN 15359):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Parameter\tValue\tClass\n")
	fmt.Fprintf(w, "  ─────────\t─────\t─────\n")
	fmt.Fprintf(w, "  NCV\t%.1f MJ/kg\t%d\n", c.NCV, c.NCVClass)
	fmt.Fprintf(w, "  Chlorine\t%.2f %%\t%d\n", cont.Chlorine, c.ChlorineClass)
	fmt.Fprintf(w, "  Mercury\t%.3f/%.3f mg/MJ\t%d\n", cont.MercuryMedian, cont.Mercury80th, c.MercuryClass)
	w.Flush()
	fmt.Println()
	fmt.Printf("  OVERALL SRF CLASS: %d (1 = best, 5 = worst)\n", c.SRFClass)
	fmt.Println()
}

func printWarnings(warnings []analysis.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("WARNINGS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, warn := range warnings {
		fmt.Printf("  ⚠ %s\n", warn)
	}
	fmt.Println()
}
