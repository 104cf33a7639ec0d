package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/yraslan/gosrf/internal/en15359"
	"github.com/yraslan/gosrf/internal/process"
)

// MassProfile draws the mass balance through the process stages as a
// terminal line chart, with a stage legend underneath. Skipped stages
// appear as flat segments.
func MassProfile(inputMass float64, stages []process.StageResult) string {
	series := make([]float64, 0, len(stages)+1)
	series = append(series, inputMass)
	for _, s := range stages {
		series = append(series, s.MassOut)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Caption("Mass through process stages (kg)"),
	))
	sb.WriteString("\n\n")

	for i, s := range stages {
		marker := "applied"
		if !s.Applied {
			marker = "skipped"
		}
		name := s.Name
		if s.Method != "" {
			name = fmt.Sprintf("%s (%s)", s.Name, s.Method)
		}
		sb.WriteString(fmt.Sprintf("  %d. %-38s %10.1f kg  [%s]\n", i+1, name, s.MassOut, marker))
	}
	return sb.String()
}

// ClassBars draws the EN 15359 classification as horizontal bars, one
// row per parameter, scaled over the five quality classes.
func ClassBars(c en15359.Classification, chlorine, hgMedian, hg80th float64) string {
	const cellWidth = 6

	row := func(label string, class int, value string) string {
		filled := strings.Repeat("█", class*cellWidth)
		empty := strings.Repeat("░", (en15359.ClassCount-class)*cellWidth)
		return fmt.Sprintf("  %-10s│%s%s│  Class %d  %s\n", label, filled, empty, class, value)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  SRF QUALITY CLASSIFICATION (EN 15359)\n")
	sb.WriteString("  ──────────────────────────────────────────────────────────────\n")
	sb.WriteString(row("NCV", c.NCVClass, fmt.Sprintf("(%.1f MJ/kg)", c.NCV)))
	sb.WriteString(row("Chlorine", c.ChlorineClass, fmt.Sprintf("(%.2f%%)", chlorine)))
	sb.WriteString(row("Mercury", c.MercuryClass, fmt.Sprintf("(%.3f/%.3f mg/MJ)", hgMedian, hg80th)))
	sb.WriteString("  ──────────────────────────────────────────────────────────────\n")

	scale := "            "
	for i := 1; i <= en15359.ClassCount; i++ {
		scale += fmt.Sprintf("%-*d", cellWidth, i)
	}
	sb.WriteString(scale + "\n")
	sb.WriteString("             Quality class (1 = best, 5 = worst)\n")
	return sb.String()
}
