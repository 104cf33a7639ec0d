// Package report renders an analysis into a sectioned PDF document.
package report

import (
	"fmt"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"github.com/yraslan/gosrf/internal/analysis"
)

// Write renders the analysis report to the given file.
func Write(in analysis.Input, res analysis.Result, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Branded header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(46, 125, 50)
	pdf.CellFormat(0, 10, "gosrf", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(1, 38, 11)
	pdf.CellFormat(0, 8, "SRF Production Analysis Report", "", 1, "L", false, 0, "")
	pdf.SetDrawColor(106, 168, 79)
	pdf.Line(10, 30, 200, 30)
	pdf.Ln(8)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Report Date: %s", time.Now().Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFillColor(230, 240, 255)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 9, title, "", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(format string, args ...any) {
		pdf.CellFormat(0, 7, fmt.Sprintf(format, args...), "", 1, "L", false, 0, "")
	}

	section("Input Data")
	if in.WasteType != "" {
		row("Waste Type: %s", in.WasteType)
	}
	row("Total Waste Mass: %.2f kg", in.InputMass)
	row("Initial Moisture Content: %.2f %%", in.InitialMoisture)
	pdf.Ln(2)

	section("Waste Composition")
	for _, cat := range in.Categories.Categories {
		row("%s: %.2f %%", cat.Name, in.Composition[cat.Name])
	}
	pdf.Ln(2)

	section("Contaminants")
	row("Chlorine: %.4f %%", in.Contaminants.Chlorine)
	row("Mercury (Median): %.4f mg/MJ", in.Contaminants.MercuryMedian)
	row("Mercury (80th): %.4f mg/MJ", in.Contaminants.Mercury80th)
	pdf.Ln(2)

	section("Process Configuration")
	for _, s := range res.Process.Stages {
		name := s.Name
		if s.Method != "" {
			name = fmt.Sprintf("%s (%s)", s.Name, s.Method)
		}
		if s.Applied {
			row("- %s: %.2f kg -> %.2f kg, moisture %.1f %%", name, s.MassIn, s.MassOut, s.MoistureOut)
		} else {
			row("- %s: skipped", name)
		}
	}
	pdf.Ln(2)

	section("Results")
	row("Final SRF Mass: %.2f kg", res.Process.OutputMass)
	row("Effective Moisture: %.2f %%", res.Process.EffectiveMoisture)
	row("Heating Value (HHV): %.2f MJ/kg", res.HHV)
	row("Total Energy: %.2f MJ", res.Energy.TotalEnergy)
	row("Coal Equivalent: %.2f kg", res.Energy.CoalEquivalent)
	row("Oil Equivalent: %.2f kg", res.Energy.OilEquivalent)
	if in.EstimateCO2 {
		row("CO2 Avoided vs Coal: %.2f kg (%.1f %%)", res.Energy.CO2Avoided, res.Energy.CO2AvoidedPercent)
	}
	pdf.Ln(2)

	section("SRF Classification (EN 15359)")
	c := res.Classification
	row("NCV: %.1f MJ/kg (Class %d)", c.NCV, c.NCVClass)
	row("Chlorine: %.2f %% (Class %d)", in.Contaminants.Chlorine, c.ChlorineClass)
	row("Mercury: Median=%.3f mg/MJ, 80th=%.3f mg/MJ (Class %d)",
		in.Contaminants.MercuryMedian, in.Contaminants.Mercury80th, c.MercuryClass)
	row("Overall SRF Class: %d", c.SRFClass)

	if len(res.Warnings) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(204, 0, 0)
		pdf.CellFormat(0, 8, "Warnings:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, w := range res.Warnings {
			row("- %s", w)
		}
		pdf.SetTextColor(0, 0, 0)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
