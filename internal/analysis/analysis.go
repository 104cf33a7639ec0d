// Package analysis ties the calculation stages together: composition and
// heating value, the mass-loss pipeline, energy conversion and EN 15359
// classification, executed in fixed dependency order. Run is pure: the
// caller owns the mutable inputs and re-runs the full analysis on every
// change.
package analysis

import (
	"github.com/yraslan/gosrf/internal/en15359"
	"github.com/yraslan/gosrf/internal/energy"
	"github.com/yraslan/gosrf/internal/process"
	"github.com/yraslan/gosrf/internal/waste"
)

// Input is one complete set of analysis parameters.
type Input struct {
	WasteType string // label only: Municipal, Industrial, Commercial, Mixed

	InputMass       float64 // kg
	Composition     waste.Composition
	Categories      waste.CategorySet
	Contaminants    waste.ContaminantProfile
	InitialMoisture float64 // %

	PrimaryDrying      *process.DryingMethod
	SecondaryDrying    *process.DryingMethod
	SecondaryShredding bool
	Target             process.ParticleTarget

	// EstimateCO2 controls whether the coal-substitution CO2 balance is
	// computed; energy totals and fuel equivalents are always produced.
	EstimateCO2 bool
}

// Result is the full analysis output consumed by the CLI, chart and
// report layers.
type Result struct {
	HHV            float64 // MJ/kg
	Process        process.Result
	Energy         energy.Result
	Classification en15359.Classification
	Warnings       []Warning
}

// Run executes the full analysis. It never fails: degenerate inputs
// (zero mass, zero composition) produce zero-valued outputs and
// out-of-range contaminants are clamped and flagged.
func Run(in Input) Result {
	var r Result

	r.HHV = waste.HHV(in.Composition, in.Categories)

	r.Process = process.Run(
		process.State{Mass: in.InputMass, Moisture: in.InitialMoisture},
		process.Config{
			SecondaryShredding: in.SecondaryShredding,
			Target:             in.Target,
			PrimaryDrying:      in.PrimaryDrying,
			SecondaryDrying:    in.SecondaryDrying,
		},
	)

	r.Energy = energy.Convert(r.Process.OutputMass, r.HHV)
	if !in.EstimateCO2 {
		r.Energy.SRFEmissions = 0
		r.Energy.CoalEmissions = 0
		r.Energy.CO2Avoided = 0
		r.Energy.CO2AvoidedPercent = 0
	}

	r.Classification = en15359.Classify(r.HHV, r.Process.EffectiveMoisture, in.Contaminants)
	r.Warnings = Collect(r.Process.EffectiveMoisture, r.Classification)
	return r
}
