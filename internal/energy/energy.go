// Package energy converts produced SRF mass into energy totals, fossil
// fuel equivalents and an avoided-CO2 estimate for coal substitution.
package energy

// Reference values for the equivalence and emission estimates.
const (
	CoalHHV = 24.0 // MJ/kg, reference calorific value of hard coal
	OilHHV  = 42.0 // MJ/kg, reference calorific value of fuel oil

	// Carbon accounting factors. SRF carbon content per Phyllis database
	// averages; only the fossil share counts against the fuel.
	SRFCarbonFraction  = 0.65
	FossilShare        = 0.35
	CoalCarbonFraction = 0.75
	CO2PerCarbon       = 3.67 // kg CO2 per kg C
)

// Result holds the energy content of the produced SRF and its coal and
// oil equivalents, plus the estimated CO2 balance of substituting coal.
type Result struct {
	TotalEnergy    float64 // MJ
	CoalEquivalent float64 // kg of coal carrying the same energy
	OilEquivalent  float64 // kg of oil carrying the same energy

	SRFEmissions      float64 // kg CO2 from the fossil carbon in the SRF
	CoalEmissions     float64 // kg CO2 from the equivalent coal mass
	CO2Avoided        float64 // kg CO2 avoided versus coal
	CO2AvoidedPercent float64 // %, zero when there is no coal baseline
}

// Convert derives energy totals and the CO2 balance from the final SRF
// mass and its higher heating value. Zero mass or zero heating value
// degenerate to zero-valued results.
func Convert(outputMass, hhv float64) Result {
	r := Result{}
	r.TotalEnergy = outputMass * hhv
	r.CoalEquivalent = r.TotalEnergy / CoalHHV
	r.OilEquivalent = r.TotalEnergy / OilHHV

	r.SRFEmissions = outputMass * SRFCarbonFraction * FossilShare * CO2PerCarbon
	r.CoalEmissions = r.CoalEquivalent * CoalCarbonFraction * CO2PerCarbon
	r.CO2Avoided = r.CoalEmissions - r.SRFEmissions
	if r.CoalEmissions > 0 {
		r.CO2AvoidedPercent = 100 * (1 - r.SRFEmissions/r.CoalEmissions)
	}
	return r
}
