package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	r := Convert(600, 24)

	assert.InDelta(t, 14400, r.TotalEnergy, 1e-9)
	assert.InDelta(t, 600, r.CoalEquivalent, 1e-9) // 14400/24
	assert.InDelta(t, 342.857142857, r.OilEquivalent, 1e-6)

	// 600 * 0.65 * 0.35 * 3.67
	assert.InDelta(t, 500.955, r.SRFEmissions, 1e-6)
	// 600 * 0.75 * 3.67
	assert.InDelta(t, 1651.5, r.CoalEmissions, 1e-6)
	assert.InDelta(t, 1150.545, r.CO2Avoided, 1e-6)
	assert.InDelta(t, 100*(1-500.955/1651.5), r.CO2AvoidedPercent, 1e-6)
}

func TestConvert_ZeroMass(t *testing.T) {
	r := Convert(0, 24)

	assert.Zero(t, r.TotalEnergy)
	assert.Zero(t, r.CoalEquivalent)
	assert.Zero(t, r.SRFEmissions)
	assert.Zero(t, r.CO2Avoided)
	assert.Zero(t, r.CO2AvoidedPercent, "guarded against division by zero")
}

func TestConvert_ZeroHHV(t *testing.T) {
	// Mass without energy content still carries fossil carbon, but the
	// percent figure stays defined as zero without a coal baseline.
	r := Convert(100, 0)

	assert.Zero(t, r.TotalEnergy)
	assert.Zero(t, r.CoalEquivalent)
	assert.Greater(t, r.SRFEmissions, 0.0)
	assert.Zero(t, r.CO2AvoidedPercent)
}

func TestConvert_ScalesLinearlyWithMass(t *testing.T) {
	base := Convert(100, 20)
	double := Convert(200, 20)

	assert.InDelta(t, 2*base.TotalEnergy, double.TotalEnergy, 1e-9)
	assert.InDelta(t, 2*base.CO2Avoided, double.CO2Avoided, 1e-9)
	// The relative saving is mass-independent.
	assert.InDelta(t, base.CO2AvoidedPercent, double.CO2AvoidedPercent, 1e-9)
}
