package process

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func method(t *testing.T, name string) *DryingMethod {
	t.Helper()
	m, ok := MethodByName(name)
	require.True(t, ok)
	return &m
}

// expectDrying mirrors the documented drying transform.
func expectDrying(mass, moisture float64, m *DryingMethod) float64 {
	dry := mass * (1 - moisture/100)
	return dry / (1 - m.OutputMoisture/100) * (1 - m.Loss)
}

func TestRun_ExampleScenario(t *testing.T) {
	// 1000 kg at 30% moisture, rotary drum drying, no secondary shredding.
	res := Run(State{Mass: 1000, Moisture: 30}, Config{
		PrimaryDrying: method(t, "Rotary Drum"),
	})

	afterShred := 1000 * 0.95 * 0.97
	want := expectDrying(afterShred, 30, method(t, "Rotary Drum"))

	assert.InDelta(t, 921.5, afterShred, 1e-9)
	assert.InDelta(t, want, res.OutputMass, 1e-9)
	assert.InDelta(t, 630.7156, res.OutputMass, 1e-3)
	assert.InDelta(t, 10, res.EffectiveMoisture, 1e-9)
}

func TestRun_SecondaryShreddingAndSeparation(t *testing.T) {
	target, ok := ParticleTargetByName("Medium")
	require.True(t, ok)

	res := Run(State{Mass: 1000, Moisture: 30}, Config{
		SecondaryShredding: true,
		Target:             target,
		PrimaryDrying:      method(t, "Rotary Drum"),
	})

	afterSeparation := 1000 * 0.95 * 0.97 * (1 - 0.017)
	want := expectDrying(afterSeparation, 30, method(t, "Rotary Drum")) * 0.97
	assert.InDelta(t, want, res.OutputMass, 1e-9)
}

func TestRun_SeparationSkippedWithoutSecondaryShredding(t *testing.T) {
	res := Run(State{Mass: 1000, Moisture: 10}, Config{})

	assert.InDelta(t, 1000*0.95*0.97, res.OutputMass, 1e-9)

	var sep StageResult
	for _, s := range res.Stages {
		if s.Name == StageSeparation {
			sep = s
		}
	}
	require.Equal(t, StageSeparation, sep.Name)
	assert.False(t, sep.Applied)
	assert.Equal(t, sep.MassIn, sep.MassOut)
}

func TestRun_DryingOmittedBelowThreshold(t *testing.T) {
	// Rotary Drum would apply at 19% moisture, but below 20% no drying
	// is required at all.
	res := Run(State{Mass: 500, Moisture: 19}, Config{
		PrimaryDrying: method(t, "Rotary Drum"),
	})

	assert.InDelta(t, 500*0.95*0.97, res.OutputMass, 1e-9)
	assert.InDelta(t, 19, res.EffectiveMoisture, 1e-9)
	for _, s := range res.Stages {
		assert.NotEqual(t, StagePrimaryDrying, s.Name)
	}
}

func TestRun_InapplicableDryingIsSkippedSilently(t *testing.T) {
	// Mechanical Press leaves the material at 40%, outside Rotary
	// Drum's 17-35% range: the second stage must skip, not fail.
	res := Run(State{Mass: 1000, Moisture: 60}, Config{
		PrimaryDrying:   method(t, "Mechanical Press"),
		SecondaryDrying: method(t, "Rotary Drum"),
	})

	afterShred := 1000 * 0.95 * 0.97
	want := expectDrying(afterShred, 60, method(t, "Mechanical Press"))
	assert.InDelta(t, want, res.OutputMass, 1e-9)
	assert.InDelta(t, 40, res.EffectiveMoisture, 1e-9)

	last := res.Stages[len(res.Stages)-1]
	require.Equal(t, StageSecondaryDrying, last.Name)
	assert.Equal(t, "Rotary Drum", last.Method)
	assert.False(t, last.Applied)
}

func TestRun_ChainedDryingReevaluatesMoisture(t *testing.T) {
	// Biodrying takes 40% down to 17%, which is exactly at the lower
	// bound of Rotary Drum's range, so the second stage applies.
	res := Run(State{Mass: 1000, Moisture: 40}, Config{
		PrimaryDrying:   method(t, "Biodrying"),
		SecondaryDrying: method(t, "Rotary Drum"),
	})

	afterShred := 1000 * 0.95 * 0.97
	afterBio := expectDrying(afterShred, 40, method(t, "Biodrying"))
	want := expectDrying(afterBio, 17, method(t, "Rotary Drum"))

	assert.InDelta(t, want, res.OutputMass, 1e-9)
	assert.InDelta(t, 10, res.EffectiveMoisture, 1e-9)
}

func TestRun_DegenerateMass(t *testing.T) {
	for _, mass := range []float64{0, -50} {
		res := Run(State{Mass: mass, Moisture: 30}, Config{
			PrimaryDrying: method(t, "Rotary Drum"),
		})
		assert.Zero(t, res.OutputMass, "mass %v", mass)
		assert.InDelta(t, 10, res.EffectiveMoisture, 1e-9)
	}
}

func TestRun_OutputNeverExceedsInput(t *testing.T) {
	configs := []Config{
		{},
		{PrimaryDrying: method(t, "Rotary Drum")},
		{PrimaryDrying: method(t, "Biodrying"), SecondaryDrying: method(t, "Rotary Drum")},
		{SecondaryShredding: true, Target: ParticleTargets[0]},
		{SecondaryShredding: true, Target: ParticleTargets[2], PrimaryDrying: method(t, "Mechanical Press")},
	}
	moistures := []float64{0, 15, 25, 40, 60, 85}

	for i, cfg := range configs {
		for _, w := range moistures {
			t.Run(fmt.Sprintf("config_%d_moisture_%.0f", i, w), func(t *testing.T) {
				res := Run(State{Mass: 1000, Moisture: w}, cfg)
				assert.LessOrEqual(t, res.OutputMass, 1000.0)
				// Stage masses are monotonically non-increasing.
				prev := 1000.0
				for _, s := range res.Stages {
					assert.LessOrEqual(t, s.MassOut, prev+1e-9, s.Name)
					prev = s.MassOut
				}
			})
		}
	}
}

func TestParticleTargetByName(t *testing.T) {
	cases := []struct {
		name string
		loss float64
		ok   bool
	}{
		{"Fine", 0.05, true},
		{"Medium", 0.017, true},
		{"Rough", 0.008, true},
		{"Gravel", 0, false},
	}
	for _, tc := range cases {
		target, ok := ParticleTargetByName(tc.name)
		require.Equal(t, tc.ok, ok, tc.name)
		if ok {
			assert.InDelta(t, tc.loss, target.Loss, 1e-9, tc.name)
		}
	}
}
