package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yraslan/gosrf/internal/en15359"
	"github.com/yraslan/gosrf/internal/process"
	"github.com/yraslan/gosrf/internal/waste"
)

func TestMassProfile(t *testing.T) {
	res := process.Run(process.State{Mass: 1000, Moisture: 30}, process.Config{})

	out := MassProfile(1000, res.Stages)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "Mass through process stages")
	assert.Contains(t, out, process.StagePresorting)
	assert.Contains(t, out, "skipped") // separation without secondary shredding
}

func TestClassBars(t *testing.T) {
	c := en15359.Classify(24.08, 10, waste.ContaminantProfile{
		Chlorine:      0.15,
		MercuryMedian: 0.01,
		Mercury80th:   0.03,
	})

	out := ClassBars(c, 0.15, 0.01, 0.03)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "EN 15359")
	for _, label := range []string{"NCV", "Chlorine", "Mercury"} {
		assert.Contains(t, out, label)
	}
	// One bar row per parameter.
	assert.Equal(t, 3, strings.Count(out, "Class "))
}
