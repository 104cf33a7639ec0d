package waste

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposition_Normalize_SumsTo100(t *testing.T) {
	cases := []Composition{
		{"Plastic": 40, "Paper & Cardboard": 30, "Textiles": 10, "Biogenic Waste": 20},
		{"Plastic": 1, "Other Materials": 3},
		{"Plastic": 250, "Textiles": 250},
		{"Plastic": 0.02, "Inert Materials": 0.01},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			c.Normalize()
			require.InDelta(t, 100, c.Total(), 0.01)
		})
	}
}

func TestComposition_Normalize_PreservesRatios(t *testing.T) {
	c := Composition{"Plastic": 12, "Textiles": 4, "Biogenic Waste": 8}
	c.Normalize()

	assert.InDelta(t, 3.0, c["Plastic"]/c["Textiles"], 1e-9)
	assert.InDelta(t, 2.0, c["Biogenic Waste"]/c["Textiles"], 1e-9)
}

func TestComposition_Normalize_ZeroTotalIsNoop(t *testing.T) {
	c := Composition{"Plastic": 0, "Textiles": 0}
	c.Normalize()

	assert.Zero(t, c["Plastic"])
	assert.Zero(t, c["Textiles"])
	assert.Zero(t, c.Total())
}

func TestComposition_Normalize_Idempotent(t *testing.T) {
	c := Composition{"Plastic": 40, "Paper & Cardboard": 25, "Other Materials": 60}
	c.Normalize()
	once := c.Clone()
	c.Normalize()

	for k := range once {
		assert.InDelta(t, once[k], c[k], 0.01, k)
	}
}

func TestComposition_Reset(t *testing.T) {
	c := Composition{"Plastic": 40, "Textiles": 10}
	c.Reset()

	require.Len(t, c, 2)
	assert.Zero(t, c.Total())
}

func TestHHV_ExampleScenario(t *testing.T) {
	c := Composition{
		"Plastic":           40,
		"Paper & Cardboard": 30,
		"Textiles":          10,
		"Biogenic Waste":    20,
	}
	// (40*36.5 + 30*15.8 + 10*19.2 + 20*11.3) / 100
	assert.InDelta(t, 24.08, HHV(c, StandardCategories), 1e-9)
}

func TestHHV_Linearity(t *testing.T) {
	c := Composition{"Plastic": 10, "Textiles": 5, "Biogenic Waste": 15}
	base := HHV(c, StandardCategories)

	for _, k := range []float64{0.5, 2, 3} {
		scaled := c.Clone()
		for name := range scaled {
			scaled[name] *= k
		}
		assert.InDelta(t, k*base, HHV(scaled, StandardCategories), 1e-9, "scale %v", k)
	}
}

func TestHHV_EmptyComposition(t *testing.T) {
	assert.Zero(t, HHV(Composition{}, StandardCategories))
	assert.Zero(t, HHV(StandardCategories.Empty(), StandardCategories))
}

func TestHHV_IgnoresUnknownCategories(t *testing.T) {
	c := Composition{"Plastic": 40, "Unobtainium": 60}
	assert.InDelta(t, 14.6, HHV(c, StandardCategories), 1e-9)
}

func TestCategorySetByName(t *testing.T) {
	cases := []struct {
		name string
		want string
		ok   bool
	}{
		{"standard", "standard", true},
		{"", "standard", true}, // default
		{"extended", "extended", true},
		{"bogus", "", false},
	}
	for _, tc := range cases {
		t.Run("name_"+tc.name, func(t *testing.T) {
			set, ok := CategorySetByName(tc.name)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, set.Name)
			}
		})
	}
}

func TestCategorySet_HHVOf(t *testing.T) {
	hhv, ok := ExtendedCategories.HHVOf("Metals")
	require.True(t, ok)
	assert.Zero(t, hhv)

	_, ok = StandardCategories.HHVOf("Metals")
	assert.False(t, ok)
}

func TestMinimumMoisture(t *testing.T) {
	cases := []struct {
		organic float64
		want    float64
	}{
		{0, 0},
		{20, 14},
		{50, 35},
		{80, 50}, // capped
		{100, 50},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("organic_%.0f", tc.organic), func(t *testing.T) {
			c := Composition{"Biogenic Waste": tc.organic}
			assert.InDelta(t, tc.want, MinimumMoisture(c, StandardCategories), 1e-9)
		})
	}
}

func TestMinimumMoisture_ExtendedSetUsesOrganicWaste(t *testing.T) {
	c := Composition{"Organic Waste": 30}
	assert.InDelta(t, 21, MinimumMoisture(c, ExtendedCategories), 1e-9)
	assert.Zero(t, MinimumMoisture(c, StandardCategories))
}
