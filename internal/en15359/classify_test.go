package en15359

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yraslan/gosrf/internal/waste"
)

func TestNCV(t *testing.T) {
	cases := []struct {
		hhv      float64
		moisture float64
		want     float64
	}{
		{24.08, 10, 20.36}, // round((24.08*0.9 - 2.443*0.1)*0.95, 2)
		{20, 0, 19.00},
		{0, 0, 0},
		{0.1, 90, 0}, // clamped to zero
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("hhv_%.2f_w_%.0f", tc.hhv, tc.moisture), func(t *testing.T) {
			assert.InDelta(t, tc.want, NCV(tc.hhv, tc.moisture), 1e-9)
		})
	}
}

func TestClassifyNCV_Boundaries(t *testing.T) {
	cases := []struct {
		ncv  float64
		want int
	}{
		{30, 1},
		{25.00, 1},
		{24.99, 2},
		{20.00, 2},
		{19.99, 3},
		{15.00, 3},
		{14.99, 4},
		{10.00, 4},
		{9.99, 5},
		{0, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyNCV(tc.ncv), "ncv %.2f", tc.ncv)
	}
}

func TestClassifyChlorine(t *testing.T) {
	cases := []struct {
		pct     float64
		want    int
		inRange bool
	}{
		{0, 1, true},
		{0.2, 1, true},
		{0.21, 2, true},
		{0.6, 2, true},
		{1.0, 3, true},
		{1.5, 4, true},
		{3.0, 5, true},
		{3.5, 5, false}, // beyond the standard's ceiling, clamped
	}
	for _, tc := range cases {
		class, inRange := ClassifyChlorine(tc.pct)
		assert.Equal(t, tc.want, class, "chlorine %.2f", tc.pct)
		assert.Equal(t, tc.inRange, inRange, "chlorine %.2f", tc.pct)
	}
}

func TestClassifyMercury(t *testing.T) {
	cases := []struct {
		median  float64
		p80     float64
		want    int
		inRange bool
	}{
		{0.01, 0.03, 1, true},
		{0.02, 0.04, 1, true},
		// Median fits class 1 but the 80th percentile does not: both
		// bounds must hold, so the pair lands in class 2.
		{0.01, 0.05, 2, true},
		{0.03, 0.06, 2, true},
		{0.08, 0.16, 3, true},
		{0.15, 0.30, 4, true},
		{0.50, 1.00, 5, true},
		{0.60, 0.90, 5, false},
		{0.10, 1.50, 5, false},
	}
	for _, tc := range cases {
		class, inRange := ClassifyMercury(tc.median, tc.p80)
		assert.Equal(t, tc.want, class, "hg %.2f/%.2f", tc.median, tc.p80)
		assert.Equal(t, tc.inRange, inRange, "hg %.2f/%.2f", tc.median, tc.p80)
	}
}

func TestClassify_WorstParameterWins(t *testing.T) {
	cont := waste.ContaminantProfile{
		Chlorine:      0.1,  // class 1
		MercuryMedian: 0.07, // class 3
		Mercury80th:   0.10,
	}
	c := Classify(30, 5, cont) // NCV well above 25

	require.Equal(t, 1, c.NCVClass)
	require.Equal(t, 1, c.ChlorineClass)
	require.Equal(t, 3, c.MercuryClass)
	assert.Equal(t, 3, c.SRFClass)
	assert.True(t, c.ChlorineInRange)
	assert.True(t, c.MercuryInRange)
}

func TestClassify_DegenerateFuel(t *testing.T) {
	c := Classify(0, 0, waste.ContaminantProfile{})

	assert.Zero(t, c.NCV)
	assert.Equal(t, 5, c.NCVClass)
	assert.Equal(t, 1, c.ChlorineClass)
	assert.Equal(t, 1, c.MercuryClass)
	assert.Equal(t, 5, c.SRFClass)
}

func TestClassify_OutOfRangeClampedNotRejected(t *testing.T) {
	cont := waste.ContaminantProfile{
		Chlorine:      3.5,
		MercuryMedian: 0.8,
		Mercury80th:   2.0,
	}
	c := Classify(26, 10, cont)

	assert.Equal(t, 5, c.ChlorineClass)
	assert.False(t, c.ChlorineInRange)
	assert.Equal(t, 5, c.MercuryClass)
	assert.False(t, c.MercuryInRange)
	assert.Equal(t, 5, c.SRFClass)
}
