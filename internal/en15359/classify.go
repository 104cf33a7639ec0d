// Package en15359 implements SRF quality classification according to
// EN 15359. The standard grades solid recovered fuel into classes 1
// (best) through 5 (worst) on three parameters: net calorific value,
// chlorine content and mercury content. The overall SRF class is the
// worst of the three.
package en15359

import (
	"math"

	"github.com/yraslan/gosrf/internal/waste"
)

const (
	// WaterVaporization is the latent heat penalty per unit of moisture
	// used in the NCV derivation (MJ/kg water).
	WaterVaporization = 2.443

	// NCVFactor accounts for ash and incomplete combustion when deriving
	// net from gross calorific value.
	NCVFactor = 0.95

	// MoistureLimit is the recommended maximum moisture content (%) for
	// market-grade SRF.
	MoistureLimit = 20.0

	// ClassCount is the number of quality classes defined by the standard.
	ClassCount = 5
)

// NCVClassFloors are the minimum NCV values (MJ/kg) for classes 1..4;
// anything below the last floor is class 5.
var NCVClassFloors = []float64{25, 20, 15, 10}

// ChlorineClassCeilings are the maximum chlorine contents (%) for
// classes 1..5. Values beyond the last ceiling are still class 5, but
// out of the standard's defined range.
var ChlorineClassCeilings = []float64{0.2, 0.6, 1.0, 1.5, 3.0}

// MercuryBound is the per-class ceiling pair for mercury content. Both
// the median and the 80th percentile must satisfy a class's bounds for
// the class to apply.
type MercuryBound struct {
	Median float64 // mg/MJ
	P80    float64 // mg/MJ
}

// MercuryClassBounds are the ceilings for classes 1..5, in ascending
// order; the first satisfied tier wins.
var MercuryClassBounds = []MercuryBound{
	{Median: 0.02, P80: 0.04},
	{Median: 0.03, P80: 0.06},
	{Median: 0.08, P80: 0.16},
	{Median: 0.15, P80: 0.30},
	{Median: 0.50, P80: 1.00},
}

// NCV derives the net calorific value (MJ/kg) from the higher heating
// value and the effective moisture content: moisture both dilutes the
// combustible mass and costs vaporization energy. The result is rounded
// to two decimals and clamped at zero.
func NCV(hhv, moisture float64) float64 {
	w := moisture / 100
	ncv := math.Round((hhv*(1-w)-WaterVaporization*w)*NCVFactor*100) / 100
	if ncv < 0 {
		return 0
	}
	return ncv
}

// ClassifyNCV assigns the NCV quality class.
func ClassifyNCV(ncv float64) int {
	for i, floor := range NCVClassFloors {
		if ncv >= floor {
			return i + 1
		}
	}
	return ClassCount
}

// ClassifyChlorine assigns the chlorine quality class. The boolean is
// false when the content exceeds the class-5 ceiling; such values are
// still reported as class 5, not rejected.
func ClassifyChlorine(pct float64) (class int, inRange bool) {
	for i, ceiling := range ChlorineClassCeilings {
		if pct <= ceiling {
			return i + 1, true
		}
	}
	return ClassCount, false
}

// ClassifyMercury assigns the mercury quality class from the median and
// 80th-percentile measurement pair. Both values must satisfy a tier's
// bounds; tiers are checked in ascending order. The boolean is false
// when even the class-5 bounds are exceeded; the value is then clamped
// to class 5.
func ClassifyMercury(median, p80 float64) (class int, inRange bool) {
	for i, b := range MercuryClassBounds {
		if median <= b.Median && p80 <= b.P80 {
			return i + 1, true
		}
	}
	return ClassCount, false
}

// Classification is the full EN 15359 grading of a fuel.
type Classification struct {
	NCV float64 // MJ/kg

	NCVClass      int
	ChlorineClass int
	MercuryClass  int
	SRFClass      int // worst of the three parameter classes

	// In-range flags are false when a contaminant exceeds the standard's
	// class-5 ceiling and was clamped.
	ChlorineInRange bool
	MercuryInRange  bool
}

// Classify grades a fuel from its higher heating value, effective
// moisture content and contaminant profile. It never fails: out-of-range
// contaminants are clamped to class 5 and flagged.
func Classify(hhv, moisture float64, cont waste.ContaminantProfile) Classification {
	c := Classification{NCV: NCV(hhv, moisture)}
	c.NCVClass = ClassifyNCV(c.NCV)
	c.ChlorineClass, c.ChlorineInRange = ClassifyChlorine(cont.Chlorine)
	c.MercuryClass, c.MercuryInRange = ClassifyMercury(cont.MercuryMedian, cont.Mercury80th)

	c.SRFClass = c.NCVClass
	if c.ChlorineClass > c.SRFClass {
		c.SRFClass = c.ChlorineClass
	}
	if c.MercuryClass > c.SRFClass {
		c.SRFClass = c.MercuryClass
	}
	return c
}
