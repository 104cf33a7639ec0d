package analysis

import "github.com/yraslan/gosrf/internal/en15359"

// Warning is an advisory condition raised by an analysis. Warnings are
// ordinary output values, never errors, and are emitted in a fixed
// order.
type Warning int

const (
	// WarnHighMoisture: effective moisture above the recommended limit.
	WarnHighMoisture Warning = iota
	// WarnChlorineOutOfRange: chlorine beyond the class-5 ceiling.
	WarnChlorineOutOfRange
	// WarnHighChlorine: chlorine in the worst quality class.
	WarnHighChlorine
	// WarnMercuryOutOfRange: mercury beyond the class-5 bounds.
	WarnMercuryOutOfRange
	// WarnHighMercury: mercury in class 4 or 5.
	WarnHighMercury
	// WarnLowGrade: overall SRF class 4 or 5.
	WarnLowGrade
)

var warningMessages = map[Warning]string{
	WarnHighMoisture:       "High moisture content (>20%) may not meet quality standards",
	WarnChlorineOutOfRange: "Chlorine content exceeds 3.0% (Class 5 maximum)",
	WarnHighChlorine:       "High chlorine content may cause corrosion and emissions issues",
	WarnMercuryOutOfRange:  "Mercury values exceed Class 5 thresholds",
	WarnHighMercury:        "High mercury content - potential environmental hazard",
	WarnLowGrade:           "Class 4/5 SRF - may not meet requirements for most energy recovery applications",
}

func (w Warning) String() string {
	return warningMessages[w]
}

// Collect returns the advisory warnings for a classified fuel at the
// given effective moisture, in their fixed output order.
func Collect(effectiveMoisture float64, c en15359.Classification) []Warning {
	var ws []Warning
	if effectiveMoisture > en15359.MoistureLimit {
		ws = append(ws, WarnHighMoisture)
	}
	if !c.ChlorineInRange {
		ws = append(ws, WarnChlorineOutOfRange)
	}
	if c.ChlorineClass == en15359.ClassCount {
		ws = append(ws, WarnHighChlorine)
	}
	if !c.MercuryInRange {
		ws = append(ws, WarnMercuryOutOfRange)
	}
	if c.MercuryClass >= 4 {
		ws = append(ws, WarnHighMercury)
	}
	if c.SRFClass >= 4 {
		ws = append(ws, WarnLowGrade)
	}
	return ws
}
