package process

// DryingMethod describes one drying technology from the catalog.
// OutputMoisture is strictly below 100 for every catalog entry; the
// rehydration formula in applyDrying divides by its complement.
type DryingMethod struct {
	Name           string
	MinMoisture    float64 // lower bound of applicable input moisture (%)
	MaxMoisture    float64 // upper bound of applicable input moisture (%)
	OutputMoisture float64 // moisture after drying (%)
	Loss           float64 // solids lost to handling and thermal losses (fraction)
	Energy         string  // qualitative energy demand
	Duration       string  // typical time scale
	Info           string
}

// Applies reports whether the method can process material at the given
// moisture content.
func (m DryingMethod) Applies(moisture float64) bool {
	return m.MinMoisture <= moisture && moisture <= m.MaxMoisture
}

// Catalog is the fixed set of drying methods, in selection order.
var Catalog = []DryingMethod{
	{
		Name:           "Mechanical Press",
		MinMoisture:    55,
		MaxMoisture:    65,
		OutputMoisture: 40,
		Loss:           0.05,
		Energy:         "Low",
		Duration:       "Hours",
		Info:           "Mechanical dehydration using presses/screens for initial moisture reduction",
	},
	{
		Name:           "Biodrying",
		MinMoisture:    35,
		MaxMoisture:    55,
		OutputMoisture: 17,
		Loss:           0.08,
		Energy:         "Low",
		Duration:       "Days",
		Info:           "Biological drying using microbial activity to reduce moisture",
	},
	{
		Name:           "Rotary Drum",
		MinMoisture:    17,
		MaxMoisture:    35,
		OutputMoisture: 10,
		Loss:           0.12,
		Energy:         "High",
		Duration:       "Hours",
		Info:           "High-temperature thermal drying for final moisture reduction",
	},
	{
		Name:           "Belt Dryer",
		MinMoisture:    25,
		MaxMoisture:    35,
		OutputMoisture: 15,
		Loss:           0.06,
		Energy:         "Medium",
		Duration:       "Days",
		Info:           "Conveyor belt system with heated zones for moderate drying",
	},
	{
		Name:           "Solar Tunnel",
		MinMoisture:    35,
		MaxMoisture:    45,
		OutputMoisture: 20,
		Loss:           0.04,
		Energy:         "Very Low",
		Duration:       "Days",
		Info:           "Solar-assisted drying using greenhouse tunnel technology",
	},
}

// Applicable returns the catalog methods able to process material at the
// given moisture content, in catalog order.
func Applicable(moisture float64) []DryingMethod {
	var out []DryingMethod
	for _, m := range Catalog {
		if m.Applies(moisture) {
			out = append(out, m)
		}
	}
	return out
}

// MethodByName looks up a catalog method by name.
func MethodByName(name string) (DryingMethod, bool) {
	for _, m := range Catalog {
		if m.Name == name {
			return m, true
		}
	}
	return DryingMethod{}, false
}
