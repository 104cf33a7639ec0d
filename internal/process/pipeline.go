package process

// Fixed stage losses for the mechanical processing steps.
const (
	PresortLoss = 0.05 // presorting rejects
	ShredLoss   = 0.03 // shredder fines and dust, per pass

	// DryingThreshold is the initial moisture content (%) below which no
	// drying is required and all drying stages are omitted.
	DryingThreshold = 20.0
)

// Stage names as they appear in traces and reports.
const (
	StagePresorting      = "Presorting"
	StagePrimaryShred    = "Primary Shredding"
	StageSeparation      = "Mechanical Separation"
	StagePrimaryDrying   = "Primary Drying"
	StageSecondaryDrying = "Secondary Drying"
	StageSecondaryShred  = "Secondary Shredding"
)

// ParticleTarget is a secondary-shredding particle size tier and the
// separation loss it implies.
type ParticleTarget struct {
	Name      string
	SizeRange string
	Loss      float64 // mass lost in mechanical separation (fraction)
}

// ParticleTargets lists the selectable particle size tiers for secondary
// shredding.
var ParticleTargets = []ParticleTarget{
	{Name: "Fine", SizeRange: "<50mm", Loss: 0.05},
	{Name: "Medium", SizeRange: "50-100mm", Loss: 0.017},
	{Name: "Rough", SizeRange: ">100mm", Loss: 0.008},
}

// ParticleTargetByName looks up a particle size tier by name.
func ParticleTargetByName(name string) (ParticleTarget, bool) {
	for _, t := range ParticleTargets {
		if t.Name == name {
			return t, true
		}
	}
	return ParticleTarget{}, false
}

// State is the material state threaded through the pipeline. Each stage
// consumes a state and produces a new one.
type State struct {
	Mass     float64 // kg
	Moisture float64 // %
}

// Config selects the optional stages of the pipeline. A nil drying
// method means the stage is absent. Target is only consulted when
// SecondaryShredding is set.
type Config struct {
	SecondaryShredding bool
	Target             ParticleTarget
	PrimaryDrying      *DryingMethod
	SecondaryDrying    *DryingMethod
}

// StageResult records one pipeline stage for traces and reports.
// Applied is false when an optional stage was skipped; mass and moisture
// then pass through unchanged.
type StageResult struct {
	Name        string
	Method      string // drying method name, when applicable
	MassIn      float64
	MassOut     float64
	MoistureOut float64
	Applied     bool
}

// Result is the pipeline output.
type Result struct {
	OutputMass        float64 // kg
	EffectiveMoisture float64 // %, moisture after the last applied drying stage
	Stages            []StageResult
}

// Run applies the SRF production stages in fixed order: presorting,
// primary shredding, mechanical separation (secondary shredding only),
// up to two chained drying stages, then secondary shredding. Stages with
// absent or inapplicable inputs are skipped, never an error; negative
// input mass is treated as the zero degenerate case.
func Run(initial State, cfg Config) Result {
	st := initial
	if st.Mass < 0 {
		st.Mass = 0
	}

	var r Result

	st = r.fixedLoss(StagePresorting, st, PresortLoss)
	st = r.fixedLoss(StagePrimaryShred, st, ShredLoss)

	// Separation only pays off when the material is shredded again
	// afterwards; without secondary shredding the stage is skipped
	// outright, not deferred.
	if cfg.SecondaryShredding {
		st = r.fixedLoss(StageSeparation, st, cfg.Target.Loss)
	} else {
		r.skip(StageSeparation, "", st)
	}

	// Below the threshold the material is already dry enough for SRF and
	// drying stages are omitted wholesale.
	if initial.Moisture >= DryingThreshold {
		st = r.drying(StagePrimaryDrying, st, cfg.PrimaryDrying)
		st = r.drying(StageSecondaryDrying, st, cfg.SecondaryDrying)
	}

	if cfg.SecondaryShredding {
		st = r.fixedLoss(StageSecondaryShred, st, ShredLoss)
	}

	r.OutputMass = st.Mass
	r.EffectiveMoisture = st.Moisture
	return r
}

func (r *Result) fixedLoss(name string, st State, loss float64) State {
	out := State{Mass: st.Mass * (1 - loss), Moisture: st.Moisture}
	r.Stages = append(r.Stages, StageResult{
		Name:        name,
		MassIn:      st.Mass,
		MassOut:     out.Mass,
		MoistureOut: out.Moisture,
		Applied:     true,
	})
	return out
}

func (r *Result) skip(name, method string, st State) {
	r.Stages = append(r.Stages, StageResult{
		Name:        name,
		Method:      method,
		MassIn:      st.Mass,
		MassOut:     st.Mass,
		MoistureOut: st.Moisture,
	})
}

// drying applies one drying stage. The applicability of the method is
// re-checked against the current moisture: a chained second stage sees
// the moisture produced by the first, which may have drifted out of the
// method's range, in which case the stage is skipped.
func (r *Result) drying(name string, st State, m *DryingMethod) State {
	if m == nil {
		return st
	}
	if !m.Applies(st.Moisture) {
		r.skip(name, m.Name, st)
		return st
	}

	// Two-step physical model: remove water down to the target moisture,
	// then lose solids to handling and thermal losses.
	drySolid := st.Mass * (1 - st.Moisture/100)
	rehydrated := drySolid / (1 - m.OutputMoisture/100)
	out := State{
		Mass:     rehydrated * (1 - m.Loss),
		Moisture: m.OutputMoisture,
	}
	r.Stages = append(r.Stages, StageResult{
		Name:        name,
		Method:      m.Name,
		MassIn:      st.Mass,
		MassOut:     out.Mass,
		MoistureOut: out.Moisture,
		Applied:     true,
	})
	return out
}
