// Package scenario reads and writes analysis parameter sets as TOML
// documents, so a full run is reproducible from a single file.
package scenario

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/yraslan/gosrf/internal/analysis"
	"github.com/yraslan/gosrf/internal/process"
	"github.com/yraslan/gosrf/internal/waste"
)

// Scenario is the on-disk form of one analysis parameter set.
type Scenario struct {
	WasteType       string             `toml:"waste_type"`
	InputMass       float64            `toml:"input_mass"`
	CategorySet     string             `toml:"category_set"`
	InitialMoisture float64            `toml:"initial_moisture"`
	EstimateCO2     bool               `toml:"estimate_co2"`
	Composition     map[string]float64 `toml:"composition"`
	Contaminants    Contaminants       `toml:"contaminants"`
	Process         Process            `toml:"process"`
}

// Contaminants mirrors waste.ContaminantProfile in TOML form.
type Contaminants struct {
	Chlorine      float64 `toml:"chlorine"`
	MercuryMedian float64 `toml:"mercury_median"`
	Mercury80th   float64 `toml:"mercury_80th"`
}

// Process selects the optional pipeline stages by name. Empty drying
// method names mean the stage is absent.
type Process struct {
	PrimaryDrying      string `toml:"primary_drying"`
	SecondaryDrying    string `toml:"secondary_drying"`
	SecondaryShredding bool   `toml:"secondary_shredding"`
	ParticleTarget     string `toml:"particle_target"`
}

// Load reads a scenario from a TOML file. Keys absent from the file keep
// their defaults; the CO2 estimate defaults to on.
func Load(path string) (*Scenario, error) {
	s := &Scenario{EstimateCO2: true}
	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	return s, nil
}

// Save writes the scenario as TOML.
func (s *Scenario) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing scenario %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("encoding scenario %s: %w", path, err)
	}
	return nil
}

// Validate rejects malformed caller input at the boundary. The
// calculation core itself never errors; this is the only place where
// bad business values are refused.
func (s *Scenario) Validate() error {
	if s.InputMass < 0 {
		return fmt.Errorf("input_mass must be >= 0, got %.2f", s.InputMass)
	}
	if s.InitialMoisture < 0 || s.InitialMoisture > 100 {
		return fmt.Errorf("initial_moisture must be within [0,100], got %.2f", s.InitialMoisture)
	}
	for k, v := range s.Composition {
		if v < 0 {
			return fmt.Errorf("composition %q must be >= 0, got %.2f", k, v)
		}
	}
	if s.Contaminants.Chlorine < 0 || s.Contaminants.MercuryMedian < 0 || s.Contaminants.Mercury80th < 0 {
		return fmt.Errorf("contaminant values must be >= 0")
	}
	if _, ok := waste.CategorySetByName(s.CategorySet); !ok {
		return fmt.Errorf("unknown category set %q", s.CategorySet)
	}
	if s.Process.PrimaryDrying != "" {
		if _, ok := process.MethodByName(s.Process.PrimaryDrying); !ok {
			return fmt.Errorf("unknown drying method %q", s.Process.PrimaryDrying)
		}
	}
	if s.Process.SecondaryDrying != "" {
		if _, ok := process.MethodByName(s.Process.SecondaryDrying); !ok {
			return fmt.Errorf("unknown drying method %q", s.Process.SecondaryDrying)
		}
	}
	if s.Process.SecondaryShredding {
		if _, ok := process.ParticleTargetByName(s.Process.ParticleTarget); !ok {
			return fmt.Errorf("unknown particle target %q", s.Process.ParticleTarget)
		}
	}
	return nil
}

// Input resolves the scenario into an immutable analysis input.
func (s *Scenario) Input() (analysis.Input, error) {
	if err := s.Validate(); err != nil {
		return analysis.Input{}, err
	}

	set, _ := waste.CategorySetByName(s.CategorySet)
	in := analysis.Input{
		WasteType:       s.WasteType,
		InputMass:       s.InputMass,
		Categories:      set,
		InitialMoisture: s.InitialMoisture,
		EstimateCO2:     s.EstimateCO2,
		Contaminants: waste.ContaminantProfile{
			Chlorine:      s.Contaminants.Chlorine,
			MercuryMedian: s.Contaminants.MercuryMedian,
			Mercury80th:   s.Contaminants.Mercury80th,
		},
	}

	in.Composition = set.Empty()
	for k, v := range s.Composition {
		in.Composition[k] = v
	}

	if s.Process.PrimaryDrying != "" {
		m, _ := process.MethodByName(s.Process.PrimaryDrying)
		in.PrimaryDrying = &m
	}
	if s.Process.SecondaryDrying != "" {
		m, _ := process.MethodByName(s.Process.SecondaryDrying)
		in.SecondaryDrying = &m
	}
	if s.Process.SecondaryShredding {
		t, _ := process.ParticleTargetByName(s.Process.ParticleTarget)
		in.SecondaryShredding = true
		in.Target = t
	}
	return in, nil
}
