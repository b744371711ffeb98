package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"md-shaving/internal/model"
)

// Catalog maps a battery model identifier to its specification. It is built
// once at startup and read-only afterwards; callers thread it explicitly
// into the calculators.
type Catalog map[string]model.BatterySpec

// SourceKind says where a loaded catalog came from.
type SourceKind string

const (
	SourceFile    SourceKind = "file"
	SourceBuiltin SourceKind = "builtin"
)

// Source describes which catalog data is in use. When Kind is SourceBuiltin,
// Diagnostic explains why the external file was not usable.
type Source struct {
	Kind       SourceKind `json:"kind"`
	Path       string     `json:"path,omitempty"`
	Diagnostic string     `json:"diagnostic,omitempty"`
}

// Load reads a vendor catalog from a JSON file whose top-level shape is an
// object mapping model identifiers to specs. A missing or malformed file is
// never fatal: Load falls back to the built-in catalog and records the
// reason on the returned Source.
func Load(path string) (Catalog, Source) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Default(), Source{
			Kind:       SourceBuiltin,
			Path:       path,
			Diagnostic: fmt.Sprintf("catalog file unreadable: %v", err),
		}
	}

	var cat Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return Default(), Source{
			Kind:       SourceBuiltin,
			Path:       path,
			Diagnostic: fmt.Sprintf("catalog file malformed: %v", err),
		}
	}
	if len(cat) == 0 {
		return Default(), Source{
			Kind:       SourceBuiltin,
			Path:       path,
			Diagnostic: "catalog file contains no models",
		}
	}
	for id, spec := range cat {
		if err := spec.Validate(); err != nil {
			return Default(), Source{
				Kind:       SourceBuiltin,
				Path:       path,
				Diagnostic: fmt.Sprintf("catalog entry %q invalid: %v", id, err),
			}
		}
	}

	return cat, Source{Kind: SourceFile, Path: path}
}

// Get looks up a spec by identifier.
func (c Catalog) Get(id string) (model.BatterySpec, error) {
	spec, ok := c[id]
	if !ok {
		return model.BatterySpec{}, fmt.Errorf("unknown battery model %q", id)
	}
	return spec, nil
}

// IDs returns the model identifiers in sorted order.
func (c Catalog) IDs() []string {
	out := make([]string, 0, len(c))
	for id := range c {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Default returns the built-in reference catalog: the three WEIHENG TIANWU
// cabinet models, all 233 kWh with power ratings of 50/100/250 kW.
func Default() Catalog {
	return Catalog{
		"TIANWU-50-233-0.25C": {
			Company:        "WEIHENG",
			Model:          "WH-TIANWU-50-233B",
			CRate:          0.25,
			PowerKW:        50,
			EnergyKWh:      233,
			VoltageV:       832,
			LifespanYears:  15,
			EOLCapacityPct: 80,
			CyclesPerDay:   1.0,
			Cooling:        "Liquid (Battery), Air (PCS)",
			WeightKg:       2700,
			DimensionsMM:   [3]float64{1400, 1350, 2100},
		},
		"TIANWU-100-233-0.5C": {
			Company:        "WEIHENG",
			Model:          "WH-TIANWU-100-233B",
			CRate:          0.5,
			PowerKW:        100,
			EnergyKWh:      233,
			VoltageV:       832,
			LifespanYears:  15,
			EOLCapacityPct: 80,
			CyclesPerDay:   1.0,
			Cooling:        "Liquid (Battery + PCS)",
			WeightKg:       2700,
			DimensionsMM:   [3]float64{1400, 1350, 2100},
		},
		"TIANWU-250-233-1C": {
			Company:        "WEIHENG",
			Model:          "WH-TIANWU-250-A",
			CRate:          1.0,
			PowerKW:        250,
			EnergyKWh:      233,
			VoltageV:       832,
			LifespanYears:  15,
			EOLCapacityPct: 80,
			CyclesPerDay:   1.0,
			Cooling:        "Liquid (Battery), Air (PCS)",
			WeightKg:       2600,
			DimensionsMM:   [3]float64{1400, 1350, 2100},
		},
	}
}
