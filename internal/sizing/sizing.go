package sizing

import (
	"errors"
	"fmt"
	"math"

	"md-shaving/internal/model"
)

// Result is the sizing outcome for one battery model against one event set.
type Result struct {
	TotalEnergyRequiredKWh float64 `json:"total_energy_required_kwh"`
	MaxPowerRequiredKW     float64 `json:"max_power_required_kw"`

	BatteriesForEnergy int `json:"batteries_for_energy"`
	BatteriesForPower  int `json:"batteries_for_power"`
	RecommendedUnits   int `json:"recommended_units"`
	ChosenUnits        int `json:"chosen_units"`

	TotalPowerKW   float64 `json:"total_power_kw"`
	TotalEnergyKWh float64 `json:"total_energy_kwh"`
	TotalWeightKg  float64 `json:"total_weight_kg"`
	FootprintM2    float64 `json:"footprint_m2"`
}

// SizeSystem computes the unit count needed to cover both the summed energy
// to shave and the highest observed peak load, then derives whole-system
// figures for the chosen unit count. overrideUnits of nil means "use the
// recommendation"; a non-nil value below 1 is a caller error, not something
// to clamp silently. The function is pure: identical inputs give identical
// results.
func SizeSystem(events []model.PeakEvent, spec model.BatterySpec, overrideUnits *int) (Result, error) {
	if len(events) == 0 {
		return Result{}, errors.New("no events to size against")
	}
	if err := spec.Validate(); err != nil {
		return Result{}, fmt.Errorf("battery spec invalid: %w", err)
	}
	if overrideUnits != nil && *overrideUnits < 1 {
		return Result{}, fmt.Errorf("override units must be >= 1, got %d", *overrideUnits)
	}

	var res Result
	for _, ev := range events {
		if ev.EnergyToShaveKWh < 0 {
			return Result{}, errors.New("energy to shave must be >= 0 for every event")
		}
		res.TotalEnergyRequiredKWh += ev.EnergyToShaveKWh
		if ev.PeakLoadKW > res.MaxPowerRequiredKW {
			res.MaxPowerRequiredKW = ev.PeakLoadKW
		}
	}

	res.BatteriesForEnergy = int(math.Ceil(res.TotalEnergyRequiredKWh / spec.EnergyKWh))
	res.BatteriesForPower = int(math.Ceil(res.MaxPowerRequiredKW / spec.PowerKW))

	res.RecommendedUnits = res.BatteriesForEnergy
	if res.BatteriesForPower > res.RecommendedUnits {
		res.RecommendedUnits = res.BatteriesForPower
	}
	// Both source columns can be absent or all-zero; a zero-unit deployment
	// is never a valid recommendation.
	if res.RecommendedUnits < 1 {
		res.RecommendedUnits = 1
	}

	res.ChosenUnits = res.RecommendedUnits
	if overrideUnits != nil {
		res.ChosenUnits = *overrideUnits
	}

	units := float64(res.ChosenUnits)
	res.TotalPowerKW = units * spec.PowerKW
	res.TotalEnergyKWh = units * spec.EnergyKWh
	res.TotalWeightKg = units * spec.WeightKg
	res.FootprintM2 = units * spec.FootprintM2()

	return res, nil
}
