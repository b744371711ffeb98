package model

import "errors"

// BatterySpec is one catalog entry for a battery cabinet model.
// Units:
// - PowerKW: rated discharge power per unit, kW
// - EnergyKWh: rated energy capacity per unit, kWh
// - VoltageV: nominal DC voltage
// - WeightKg: kg per unit
// - DimensionsMM: length, width, height in mm
type BatterySpec struct {
	Company        string     `json:"company"`
	Model          string     `json:"model"`
	CRate          float64    `json:"c_rate"`
	PowerKW        float64    `json:"power_kW"`
	EnergyKWh      float64    `json:"energy_kWh"`
	VoltageV       float64    `json:"voltage_V"`
	LifespanYears  int        `json:"lifespan_years"`
	EOLCapacityPct float64    `json:"eol_capacity_pct"`
	CyclesPerDay   float64    `json:"cycles_per_day"`
	Cooling        string     `json:"cooling"`
	WeightKg       float64    `json:"weight_kg"`
	DimensionsMM   [3]float64 `json:"dimensions_mm"`
}

// Validate checks the fields the calculators depend on. A spec with zero
// power or energy makes unit counts undefined, so it must be rejected before
// any calculator sees it.
func (s BatterySpec) Validate() error {
	if s.PowerKW <= 0 {
		return errors.New("power_kW must be > 0")
	}
	if s.EnergyKWh <= 0 {
		return errors.New("energy_kWh must be > 0")
	}
	if s.CRate <= 0 {
		return errors.New("c_rate must be > 0")
	}
	if s.VoltageV <= 0 {
		return errors.New("voltage_V must be > 0")
	}
	if s.LifespanYears <= 0 {
		return errors.New("lifespan_years must be > 0")
	}
	if s.EOLCapacityPct <= 0 || s.EOLCapacityPct > 100 {
		return errors.New("eol_capacity_pct must be in (0, 100]")
	}
	if s.CyclesPerDay < 0 {
		return errors.New("cycles_per_day must be >= 0")
	}
	if s.WeightKg < 0 {
		return errors.New("weight_kg must be >= 0")
	}
	for _, d := range s.DimensionsMM {
		if d <= 0 {
			return errors.New("dimensions_mm must all be > 0")
		}
	}
	return nil
}

// FootprintM2 is the floor area of one unit (length x width).
func (s BatterySpec) FootprintM2() float64 {
	return s.DimensionsMM[0] * s.DimensionsMM[1] / 1e6
}
