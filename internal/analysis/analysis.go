package analysis

import (
	"sort"

	"md-shaving/internal/catalog"
	"md-shaving/internal/finance"
	"md-shaving/internal/model"
	"md-shaving/internal/sizing"
)

// EventStats summarizes an uploaded event set before any battery is chosen.
type EventStats struct {
	Count                 int     `json:"count"`
	TotalEnergyToShaveKWh float64 `json:"total_energy_to_shave_kwh"`
	MaxPeakLoadKW         float64 `json:"max_peak_load_kw"`
	PeriodCostImpactRM    float64 `json:"period_cost_impact_rm"`
}

// Stats computes the event-set aggregates the calculators and the UI both
// display.
func Stats(events []model.PeakEvent) EventStats {
	s := EventStats{Count: len(events)}
	for _, ev := range events {
		s.TotalEnergyToShaveKWh += ev.EnergyToShaveKWh
		s.PeriodCostImpactRM += ev.CostImpactRM
		if ev.PeakLoadKW > s.MaxPeakLoadKW {
			s.MaxPeakLoadKW = ev.PeakLoadKW
		}
	}
	return s
}

// ModelComparison is one catalog model sized against the same event set.
type ModelComparison struct {
	BatteryID string            `json:"battery_id"`
	Spec      model.BatterySpec `json:"spec"`
	Sizing    sizing.Result     `json:"sizing"`
	Cost      finance.Cost      `json:"cost"`
}

// CompareModels sizes every catalog model against the events at its
// recommended unit count and ranks the results by total system cost,
// cheapest first. Models whose specs fail validation are skipped.
func CompareModels(events []model.PeakEvent, cat catalog.Catalog, costPerKWh, installationPct float64) []ModelComparison {
	out := make([]ModelComparison, 0, len(cat))
	for _, id := range cat.IDs() {
		spec := cat[id]
		sz, err := sizing.SizeSystem(events, spec, nil)
		if err != nil {
			continue
		}
		cost, err := finance.SystemCost(sz.TotalEnergyKWh, costPerKWh, installationPct)
		if err != nil {
			continue
		}
		out = append(out, ModelComparison{
			BatteryID: id,
			Spec:      spec,
			Sizing:    sz,
			Cost:      cost,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost.TotalSystemCostRM != out[j].Cost.TotalSystemCostRM {
			return out[i].Cost.TotalSystemCostRM < out[j].Cost.TotalSystemCostRM
		}
		return out[i].BatteryID < out[j].BatteryID
	})
	return out
}
