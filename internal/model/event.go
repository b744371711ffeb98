package model

// PeakEvent is one detected maximum-demand peak event from an uploaded load
// profile. Date/time fields are carried through as uploaded for reporting;
// numeric fields default to zero when their column is absent (the events
// table records which optional columns were present).
type PeakEvent struct {
	StartDate string `json:"start_date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	PeakLoadKW           float64 `json:"peak_load_kw"`
	ExcessKW             float64 `json:"excess_kw"`
	DurationMin          float64 `json:"duration_min"`
	EnergyToShaveKWh     float64 `json:"energy_to_shave_kwh"`
	EnergyToShavePeakKWh float64 `json:"energy_to_shave_peak_kwh"`

	// CostImpactRM is the billed MD cost impact for the event. Negative
	// values mean the event produced no savings.
	CostImpactRM float64 `json:"md_cost_impact_rm"`
}
