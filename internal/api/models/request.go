package models

// AnalysisRequest carries the form fields accompanying an uploaded events
// CSV (multipart field "events"). Zero-valued cost fields fall back to the
// server's configured defaults; Units nil means "use the recommendation".
type AnalysisRequest struct {
	BatteryID       string   `form:"battery_id" binding:"required"`
	Units           *int     `form:"units"`
	CostPerKWh      float64  `form:"cost_per_kwh"`
	InstallationPct *float64 `form:"installation_pct"`
	PeriodDays      int      `form:"period_days"`
	IncludeEvents   bool     `form:"include_events"`
}

// CompareRequest carries the form fields for a catalog-wide comparison. The
// events CSV rides in the same multipart field as for AnalysisRequest.
type CompareRequest struct {
	CostPerKWh      float64  `form:"cost_per_kwh"`
	InstallationPct *float64 `form:"installation_pct"`
}

// TrajectoryRequest is the query for a standalone degradation trajectory.
type TrajectoryRequest struct {
	TotalEnergyKWh float64 `form:"total_energy_kwh" binding:"required"`
}
