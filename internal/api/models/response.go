package models

import (
	"md-shaving/internal/analysis"
	"md-shaving/internal/catalog"
	"md-shaving/internal/degradation"
	"md-shaving/internal/finance"
	"md-shaving/internal/model"
	"md-shaving/internal/sizing"
)

// AnalysisResponse is the result of one full analysis pass. ReportID can be
// used with the report and degradation.csv download endpoints until the
// stored report expires.
type AnalysisResponse struct {
	ReportID      string `json:"report_id"`
	Status        string `json:"status"`
	CatalogSource string `json:"catalog_source"`
	BatteryID     string `json:"battery_id"`

	Stats       analysis.EventStats `json:"stats"`
	Sizing      sizing.Result       `json:"sizing"`
	Cost        finance.Cost        `json:"cost"`
	Returns     *finance.Returns    `json:"returns,omitempty"`
	Degradation []degradation.Point `json:"degradation"`

	Events []model.PeakEvent `json:"events,omitempty"`
}

// CompareResponse ranks every catalog model against the same upload.
type CompareResponse struct {
	Stats      analysis.EventStats        `json:"stats"`
	Comparison []analysis.ModelComparison `json:"comparison"`
}

// BatteryInfo is one catalog entry in the listing.
type BatteryInfo struct {
	ID   string            `json:"id"`
	Spec model.BatterySpec `json:"spec"`
}

// BatteryListResponse lists the catalog and where it was loaded from.
type BatteryListResponse struct {
	Source    catalog.Source `json:"source"`
	Batteries []BatteryInfo  `json:"batteries"`
}

// TrajectoryResponse is a standalone degradation trajectory.
type TrajectoryResponse struct {
	TotalEnergyKWh float64             `json:"total_energy_kwh"`
	EOLYear        int                 `json:"eol_year"`
	Degradation    []degradation.Point `json:"degradation"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
