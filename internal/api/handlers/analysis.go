package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"md-shaving/internal/analysis"
	"md-shaving/internal/api/models"
	"md-shaving/internal/catalog"
	"md-shaving/internal/config"
	"md-shaving/internal/degradation"
	"md-shaving/internal/events"
	"md-shaving/internal/finance"
	"md-shaving/internal/report"
	"md-shaving/internal/sizing"
	"md-shaving/internal/store"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler runs the full catalog -> sizing -> degradation -> finance
// pipeline for uploaded peak-event files.
type AnalysisHandler struct {
	catalog  catalog.Catalog
	source   catalog.Source
	defaults config.Defaults
	reports  *store.ReportStore
}

// NewAnalysisHandler creates an analysis handler. The catalog is loaded once
// at startup and shared read-only across requests.
func NewAnalysisHandler(cat catalog.Catalog, src catalog.Source, defaults config.Defaults, reports *store.ReportStore) *AnalysisHandler {
	return &AnalysisHandler{
		catalog:  cat,
		source:   src,
		defaults: defaults,
		reports:  reports,
	}
}

// RunAnalysis handles POST /api/v1/analysis.
func (h *AnalysisHandler) RunAnalysis(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	spec, err := h.catalog.Get(req.BatteryID)
	if err != nil {
		writeError(c, http.StatusBadRequest, "UNKNOWN_BATTERY", err.Error())
		return
	}

	table, ok := readEventsFile(c)
	if !ok {
		return
	}

	sz, err := sizing.SizeSystem(table.Events, spec, req.Units)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_UNITS", err.Error())
		return
	}

	costPerKWh := req.CostPerKWh
	if costPerKWh == 0 {
		costPerKWh = h.defaults.CostPerKWh
	}
	installationPct := h.defaults.InstallationPct
	if req.InstallationPct != nil {
		installationPct = *req.InstallationPct
	}
	periodDays := req.PeriodDays
	if periodDays == 0 {
		periodDays = h.defaults.DataPeriodDays
	}

	cost, err := finance.SystemCost(sz.TotalEnergyKWh, costPerKWh, installationPct)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_COST", err.Error())
		return
	}

	var ret *finance.Returns
	if table.HasCostImpact {
		impacts := make([]float64, len(table.Events))
		for i, ev := range table.Events {
			impacts[i] = ev.CostImpactRM
		}
		r, err := finance.ComputeReturns(cost.TotalSystemCostRM, impacts, periodDays)
		if err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
			return
		}
		ret = &r
	}

	traj, err := degradation.Trajectory(sz.TotalEnergyKWh)
	if err != nil {
		// TotalEnergyKWh is positive whenever sizing succeeds.
		writeError(c, http.StatusInternalServerError, "DEGRADATION_ERROR", err.Error())
		return
	}

	stats := analysis.Stats(table.Events)
	rep := report.Build(req.BatteryID, sz, stats, cost, ret, traj, table.Events)
	h.reports.Put(rep)
	log.Printf("AnalysisHandler: report %s: battery=%s units=%d events=%d", rep.ID, req.BatteryID, sz.ChosenUnits, stats.Count)

	resp := models.AnalysisResponse{
		ReportID:      rep.ID,
		Status:        "completed",
		CatalogSource: string(h.source.Kind),
		BatteryID:     req.BatteryID,
		Stats:         stats,
		Sizing:        sz,
		Cost:          cost,
		Returns:       ret,
		Degradation:   traj,
	}
	if req.IncludeEvents {
		resp.Events = table.Events
	}
	c.JSON(http.StatusOK, resp)
}

// Compare handles POST /api/v1/analysis/compare: every catalog model sized
// against the same upload, ranked by total system cost.
func (h *AnalysisHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	table, ok := readEventsFile(c)
	if !ok {
		return
	}

	costPerKWh := req.CostPerKWh
	if costPerKWh == 0 {
		costPerKWh = h.defaults.CostPerKWh
	}
	installationPct := h.defaults.InstallationPct
	if req.InstallationPct != nil {
		installationPct = *req.InstallationPct
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Stats:      analysis.Stats(table.Events),
		Comparison: analysis.CompareModels(table.Events, h.catalog, costPerKWh, installationPct),
	})
}

// GetReport handles GET /api/v1/analysis/:id/report.
func (h *AnalysisHandler) GetReport(c *gin.Context) {
	rep, ok := h.reports.Get(c.Param("id"))
	if !ok {
		writeError(c, http.StatusNotFound, "REPORT_NOT_FOUND", "report expired or never existed")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=md_shaving_analysis_%s.json", rep.ID))
	c.JSON(http.StatusOK, rep)
}

// GetDegradationCSV handles GET /api/v1/analysis/:id/degradation.csv.
func (h *AnalysisHandler) GetDegradationCSV(c *gin.Context) {
	rep, ok := h.reports.Get(c.Param("id"))
	if !ok {
		writeError(c, http.StatusNotFound, "REPORT_NOT_FOUND", "report expired or never existed")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=battery_degradation_%s.csv", rep.ID))
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := report.WriteDegradationCSV(c.Writer, rep.Degradation); err != nil {
		log.Printf("AnalysisHandler: write degradation csv: %v", err)
	}
}

// readEventsFile pulls the "events" multipart file and parses it, writing
// the error response itself when something is wrong.
func readEventsFile(c *gin.Context) (*events.Table, bool) {
	fh, err := c.FormFile("events")
	if err != nil {
		writeError(c, http.StatusBadRequest, "MISSING_EVENTS_FILE", `multipart file field "events" is required`)
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, http.StatusBadRequest, "UNREADABLE_EVENTS_FILE", err.Error())
		return nil, false
	}
	defer f.Close()

	table, err := events.ReadCSV(f)
	if err != nil {
		code := "INVALID_EVENTS"
		if errors.Is(err, events.ErrMissingEnergyColumn) {
			code = "MISSING_ENERGY_COLUMN"
		}
		writeError(c, http.StatusBadRequest, code, err.Error())
		return nil, false
	}
	if len(table.Unknown) > 0 {
		log.Printf("AnalysisHandler: ignoring unknown columns %v in %s", table.Unknown, fh.Filename)
	}
	return table, true
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
