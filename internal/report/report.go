package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"md-shaving/internal/analysis"
	"md-shaving/internal/degradation"
	"md-shaving/internal/finance"
	"md-shaving/internal/model"
	"md-shaving/internal/sizing"
)

// Summary is the headline block of an analysis report.
type Summary struct {
	BatteryID         string  `json:"battery_id"`
	Units             int     `json:"units"`
	TotalPowerKW      float64 `json:"total_power_kw"`
	TotalEnergyKWh    float64 `json:"total_energy_kwh"`
	TotalSystemCostRM float64 `json:"total_system_cost_rm"`
}

// Report is the downloadable analysis artifact: the summary, the full
// degradation trajectory, and the raw events the analysis ran on.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Summary     Summary             `json:"summary"`
	Stats       analysis.EventStats `json:"stats"`
	Sizing      sizing.Result       `json:"sizing"`
	Cost        finance.Cost        `json:"cost"`
	Returns     *finance.Returns    `json:"returns,omitempty"`
	Degradation []degradation.Point `json:"degradation"`
	Events      []model.PeakEvent   `json:"events"`
}

// Build assembles a report with a fresh identifier. Returns may be nil when
// the upload had no cost-impact column.
func Build(batteryID string, sz sizing.Result, stats analysis.EventStats, cost finance.Cost, ret *finance.Returns, traj []degradation.Point, events []model.PeakEvent) *Report {
	return &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Summary: Summary{
			BatteryID:         batteryID,
			Units:             sz.ChosenUnits,
			TotalPowerKW:      sz.TotalPowerKW,
			TotalEnergyKWh:    sz.TotalEnergyKWh,
			TotalSystemCostRM: cost.TotalSystemCostRM,
		},
		Stats:       stats,
		Sizing:      sz,
		Cost:        cost,
		Returns:     ret,
		Degradation: traj,
		Events:      events,
	}
}

// WriteDegradationCSV writes the trajectory as the plain tabular export
// offered alongside the JSON report.
func WriteDegradationCSV(w io.Writer, points []degradation.Point) error {
	cw := csv.NewWriter(w)

	header := []string{"year", "soh_pct", "effective_capacity_kwh", "capacity_loss_kwh"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.Itoa(p.Year),
			fmtFloat(p.SOHPct),
			fmtFloat(p.EffectiveCapacityKWh),
			fmtFloat(p.CapacityLossKWh),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
