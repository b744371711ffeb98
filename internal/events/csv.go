package events

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"md-shaving/internal/model"
)

// Column names as they appear in the uploaded header row.
const (
	ColStartDate         = "Start Date"
	ColStartTime         = "Start Time"
	ColEndDate           = "End Date"
	ColEndTime           = "End Time"
	ColPeakLoad          = "Peak Load (kW)"
	ColExcess            = "Excess (kW)"
	ColDuration          = "Duration (min)"
	ColEnergyToShave     = "Energy to Shave (kWh)"
	ColEnergyToShavePeak = "Energy to Shave (Peak Period Only)"
	ColCostImpact        = "MD Cost Impact (RM)"
)

// ErrMissingEnergyColumn means the upload cannot be analyzed at all: the
// energy-to-shave column is the one input the sizing calculator requires.
var ErrMissingEnergyColumn = errors.New(`required column "Energy to Shave (kWh)" not found`)

var knownColumns = map[string]bool{
	ColStartDate:         true,
	ColStartTime:         true,
	ColEndDate:           true,
	ColEndTime:           true,
	ColPeakLoad:          true,
	ColExcess:            true,
	ColDuration:          true,
	ColEnergyToShave:     true,
	ColEnergyToShavePeak: true,
	ColCostImpact:        true,
}

// Table is a parsed upload: the ordered peak events plus what the header
// actually declared, so callers can report which optional data is available.
type Table struct {
	Events  []model.PeakEvent `json:"events"`
	Columns []string          `json:"columns"`
	Unknown []string          `json:"unknown_columns,omitempty"`

	HasPeakLoad   bool `json:"has_peak_load"`
	HasCostImpact bool `json:"has_cost_impact"`
}

// ReadCSV parses an uploaded peak-event file. The header row declares column
// names; extra columns are tolerated and listed on Table.Unknown, but the
// energy-to-shave column must be present. Numeric cells may be empty (zero)
// except energy to shave, which must parse to a non-negative value per row.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	t := &Table{}
	for i, name := range header {
		name = strings.TrimSpace(name)
		header[i] = name
		idx[name] = i
		if !knownColumns[name] {
			t.Unknown = append(t.Unknown, name)
		}
	}
	t.Columns = header

	energyCol, ok := idx[ColEnergyToShave]
	if !ok {
		return nil, ErrMissingEnergyColumn
	}
	peakCol, hasPeak := idx[ColPeakLoad]
	costCol, hasCost := idx[ColCostImpact]
	t.HasPeakLoad = hasPeak
	t.HasCostImpact = hasCost

	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		var ev model.PeakEvent
		ev.StartDate = cell(rec, idx, ColStartDate)
		ev.StartTime = cell(rec, idx, ColStartTime)
		ev.EndDate = cell(rec, idx, ColEndDate)
		ev.EndTime = cell(rec, idx, ColEndTime)

		ev.EnergyToShaveKWh, err = parseRequired(rec, energyCol)
		if err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", row, ColEnergyToShave, err)
		}
		if ev.EnergyToShaveKWh < 0 {
			return nil, fmt.Errorf("row %d: %s must be >= 0", row, ColEnergyToShave)
		}

		if hasPeak {
			ev.PeakLoadKW, err = parseOptional(rec, peakCol)
			if err != nil {
				return nil, fmt.Errorf("row %d: %s: %w", row, ColPeakLoad, err)
			}
		}
		if hasCost {
			ev.CostImpactRM, err = parseOptional(rec, costCol)
			if err != nil {
				return nil, fmt.Errorf("row %d: %s: %w", row, ColCostImpact, err)
			}
		}
		if ev.ExcessKW, err = parseNamed(rec, idx, ColExcess); err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", row, ColExcess, err)
		}
		if ev.DurationMin, err = parseNamed(rec, idx, ColDuration); err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", row, ColDuration, err)
		}
		if ev.EnergyToShavePeakKWh, err = parseNamed(rec, idx, ColEnergyToShavePeak); err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", row, ColEnergyToShavePeak, err)
		}

		t.Events = append(t.Events, ev)
	}

	if len(t.Events) == 0 {
		return nil, errors.New("file contains no event rows")
	}
	return t, nil
}

func cell(rec []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseRequired(rec []string, i int) (float64, error) {
	if i >= len(rec) {
		return 0, errors.New("missing value")
	}
	s := strings.TrimSpace(rec[i])
	if s == "" {
		return 0, errors.New("missing value")
	}
	return strconv.ParseFloat(s, 64)
}

func parseOptional(rec []string, i int) (float64, error) {
	if i >= len(rec) {
		return 0, nil
	}
	s := strings.TrimSpace(rec[i])
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseNamed(rec []string, idx map[string]int, col string) (float64, error) {
	i, ok := idx[col]
	if !ok {
		return 0, nil
	}
	return parseOptional(rec, i)
}
