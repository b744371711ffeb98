package report

import (
	"bytes"
	"strings"
	"testing"

	"md-shaving/internal/analysis"
	"md-shaving/internal/degradation"
	"md-shaving/internal/finance"
	"md-shaving/internal/sizing"
)

func TestBuild(t *testing.T) {
	traj, err := degradation.Trajectory(233)
	if err != nil {
		t.Fatal(err)
	}
	sz := sizing.Result{ChosenUnits: 1, TotalPowerKW: 50, TotalEnergyKWh: 233}
	cost := finance.Cost{TotalSystemCostRM: 223680}

	rep := Build("TIANWU-50-233-0.25C", sz, analysis.EventStats{Count: 3}, cost, nil, traj, nil)

	if rep.ID == "" {
		t.Fatal("expected a generated report id")
	}
	if rep.GeneratedAt.IsZero() {
		t.Fatal("expected a timestamp")
	}
	if rep.Summary.BatteryID != "TIANWU-50-233-0.25C" || rep.Summary.Units != 1 {
		t.Fatalf("unexpected summary: %+v", rep.Summary)
	}
	if rep.Summary.TotalSystemCostRM != 223680 {
		t.Fatalf("unexpected cost in summary: %+v", rep.Summary)
	}
	if len(rep.Degradation) != 21 {
		t.Fatalf("expected full trajectory, got %d points", len(rep.Degradation))
	}

	other := Build("TIANWU-50-233-0.25C", sz, analysis.EventStats{}, cost, nil, traj, nil)
	if other.ID == rep.ID {
		t.Fatal("expected distinct report ids")
	}
}

func TestWriteDegradationCSV(t *testing.T) {
	traj, err := degradation.Trajectory(233)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteDegradationCSV(&buf, traj); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 22 {
		t.Fatalf("expected header + 21 rows, got %d lines", len(lines))
	}
	if lines[0] != "year,soh_pct,effective_capacity_kwh,capacity_loss_kwh" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != "0,100.00,233.00,0.00" {
		t.Fatalf("unexpected year-0 row: %s", lines[1])
	}
	if lines[16] != "15,79.95,186.28,46.72" {
		t.Fatalf("unexpected year-15 row: %s", lines[16])
	}
}
