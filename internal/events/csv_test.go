package events

import (
	"errors"
	"strings"
	"testing"
)

const sampleCSV = `Start Date,Start Time,End Date,End Time,Peak Load (kW),Excess (kW),Duration (min),Energy to Shave (kWh),Energy to Shave (Peak Period Only),MD Cost Impact (RM)
2024-01-15,14:30,2024-01-15,15:00,850,150,30,75,75,1245
2024-01-16,09:15,2024-01-16,09:45,920,220,30,110,110,1680
2024-01-17,16:45,2024-01-17,17:15,780,80,30,40,40,890
`

func TestReadCSV_FullHeader(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}

	if len(table.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(table.Events))
	}
	if !table.HasPeakLoad || !table.HasCostImpact {
		t.Fatalf("expected optional columns to be detected: %+v", table)
	}
	if len(table.Unknown) != 0 {
		t.Fatalf("expected no unknown columns, got %v", table.Unknown)
	}

	ev := table.Events[1]
	if ev.StartDate != "2024-01-16" || ev.StartTime != "09:15" {
		t.Fatalf("unexpected start fields: %+v", ev)
	}
	if ev.PeakLoadKW != 920 || ev.EnergyToShaveKWh != 110 || ev.CostImpactRM != 1680 {
		t.Fatalf("unexpected numeric fields: %+v", ev)
	}
	if ev.ExcessKW != 220 || ev.DurationMin != 30 || ev.EnergyToShavePeakKWh != 110 {
		t.Fatalf("unexpected secondary fields: %+v", ev)
	}
}

func TestReadCSV_MissingEnergyColumn(t *testing.T) {
	body := "Peak Load (kW),MD Cost Impact (RM)\n850,1245\n"
	_, err := ReadCSV(strings.NewReader(body))
	if !errors.Is(err, ErrMissingEnergyColumn) {
		t.Fatalf("expected ErrMissingEnergyColumn, got %v", err)
	}
}

func TestReadCSV_EnergyColumnOnly(t *testing.T) {
	body := "Energy to Shave (kWh)\n75\n110\n"
	table, err := ReadCSV(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if table.HasPeakLoad || table.HasCostImpact {
		t.Fatalf("optional columns wrongly detected: %+v", table)
	}
	if table.Events[0].EnergyToShaveKWh != 75 {
		t.Fatalf("unexpected event: %+v", table.Events[0])
	}
}

func TestReadCSV_UnknownColumnsTolerated(t *testing.T) {
	body := "Energy to Shave (kWh),Site Name,Tariff Band\n75,Plant A,C1\n"
	table, err := ReadCSV(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Unknown) != 2 {
		t.Fatalf("expected 2 unknown columns, got %v", table.Unknown)
	}
}

func TestReadCSV_NegativeEnergyRejected(t *testing.T) {
	body := "Energy to Shave (kWh)\n75\n-10\n"
	_, err := ReadCSV(strings.NewReader(body))
	if err == nil || !strings.Contains(err.Error(), "row 3") {
		t.Fatalf("expected row-addressed error, got %v", err)
	}
}

func TestReadCSV_BadNumber(t *testing.T) {
	body := "Energy to Shave (kWh),Peak Load (kW)\n75,eight-fifty\n"
	_, err := ReadCSV(strings.NewReader(body))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestReadCSV_NegativeCostImpactAllowed(t *testing.T) {
	// Negative MD cost impact means the event produced no savings; it is
	// valid input, the financial model handles it downstream.
	body := "Energy to Shave (kWh),MD Cost Impact (RM)\n75,-120\n"
	table, err := ReadCSV(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if table.Events[0].CostImpactRM != -120 {
		t.Fatalf("unexpected cost impact: %+v", table.Events[0])
	}
}

func TestReadCSV_Empty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty file")
	}
	if _, err := ReadCSV(strings.NewReader("Energy to Shave (kWh)\n")); err == nil {
		t.Fatal("expected error for header-only file")
	}
}
