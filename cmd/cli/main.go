package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"md-shaving/internal/analysis"
	"md-shaving/internal/catalog"
	"md-shaving/internal/config"
	"md-shaving/internal/degradation"
	"md-shaving/internal/events"
	"md-shaving/internal/finance"
	"md-shaving/internal/report"
	"md-shaving/internal/sizing"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		cmdAnalyze(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "catalog":
		cmdCatalog(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli analyze --events peak_events.csv --battery TIANWU-50-233-0.25C --out report.json --csv degradation.csv")
	fmt.Println("  cli compare --events peak_events.csv")
	fmt.Println("  cli catalog")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - analyze sizes a battery system for the uploaded peak events and writes a full report")
	fmt.Println("  - compare sizes every catalog model against the same events, ranked by system cost")
	fmt.Println("  - catalog lists the available battery models and where the catalog was loaded from")
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	eventsPath := fs.String("events", "", "Path to peak events CSV")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	batteryID := fs.String("battery", "", "Catalog identifier of the battery model")
	units := fs.Int("units", 0, "Override unit count (0 = use recommendation)")
	costPerKWh := fs.Float64("cost-per-kwh", 0, "Battery cost in RM/kWh (0 = config default)")
	installationPct := fs.Float64("installation-pct", -1, "Installation cost percentage of battery cost (-1 = config default)")
	periodDays := fs.Int("period-days", 0, "Days the uploaded data covers (0 = config default)")
	outPath := fs.String("out", "", "Write the JSON report here (optional)")
	csvPath := fs.String("csv", "", "Write the degradation CSV here (optional)")
	_ = fs.Parse(args)

	if *eventsPath == "" || *batteryID == "" {
		fmt.Println("--events and --battery are required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	cat, src := catalog.Load(cfg.CatalogFile)
	if src.Kind == catalog.SourceBuiltin && src.Diagnostic != "" {
		fmt.Printf("note: %s (using built-in catalog)\n", src.Diagnostic)
	}

	spec, err := cat.Get(*batteryID)
	if err != nil {
		fatal(err)
	}

	table := mustReadEvents(*eventsPath)

	var override *int
	if *units != 0 {
		override = units
	}
	sz, err := sizing.SizeSystem(table.Events, spec, override)
	if err != nil {
		fatal(err)
	}

	if *costPerKWh == 0 {
		*costPerKWh = cfg.Defaults.CostPerKWh
	}
	if *installationPct < 0 {
		*installationPct = cfg.Defaults.InstallationPct
	}
	if *periodDays == 0 {
		*periodDays = cfg.Defaults.DataPeriodDays
	}

	cost, err := finance.SystemCost(sz.TotalEnergyKWh, *costPerKWh, *installationPct)
	if err != nil {
		fatal(err)
	}

	var ret *finance.Returns
	if table.HasCostImpact {
		impacts := make([]float64, len(table.Events))
		for i, ev := range table.Events {
			impacts[i] = ev.CostImpactRM
		}
		r, err := finance.ComputeReturns(cost.TotalSystemCostRM, impacts, *periodDays)
		if err != nil {
			fatal(err)
		}
		ret = &r
	}

	traj, err := degradation.Trajectory(sz.TotalEnergyKWh)
	if err != nil {
		fatal(err)
	}

	stats := analysis.Stats(table.Events)
	rep := report.Build(*batteryID, sz, stats, cost, ret, traj, table.Events)

	fmt.Printf("Events: %d  total energy to shave=%.1f kWh  max peak load=%.1f kW\n",
		stats.Count, stats.TotalEnergyToShaveKWh, stats.MaxPeakLoadKW)
	fmt.Printf("Sizing: energy=%d power=%d recommended=%d chosen=%d\n",
		sz.BatteriesForEnergy, sz.BatteriesForPower, sz.RecommendedUnits, sz.ChosenUnits)
	fmt.Printf("System: %.0f kW / %.0f kWh, %.0f kg, %.1f m2\n",
		sz.TotalPowerKW, sz.TotalEnergyKWh, sz.TotalWeightKg, sz.FootprintM2)
	fmt.Printf("Cost: battery=RM %.0f installation=RM %.0f total=RM %.0f\n",
		cost.BatteryCostRM, cost.InstallationCostRM, cost.TotalSystemCostRM)
	switch {
	case ret == nil:
		fmt.Println("Returns: no MD Cost Impact column in the upload")
	case !ret.Computed:
		fmt.Printf("Returns: annual savings RM %.0f — savings not demonstrated, payback/ROI not computed\n", ret.AnnualSavingsRM)
	default:
		fmt.Printf("Returns: annual savings=RM %.0f payback=%.1f years 20-year ROI=%.1f%%\n",
			ret.AnnualSavingsRM, ret.SimplePaybackYears, ret.ROI20YearPct)
	}

	if *outPath != "" {
		writeJSON(*outPath, rep)
		fmt.Printf("Wrote report to %s\n", *outPath)
	}
	if *csvPath != "" {
		if err := os.MkdirAll(filepath.Dir(*csvPath), 0o755); err != nil {
			fatal(err)
		}
		f, err := os.Create(*csvPath)
		if err != nil {
			fatal(err)
		}
		if err := report.WriteDegradationCSV(f, traj); err != nil {
			f.Close()
			fatal(err)
		}
		if err := f.Close(); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote degradation table to %s\n", *csvPath)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	eventsPath := fs.String("events", "", "Path to peak events CSV")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	costPerKWh := fs.Float64("cost-per-kwh", 0, "Battery cost in RM/kWh (0 = config default)")
	installationPct := fs.Float64("installation-pct", -1, "Installation cost percentage of battery cost (-1 = config default)")
	_ = fs.Parse(args)

	if *eventsPath == "" {
		fmt.Println("--events is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	cat, _ := catalog.Load(cfg.CatalogFile)
	table := mustReadEvents(*eventsPath)

	if *costPerKWh == 0 {
		*costPerKWh = cfg.Defaults.CostPerKWh
	}
	if *installationPct < 0 {
		*installationPct = cfg.Defaults.InstallationPct
	}

	ranked := analysis.CompareModels(table.Events, cat, *costPerKWh, *installationPct)
	fmt.Printf("%-4s %-22s %-8s %-10s %-12s %-14s\n", "rank", "battery", "units", "power kW", "energy kWh", "total RM")
	for i, r := range ranked {
		fmt.Printf("%-4d %-22s %-8d %-10.0f %-12.0f %-14.0f\n",
			i+1,
			r.BatteryID,
			r.Sizing.RecommendedUnits,
			r.Sizing.TotalPowerKW,
			r.Sizing.TotalEnergyKWh,
			r.Cost.TotalSystemCostRM,
		)
	}
}

func cmdCatalog(args []string) {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	cat, src := catalog.Load(cfg.CatalogFile)

	fmt.Printf("catalog source: %s", src.Kind)
	if src.Diagnostic != "" {
		fmt.Printf(" (%s)", src.Diagnostic)
	}
	fmt.Println()
	fmt.Printf("%-22s %-20s %-8s %-10s %-10s %-8s\n", "id", "model", "c-rate", "power kW", "kWh", "life yr")
	for _, id := range cat.IDs() {
		s := cat[id]
		fmt.Printf("%-22s %-20s %-8.2f %-10.0f %-10.0f %-8d\n",
			id, s.Model, s.CRate, s.PowerKW, s.EnergyKWh, s.LifespanYears)
	}
}

func mustReadEvents(path string) *events.Table {
	f, err := os.Open(path)
	if err != nil {
		fatal(err)
	}
	defer f.Close()
	table, err := events.ReadCSV(f)
	if err != nil {
		fatal(fmt.Errorf("%s: %w", path, err))
	}
	if len(table.Unknown) > 0 {
		fmt.Printf("note: ignoring unknown columns %v\n", table.Unknown)
	}
	return table
}

func writeJSON(path string, v any) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fatal(err)
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
