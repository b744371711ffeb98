package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileFallsBack(t *testing.T) {
	cat, src := Load(filepath.Join(t.TempDir(), "nope.json"))

	if src.Kind != SourceBuiltin {
		t.Fatalf("expected builtin source, got %s", src.Kind)
	}
	if src.Diagnostic == "" {
		t.Fatal("expected a diagnostic explaining the fallback")
	}
	if len(cat) != 3 {
		t.Fatalf("expected 3 built-in models, got %d", len(cat))
	}
}

func TestLoad_MalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, src := Load(path)
	if src.Kind != SourceBuiltin {
		t.Fatalf("expected builtin source, got %s", src.Kind)
	}
	if src.Diagnostic == "" {
		t.Fatal("expected a diagnostic for the parse error")
	}
	if _, err := cat.Get("TIANWU-50-233-0.25C"); err != nil {
		t.Fatalf("fallback catalog missing reference model: %v", err)
	}
}

func TestLoad_InvalidSpecFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	body := `{"BAD-MODEL": {"company":"X","model":"X-1","c_rate":1,"power_kW":0,"energy_kWh":233,"voltage_V":832,"lifespan_years":15,"eol_capacity_pct":80,"cycles_per_day":1,"cooling":"Air","weight_kg":1000,"dimensions_mm":[1000,1000,2000]}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	_, src := Load(path)
	if src.Kind != SourceBuiltin {
		t.Fatalf("expected builtin source for zero-power spec, got %s", src.Kind)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	body := `{"ACME-100": {"company":"ACME","model":"A-100","c_rate":0.5,"power_kW":100,"energy_kWh":200,"voltage_V":800,"lifespan_years":10,"eol_capacity_pct":80,"cycles_per_day":1,"cooling":"Air","weight_kg":2000,"dimensions_mm":[1200,1100,2000]}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, src := Load(path)
	if src.Kind != SourceFile {
		t.Fatalf("expected file source, got %s (%s)", src.Kind, src.Diagnostic)
	}
	spec, err := cat.Get("ACME-100")
	if err != nil {
		t.Fatal(err)
	}
	if spec.PowerKW != 100 || spec.EnergyKWh != 200 {
		t.Fatalf("spec not parsed as expected: %+v", spec)
	}
}

func TestGet_Unknown(t *testing.T) {
	cat := Default()
	if _, err := cat.Get("NOT-A-MODEL"); err == nil {
		t.Fatal("expected error for unknown model")
	}
}

func TestIDs_Sorted(t *testing.T) {
	ids := Default().IDs()
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %v", ids)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not sorted: %v", ids)
		}
	}
}

func TestDefault_SpecsValid(t *testing.T) {
	for id, spec := range Default() {
		if err := spec.Validate(); err != nil {
			t.Fatalf("built-in spec %s invalid: %v", id, err)
		}
	}
}
