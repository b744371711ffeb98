package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// CatalogFile is the vendor battery catalog JSON. A missing or
	// malformed file falls back to the built-in catalog at load time.
	CatalogFile string `yaml:"catalog_file"`

	Defaults Defaults `yaml:"defaults"`
}

// Defaults are the cost assumptions applied when a request or flag does not
// set them explicitly.
type Defaults struct {
	CostPerKWh      float64 `yaml:"cost_per_kwh"`
	InstallationPct float64 `yaml:"installation_pct"`
	DataPeriodDays  int     `yaml:"data_period_days"`
}

// Default returns the configuration used when no file is given: the
// original tool's assumptions of 800 RM/kWh, 20% installation, 30-day data
// period.
func Default() *Config {
	return &Config{
		CatalogFile: "vendor_battery_database.json",
		Defaults: Defaults{
			CostPerKWh:      800,
			InstallationPct: 20,
			DataPeriodDays:  30,
		},
	}
}

// Load reads the YAML config at path, fills unset defaults, applies
// environment overrides, and validates. An empty path yields the defaults
// (still subject to env overrides).
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var fc Config
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		merge(c, &fc)
	}

	applyEnv(c)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// merge overlays non-zero fields from override onto base.
func merge(base, override *Config) {
	if override.CatalogFile != "" {
		base.CatalogFile = override.CatalogFile
	}
	if override.Defaults.CostPerKWh != 0 {
		base.Defaults.CostPerKWh = override.Defaults.CostPerKWh
	}
	if override.Defaults.InstallationPct != 0 {
		base.Defaults.InstallationPct = override.Defaults.InstallationPct
	}
	if override.Defaults.DataPeriodDays != 0 {
		base.Defaults.DataPeriodDays = override.Defaults.DataPeriodDays
	}
}

func applyEnv(c *Config) {
	if v := os.Getenv("CATALOG_FILE"); v != "" {
		c.CatalogFile = v
	}
	if v := os.Getenv("COST_PER_KWH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Defaults.CostPerKWh = f
		}
	}
	if v := os.Getenv("INSTALLATION_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Defaults.InstallationPct = f
		}
	}
	if v := os.Getenv("DATA_PERIOD_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Defaults.DataPeriodDays = n
		}
	}
}

// Validate checks the default cost assumptions.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.CatalogFile == "" {
		return errors.New("catalog_file is required")
	}
	if c.Defaults.CostPerKWh <= 0 {
		return errors.New("defaults.cost_per_kwh must be > 0")
	}
	if c.Defaults.InstallationPct < 0 || c.Defaults.InstallationPct > 100 {
		return errors.New("defaults.installation_pct must be in [0, 100]")
	}
	if c.Defaults.DataPeriodDays < 1 || c.Defaults.DataPeriodDays > 365 {
		return errors.New("defaults.data_period_days must be in [1, 365]")
	}
	return nil
}
