package finance

import (
	"errors"
	"fmt"
)

// Horizon for the ROI figure, in years. Matches the degradation curve.
const ROIHorizonYears = 20

// Cost is the up-front system cost breakdown, in RM.
type Cost struct {
	BatteryCostRM      float64 `json:"battery_cost_rm"`
	InstallationCostRM float64 `json:"installation_cost_rm"`
	TotalSystemCostRM  float64 `json:"total_system_cost_rm"`
}

// SystemCost prices an installed energy capacity: battery cost per kWh plus
// installation as a percentage of the battery cost.
func SystemCost(totalEnergyKWh, costPerKWh, installationPct float64) (Cost, error) {
	if totalEnergyKWh <= 0 {
		return Cost{}, errors.New("total energy must be > 0")
	}
	if costPerKWh <= 0 {
		return Cost{}, errors.New("cost per kWh must be > 0")
	}
	if installationPct < 0 || installationPct > 100 {
		return Cost{}, fmt.Errorf("installation percentage must be in [0, 100], got %g", installationPct)
	}

	battery := totalEnergyKWh * costPerKWh
	installation := battery * installationPct / 100
	return Cost{
		BatteryCostRM:      battery,
		InstallationCostRM: installation,
		TotalSystemCostRM:  battery + installation,
	}, nil
}

// Returns annualizes observed MD cost impacts against the system cost.
// Computed is false when the data demonstrates no savings; callers must not
// display payback or ROI in that case (the fields are zero).
type Returns struct {
	PeriodSavingsRM float64 `json:"period_savings_rm"`
	AnnualSavingsRM float64 `json:"annual_savings_rm"`

	Computed           bool    `json:"computed"`
	SimplePaybackYears float64 `json:"simple_payback_years,omitempty"`
	ROI20YearPct       float64 `json:"roi_20_year_pct,omitempty"`
}

// ComputeReturns scales the summed cost impacts from the observed period to
// a full year and derives simple payback and 20-year ROI. A non-positive
// system cost is a degenerate scenario and an error; non-positive annual
// savings are a valid "not demonstrated" outcome, not a fault.
func ComputeReturns(totalSystemCostRM float64, costImpactsRM []float64, periodDays int) (Returns, error) {
	if totalSystemCostRM <= 0 {
		return Returns{}, errors.New("total system cost must be > 0")
	}
	if periodDays < 1 {
		return Returns{}, fmt.Errorf("data period must be >= 1 day, got %d", periodDays)
	}

	var ret Returns
	for _, v := range costImpactsRM {
		ret.PeriodSavingsRM += v
	}
	ret.AnnualSavingsRM = ret.PeriodSavingsRM * 365 / float64(periodDays)

	if ret.AnnualSavingsRM <= 0 {
		return ret, nil
	}

	ret.Computed = true
	ret.SimplePaybackYears = totalSystemCostRM / ret.AnnualSavingsRM
	ret.ROI20YearPct = (ret.AnnualSavingsRM*ROIHorizonYears - totalSystemCostRM) / totalSystemCostRM * 100
	return ret, nil
}
