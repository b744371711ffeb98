package degradation

import (
	"errors"
	"fmt"
)

// MaxYear is the last year covered by the reference curve.
const MaxYear = 20

// EOLThresholdPct is the state of health below which the battery is
// considered to have reached end of life.
const EOLThresholdPct = 80.0

// referenceSOH is the WEIHENG TIANWU laboratory degradation curve: 21 state
// of health measurements for years 0..20. The decline is roughly 0.93%/year
// until year 15, then steepens once the warranty period ends.
var referenceSOH = [MaxYear + 1]float64{
	100.00, 93.78, 92.85, 91.92, 90.99, 90.06, 89.13, 88.20, 87.27, 86.34,
	85.41, 84.48, 83.55, 82.62, 81.69, 79.95, 75.48, 71.01, 66.54, 62.07,
	60.48,
}

// Point is one year of the capacity trajectory for a given installed energy.
type Point struct {
	Year                 int     `json:"year"`
	SOHPct               float64 `json:"soh_pct"`
	EffectiveCapacityKWh float64 `json:"effective_capacity_kwh"`
	CapacityLossKWh      float64 `json:"capacity_loss_kwh"`
}

// SOHAt returns the reference state of health for an integer year. The curve
// defines no values between or beyond its 21 points, so anything outside
// 0..20 is an error rather than an interpolation.
func SOHAt(year int) (float64, error) {
	if year < 0 || year > MaxYear {
		return 0, fmt.Errorf("year %d outside reference curve (0..%d)", year, MaxYear)
	}
	return referenceSOH[year], nil
}

// Trajectory scales the reference curve by the installed energy, yielding
// effective capacity and capacity loss per year. Each point is independent
// of the others; effective capacity is non-increasing and loss
// non-decreasing because the reference curve itself is non-increasing.
func Trajectory(totalEnergyKWh float64) ([]Point, error) {
	if totalEnergyKWh <= 0 {
		return nil, errors.New("total installed energy must be > 0")
	}
	points := make([]Point, len(referenceSOH))
	for year, soh := range referenceSOH {
		eff := soh / 100 * totalEnergyKWh
		points[year] = Point{
			Year:                 year,
			SOHPct:               soh,
			EffectiveCapacityKWh: eff,
			CapacityLossKWh:      totalEnergyKWh - eff,
		}
	}
	return points, nil
}

// EOLYear is the first year the reference curve falls below the end-of-life
// threshold (year 15 for this curve).
func EOLYear() int {
	for year, soh := range referenceSOH {
		if soh < EOLThresholdPct {
			return year
		}
	}
	return MaxYear
}
