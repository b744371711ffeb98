package degradation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrajectory_ReferencePoints(t *testing.T) {
	points, err := Trajectory(233)
	require.NoError(t, err)
	require.Len(t, points, 21)

	assert.Equal(t, 0, points[0].Year)
	assert.Equal(t, 20, points[20].Year)
	assert.InDelta(t, 100.00, points[0].SOHPct, 1e-9)
	assert.InDelta(t, 233, points[0].EffectiveCapacityKWh, 1e-9)
	assert.InDelta(t, 0, points[0].CapacityLossKWh, 1e-9)

	// Year 15 is the warranty end-of-life point: 79.95% of 233 kWh.
	assert.InDelta(t, 79.95, points[15].SOHPct, 1e-9)
	assert.InDelta(t, 186.28, points[15].EffectiveCapacityKWh, 0.005)
	assert.InDelta(t, 46.72, points[15].CapacityLossKWh, 0.005)

	assert.InDelta(t, 60.48, points[20].SOHPct, 1e-9)
}

func TestTrajectory_Monotonic(t *testing.T) {
	points, err := Trajectory(466)
	require.NoError(t, err)

	for i := 1; i < len(points); i++ {
		assert.LessOrEqual(t, points[i].EffectiveCapacityKWh, points[i-1].EffectiveCapacityKWh,
			"effective capacity must not increase at year %d", points[i].Year)
		assert.GreaterOrEqual(t, points[i].CapacityLossKWh, points[i-1].CapacityLossKWh,
			"capacity loss must not decrease at year %d", points[i].Year)
	}
}

func TestTrajectory_ScalesLinearly(t *testing.T) {
	single, err := Trajectory(233)
	require.NoError(t, err)
	double, err := Trajectory(466)
	require.NoError(t, err)

	for i := range single {
		assert.InDelta(t, 2*single[i].EffectiveCapacityKWh, double[i].EffectiveCapacityKWh, 1e-9)
		assert.InDelta(t, 2*single[i].CapacityLossKWh, double[i].CapacityLossKWh, 1e-9)
	}
}

func TestTrajectory_RejectsNonPositiveEnergy(t *testing.T) {
	_, err := Trajectory(0)
	assert.Error(t, err)
	_, err = Trajectory(-233)
	assert.Error(t, err)
}

func TestSOHAt(t *testing.T) {
	soh, err := SOHAt(0)
	require.NoError(t, err)
	assert.InDelta(t, 100.00, soh, 1e-9)

	soh, err = SOHAt(1)
	require.NoError(t, err)
	assert.InDelta(t, 93.78, soh, 1e-9)

	soh, err = SOHAt(20)
	require.NoError(t, err)
	assert.InDelta(t, 60.48, soh, 1e-9)

	// No interpolation or extrapolation beyond the 21 reference points.
	_, err = SOHAt(-1)
	assert.Error(t, err)
	_, err = SOHAt(21)
	assert.Error(t, err)
}

func TestEOLYear(t *testing.T) {
	// 79.95% at year 15 is the first point below the 80% threshold.
	assert.Equal(t, 15, EOLYear())
}
