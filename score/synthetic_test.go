package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

func TestSyntheticMetricsDeterministic(t *testing.T) {
	profile := schema.ProfileFor(schema.BoroughBrooklyn)

	first := SyntheticMetrics(profile, schema.BoroughBrooklyn)
	second := SyntheticMetrics(profile, schema.BoroughBrooklyn)
	assert.Equal(t, first, second)
}

func TestSyntheticMetricsCoherence(t *testing.T) {
	// Manhattan baseline congestion is 78%, which sits in the >70 tier, so
	// the air-quality trend must reflect the 1.5x multiplier.
	profile := schema.ProfileFor(schema.BoroughManhattan)
	assert.Greater(t, profile.CongestionPercent, 70.0)

	metrics := SyntheticMetrics(profile, schema.BoroughManhattan)
	assert.Equal(t, 1.5, CongestionMultiplier(profile.CongestionPercent))
	assert.Equal(t, 5.0, metrics.AirQualityDelta)
	assert.Equal(t, 77, metrics.AirQualityComplaints) // round(28.5 * 1.8 * 1.5)
}

func TestSyntheticMetricsUsesProfileScalars(t *testing.T) {
	profile := schema.ProfileFor(schema.BoroughStatenIsland)
	metrics := SyntheticMetrics(profile, schema.BoroughStatenIsland)

	assert.Equal(t, profile.ResponseTimeMin, metrics.ResponseTimeMin)
	assert.Equal(t, profile.CongestionPercent, metrics.CongestionPercent)
	assert.Equal(t, profile.SpeedMPH, metrics.CurrentSpeedMPH)
	assert.Equal(t, 3, metrics.CollisionCount)
}

func TestCongestionMultiplierTiers(t *testing.T) {
	assert.Equal(t, 1.5, CongestionMultiplier(80))
	assert.Equal(t, 1.3, CongestionMultiplier(70))
	assert.Equal(t, 1.3, CongestionMultiplier(60))
	assert.Equal(t, 1.1, CongestionMultiplier(50))
	assert.Equal(t, 1.1, CongestionMultiplier(40))
	assert.Equal(t, 1.0, CongestionMultiplier(35))
	assert.Equal(t, 1.0, CongestionMultiplier(0))
}

func TestSyntheticSeriesDeterministic(t *testing.T) {
	first := SyntheticSeries(50, 8, 0.45, schema.SparklineLength, 0, 100)
	second := SyntheticSeries(50, 8, 0.45, schema.SparklineLength, 0, 100)
	assert.Equal(t, first, second)
}

func TestSyntheticSeriesShape(t *testing.T) {
	series := SyntheticSeries(95, 10, 0.45, schema.SparklineLength, 0, 100)
	assert.Len(t, series, schema.SparklineLength)

	distinct := false
	for i, v := range series {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
		if i > 0 && v != series[0] {
			distinct = true
		}
	}
	assert.True(t, distinct, "series bars should be visually distinct")
}
