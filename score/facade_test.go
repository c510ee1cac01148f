package score

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

func fixtureSnapshot() Snapshot {
	pm := 24.0
	return Snapshot{
		Borough: schema.BoroughBronx,
		Zones: []schema.ZoneSample{
			{
				ZoneID:               "bronx_hub",
				Borough:              schema.BoroughBronx,
				AvgCongestionIndex:   0.8,
				AvgSpeedMPH:          14,
				AvgPM25:              &pm,
				IncidentCount:        5,
				TransitDelayCount:    1,
				TrafficPollutionRisk: schema.PollutionRiskHigh,
				SegmentCount:         10,
			},
		},
		Segments: []schema.SegmentSample{
			{
				SegmentID:       "seg-1",
				Borough:         schema.BoroughBronx,
				SpeedMPH:        11,
				CongestionIndex: 0.9,
				IncidentFlag:    true,
				TimestampBucket: time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestDeriveIdempotent(t *testing.T) {
	snap := fixtureSnapshot()

	first := Derive(snap)
	second := Derive(snap)
	assert.Equal(t, first, second)
}

func TestDeriveMetricsPrefersZoneAggregates(t *testing.T) {
	metrics := DeriveMetrics(fixtureSnapshot())

	// zone means win over segment values
	assert.Equal(t, 80.0, metrics.CongestionPercent)
	assert.Equal(t, 14.0, metrics.CurrentSpeedMPH)
	// zone incident total (6) beats segment flag count (1)
	assert.Equal(t, 6, metrics.CollisionCount)
}

func TestDeriveMetricsSegmentFallback(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Zones[0].AvgSpeedMPH = 0

	metrics := DeriveMetrics(snap)
	assert.Equal(t, 11.0, metrics.CurrentSpeedMPH)
}

func TestDeriveMetricsEmptyStatenIsland(t *testing.T) {
	metrics := DeriveMetrics(Snapshot{Borough: schema.BoroughStatenIsland})

	// the single-borough incident floor, never a hard zero
	assert.Equal(t, 3, metrics.CollisionCount)
	profile := schema.ProfileFor(schema.BoroughStatenIsland)
	assert.Equal(t, profile.SpeedMPH, metrics.CurrentSpeedMPH)
	assert.Equal(t, profile.CongestionPercent, metrics.CongestionPercent)
}

func TestDeriveMetricsEmptyAllBoroughs(t *testing.T) {
	metrics := DeriveMetrics(Snapshot{})
	assert.Equal(t, 12, metrics.CollisionCount)
}

func TestDeriveMetricsInvalidTelemetryFallsBack(t *testing.T) {
	nan := math.NaN()
	snap := Snapshot{
		Borough: schema.BoroughQueens,
		Zones: []schema.ZoneSample{
			{ZoneID: "qn_1", Borough: schema.BoroughQueens, AvgCongestionIndex: math.NaN(), AvgSpeedMPH: -2, AvgPM25: &nan},
		},
		Segments: []schema.SegmentSample{
			{SegmentID: "seg-2", SpeedMPH: math.NaN(), CongestionIndex: math.Inf(1)},
		},
	}

	metrics := DeriveMetrics(snap)
	profile := schema.ProfileFor(schema.BoroughQueens)
	assert.Equal(t, profile.CongestionPercent, metrics.CongestionPercent)
	assert.Equal(t, profile.SpeedMPH, metrics.CurrentSpeedMPH)
	assert.Equal(t, 3, metrics.CollisionCount)
}

func TestDeriveMetricsDomainBounds(t *testing.T) {
	snapshots := []Snapshot{
		{},
		{Borough: schema.BoroughManhattan},
		fixtureSnapshot(),
	}

	for _, snap := range snapshots {
		m := DeriveMetrics(snap)
		assert.GreaterOrEqual(t, m.CongestionPercent, 0.0)
		assert.LessOrEqual(t, m.CongestionPercent, 100.0)
		assert.GreaterOrEqual(t, m.ResponseTimeDelta, 0.0)
		assert.GreaterOrEqual(t, m.CongestionDelta, 0.0)
		assert.GreaterOrEqual(t, m.AirQualityDelta, 0.0)
		assert.GreaterOrEqual(t, m.CollisionCount, 1)
		assert.False(t, math.IsNaN(m.ResponseTimeMin))
		assert.False(t, math.IsNaN(m.CurrentSpeedMPH))
	}
}

func TestDeriveSeriesShapes(t *testing.T) {
	dashboard := Derive(fixtureSnapshot())

	assert.Len(t, dashboard.SpeedTrend, schema.SparklineLength)
	assert.Len(t, dashboard.CongestionTrend, schema.SparklineLength)
	assert.Len(t, dashboard.AirQualityTrend, schema.SparklineLength)
	assert.Len(t, dashboard.HourlySpeeds, schema.HourlyProfileLength)

	for _, v := range dashboard.CongestionTrend {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestDeriveRushHourFill(t *testing.T) {
	// one real sample at 08:00; every other rush hour is heuristically filled
	dashboard := Derive(fixtureSnapshot())
	referenceSpeed := schema.ProfileFor(schema.BoroughBronx).SpeedMPH

	assert.Equal(t, 11.0, dashboard.HourlySpeeds[8])
	for _, hour := range []int{7, 9, 17, 18, 19} {
		assert.InDelta(t, 0.7*referenceSpeed, dashboard.HourlySpeeds[hour], 1e-9)
	}
}
