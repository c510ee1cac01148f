package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

func TestBoroughRiskScoreBronxScenario(t *testing.T) {
	zones := []schema.ZoneSample{
		{
			Borough:              schema.BoroughBronx,
			AvgCongestionIndex:   0.8,
			IncidentCount:        5,
			TransitDelayCount:    1,
			TrafficPollutionRisk: schema.PollutionRiskHigh,
			SegmentCount:         10,
		},
	}

	score := BoroughRiskScore(zones)
	assert.Equal(t, 80.0, score)
	assert.Equal(t, schema.TierHigh, PriorityTierFor(score))
}

func TestZoneRiskScore(t *testing.T) {
	zone := schema.ZoneSample{
		AvgCongestionIndex:   0.8,
		IncidentCount:        5,
		SegmentCount:         10,
		TrafficPollutionRisk: schema.PollutionRiskHigh,
	}

	// 40 + min(30, 5/10*30) + 0.8*30 = 40 + 15 + 24
	assert.Equal(t, 79.0, ZoneRiskScore(zone))
}

func TestZoneRiskScoreIncidentSaturation(t *testing.T) {
	zone := schema.ZoneSample{
		AvgCongestionIndex:   1,
		IncidentCount:        500,
		SegmentCount:         10,
		TrafficPollutionRisk: schema.PollutionRiskHigh,
	}

	assert.Equal(t, 100.0, ZoneRiskScore(zone))
}

func TestZoneRiskScoreMonotonicInCongestion(t *testing.T) {
	previous := -1.0
	for c := 0.0; c <= 1.0; c += 0.05 {
		zone := schema.ZoneSample{
			AvgCongestionIndex:   c,
			IncidentCount:        3,
			SegmentCount:         8,
			TrafficPollutionRisk: schema.PollutionRiskMedium,
		}
		score := ZoneRiskScore(zone)
		assert.GreaterOrEqual(t, score, previous)
		previous = score
	}
}

func TestRiskScoreBounds(t *testing.T) {
	risks := []string{schema.PollutionRiskHigh, schema.PollutionRiskMedium, schema.PollutionRiskLow, ""}
	for _, risk := range risks {
		for _, incidents := range []int{0, 1, 10, 1000} {
			for _, congestion := range []float64{0, 0.3, 1} {
				zone := schema.ZoneSample{
					AvgCongestionIndex:   congestion,
					IncidentCount:        incidents,
					SegmentCount:         10,
					TrafficPollutionRisk: risk,
				}
				score := ZoneRiskScore(zone)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 100.0)

				borough := BoroughRiskScore([]schema.ZoneSample{zone})
				assert.GreaterOrEqual(t, borough, 0.0)
				assert.LessOrEqual(t, borough, 100.0)
			}
		}
	}
}

func TestBoroughRiskScoreWorstCategoryWins(t *testing.T) {
	zones := []schema.ZoneSample{
		{TrafficPollutionRisk: schema.PollutionRiskLow, SegmentCount: 5},
		{TrafficPollutionRisk: schema.PollutionRiskMedium, SegmentCount: 5},
	}
	// pollution flat 15, no incidents, no congestion
	assert.Equal(t, 15.0, BoroughRiskScore(zones))

	zones = append(zones, schema.ZoneSample{TrafficPollutionRisk: schema.PollutionRiskHigh, SegmentCount: 5})
	assert.Equal(t, 30.0, BoroughRiskScore(zones))
}

func TestPriorityTierThresholds(t *testing.T) {
	assert.Equal(t, schema.TierCritical, PriorityTierFor(86))
	assert.Equal(t, schema.TierHigh, PriorityTierFor(85))
	assert.Equal(t, schema.TierHigh, PriorityTierFor(71))
	assert.Equal(t, schema.TierElevated, PriorityTierFor(70))
	assert.Equal(t, schema.TierElevated, PriorityTierFor(51))
	assert.Equal(t, schema.TierModerate, PriorityTierFor(50))
	assert.Equal(t, schema.TierModerate, PriorityTierFor(31))
	assert.Equal(t, schema.TierLow, PriorityTierFor(30))
	assert.Equal(t, schema.TierLow, PriorityTierFor(0))
}

func TestListTierThresholds(t *testing.T) {
	assert.Equal(t, schema.TierCritical, ListTierFor(90))
	assert.Equal(t, schema.TierHigh, ListTierFor(75))
	assert.Equal(t, schema.TierModerate, ListTierFor(70))
	assert.Equal(t, schema.TierModerate, ListTierFor(0))
}
