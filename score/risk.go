package score

import (
	"math"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

// Component weights of the 0-100 risk scores.
const (
	zonePollutionHigh   = 40
	zonePollutionMedium = 20
	zonePollutionLow    = 5

	boroughPollutionHigh   = 30
	boroughPollutionMedium = 15
	boroughPollutionLow    = 5

	incidentWeight          = 30
	congestionWeight        = 30
	boroughCongestionWeight = 40

	// borough incident component saturates at this many incidents
	boroughIncidentSaturation = 10
)

// tierThreshold tables are ordered descending; the first matching entry wins.
type tierThreshold struct {
	score float64
	tier  schema.PriorityTier
}

var priorityTiers = []tierThreshold{
	{86, schema.TierCritical},
	{71, schema.TierHigh},
	{51, schema.TierElevated},
	{31, schema.TierModerate},
	{0, schema.TierLow},
}

// listTiers is the simplified three-tier variant used by the ranked
// priority-location list.
var listTiers = []tierThreshold{
	{86, schema.TierCritical},
	{71, schema.TierHigh},
	{0, schema.TierModerate},
}

func tierFor(tiers []tierThreshold, score float64) schema.PriorityTier {
	for _, t := range tiers {
		if score >= t.score {
			return t.tier
		}
	}
	return tiers[len(tiers)-1].tier
}

// PriorityTierFor maps a risk score onto the five-tier scale.
func PriorityTierFor(score float64) schema.PriorityTier {
	return tierFor(priorityTiers, score)
}

// ListTierFor maps a risk score onto the three-tier scale of the priority
// list.
func ListTierFor(score float64) schema.PriorityTier {
	return tierFor(listTiers, score)
}

func zonePollutionComponent(risk string) float64 {
	switch risk {
	case schema.PollutionRiskHigh:
		return zonePollutionHigh
	case schema.PollutionRiskMedium:
		return zonePollutionMedium
	default:
		return zonePollutionLow
	}
}

// ZoneRiskScore combines a zone's pollution category, incident density and
// congestion into a rounded 0-100 score.
func ZoneRiskScore(z schema.ZoneSample) float64 {
	pollution := zonePollutionComponent(z.TrafficPollutionRisk)

	incident := float64(0)
	if z.SegmentCount > 0 {
		incident = math.Min(incidentWeight, float64(z.IncidentCount)/float64(z.SegmentCount)*incidentWeight)
	}

	congestion := float64(0)
	if Valid(z.AvgCongestionIndex) {
		congestion = z.AvgCongestionIndex * congestionWeight
	}

	return math.Round(math.Min(100, pollution+incident+congestion))
}

// BoroughRiskScore scores a borough from its zones with the heavier
// congestion weighting and a flat pollution term driven by the worst zone
// category present.
func BoroughRiskScore(zones []schema.ZoneSample) float64 {
	if len(zones) == 0 {
		return 0
	}

	pollution := float64(boroughPollutionLow)
	totalIncidents := 0
	congestions := make([]float64, 0, len(zones))
	for _, z := range zones {
		switch z.TrafficPollutionRisk {
		case schema.PollutionRiskHigh:
			pollution = boroughPollutionHigh
		case schema.PollutionRiskMedium:
			if pollution < boroughPollutionMedium {
				pollution = boroughPollutionMedium
			}
		}
		totalIncidents += z.TotalIncidents()
		congestions = append(congestions, z.AvgCongestionIndex)
	}

	incident := math.Min(1, float64(totalIncidents)/boroughIncidentSaturation) * incidentWeight

	congestion := float64(0)
	if mean, ok := MeanOf(congestions, Valid); ok {
		congestion = mean * boroughCongestionWeight
	}

	return math.Round(math.Min(100, pollution+incident+congestion))
}
