package score

import (
	"fmt"
	"math"
)

// multiplierTier tables are ordered descending; the first threshold strictly
// exceeded wins, the final row is the neutral default.
type multiplierTier struct {
	threshold float64
	factor    float64
}

var populationCongestionTiers = []multiplierTier{
	{70, 1.3},
	{50, 1.15},
	{0, 1.0},
}

var populationIncidentRateTiers = []multiplierTier{
	{10, 1.2},
	{5, 1.1},
	{0, 1.0},
}

// coherenceTiers couples congestion with the air-quality signals derived from
// it, on both the real and synthetic paths.
var coherenceTiers = []multiplierTier{
	{70, 1.5},
	{50, 1.3},
	{35, 1.1},
	{0, 1.0},
}

func tierFactor(tiers []multiplierTier, v float64) float64 {
	for _, t := range tiers {
		if v > t.threshold {
			return t.factor
		}
	}
	return tiers[len(tiers)-1].factor
}

// CongestionMultiplier returns the coherence multiplier for a congestion
// percentage.
func CongestionMultiplier(congestionPercent float64) float64 {
	return tierFactor(coherenceTiers, congestionPercent)
}

// LivesSavedRange estimates the daily lives-saved band for an intervention.
// The base scales with incidents; heavy congestion and poor air each widen
// the upper bound.
func LivesSavedRange(totalIncidents int, congestionPercent, pm25 float64) (int, int) {
	base := int(math.Round(float64(totalIncidents) * 1.5))
	if base < 2 {
		base = 2
	}

	congestionImpact := 0
	if congestionPercent > 70 {
		congestionImpact = int(math.Round(congestionPercent / 10))
	}

	airQualityImpact := 0
	if pm25 > 25 {
		airQualityImpact = int(math.Round((pm25 - 15) / 2))
	}

	return base, base + congestionImpact + airQualityImpact
}

// FormatLivesSaved renders the range in the "min-max" display form.
func FormatLivesSaved(min, max int) string {
	return fmt.Sprintf("%d-%d", min, max)
}

// PopulationAtRisk scales the zone's rough population (1000 per segment) by
// the congestion and incident-rate multiplier tiers.
func PopulationAtRisk(segmentCount, totalIncidents int, congestionPercent float64) int {
	if segmentCount <= 0 {
		return 0
	}

	base := float64(segmentCount * 1000)
	congestionFactor := tierFactor(populationCongestionTiers, congestionPercent)

	incidentRate := float64(totalIncidents) / float64(segmentCount) * 100
	incidentFactor := tierFactor(populationIncidentRateTiers, incidentRate)

	return int(math.Round(base * congestionFactor * incidentFactor))
}

// AirQualityIndex is a coarse PM2.5 to AQI-style expansion used only for the
// priority-list estimate column.
func AirQualityIndex(pm25 float64) int {
	return int(math.Round(pm25 * 4))
}

// AirQualityComplaints estimates complaint volume from PM2.5 coupled to the
// congestion tier, so a congested scope never shows a flat air-quality
// picture.
func AirQualityComplaints(pm25, congestionPercent float64) int {
	return int(math.Round(pm25 * 1.8 * CongestionMultiplier(congestionPercent)))
}
