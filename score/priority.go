package score

import (
	"sort"
	"strings"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

// MaxPriorityLocations caps the ranked intervention list.
const MaxPriorityLocations = 5

var pollutionRiskOrder = map[string]int{
	schema.PollutionRiskHigh:   3,
	schema.PollutionRiskMedium: 2,
	schema.PollutionRiskLow:    1,
}

// defaultPriorityLocations is the list-level fallback served verbatim when no
// zone telemetry exists for the scope.
var defaultPriorityLocations = []schema.PriorityLocation{
	{Rank: 1, Name: "Mott Haven", Borough: schema.BoroughBronx, RiskScore: 88, AirQualityIndex: 142, PopulationAtRisk: 24000, EstimatedLivesSaved: "9-14", Priority: schema.TierCritical},
	{Rank: 2, Name: "East Harlem", Borough: schema.BoroughManhattan, RiskScore: 84, AirQualityIndex: 128, PopulationAtRisk: 19000, EstimatedLivesSaved: "7-11", Priority: schema.TierHigh},
	{Rank: 3, Name: "Downtown Brooklyn", Borough: schema.BoroughBrooklyn, RiskScore: 79, AirQualityIndex: 118, PopulationAtRisk: 21000, EstimatedLivesSaved: "6-10", Priority: schema.TierHigh},
	{Rank: 4, Name: "Long Island City", Borough: schema.BoroughQueens, RiskScore: 73, AirQualityIndex: 102, PopulationAtRisk: 15000, EstimatedLivesSaved: "5-8", Priority: schema.TierHigh},
	{Rank: 5, Name: "St. George", Borough: schema.BoroughStatenIsland, RiskScore: 58, AirQualityIndex: 88, PopulationAtRisk: 9000, EstimatedLivesSaved: "3-5", Priority: schema.TierModerate},
}

// DefaultPriorityLocations returns a copy of the built-in fallback list.
func DefaultPriorityLocations() []schema.PriorityLocation {
	locations := make([]schema.PriorityLocation, len(defaultPriorityLocations))
	copy(locations, defaultPriorityLocations)
	return locations
}

// displayName turns a zone id into a neighborhood-style label.
func displayName(zoneID string) string {
	name := strings.ReplaceAll(zoneID, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// RankPriorityLocations orders the zones by pollution-risk category, then
// total incidents, then mean congestion, all descending, and returns at most
// MaxPriorityLocations ranked entries. Zones whose borough does not match an
// active filter are dropped before ranks are assigned, so ranks stay dense
// over the filtered result. An empty input yields the built-in default list.
func RankPriorityLocations(zones []schema.ZoneSample, borough string, profile schema.BoroughProfile) []schema.PriorityLocation {
	if len(zones) == 0 {
		return DefaultPriorityLocations()
	}

	filtered := make([]schema.ZoneSample, 0, len(zones))
	for _, z := range zones {
		if borough != "" && borough != schema.BoroughAll && z.Borough != borough {
			continue
		}
		filtered = append(filtered, z)
	}
	if len(filtered) == 0 {
		return DefaultPriorityLocations()
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if pollutionRiskOrder[a.TrafficPollutionRisk] != pollutionRiskOrder[b.TrafficPollutionRisk] {
			return pollutionRiskOrder[a.TrafficPollutionRisk] > pollutionRiskOrder[b.TrafficPollutionRisk]
		}
		if a.TotalIncidents() != b.TotalIncidents() {
			return a.TotalIncidents() > b.TotalIncidents()
		}
		return a.AvgCongestionIndex > b.AvgCongestionIndex
	})

	if len(filtered) > MaxPriorityLocations {
		filtered = filtered[:MaxPriorityLocations]
	}

	locations := make([]schema.PriorityLocation, 0, len(filtered))
	for i, z := range filtered {
		riskScore := ZoneRiskScore(z)
		congestionPercent := clampPercent(z.AvgCongestionIndex * 100)

		pm25, ok := OptionalPositive(z.AvgPM25)
		if !ok {
			pm25 = profile.PM25
		}

		min, max := LivesSavedRange(z.TotalIncidents(), congestionPercent, pm25)

		locations = append(locations, schema.PriorityLocation{
			Rank:                i + 1,
			Name:                displayName(z.ZoneID),
			Borough:             z.Borough,
			RiskScore:           riskScore,
			AirQualityIndex:     AirQualityIndex(pm25),
			PopulationAtRisk:    PopulationAtRisk(z.SegmentCount, z.TotalIncidents(), congestionPercent),
			EstimatedLivesSaved: FormatLivesSaved(min, max),
			Priority:            ListTierFor(riskScore),
		})
	}

	return locations
}
