package schema

// PriorityTier labels a risk score band.
type PriorityTier string

const (
	TierCritical PriorityTier = "CRITICAL"
	TierHigh     PriorityTier = "HIGH"
	TierElevated PriorityTier = "ELEVATED"
	TierModerate PriorityTier = "MODERATE"
	TierLow      PriorityTier = "LOW"
)

// PriorityLocation is one ranked entry of the intervention list. Entries are
// derived fresh on every refresh; the rank is dense and 1-based over the
// filtered result and carries no identity across refreshes.
type PriorityLocation struct {
	Rank                int          `json:"rank"`
	Name                string       `json:"name"`
	Borough             string       `json:"borough"`
	RiskScore           float64      `json:"risk_score"`
	AirQualityIndex     int          `json:"air_quality_index"`
	PopulationAtRisk    int          `json:"population_at_risk"`
	EstimatedLivesSaved string       `json:"estimated_lives_saved"`
	Priority            PriorityTier `json:"priority"`
}
