package schema

// Borough names as they appear in the upstream feed. BoroughAll is the
// composite scope used when no borough filter is applied.
const (
	BoroughAll          = "All NYC Boroughs"
	BoroughManhattan    = "Manhattan"
	BoroughBrooklyn     = "Brooklyn"
	BoroughQueens       = "Queens"
	BoroughBronx        = "Bronx"
	BoroughStatenIsland = "Staten Island"
)

// Boroughs lists every accepted borough filter value.
var Boroughs = []string{
	BoroughAll,
	BoroughManhattan,
	BoroughBrooklyn,
	BoroughQueens,
	BoroughBronx,
	BoroughStatenIsland,
}

// ValidBorough reports whether name is one of the accepted filter values.
func ValidBorough(name string) bool {
	for _, b := range Boroughs {
		if b == name {
			return true
		}
	}
	return false
}

// BoroughProfile is the static baseline for one borough. Profiles feed the
// synthetic fallback path only and are never mutated at runtime.
type BoroughProfile struct {
	SpeedMPH          float64 `json:"speed_mph"`
	CongestionPercent float64 `json:"congestion_percent"`
	ResponseTimeMin   float64 `json:"response_time_min"`
	PM25              float64 `json:"pm25"`
}

// DefaultBoroughProfiles holds the per-borough baselines, including the
// all-boroughs composite.
var DefaultBoroughProfiles = map[string]BoroughProfile{
	BoroughManhattan:    {SpeedMPH: 12.4, CongestionPercent: 78, ResponseTimeMin: 9.2, PM25: 28.5},
	BoroughBrooklyn:     {SpeedMPH: 16.8, CongestionPercent: 62, ResponseTimeMin: 8.1, PM25: 22.4},
	BoroughQueens:       {SpeedMPH: 19.5, CongestionPercent: 55, ResponseTimeMin: 8.7, PM25: 19.8},
	BoroughBronx:        {SpeedMPH: 15.2, CongestionPercent: 68, ResponseTimeMin: 9.8, PM25: 26.1},
	BoroughStatenIsland: {SpeedMPH: 24.6, CongestionPercent: 38, ResponseTimeMin: 10.5, PM25: 14.2},
	BoroughAll:          {SpeedMPH: 17.7, CongestionPercent: 60, ResponseTimeMin: 9.3, PM25: 22.2},
}

// ProfileFor returns the baseline profile for a borough, falling back to the
// all-boroughs composite for unknown or empty names.
func ProfileFor(borough string) BoroughProfile {
	if p, ok := DefaultBoroughProfiles[borough]; ok {
		return p
	}
	return DefaultBoroughProfiles[BoroughAll]
}
