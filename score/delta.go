package score

// ChangeRate returns the percentage change from old to new. A zero base with
// any new value reads as a 100% change.
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return 0
		}
		return 100
	}

	return (new - old) / old * 100
}

// TrendDelta is ChangeRate clamped to the non-negative domain DerivedMetrics
// requires of its trend fields.
func TrendDelta(current, baseline float64) float64 {
	rate := ChangeRate(current, baseline)
	if rate < 0 {
		return 0
	}
	return rate
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
