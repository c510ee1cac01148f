package score

import (
	"math"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

// Synthetic trend deltas are spread from the congestion multiplier so the
// fallback picture stays internally consistent: a congested baseline implies
// slower response and worse air, never a flat trend.
const (
	responseDeltaSpread   = 8
	congestionDeltaSpread = 12
	airQualityDeltaSpread = 10
)

// SyntheticMetrics derives a full DerivedMetrics from a borough baseline.
// It reads no clock and no random source: for a fixed profile table and scope
// the output is bit-identical on every call.
func SyntheticMetrics(profile schema.BoroughProfile, borough string) schema.DerivedMetrics {
	multiplier := CongestionMultiplier(profile.CongestionPercent)

	return schema.DerivedMetrics{
		ResponseTimeMin:      profile.ResponseTimeMin,
		CongestionPercent:    clampPercent(profile.CongestionPercent),
		CollisionCount:       ReconcileIncidents(0, 0, borough),
		AirQualityComplaints: AirQualityComplaints(profile.PM25, profile.CongestionPercent),
		CurrentSpeedMPH:      profile.SpeedMPH,
		ResponseTimeDelta:    (multiplier - 1) * responseDeltaSpread,
		CongestionDelta:      (multiplier - 1) * congestionDeltaSpread,
		AirQualityDelta:      (multiplier - 1) * airQualityDeltaSpread,
	}
}

// SyntheticSeries builds a fixed-length series around baseline with a
// position-indexed sinusoidal jitter, clamped to [min, max]. Bars come out
// visually distinct yet repeatable; no randomness is involved.
func SyntheticSeries(baseline, amplitude, step float64, length int, min, max float64) schema.TrendSeries {
	series := make(schema.TrendSeries, length)
	for i := range series {
		v := baseline + math.Sin(float64(i)*step)*amplitude
		if v < min {
			v = min
		}
		if v > max {
			v = max
		}
		series[i] = v
	}
	return series
}
