package score

import "github.com/ThilakNarasimhamurthy/Dot/schema"

// Snapshot is the per-refresh input to the derivation pass: the latest zone
// and segment collections, optionally pre-filtered to one borough.
type Snapshot struct {
	Borough  string
	Zones    []schema.ZoneSample
	Segments []schema.SegmentSample
}

func (s Snapshot) scope() string {
	if s.Borough == "" {
		return schema.BoroughAll
	}
	return s.Borough
}

func zoneValues(zones []schema.ZoneSample, f func(schema.ZoneSample) float64) []float64 {
	values := make([]float64, 0, len(zones))
	for _, z := range zones {
		values = append(values, f(z))
	}
	return values
}

func segmentValues(segments []schema.SegmentSample, f func(schema.SegmentSample) float64) []float64 {
	values := make([]float64, 0, len(segments))
	for _, s := range segments {
		values = append(values, f(s))
	}
	return values
}

// scopePM25 resolves the scope's PM2.5: zone aggregates first, raw segment
// readings second, borough baseline last.
func scopePM25(snap Snapshot, profile schema.BoroughProfile) (float64, bool) {
	zonePMs := make([]float64, 0, len(snap.Zones))
	for _, z := range snap.Zones {
		if v, ok := OptionalPositive(z.AvgPM25); ok {
			zonePMs = append(zonePMs, v)
		}
	}
	if mean, ok := MeanOf(zonePMs, ValidPositive); ok {
		return mean, true
	}

	segmentPMs := make([]float64, 0, len(snap.Segments))
	for _, s := range snap.Segments {
		if v, ok := OptionalPositive(s.PM25Nearby); ok {
			segmentPMs = append(segmentPMs, v)
		}
	}
	if mean, ok := MeanOf(segmentPMs, ValidPositive); ok {
		return mean, true
	}

	return profile.PM25, false
}

// DeriveMetrics runs one aggregation and scoring pass for the snapshot's
// scope. The pass is pure: same snapshot, same output, no side effects.
func DeriveMetrics(snap Snapshot) schema.DerivedMetrics {
	borough := snap.scope()
	profile := schema.ProfileFor(borough)

	zoneCongestion, zoneCongestionOK := MeanOf(zoneValues(snap.Zones, func(z schema.ZoneSample) float64 { return z.AvgCongestionIndex }), Valid)
	segCongestion, segCongestionOK := MeanOf(segmentValues(snap.Segments, func(s schema.SegmentSample) float64 { return s.CongestionIndex }), Valid)
	congestionIdx, congestionOK := PreferZoneMean(zoneCongestion, zoneCongestionOK, segCongestion, segCongestionOK)

	zoneSpeed, zoneSpeedOK := MeanOf(zoneValues(snap.Zones, func(z schema.ZoneSample) float64 { return z.AvgSpeedMPH }), ValidPositive)
	segSpeed, segSpeedOK := MeanOf(segmentValues(snap.Segments, func(s schema.SegmentSample) float64 { return s.SpeedMPH }), ValidPositive)
	speed, speedOK := PreferZoneMean(zoneSpeed, zoneSpeedOK, segSpeed, segSpeedOK)

	pm25, pm25OK := scopePM25(snap, profile)

	zoneIncidents := 0
	for _, z := range snap.Zones {
		zoneIncidents += z.TotalIncidents()
	}
	segmentIncidents := CountSegments(snap.Segments, func(s schema.SegmentSample) bool { return s.IncidentFlag }) +
		CountSegments(snap.Segments, func(s schema.SegmentSample) bool { return s.TransitDelayFlag })

	// every candidate field absent means the scope has no usable telemetry
	if !congestionOK && !speedOK && !pm25OK && zoneIncidents == 0 && segmentIncidents == 0 {
		return SyntheticMetrics(profile, borough)
	}

	congestionPercent := profile.CongestionPercent
	if congestionOK {
		congestionPercent = clampPercent(congestionIdx * 100)
	}
	if !speedOK {
		speed = profile.SpeedMPH
	}

	multiplier := CongestionMultiplier(congestionPercent)
	responseTime := profile.ResponseTimeMin * multiplier

	return schema.DerivedMetrics{
		ResponseTimeMin:      responseTime,
		CongestionPercent:    congestionPercent,
		CollisionCount:       ReconcileIncidents(zoneIncidents, segmentIncidents, borough),
		AirQualityComplaints: AirQualityComplaints(pm25, congestionPercent),
		CurrentSpeedMPH:      speed,
		ResponseTimeDelta:    TrendDelta(responseTime, profile.ResponseTimeMin),
		CongestionDelta:      TrendDelta(congestionPercent, profile.CongestionPercent),
		AirQualityDelta:      TrendDelta(pm25, profile.PM25),
	}
}

// Derive recomputes every dashboard view from one snapshot: headline metrics,
// the ranked priority list, sparkline series and the hourly speed profile.
func Derive(snap Snapshot) schema.DashboardMetrics {
	borough := snap.scope()
	profile := schema.ProfileFor(borough)

	metrics := DeriveMetrics(snap)
	pm25, _ := scopePM25(snap, profile)

	return schema.DashboardMetrics{
		Borough:           borough,
		Metrics:           metrics,
		PriorityLocations: RankPriorityLocations(snap.Zones, borough, profile),
		SpeedTrend:        SyntheticSeries(metrics.CurrentSpeedMPH, 3.5, 0.6, schema.SparklineLength, 1, 60),
		CongestionTrend:   SyntheticSeries(metrics.CongestionPercent, 8, 0.45, schema.SparklineLength, 0, 100),
		AirQualityTrend:   SyntheticSeries(float64(AirQualityIndex(pm25)), 12, 0.5, schema.SparklineLength, 0, 500),
		HourlySpeeds:      HourlySpeedProfile(snap.Segments, profile.SpeedMPH, metrics.CurrentSpeedMPH),
	}
}
