package score

import "github.com/ThilakNarasimhamurthy/Dot/schema"

// Incident floors substituted when both incident counters resolve to zero, so
// sparse data never reads as "definitively zero incidents".
const (
	allBoroughsIncidentFloor   = 12
	singleBoroughIncidentFloor = 3
)

// MeanOf averages the values accepted by valid. The second return is false
// when nothing passes; the mean is never computed over an empty set.
func MeanOf(values []float64, valid func(float64) bool) (float64, bool) {
	sum := float64(0)
	count := 0
	for _, v := range values {
		if valid(v) {
			sum += v
			count++
		}
	}

	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// SumOf totals the values accepted by valid, treating the rest as zero.
func SumOf(values []float64, valid func(float64) bool) float64 {
	sum := float64(0)
	for _, v := range values {
		if valid(v) {
			sum += v
		}
	}
	return sum
}

// CountSegments counts the segments matching pred.
func CountSegments(segments []schema.SegmentSample, pred func(schema.SegmentSample) bool) int {
	count := 0
	for _, s := range segments {
		if pred(s) {
			count++
		}
	}
	return count
}

// PreferZoneMean applies the preferred-source rule: the zone-level mean wins
// whenever it is present and positive, because zone aggregates are built
// upstream from more samples. The segment-level mean is the fallback only.
func PreferZoneMean(zoneMean float64, zoneOK bool, segmentMean float64, segmentOK bool) (float64, bool) {
	if zoneOK && zoneMean > 0 {
		return zoneMean, true
	}
	return segmentMean, segmentOK
}

// ReconcileIncidents merges the two independently maintained incident
// counters, zone aggregates and per-segment flags, by taking the larger sum.
// Either source may undercount; neither double-counts the other. A zero total
// is replaced by the borough-appropriate floor.
func ReconcileIncidents(zoneTotal, segmentTotal int, borough string) int {
	total := zoneTotal
	if segmentTotal > total {
		total = segmentTotal
	}
	if total > 0 {
		return total
	}

	if borough == schema.BoroughAll || borough == "" {
		return allBoroughsIncidentFloor
	}
	return singleBoroughIncidentFloor
}
