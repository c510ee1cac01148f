package api

import (
	"github.com/ThilakNarasimhamurthy/Dot/schema"
	"github.com/ThilakNarasimhamurthy/Dot/score"
)

// Raw snapshot documents may carry NaN numerics from upstream sensors, which
// JSON encoding rejects. Display copies are scrubbed here; the derivation
// core never sees these zeroes because it sanitizes its own input.

func cleanZoneForDisplay(z schema.ZoneSample) schema.ZoneSample {
	if !score.Valid(z.AvgCongestionIndex) {
		z.AvgCongestionIndex = 0
	}
	if !score.Valid(z.AvgSpeedMPH) {
		z.AvgSpeedMPH = 0
	}
	if z.AvgPM25 != nil && !score.Valid(*z.AvgPM25) {
		z.AvgPM25 = nil
	}
	return z
}

func cleanSegmentForDisplay(s schema.SegmentSample) schema.SegmentSample {
	if !score.Valid(s.SpeedMPH) {
		s.SpeedMPH = 0
	}
	if !score.Valid(s.CongestionIndex) {
		s.CongestionIndex = 0
	}
	if !score.Valid(s.DataConfidenceScore) {
		s.DataConfidenceScore = 0
	}
	if s.PM25Nearby != nil && !score.Valid(*s.PM25Nearby) {
		s.PM25Nearby = nil
	}
	return s
}
