package score

import "github.com/ThilakNarasimhamurthy/Dot/schema"

var rushHours = map[int]bool{
	7: true, 8: true, 9: true,
	17: true, 18: true, 19: true,
}

var nightHours = map[int]bool{
	22: true, 23: true,
	0: true, 1: true, 2: true, 3: true, 4: true, 5: true,
}

// Empty-hour fill factors relative to the borough baseline speed.
const (
	rushHourFactor  = 0.7
	nightHourFactor = 1.2
)

// HourlySpeedProfile groups segment samples by the local hour of their
// timestamp bucket and returns the 24-point mean-speed profile. Hours without
// a valid sample are filled heuristically: rush hours run at 0.7x the borough
// baseline, night hours at 1.2x, and every other hour at the scope's current
// average speed. referenceSpeed is always the borough baseline, whether the
// surrounding context is real or synthetic.
func HourlySpeedProfile(segments []schema.SegmentSample, referenceSpeed, currentSpeed float64) schema.TrendSeries {
	var sums [schema.HourlyProfileLength]float64
	var counts [schema.HourlyProfileLength]int

	for _, s := range segments {
		if !ValidPositive(s.SpeedMPH) {
			continue
		}
		hour := s.TimestampBucket.Hour()
		sums[hour] += s.SpeedMPH
		counts[hour]++
	}

	profile := make(schema.TrendSeries, schema.HourlyProfileLength)
	for hour := 0; hour < schema.HourlyProfileLength; hour++ {
		switch {
		case counts[hour] > 0:
			profile[hour] = sums[hour] / float64(counts[hour])
		case rushHours[hour]:
			profile[hour] = rushHourFactor * referenceSpeed
		case nightHours[hour]:
			profile[hour] = nightHourFactor * referenceSpeed
		default:
			profile[hour] = currentSpeed
		}
	}

	return profile
}
