package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

func TestMeanOfExcludesInvalidValues(t *testing.T) {
	mean, ok := MeanOf([]float64{10, math.NaN(), 20, math.Inf(1)}, Valid)
	assert.True(t, ok)
	assert.Equal(t, 15.0, mean)
}

func TestMeanOfEmpty(t *testing.T) {
	_, ok := MeanOf(nil, Valid)
	assert.False(t, ok)

	_, ok = MeanOf([]float64{math.NaN(), math.NaN()}, Valid)
	assert.False(t, ok)
}

func TestMeanOfPositiveOnly(t *testing.T) {
	mean, ok := MeanOf([]float64{0, -3, 12, 18}, ValidPositive)
	assert.True(t, ok)
	assert.Equal(t, 15.0, mean)
}

func TestSumOfTreatsInvalidAsZero(t *testing.T) {
	assert.Equal(t, 30.0, SumOf([]float64{10, math.NaN(), 20}, Valid))
	assert.Equal(t, 0.0, SumOf(nil, Valid))
}

func TestPreferZoneMean(t *testing.T) {
	// zone aggregates win when usable
	v, ok := PreferZoneMean(18, true, 10, true)
	assert.True(t, ok)
	assert.Equal(t, 18.0, v)

	// a zero or absent zone mean falls back to segments
	v, ok = PreferZoneMean(0, true, 10, true)
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)

	v, ok = PreferZoneMean(0, false, 10, true)
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)

	_, ok = PreferZoneMean(0, false, 0, false)
	assert.False(t, ok)
}

func TestReconcileIncidentsTakesLarger(t *testing.T) {
	assert.Equal(t, 9, ReconcileIncidents(9, 4, schema.BoroughBronx))
	assert.Equal(t, 9, ReconcileIncidents(4, 9, schema.BoroughBronx))
}

func TestReconcileIncidentsFloors(t *testing.T) {
	assert.Equal(t, 12, ReconcileIncidents(0, 0, schema.BoroughAll))
	assert.Equal(t, 12, ReconcileIncidents(0, 0, ""))
	assert.Equal(t, 3, ReconcileIncidents(0, 0, schema.BoroughStatenIsland))
	assert.Equal(t, 3, ReconcileIncidents(0, 0, schema.BoroughQueens))
}

func TestCountSegments(t *testing.T) {
	segments := []schema.SegmentSample{
		{IncidentFlag: true},
		{IncidentFlag: false, TransitDelayFlag: true},
		{IncidentFlag: true, TransitDelayFlag: true},
	}

	incidents := CountSegments(segments, func(s schema.SegmentSample) bool { return s.IncidentFlag })
	delays := CountSegments(segments, func(s schema.SegmentSample) bool { return s.TransitDelayFlag })
	assert.Equal(t, 2, incidents)
	assert.Equal(t, 2, delays)
}

func TestOptionalValues(t *testing.T) {
	nan := math.NaN()
	zero := 0.0
	value := 25.5

	_, ok := OptionalPositive(nil)
	assert.False(t, ok)
	_, ok = OptionalPositive(&nan)
	assert.False(t, ok)
	_, ok = OptionalPositive(&zero)
	assert.False(t, ok)

	v, ok := OptionalPositive(&value)
	assert.True(t, ok)
	assert.Equal(t, 25.5, v)

	v, ok = OptionalValue(&zero)
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
}
