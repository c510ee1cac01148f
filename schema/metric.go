package schema

// Fixed series lengths. Sparklines are 20 points, hourly profiles 24.
const (
	SparklineLength     = 20
	HourlyProfileLength = 24
)

// TrendSeries is a fixed-length ordered sequence of chart values. A series is
// always exactly its declared length; short real data is padded by the
// synthetic generator, never left ragged.
type TrendSeries []float64

// DerivedMetrics is the output of one aggregation and scoring pass over a
// scope. Every field is finite and inside its domain bound: percentages in
// [0,100], counts and deltas non-negative. Missing telemetry is replaced by
// baseline-backed fallbacks, never by zero values that would read as real.
type DerivedMetrics struct {
	ResponseTimeMin      float64 `json:"response_time_min" bson:"response_time_min"`
	CongestionPercent    float64 `json:"congestion_percent" bson:"congestion_percent"`
	CollisionCount       int     `json:"collision_count" bson:"collision_count"`
	AirQualityComplaints int     `json:"air_quality_complaints" bson:"air_quality_complaints"`
	CurrentSpeedMPH      float64 `json:"current_speed_mph" bson:"current_speed_mph"`
	ResponseTimeDelta    float64 `json:"response_time_delta" bson:"response_time_delta"`
	CongestionDelta      float64 `json:"congestion_delta" bson:"congestion_delta"`
	AirQualityDelta      float64 `json:"air_quality_delta" bson:"air_quality_delta"`
}

// DashboardMetrics bundles every derived view recomputed on a refresh for one
// scope. All members are value types; nothing here is shared or mutated after
// derivation.
type DashboardMetrics struct {
	Borough           string             `json:"borough"`
	Metrics           DerivedMetrics     `json:"metrics"`
	PriorityLocations []PriorityLocation `json:"priority_locations"`
	SpeedTrend        TrendSeries        `json:"speed_trend"`
	CongestionTrend   TrendSeries        `json:"congestion_trend"`
	AirQualityTrend   TrendSeries        `json:"air_quality_trend"`
	HourlySpeeds      TrendSeries        `json:"hourly_speeds"`
}
