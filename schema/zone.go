package schema

import "time"

// Pollution risk categories carried on zone samples.
const (
	PollutionRiskHigh   = "High"
	PollutionRiskMedium = "Medium"
	PollutionRiskLow    = "Low"
)

// BoundingBox is the rectangular extent of a zone.
type BoundingBox struct {
	MinLat float64 `json:"min_lat" bson:"min_lat"`
	MaxLat float64 `json:"max_lat" bson:"max_lat"`
	MinLon float64 `json:"min_lon" bson:"min_lon"`
	MaxLon float64 `json:"max_lon" bson:"max_lon"`
}

// ZoneSample is the pre-aggregated state of one zone for the latest snapshot.
// Zone aggregates are produced upstream from more samples than any single
// segment and are preferred over per-segment computation where both exist.
type ZoneSample struct {
	ZoneID               string       `json:"zone_id" bson:"zone_id"`
	Borough              string       `json:"borough,omitempty" bson:"borough,omitempty"`
	BoundingBox          *BoundingBox `json:"bounding_box,omitempty" bson:"bounding_box,omitempty"`
	SegmentCount         int          `json:"segment_count" bson:"segment_count"`
	IncidentCount        int          `json:"incident_count" bson:"incident_count"`
	TransitDelayCount    int          `json:"transit_delay_count" bson:"transit_delay_count"`
	AvgCongestionIndex   float64      `json:"avg_congestion_index" bson:"avg_congestion_index"`
	AvgSpeedMPH          float64      `json:"avg_speed_mph" bson:"avg_speed_mph"`
	AvgPM25              *float64     `json:"avg_pm25,omitempty" bson:"avg_pm25,omitempty"`
	TrafficPollutionRisk string       `json:"traffic_pollution_risk" bson:"traffic_pollution_risk"`
	TimestampBucket      time.Time    `json:"timestamp_bucket" bson:"timestamp_bucket"`
}

// TotalIncidents reconciles nothing; it is the zone's own incident plus
// transit-delay counters, the quantity ranking and borough scoring work from.
func (z ZoneSample) TotalIncidents() int {
	return z.IncidentCount + z.TransitDelayCount
}
