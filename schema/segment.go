package schema

import "time"

// SegmentSample is the latest state of one road segment as delivered by the
// telemetry feed. Samples are immutable once received and superseded wholesale
// by the next snapshot.
type SegmentSample struct {
	SegmentID           string    `json:"segment_id" bson:"segment_id"`
	SegmentName         string    `json:"segment_name" bson:"segment_name"`
	Borough             string    `json:"borough,omitempty" bson:"borough,omitempty"`
	Latitude            float64   `json:"latitude" bson:"latitude"`
	Longitude           float64   `json:"longitude" bson:"longitude"`
	SpeedMPH            float64   `json:"speed_mph" bson:"speed_mph"`
	CongestionIndex     float64   `json:"congestion_index" bson:"congestion_index"`
	IncidentFlag        bool      `json:"incident_flag" bson:"incident_flag"`
	TransitDelayFlag    bool      `json:"transit_delay_flag" bson:"transit_delay_flag"`
	PM25Nearby          *float64  `json:"pm25_nearby,omitempty" bson:"pm25_nearby,omitempty"`
	DataConfidenceScore float64   `json:"data_confidence_score" bson:"data_confidence_score"`
	Sources             []string  `json:"sources" bson:"sources"`
	TimestampBucket     time.Time `json:"timestamp_bucket" bson:"timestamp_bucket"`
}
