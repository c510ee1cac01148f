package schema

import "time"

// Prediction risk levels as emitted by the upstream model service.
const (
	RiskLevelRed    = "red"
	RiskLevelYellow = "yellow"
	RiskLevelGreen  = "green"
)

// PredictedSegment is an opaque prediction record from the upstream model
// service. This service displays predictions; it never computes them.
type PredictedSegment struct {
	SegmentID                string    `json:"segment_id" bson:"segment_id"`
	ForecastTimestamp        time.Time `json:"forecast_timestamp" bson:"forecast_timestamp"`
	TargetTimestamp          time.Time `json:"target_timestamp" bson:"target_timestamp"`
	ForecastWindowMinutes    int       `json:"forecast_window_minutes" bson:"forecast_window_minutes"`
	PredictedSpeedMPH        float64   `json:"predicted_speed_mph" bson:"predicted_speed_mph"`
	PredictedCongestionIndex float64   `json:"predicted_congestion_index" bson:"predicted_congestion_index"`
	RiskLevel                string    `json:"risk_level" bson:"risk_level"`
	ReasoningTags            []string  `json:"reasoning_tags" bson:"reasoning_tags"`
	ConfidenceScore          float64   `json:"confidence_score" bson:"confidence_score"`
	ModelType                string    `json:"model_type" bson:"model_type"`
}

// ValidationReport is the display-only validation record produced upstream.
type ValidationReport struct {
	Timestamp              time.Time `json:"timestamp" bson:"timestamp"`
	MAESpeed               *float64  `json:"mae_speed,omitempty" bson:"mae_speed,omitempty"`
	SensorReliabilityScore *float64  `json:"sensor_reliability_score,omitempty" bson:"sensor_reliability_score,omitempty"`
	PredictionAccuracy     *float64  `json:"prediction_accuracy,omitempty" bson:"prediction_accuracy,omitempty"`
	Status                 string    `json:"status" bson:"status"`
}
