package schema

// Mongo collection names shared by the store and the ingestion loop.
const (
	ZoneStateCollection         = "zones_state"
	SegmentStateCollection      = "segments_state"
	PredictedSegmentCollection  = "predicted_segments"
	ValidationMetricsCollection = "validation_metrics"
)
