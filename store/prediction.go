package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

const predictionQueryLimit = 500

// GetCurrentPredictions returns the most recent prediction records, newest
// forecast first, optionally for a single segment.
func (m *mongoDB) GetCurrentPredictions(segmentID string) ([]schema.PredictedSegment, error) {
	ctx := context.Background()

	match := bson.M{}
	if segmentID != "" {
		match["segment_id"] = segmentID
	}

	cursor, err := m.collection(schema.PredictedSegmentCollection).Aggregate(ctx, []bson.D{
		AggregationMatch(match),
		AggregationSort(bson.D{bson.E{Key: "forecast_timestamp", Value: -1}}),
		AggregationLimit(predictionQueryLimit),
	})
	if err != nil {
		return nil, err
	}

	var predictions []schema.PredictedSegment
	if err := cursor.All(ctx, &predictions); err != nil {
		return nil, err
	}

	return predictions, nil
}

// GetLatestValidation returns the newest validation report.
func (m *mongoDB) GetLatestValidation() (*schema.ValidationReport, error) {
	ctx := context.Background()

	var report schema.ValidationReport
	err := m.collection(schema.ValidationMetricsCollection).FindOne(ctx,
		bson.M{},
		options.FindOne().SetSort(bson.D{bson.E{Key: "timestamp", Value: -1}}),
	).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNoValidation
	}
	if err != nil {
		return nil, err
	}

	return &report, nil
}
