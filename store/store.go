package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

const mongoLogPrefix = "mongo"

var (
	ErrNoSnapshot   = fmt.Errorf("no telemetry snapshot ingested")
	ErrZoneNotFound = fmt.Errorf("zone not found")
	ErrNoValidation = fmt.Errorf("no validation report available")
)

// MobilityStore is the persistence boundary of the service: snapshot writes
// from the ingestion loop, snapshot reads and derived views for the API.
type MobilityStore interface {
	ReplaceZoneStates(zones []schema.ZoneSample) error
	ReplaceSegmentStates(segments []schema.SegmentSample) error
	GetCurrentZones(borough string) ([]schema.ZoneSample, time.Time, error)
	GetZone(zoneID string) (*schema.ZoneSample, error)
	GetCurrentSegments(borough string) ([]schema.SegmentSample, time.Time, error)
	GetCurrentPredictions(segmentID string) ([]schema.PredictedSegment, error)
	GetLatestValidation() (*schema.ValidationReport, error)
	DeriveDashboard(borough string) (*schema.DashboardMetrics, error)
	Ping() error
	Close()
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore returns a MobilityStore backed by the given mongo client.
func NewMongoStore(client *mongo.Client, database string) MobilityStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *mongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_ = m.client.Disconnect(ctx)
}
