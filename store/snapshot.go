package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ThilakNarasimhamurthy/Dot/geo"
	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

// Upstream serves at most this many documents per snapshot view.
const (
	zoneQueryLimit    = 100
	segmentQueryLimit = 1000
)

// latestBucket finds the most recent timestamp bucket in a state collection.
func (m *mongoDB) latestBucket(ctx context.Context, collection string) (time.Time, error) {
	cursor, err := m.collection(collection).Aggregate(ctx, []bson.D{
		AggregationGroup(nil, bson.D{
			bson.E{Key: "latest", Value: bson.D{bson.E{Key: "$max", Value: "$timestamp_bucket"}}},
		}),
	})
	if err != nil {
		return time.Time{}, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return time.Time{}, ErrNoSnapshot
	}

	var result struct {
		Latest time.Time `bson:"latest"`
	}
	if err := cursor.Decode(&result); err != nil {
		return time.Time{}, err
	}
	if result.Latest.IsZero() {
		return time.Time{}, ErrNoSnapshot
	}

	return result.Latest, nil
}

// ReplaceZoneStates supersedes the zone snapshot wholesale. An empty batch is
// ignored so a failed upstream refresh keeps the previous snapshot serving.
func (m *mongoDB) ReplaceZoneStates(zones []schema.ZoneSample) error {
	if len(zones) == 0 {
		log.WithField("prefix", mongoLogPrefix).Warn("empty zone batch, keeping previous snapshot")
		return nil
	}

	ctx := context.Background()
	c := m.collection(schema.ZoneStateCollection)

	if _, err := c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(zones))
	for _, z := range zones {
		docs = append(docs, z)
	}

	if _, err := c.InsertMany(ctx, docs); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix": mongoLogPrefix,
		"zones":  len(zones),
	}).Debug("zone snapshot replaced")

	return nil
}

// ReplaceSegmentStates supersedes the segment snapshot wholesale.
func (m *mongoDB) ReplaceSegmentStates(segments []schema.SegmentSample) error {
	if len(segments) == 0 {
		log.WithField("prefix", mongoLogPrefix).Warn("empty segment batch, keeping previous snapshot")
		return nil
	}

	ctx := context.Background()
	c := m.collection(schema.SegmentStateCollection)

	if _, err := c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(segments))
	for _, s := range segments {
		docs = append(docs, s)
	}

	if _, err := c.InsertMany(ctx, docs); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":   mongoLogPrefix,
		"segments": len(segments),
	}).Debug("segment snapshot replaced")

	return nil
}

// GetCurrentZones returns the zones of the latest snapshot bucket, boroughs
// resolved, optionally filtered to one borough.
func (m *mongoDB) GetCurrentZones(borough string) ([]schema.ZoneSample, time.Time, error) {
	ctx := context.Background()

	bucket, err := m.latestBucket(ctx, schema.ZoneStateCollection)
	if err != nil {
		return nil, time.Time{}, err
	}

	cursor, err := m.collection(schema.ZoneStateCollection).Find(ctx,
		bson.M{"timestamp_bucket": bucket},
		options.Find().SetLimit(zoneQueryLimit),
	)
	if err != nil {
		return nil, time.Time{}, err
	}

	var zones []schema.ZoneSample
	if err := cursor.All(ctx, &zones); err != nil {
		return nil, time.Time{}, err
	}

	filtered := make([]schema.ZoneSample, 0, len(zones))
	for _, z := range zones {
		z.Borough = geo.ResolveBorough(z.Borough, z.ZoneID, z.BoundingBox)
		if borough != "" && borough != schema.BoroughAll && z.Borough != borough {
			continue
		}
		filtered = append(filtered, z)
	}

	log.WithFields(log.Fields{
		"prefix":  mongoLogPrefix,
		"bucket":  bucket,
		"borough": borough,
		"zones":   len(filtered),
	}).Debug("current zones")

	return filtered, bucket, nil
}

// GetZone returns the latest state of a single zone.
func (m *mongoDB) GetZone(zoneID string) (*schema.ZoneSample, error) {
	ctx := context.Background()

	var zone schema.ZoneSample
	err := m.collection(schema.ZoneStateCollection).FindOne(ctx,
		bson.M{"zone_id": zoneID},
		options.FindOne().SetSort(bson.D{bson.E{Key: "timestamp_bucket", Value: -1}}),
	).Decode(&zone)
	if err == mongo.ErrNoDocuments {
		return nil, ErrZoneNotFound
	}
	if err != nil {
		return nil, err
	}

	zone.Borough = geo.ResolveBorough(zone.Borough, zone.ZoneID, zone.BoundingBox)
	return &zone, nil
}

// GetCurrentSegments returns the segments of the latest snapshot bucket,
// boroughs resolved, optionally filtered to one borough.
func (m *mongoDB) GetCurrentSegments(borough string) ([]schema.SegmentSample, time.Time, error) {
	ctx := context.Background()

	bucket, err := m.latestBucket(ctx, schema.SegmentStateCollection)
	if err != nil {
		return nil, time.Time{}, err
	}

	cursor, err := m.collection(schema.SegmentStateCollection).Find(ctx,
		bson.M{"timestamp_bucket": bucket},
		options.Find().SetLimit(segmentQueryLimit),
	)
	if err != nil {
		return nil, time.Time{}, err
	}

	var segments []schema.SegmentSample
	if err := cursor.All(ctx, &segments); err != nil {
		return nil, time.Time{}, err
	}

	filtered := make([]schema.SegmentSample, 0, len(segments))
	for _, s := range segments {
		s.Borough = geo.ResolveSegmentBorough(s.Borough, s.SegmentName, s.Latitude, s.Longitude)
		if borough != "" && borough != schema.BoroughAll && s.Borough != borough {
			continue
		}
		filtered = append(filtered, s)
	}

	log.WithFields(log.Fields{
		"prefix":   mongoLogPrefix,
		"bucket":   bucket,
		"borough":  borough,
		"segments": len(filtered),
	}).Debug("current segments")

	return filtered, bucket, nil
}
