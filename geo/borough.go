package geo

import (
	"strings"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

// substringRules map zone-id fragments to boroughs and are checked in order.
// The short codes are a best-effort classifier carried over from the feed:
// "bx" or "si" inside an unrelated identifier will misclassify, and that
// behavior is kept rather than silently fixed.
type substringRule struct {
	fragment string
	borough  string
}

var substringRules = []substringRule{
	{"manhattan", schema.BoroughManhattan},
	{"cbd", schema.BoroughManhattan},
	{"brooklyn", schema.BoroughBrooklyn},
	{"bk", schema.BoroughBrooklyn},
	{"queens", schema.BoroughQueens},
	{"qn", schema.BoroughQueens},
	{"bronx", schema.BoroughBronx},
	{"bx", schema.BoroughBronx},
	{"staten", schema.BoroughStatenIsland},
	{"si", schema.BoroughStatenIsland},
}

// boundingRule matches a bounding-box centroid against a borough rectangle.
type boundingRule struct {
	minLat, maxLat float64
	minLon, maxLon float64
	borough        string
}

var boundingRules = []boundingRule{
	{40.7, 40.8, -74.05, -73.95, schema.BoroughManhattan},
	{40.6, 40.75, -74.05, -73.9, schema.BoroughBrooklyn},
	{40.7, 40.8, -73.95, -73.7, schema.BoroughQueens},
	{40.8, 40.9, -73.95, -73.85, schema.BoroughBronx},
	{40.5, 40.65, -74.3, -74.1, schema.BoroughStatenIsland},
}

// ResolveBorough infers a zone's borough with the documented precedence:
// explicit field, then zone-id substring, then bounding-box centroid, then
// the Manhattan default.
func ResolveBorough(explicit, zoneID string, box *schema.BoundingBox) string {
	if schema.ValidBorough(explicit) && explicit != schema.BoroughAll {
		return explicit
	}

	id := strings.ToLower(zoneID)
	for _, rule := range substringRules {
		if strings.Contains(id, rule.fragment) {
			return rule.borough
		}
	}

	if box != nil {
		centerLat := (box.MinLat + box.MaxLat) / 2
		centerLon := (box.MinLon + box.MaxLon) / 2
		if centerLat != 0 && centerLon != 0 {
			for _, rule := range boundingRules {
				if centerLat >= rule.minLat && centerLat <= rule.maxLat &&
					centerLon >= rule.minLon && centerLon <= rule.maxLon {
					return rule.borough
				}
			}
		}
	}

	return schema.BoroughManhattan
}

// ResolveSegmentBorough infers a segment's borough from its explicit field,
// then its name, then its point location, then the Manhattan default.
func ResolveSegmentBorough(explicit, segmentName string, lat, lon float64) string {
	if schema.ValidBorough(explicit) && explicit != schema.BoroughAll {
		return explicit
	}

	name := strings.ToLower(segmentName)
	for _, rule := range substringRules {
		if strings.Contains(name, rule.fragment) {
			return rule.borough
		}
	}

	if lat != 0 && lon != 0 {
		for _, rule := range boundingRules {
			if lat >= rule.minLat && lat <= rule.maxLat &&
				lon >= rule.minLon && lon <= rule.maxLon {
				return rule.borough
			}
		}
	}

	return schema.BoroughManhattan
}
