package store

import (
	log "github.com/sirupsen/logrus"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
	"github.com/ThilakNarasimhamurthy/Dot/score"
)

// DeriveDashboard collects the latest snapshot for a scope and runs the pure
// derivation pass over it. A missing snapshot is served as empty collections,
// which the derivation core backs with baseline fallbacks, so the dashboard
// stays fully formed even before the first ingest.
func (m *mongoDB) DeriveDashboard(borough string) (*schema.DashboardMetrics, error) {
	zones, _, err := m.GetCurrentZones(borough)
	if err != nil && err != ErrNoSnapshot {
		return nil, err
	}

	segments, _, err := m.GetCurrentSegments(borough)
	if err != nil && err != ErrNoSnapshot {
		return nil, err
	}

	result := score.Derive(score.Snapshot{
		Borough:  borough,
		Zones:    zones,
		Segments: segments,
	})

	log.WithFields(log.Fields{
		"prefix":   mongoLogPrefix,
		"borough":  borough,
		"zones":    len(zones),
		"segments": len(segments),
	}).Debug("dashboard derived")

	return &result, nil
}
