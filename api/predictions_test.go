package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

func TestSummarizeInsights(t *testing.T) {
	predictions := []schema.PredictedSegment{
		{SegmentID: "seg-1", RiskLevel: schema.RiskLevelRed, ConfidenceScore: 0.9, ReasoningTags: []string{"rush_hour", "incident_nearby"}},
		{SegmentID: "seg-2", RiskLevel: schema.RiskLevelRed, ConfidenceScore: 0.7, ReasoningTags: []string{"rush_hour"}},
		{SegmentID: "seg-3", RiskLevel: schema.RiskLevelGreen, ConfidenceScore: 0.6},
	}

	insights := summarizeInsights(predictions)
	assert.Len(t, insights, 3)

	red := insights[0]
	assert.Equal(t, schema.RiskLevelRed, red.RiskLevel)
	assert.Equal(t, 2, red.SegmentCount)
	assert.InDelta(t, 0.8, red.MeanConfidence, 1e-9)
	assert.Equal(t, []string{"rush_hour", "incident_nearby"}, red.TopReasons)

	yellow := insights[1]
	assert.Equal(t, schema.RiskLevelYellow, yellow.RiskLevel)
	assert.Equal(t, 0, yellow.SegmentCount)
	assert.Equal(t, 0.0, yellow.MeanConfidence)
	assert.Empty(t, yellow.TopReasons)

	green := insights[2]
	assert.Equal(t, schema.RiskLevelGreen, green.RiskLevel)
	assert.Equal(t, 1, green.SegmentCount)
	assert.Equal(t, 0.6, green.MeanConfidence)
}

func TestSummarizeInsightsEmpty(t *testing.T) {
	insights := summarizeInsights(nil)
	assert.Len(t, insights, 3)
	for _, insight := range insights {
		assert.Equal(t, 0, insight.SegmentCount)
		assert.Equal(t, 0.0, insight.MeanConfidence)
	}
}

func TestTopTags(t *testing.T) {
	counts := map[string]int{
		"rush_hour":       5,
		"incident_nearby": 3,
		"rain":            3,
		"event_traffic":   1,
	}

	assert.Equal(t, []string{"rush_hour", "incident_nearby", "rain"}, topTags(counts, 3))
	assert.Equal(t, []string{"rush_hour"}, topTags(counts, 1))
	assert.Empty(t, topTags(map[string]int{}, 3))
}

func TestTopTagsAlphabeticalTieBreak(t *testing.T) {
	counts := map[string]int{"zeta": 2, "alpha": 2, "mid": 2}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, topTags(counts, 3))
}
