package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
	"github.com/ThilakNarasimhamurthy/Dot/store"
)

func (s *Server) currentPredictions(c *gin.Context) {
	predictions, err := s.mobilityStore.GetCurrentPredictions(c.Query("segment_id"))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"predictions": predictions,
		"count":       len(predictions),
		"timestamp":   time.Now().UTC(),
	})
}

// riskInsight summarizes the prediction records of one risk level.
type riskInsight struct {
	RiskLevel      string   `json:"risk_level"`
	SegmentCount   int      `json:"segment_count"`
	MeanConfidence float64  `json:"mean_confidence"`
	TopReasons     []string `json:"top_reasons"`
}

// summarizeInsights groups opaque prediction records by risk level with tag
// frequencies and mean confidence. Predictions are display inputs only; no
// scoring happens here.
func summarizeInsights(predictions []schema.PredictedSegment) []riskInsight {
	levels := []string{schema.RiskLevelRed, schema.RiskLevelYellow, schema.RiskLevelGreen}

	insights := make([]riskInsight, 0, len(levels))
	for _, level := range levels {
		confidenceSum := float64(0)
		count := 0
		tagCounts := map[string]int{}
		for _, p := range predictions {
			if p.RiskLevel != level {
				continue
			}
			count++
			confidenceSum += p.ConfidenceScore
			for _, tag := range p.ReasoningTags {
				tagCounts[tag]++
			}
		}

		insight := riskInsight{
			RiskLevel:    level,
			SegmentCount: count,
			TopReasons:   topTags(tagCounts, 3),
		}
		if count > 0 {
			insight.MeanConfidence = confidenceSum / float64(count)
		}
		insights = append(insights, insight)
	}

	return insights
}

// topTags returns up to n tag names by descending frequency, ties broken
// alphabetically so the output is stable across refreshes.
func topTags(counts map[string]int, n int) []string {
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	if len(tags) > n {
		tags = tags[:n]
	}
	return tags
}

func (s *Server) predictionInsights(c *gin.Context) {
	predictions, err := s.mobilityStore.GetCurrentPredictions("")
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"insights":  summarizeInsights(predictions),
		"count":     len(predictions),
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) latestValidation(c *gin.Context) {
	report, err := s.mobilityStore.GetLatestValidation()
	if err == store.ErrNoValidation {
		abortWithEncoding(c, http.StatusNotFound, errorNoValidation)
		return
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
