package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
	"github.com/ThilakNarasimhamurthy/Dot/store"
)

func (s *Server) currentSegments(c *gin.Context) {
	borough, ok := boroughParam(c)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownBorough)
		return
	}

	segments, bucket, err := s.mobilityStore.GetCurrentSegments(borough)
	if err == store.ErrNoSnapshot {
		c.JSON(http.StatusOK, gin.H{
			"segments":  []schema.SegmentSample{},
			"count":     0,
			"timestamp": time.Now().UTC(),
		})
		return
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	cleaned := make([]schema.SegmentSample, 0, len(segments))
	for _, seg := range segments {
		cleaned = append(cleaned, cleanSegmentForDisplay(seg))
	}

	freshness := int(time.Since(bucket).Minutes())
	if freshness < 0 {
		freshness = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"segments":               cleaned,
		"count":                  len(cleaned),
		"timestamp":              bucket,
		"data_freshness_minutes": freshness,
	})
}
