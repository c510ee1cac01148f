package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
	"github.com/ThilakNarasimhamurthy/Dot/score"
	"github.com/ThilakNarasimhamurthy/Dot/store"
)

func (s *Server) currentZones(c *gin.Context) {
	borough, ok := boroughParam(c)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownBorough)
		return
	}

	zones, bucket, err := s.mobilityStore.GetCurrentZones(borough)
	if err == store.ErrNoSnapshot {
		c.JSON(http.StatusOK, gin.H{
			"zones":      []schema.ZoneSample{},
			"count":      0,
			"risk_score": 0.0,
			"timestamp":  time.Now().UTC(),
		})
		return
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	cleaned := make([]schema.ZoneSample, 0, len(zones))
	for _, z := range zones {
		cleaned = append(cleaned, cleanZoneForDisplay(z))
	}

	c.JSON(http.StatusOK, gin.H{
		"zones":      cleaned,
		"count":      len(cleaned),
		"risk_score": score.BoroughRiskScore(zones),
		"timestamp":  bucket,
	})
}

func (s *Server) singleZone(c *gin.Context) {
	zoneID := c.Param("zoneID")

	zone, err := s.mobilityStore.GetZone(zoneID)
	if err == store.ErrZoneNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorZoneNotFound)
		return
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, cleanZoneForDisplay(*zone))
}
