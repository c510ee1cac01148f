package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

// boroughParam reads and validates the borough filter, defaulting to the
// all-boroughs scope.
func boroughParam(c *gin.Context) (string, bool) {
	borough := c.DefaultQuery("borough", schema.BoroughAll)
	if !schema.ValidBorough(borough) {
		return "", false
	}
	return borough, true
}

func (s *Server) currentMetrics(c *gin.Context) {
	borough, ok := boroughParam(c)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownBorough)
		return
	}

	dashboard, err := s.mobilityStore.DeriveDashboard(borough)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"borough":   dashboard.Borough,
		"metrics":   dashboard.Metrics,
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) priorityLocations(c *gin.Context) {
	borough, ok := boroughParam(c)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownBorough)
		return
	}

	dashboard, err := s.mobilityStore.DeriveDashboard(borough)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"borough":   dashboard.Borough,
		"locations": dashboard.PriorityLocations,
		"count":     len(dashboard.PriorityLocations),
	})
}

func (s *Server) trendSeries(c *gin.Context) {
	borough, ok := boroughParam(c)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownBorough)
		return
	}

	dashboard, err := s.mobilityStore.DeriveDashboard(borough)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"borough":           dashboard.Borough,
		"speed_trend":       dashboard.SpeedTrend,
		"congestion_trend":  dashboard.CongestionTrend,
		"air_quality_trend": dashboard.AirQualityTrend,
	})
}

func (s *Server) hourlySpeeds(c *gin.Context) {
	borough, ok := boroughParam(c)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownBorough)
		return
	}

	dashboard, err := s.mobilityStore.DeriveDashboard(borough)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"borough":       dashboard.Borough,
		"hourly_speeds": dashboard.HourlySpeeds,
	})
}
