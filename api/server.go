package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ThilakNarasimhamurthy/Dot/store"
)

var log = logrus.StandardLogger()

// Server serves the derived dashboard views over HTTP.
type Server struct {
	server        *http.Server
	mobilityStore store.MobilityStore
	traceMode     bool
}

// NewServer returns a server backed by the given store.
func NewServer(mobilityStore store.MobilityStore, traceMode bool) *Server {
	return &Server{
		mobilityStore: mobilityStore,
		traceMode:     traceMode,
	}
}

// Run starts serving on addr and blocks until the server stops.
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.setupRouter(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.RequestID)
	r.Use(s.DumpRequest)

	r.GET("/healthz", s.healthz)

	api := r.Group("/api")

	metrics := api.Group("/metrics")
	metrics.GET("/current", s.currentMetrics)
	metrics.GET("/priority-locations", s.priorityLocations)
	metrics.GET("/trends", s.trendSeries)
	metrics.GET("/hourly-speeds", s.hourlySpeeds)

	zones := api.Group("/zones")
	zones.GET("/current", s.currentZones)
	zones.GET("/:zoneID", s.singleZone)

	segments := api.Group("/segments")
	segments.GET("/current", s.currentSegments)

	predictions := api.Group("/predictions")
	predictions.GET("/current", s.currentPredictions)
	predictions.GET("/insights", s.predictionInsights)

	api.GET("/validation/latest", s.latestValidation)

	return r
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mobilityStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
