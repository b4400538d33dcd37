package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vyrodovalexey/avcatalog/internal/health"
)

// NewAdminHandler builds the admin endpoint handler: health probes and
// the Prometheus metrics endpoint on a gin engine.
func NewAdminHandler(healthHandler *health.Handler) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	healthHandler.RegisterRoutes(engine)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return engine
}
