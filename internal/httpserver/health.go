package httpserver

import (
	"context"
	"net/http"
	"time"

	"social-analytics-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "social-analytics-srv"

	healthPingTimeout = 2 * time.Second
)

func (srv *HTTPServer) databaseStatus(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if err := srv.pingDB(ctx); err != nil {
		return "disconnected", err
	}
	return "connected", nil
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Always 200; reports whether MongoDB answers a ping
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is up"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	status, _ := srv.databaseStatus(c.Request.Context())
	response.OK(c, gin.H{
		"status":   "ok",
		"database": status,
	})
}

// readyCheck handles readiness check requests (MongoDB).
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Database unreachable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	status, err := srv.databaseStatus(c.Request.Context())
	if err != nil {
		srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "not ready",
			"message":  "Database connection failed",
			"database": status,
		})
		return
	}
	response.OK(c, gin.H{
		"status":   "ready",
		"version":  HealthVersion,
		"service":  ServiceName,
		"database": status,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
