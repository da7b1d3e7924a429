package middleware

import (
	"net/http"

	"social-analytics-srv/pkg/metrics"
	"social-analytics-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects clients that exceed the configured budget with 429.
// Limiter errors fail open.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		allowed, err := m.limiter.Allow(ctx, c.ClientIP())
		if err != nil {
			m.l.Warnf(ctx, "middleware.RateLimit: limiter failed: %v", err)
			c.Next()
			return
		}
		if !allowed {
			metrics.HTTPRateLimited.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResp{Error: "Too many requests"})
			return
		}
		c.Next()
	}
}
