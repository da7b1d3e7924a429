package http

import (
	"social-analytics-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api")
	api.Use(mw.RateLimit())
	{
		api.GET("/stats/overview", h.Overview)
		api.GET("/posts", h.ListPosts)
		api.GET("/posts/export", h.ExportPosts)
		api.GET("/sentiment/distribution", h.SentimentDistribution)
		api.GET("/topics/distribution", h.TopicDistribution)
		api.GET("/influencers", h.TopInfluencers)
		api.GET("/virality/early-signals", h.EarlySignals)
		api.GET("/trends/timeline", h.Timeline)
		api.GET("/keywords/frequency", h.KeywordFrequency)
		api.GET("/filters/options", h.FilterOptions)
	}
}
