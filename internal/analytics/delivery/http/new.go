package http

import (
	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/middleware"
	"social-analytics-srv/pkg/discord"
	"social-analytics-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Analytics HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      analytics.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc analytics.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
