package httpserver

import (
	"context"
	"strings"

	"social-analytics-srv/internal/middleware"
	"social-analytics-srv/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.newLimiter(ctx), srv.config.CORS)

	srv.registerMiddlewares(ctx, mw)
	srv.registerSystemRoutes()

	if err := srv.setupAnalyticsDomain(ctx, srv.gin.Group(""), mw); err != nil {
		return err
	}

	return nil
}

// newLimiter returns nil when rate limiting is disabled. Redis backs the limiter
// when configured so every replica shares the same budget.
func (srv *HTTPServer) newLimiter(ctx context.Context) ratelimit.Limiter {
	rl := srv.config.RateLimit
	if !rl.Enabled {
		srv.l.Infof(ctx, "Rate limiting disabled")
		return nil
	}
	if srv.redisClient != nil {
		srv.l.Infof(ctx, "Rate limiting: %d requests per %s (redis)", rl.Requests, rl.Window)
		return ratelimit.NewRedis(srv.redisClient, rl.Requests, rl.Window)
	}
	srv.l.Infof(ctx, "Rate limiting: %d requests per %s (local)", rl.Requests, rl.Window)
	return ratelimit.NewLocal(rl.Requests, rl.Window)
}

func (srv *HTTPServer) registerMiddlewares(ctx context.Context, mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())
	srv.gin.Use(mw.AccessLog())

	srv.l.Infof(ctx, "CORS allowed origins: %s", strings.Join(srv.config.CORS.AllowedOrigins, ", "))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger UI and docs (non-production only)
	if !srv.config.Environment.IsProduction() {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"), // Use relative path
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}
