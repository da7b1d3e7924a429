package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"social-analytics-srv/internal/analytics"
	analyticsHTTP "social-analytics-srv/internal/analytics/delivery/http"
	analyticsProducer "social-analytics-srv/internal/analytics/delivery/kafka/producer"
	analyticsMongo "social-analytics-srv/internal/analytics/repository/mongo"
	analyticsUsecase "social-analytics-srv/internal/analytics/usecase"
	"social-analytics-srv/internal/middleware"
)

func (srv *HTTPServer) setupAnalyticsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := analyticsMongo.New(srv.postsColl, srv.l)

	var prod analytics.Producer
	if srv.kafkaProducer != nil {
		prod = analyticsProducer.New(srv.l, srv.kafkaProducer)
		srv.l.Infof(ctx, "Export events enabled")
	}

	uc := analyticsUsecase.New(srv.l, repo, prod)

	if err := analyticsHTTP.RegisterValidators(); err != nil {
		return err
	}
	handler := analyticsHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analytics domain registered")
	return nil
}
