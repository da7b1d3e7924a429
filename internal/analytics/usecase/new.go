package usecase

import (
	"time"

	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/analytics/repository"
	"social-analytics-srv/pkg/log"
)

// implUseCase - Implementation of analytics.UseCase
type implUseCase struct {
	l    log.Logger
	repo repository.PostRepository
	prod analytics.Producer
	now  func() time.Time
}

// New - Factory function. prod may be nil when export events are disabled.
func New(l log.Logger, repo repository.PostRepository, prod analytics.Producer) analytics.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		prod: prod,
		now:  time.Now,
	}
}
