package usecase

import (
	"context"

	"social-analytics-srv/internal/analytics"
)

func (uc *implUseCase) Timeline(ctx context.Context, input analytics.TimelineInput) ([]analytics.TimelinePoint, error) {
	if err := validateFilter(input.Filter); err != nil {
		return nil, err
	}

	rows, err := uc.repo.Timeline(ctx, input.Filter)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.Timeline: %v", err)
		return nil, queryFailed(err)
	}
	return rows, nil
}
