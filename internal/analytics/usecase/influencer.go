package usecase

import (
	"context"

	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/analytics/repository"
)

func (uc *implUseCase) TopInfluencers(ctx context.Context, input analytics.InfluencersInput) ([]analytics.Influencer, error) {
	if err := validateFilter(input.Filter); err != nil {
		return nil, err
	}
	limit, err := resolveLimit(input.Limit, analytics.DefaultInfluencerLimit, analytics.MaxInfluencerLimit)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.TopInfluencers(ctx, repository.TopInfluencersOptions{
		Filter: input.Filter,
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.TopInfluencers: %v", err)
		return nil, queryFailed(err)
	}
	return rows, nil
}
