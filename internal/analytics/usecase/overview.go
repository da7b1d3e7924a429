package usecase

import (
	"context"

	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/analytics/repository"
	"social-analytics-srv/internal/model"

	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) Overview(ctx context.Context, input analytics.OverviewInput) (analytics.OverviewOutput, error) {
	if err := validateFilter(input.Filter); err != nil {
		return analytics.OverviewOutput{}, err
	}

	var output analytics.OverviewOutput
	g, gctx := errgroup.WithContext(ctx)

	// Task 1: Total posts
	g.Go(func() error {
		total, err := uc.repo.CountPosts(gctx, input.Filter)
		if err != nil {
			return err
		}
		output.TotalPosts = total
		return nil
	})

	// Task 2: Sentiment breakdown
	g.Go(func() error {
		res, err := uc.repo.CountByField(gctx, repository.CountByFieldOptions{Filter: input.Filter, Field: model.FieldSentiment})
		if err != nil {
			return err
		}
		output.Sentiment = res
		return nil
	})

	// Task 3: Platform breakdown
	g.Go(func() error {
		res, err := uc.repo.CountByField(gctx, repository.CountByFieldOptions{Filter: input.Filter, Field: model.FieldPlatform})
		if err != nil {
			return err
		}
		output.Platforms = res
		return nil
	})

	// Task 4: Engagement averages
	g.Go(func() error {
		res, err := uc.repo.AverageEngagement(gctx, input.Filter)
		if err != nil {
			return err
		}
		output.Engagement = res
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.Overview: %v", err)
		return analytics.OverviewOutput{}, queryFailed(err)
	}
	return output, nil
}
