package usecase

import (
	"context"

	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/model"

	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) FilterOptions(ctx context.Context) (analytics.FilterOptionsOutput, error) {
	var output analytics.FilterOptionsOutput
	g, gctx := errgroup.WithContext(ctx)

	targets := []struct {
		field string
		dst   *[]string
	}{
		{model.FieldSourceID, &output.Sources},
		{model.FieldPlatform, &output.Platforms},
		{model.FieldSentiment, &output.Sentiments},
		{model.FieldTopics, &output.Topics},
	}
	for _, t := range targets {
		t := t
		g.Go(func() error {
			values, err := uc.repo.DistinctValues(gctx, t.field)
			if err != nil {
				return err
			}
			*t.dst = values
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.FilterOptions: %v", err)
		return analytics.FilterOptionsOutput{}, queryFailed(err)
	}
	return output, nil
}
