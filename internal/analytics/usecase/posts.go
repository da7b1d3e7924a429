package usecase

import (
	"context"

	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/analytics/repository"
	"social-analytics-srv/pkg/paginator"
)

func (uc *implUseCase) ListPosts(ctx context.Context, input analytics.ListPostsInput) (analytics.ListPostsOutput, error) {
	if err := validateFilter(input.Filter); err != nil {
		return analytics.ListPostsOutput{}, err
	}
	limit, err := resolveLimit(input.Limit, analytics.DefaultPostsLimit, analytics.MaxPostsLimit)
	if err != nil {
		return analytics.ListPostsOutput{}, err
	}
	if input.Skip < 0 {
		return analytics.ListPostsOutput{}, analytics.ErrInvalidLimit
	}
	pq := paginator.OffsetQuery{Limit: limit, Skip: input.Skip}

	posts, err := uc.repo.ListPosts(ctx, repository.ListPostsOptions{
		Filter: input.Filter,
		Limit:  pq.Limit,
		Skip:   pq.Skip,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.ListPosts: repo.ListPosts: %v", err)
		return analytics.ListPostsOutput{}, queryFailed(err)
	}

	total, err := uc.repo.CountPosts(ctx, input.Filter)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.ListPosts: repo.CountPosts: %v", err)
		return analytics.ListPostsOutput{}, queryFailed(err)
	}

	return analytics.ListPostsOutput{
		Posts: posts,
		Total: total,
		Page:  pq.Page(),
	}, nil
}
