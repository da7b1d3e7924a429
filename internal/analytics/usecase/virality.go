package usecase

import (
	"context"
	"sort"
	"time"

	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/analytics/repository"
	"social-analytics-srv/internal/model"
)

func (uc *implUseCase) EarlySignals(ctx context.Context) ([]analytics.ViralPost, error) {
	now := uc.now()

	posts, err := uc.repo.ListRecentPosts(ctx, repository.ListRecentPostsOptions{
		Since: now.Add(-analytics.ViralityWindow),
		Limit: analytics.MaxViralityCandidates,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.EarlySignals: %v", err)
		return nil, queryFailed(err)
	}
	return rankByVelocity(posts, now, analytics.EarlySignalLimit), nil
}

// rankByVelocity orders posts by engagement per hour since posting, highest first,
// and keeps the top n. Posts at or after now have velocity 0.
func rankByVelocity(posts []model.Post, now time.Time, n int) []analytics.ViralPost {
	ranked := make([]analytics.ViralPost, 0, len(posts))
	for _, p := range posts {
		hours := now.Sub(p.Time).Hours()
		velocity := 0.0
		if hours > 0 {
			velocity = float64(p.Engagement()) / hours
		}
		ranked = append(ranked, analytics.ViralPost{
			Post:           p,
			Velocity:       velocity,
			HoursSincePost: hours,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Velocity > ranked[j].Velocity
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	for i := range ranked {
		ranked[i].Velocity = round1(ranked[i].Velocity)
		ranked[i].HoursSincePost = round1(ranked[i].HoursSincePost)
	}
	return ranked
}
