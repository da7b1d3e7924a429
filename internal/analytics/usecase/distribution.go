package usecase

import (
	"context"

	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/analytics/repository"
)

var sentimentGroupings = map[string]repository.SentimentGroupBy{
	"":                         repository.SentimentGroupBySentiment,
	analytics.GroupBySentiment: repository.SentimentGroupBySentiment,
	analytics.GroupBySource:    repository.SentimentGroupBySource,
	analytics.GroupByTopic:     repository.SentimentGroupByFirstTopic,
}

func (uc *implUseCase) SentimentDistribution(ctx context.Context, input analytics.SentimentDistributionInput) ([]analytics.SentimentBucket, error) {
	if err := validateFilter(input.Filter); err != nil {
		return nil, err
	}
	groupBy, ok := sentimentGroupings[input.GroupBy]
	if !ok {
		return nil, analytics.ErrInvalidGroupBy
	}
	groupName := input.GroupBy
	if groupName == "" {
		groupName = analytics.GroupBySentiment
	}

	rows, err := uc.repo.SentimentDistribution(ctx, repository.SentimentDistributionOptions{
		Filter:  input.Filter,
		GroupBy: groupBy,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.SentimentDistribution: %v", err)
		return nil, queryFailed(err)
	}

	buckets := make([]analytics.SentimentBucket, 0, len(rows))
	for _, r := range rows {
		buckets = append(buckets, analytics.SentimentBucket{
			GroupBy:       groupName,
			Key:           r.Key,
			Count:         r.Count,
			AvgConfidence: r.AvgConfidence,
		})
	}
	return buckets, nil
}

func (uc *implUseCase) TopicDistribution(ctx context.Context, input analytics.TopicDistributionInput) ([]analytics.TopicBucket, error) {
	if err := validateFilter(input.Filter); err != nil {
		return nil, err
	}

	rows, err := uc.repo.TopicDistribution(ctx, input.Filter)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.TopicDistribution: %v", err)
		return nil, queryFailed(err)
	}
	return rows, nil
}
