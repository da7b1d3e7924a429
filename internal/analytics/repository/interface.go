package repository

import (
	"context"

	"social-analytics-srv/internal/model"
)

// PostRepository - Read-only queries over the posts collection.
//
//go:generate mockery --name PostRepository
type PostRepository interface {
	CountPosts(ctx context.Context, filter model.PostFilter) (int64, error)
	CountByField(ctx context.Context, opts CountByFieldOptions) ([]model.ValueCount, error)
	AverageEngagement(ctx context.Context, filter model.PostFilter) (model.EngagementAverages, error)

	ListPosts(ctx context.Context, opts ListPostsOptions) ([]model.Post, error)
	ExportPosts(ctx context.Context, opts ExportPostsOptions) ([]model.Post, error)
	ListRecentPosts(ctx context.Context, opts ListRecentPostsOptions) ([]model.Post, error)
	ListCombinedTexts(ctx context.Context, opts ListCombinedTextsOptions) ([]string, error)

	SentimentDistribution(ctx context.Context, opts SentimentDistributionOptions) ([]model.SentimentBucket, error)
	TopicDistribution(ctx context.Context, filter model.PostFilter) ([]model.TopicBucket, error)
	TopInfluencers(ctx context.Context, opts TopInfluencersOptions) ([]model.InfluencerStats, error)
	Timeline(ctx context.Context, filter model.PostFilter) ([]model.TimelineBucket, error)

	DistinctValues(ctx context.Context, field string) ([]string, error)
}
