package analytics

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Overview(ctx context.Context, input OverviewInput) (OverviewOutput, error)
	ListPosts(ctx context.Context, input ListPostsInput) (ListPostsOutput, error)
	ExportPosts(ctx context.Context, input ExportInput) (ExportOutput, error)
	SentimentDistribution(ctx context.Context, input SentimentDistributionInput) ([]SentimentBucket, error)
	TopicDistribution(ctx context.Context, input TopicDistributionInput) ([]TopicBucket, error)
	TopInfluencers(ctx context.Context, input InfluencersInput) ([]Influencer, error)
	EarlySignals(ctx context.Context) ([]ViralPost, error)
	Timeline(ctx context.Context, input TimelineInput) ([]TimelinePoint, error)
	KeywordFrequency(ctx context.Context, input KeywordFrequencyInput) ([]KeywordCount, error)
	FilterOptions(ctx context.Context) (FilterOptionsOutput, error)
}

// Producer publishes analytics events. A nil Producer disables publishing.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishExportCompleted(ctx context.Context, event ExportCompletedEvent) error
}
