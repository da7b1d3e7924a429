package analytics

import (
	"time"

	"social-analytics-srv/internal/model"
)

const (
	DefaultPostsLimit      = 50
	MaxPostsLimit          = 1000
	ExportRowCap           = 10000
	DefaultInfluencerLimit = 10
	MaxInfluencerLimit     = 100
	EarlySignalLimit       = 10
	DefaultKeywordLimit    = 20
	MaxKeywordLimit        = 200

	// ViralityWindow is how far back early-signal candidates are considered.
	ViralityWindow = 24 * time.Hour
	// MaxViralityCandidates bounds the in-memory velocity scan.
	MaxViralityCandidates = 10000
	// MaxKeywordDocuments bounds the texts fetched for keyword counting.
	MaxKeywordDocuments = 1000

	ExportFilename = "social_media_posts.csv"
)

// Sentiment distribution grouping modes.
const (
	GroupBySentiment = "sentiment"
	GroupBySource    = "source"
	GroupByTopic     = "topic"
)

// =====================================================
// Inputs
// =====================================================

type OverviewInput struct {
	Filter model.PostFilter
}

type ListPostsInput struct {
	Filter model.PostFilter
	Limit  int
	Skip   int
}

type ExportInput struct {
	Filter model.PostFilter
}

type SentimentDistributionInput struct {
	Filter  model.PostFilter
	GroupBy string
}

type TopicDistributionInput struct {
	Filter model.PostFilter
}

type InfluencersInput struct {
	Filter model.PostFilter
	Limit  int
}

type TimelineInput struct {
	Filter model.PostFilter
}

type KeywordFrequencyInput struct {
	Filter model.PostFilter
	Limit  int
}

// =====================================================
// Outputs
// =====================================================

type OverviewOutput struct {
	TotalPosts int64
	Sentiment  []model.ValueCount
	Platforms  []model.ValueCount
	Engagement model.EngagementAverages
}

type ListPostsOutput struct {
	Posts []model.Post
	Total int64
	Page  int
}

type ExportOutput struct {
	Filename  string
	Data      []byte
	Rows      int
	Truncated bool
}

// SentimentBucket - One row of the sentiment distribution.
type SentimentBucket struct {
	GroupBy       string
	Key           model.SentimentKey
	Count         int64
	AvgConfidence *float64
}

type TopicBucket = model.TopicBucket

type Influencer = model.InfluencerStats

type TimelinePoint = model.TimelineBucket

// ViralPost - A recent post ranked by engagement velocity.
type ViralPost struct {
	Post           model.Post
	Velocity       float64
	HoursSincePost float64
}

// KeywordCount - Occurrences of one token across matched posts.
type KeywordCount struct {
	Word  string
	Count int
}

type FilterOptionsOutput struct {
	Sources    []string
	Platforms  []string
	Sentiments []string
	Topics     []string
}

// ExportCompletedEvent - Audit record of a finished CSV export.
type ExportCompletedEvent struct {
	ExportID   string
	Filter     model.PostFilter
	RowCount   int
	Truncated  bool
	ExportedAt time.Time
}
