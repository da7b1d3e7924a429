package repository

import (
	"time"

	"social-analytics-srv/internal/model"
)

type CountByFieldOptions struct {
	Filter model.PostFilter
	Field  string
}

type ListPostsOptions struct {
	Filter model.PostFilter
	Limit  int
	Skip   int
}

type ExportPostsOptions struct {
	Filter model.PostFilter
	Limit  int
}

type ListRecentPostsOptions struct {
	Since time.Time
	Limit int
}

type ListCombinedTextsOptions struct {
	Filter model.PostFilter
	Limit  int
}

// SentimentGroupBy selects the secondary grouping key of the sentiment distribution.
type SentimentGroupBy int

const (
	SentimentGroupBySentiment SentimentGroupBy = iota
	SentimentGroupBySource
	SentimentGroupByFirstTopic
)

type SentimentDistributionOptions struct {
	Filter  model.PostFilter
	GroupBy SentimentGroupBy
}

type TopInfluencersOptions struct {
	Filter model.PostFilter
	Limit  int
}
