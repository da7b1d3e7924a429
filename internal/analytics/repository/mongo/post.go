package mongo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"social-analytics-srv/internal/analytics/repository"
	"social-analytics-srv/internal/model"
	"social-analytics-srv/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// aggregate runs pipeline and decodes every result document into T.
func aggregate[T any](ctx context.Context, coll *mongo.Collection, op string, pipeline mongo.Pipeline) (results []T, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDBQuery(op, start, err) }()

	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrFailedToAggregate, op, err)
	}
	defer cur.Close(ctx)

	results = make([]T, 0)
	if err = cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrFailedToDecode, op, err)
	}
	return results, nil
}

// find runs a find and decodes every matched document into T.
func find[T any](ctx context.Context, coll *mongo.Collection, op string, filter bson.D, opts *options.FindOptions) (results []T, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDBQuery(op, start, err) }()

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrFailedToQuery, op, err)
	}
	defer cur.Close(ctx)

	results = make([]T, 0)
	if err = cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrFailedToDecode, op, err)
	}
	return results, nil
}

func (r *implRepository) CountPosts(ctx context.Context, filter model.PostFilter) (total int64, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDBQuery("count_posts", start, err) }()

	total, err = r.coll.CountDocuments(ctx, buildFilter(filter))
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.mongo.CountPosts: CountDocuments failed: %v", err)
		return 0, fmt.Errorf("%w: count_posts: %v", repository.ErrFailedToQuery, err)
	}
	return total, nil
}

func (r *implRepository) CountByField(ctx context.Context, opts repository.CountByFieldOptions) ([]model.ValueCount, error) {
	results, err := aggregate[model.ValueCount](ctx, r.coll, "count_by_"+opts.Field, buildCountByFieldPipeline(opts.Filter, opts.Field))
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.mongo.CountByField: field=%s: %v", opts.Field, err)
		return nil, err
	}
	return results, nil
}

func (r *implRepository) AverageEngagement(ctx context.Context, filter model.PostFilter) (model.EngagementAverages, error) {
	results, err := aggregate[model.EngagementAverages](ctx, r.coll, "average_engagement", buildAverageEngagementPipeline(filter))
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.mongo.AverageEngagement: %v", err)
		return model.EngagementAverages{}, err
	}
	// No matched posts yields no group document.
	if len(results) == 0 {
		return model.EngagementAverages{}, nil
	}
	return results[0], nil
}

func (r *implRepository) ListPosts(ctx context.Context, opts repository.ListPostsOptions) ([]model.Post, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: model.FieldTime, Value: -1}}).
		SetSkip(int64(opts.Skip)).
		SetLimit(int64(opts.Limit))

	posts, err := find[model.Post](ctx, r.coll, "list_posts", buildFilter(opts.Filter), findOpts)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.mongo.ListPosts: %v", err)
		return nil, err
	}
	return posts, nil
}

// ExportPosts returns matching posts in natural (insertion) order.
func (r *implRepository) ExportPosts(ctx context.Context, opts repository.ExportPostsOptions) ([]model.Post, error) {
	findOpts := options.Find().SetLimit(int64(opts.Limit))

	posts, err := find[model.Post](ctx, r.coll, "export_posts", buildFilter(opts.Filter), findOpts)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.mongo.ExportPosts: %v", err)
		return nil, err
	}
	return posts, nil
}

func (r *implRepository) ListRecentPosts(ctx context.Context, opts repository.ListRecentPostsOptions) ([]model.Post, error) {
	filter := bson.D{{Key: model.FieldTime, Value: bson.D{{Key: "$gte", Value: opts.Since}}}}
	findOpts := options.Find().
		SetSort(bson.D{{Key: model.FieldTime, Value: -1}}).
		SetLimit(int64(opts.Limit))

	posts, err := find[model.Post](ctx, r.coll, "list_recent_posts", filter, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.mongo.ListRecentPosts: %v", err)
		return nil, err
	}
	return posts, nil
}

func (r *implRepository) ListCombinedTexts(ctx context.Context, opts repository.ListCombinedTextsOptions) ([]string, error) {
	type combinedTextDoc struct {
		CombinedText string `bson:"combinedText"`
	}

	findOpts := options.Find().
		SetProjection(bson.D{{Key: model.FieldCombinedText, Value: 1}, {Key: "_id", Value: 0}}).
		SetSort(bson.D{{Key: model.FieldTime, Value: -1}}).
		SetLimit(int64(opts.Limit))

	docs, err := find[combinedTextDoc](ctx, r.coll, "list_combined_texts", buildFilter(opts.Filter), findOpts)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.mongo.ListCombinedTexts: %v", err)
		return nil, err
	}

	texts := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.CombinedText != "" {
			texts = append(texts, d.CombinedText)
		}
	}
	return texts, nil
}

func (r *implRepository) SentimentDistribution(ctx context.Context, opts repository.SentimentDistributionOptions) ([]model.SentimentBucket, error) {
	results, err := aggregate[model.SentimentBucket](ctx, r.coll, "sentiment_distribution", buildSentimentDistributionPipeline(opts))
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.mongo.SentimentDistribution: %v", err)
		return nil, err
	}
	return results, nil
}

func (r *implRepository) TopicDistribution(ctx context.Context, filter model.PostFilter) ([]model.TopicBucket, error) {
	results, err := aggregate[model.TopicBucket](ctx, r.coll, "topic_distribution", buildTopicDistributionPipeline(filter))
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.mongo.TopicDistribution: %v", err)
		return nil, err
	}
	return results, nil
}

func (r *implRepository) TopInfluencers(ctx context.Context, opts repository.TopInfluencersOptions) ([]model.InfluencerStats, error) {
	results, err := aggregate[model.InfluencerStats](ctx, r.coll, "top_influencers", buildInfluencersPipeline(opts))
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.mongo.TopInfluencers: %v", err)
		return nil, err
	}
	return results, nil
}

func (r *implRepository) Timeline(ctx context.Context, filter model.PostFilter) ([]model.TimelineBucket, error) {
	results, err := aggregate[model.TimelineBucket](ctx, r.coll, "timeline", buildTimelinePipeline(filter))
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.mongo.Timeline: %v", err)
		return nil, err
	}
	return results, nil
}

// DistinctValues returns the non-empty distinct string values of name, sorted ascending.
// Array fields are flattened by MongoDB.
func (r *implRepository) DistinctValues(ctx context.Context, name string) (values []string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDBQuery("distinct_"+name, start, err) }()

	raw, err := r.coll.Distinct(ctx, name, bson.D{})
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.mongo.DistinctValues: field=%s: %v", name, err)
		return nil, fmt.Errorf("%w: distinct_%s: %v", repository.ErrFailedToQuery, name, err)
	}
	return stringValues(raw), nil
}

func stringValues(raw []interface{}) []string {
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	sort.Strings(values)
	return values
}
