package mongo

import (
	"social-analytics-srv/internal/analytics/repository"
	"social-analytics-srv/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// field returns the "$name" path expression for a document field.
func field(name string) string {
	return "$" + name
}

// orZero - {$ifNull: ["$name", 0]}; missing and null engagement count as 0.
func orZero(name string) bson.D {
	return bson.D{{Key: "$ifNull", Value: bson.A{field(name), 0}}}
}

func engagementExpr() bson.D {
	return bson.D{{Key: "$add", Value: bson.A{
		orZero(model.FieldLikes),
		orZero(model.FieldShares),
		orZero(model.FieldComments),
	}}}
}

// polarityExpr maps positive to 1, negative to -1, anything else to 0.
func polarityExpr() bson.D {
	return bson.D{{Key: "$switch", Value: bson.D{
		{Key: "branches", Value: bson.A{
			bson.D{
				{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{field(model.FieldSentiment), model.SentimentPositive}}}},
				{Key: "then", Value: 1},
			},
			bson.D{
				{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{field(model.FieldSentiment), model.SentimentNegative}}}},
				{Key: "then", Value: -1},
			},
		}},
		{Key: "default", Value: 0},
	}}}
}

func matchStage(f model.PostFilter) bson.D {
	return bson.D{{Key: "$match", Value: buildFilter(f)}}
}

func countDescStage() bson.D {
	return bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}}
}

// buildCountByFieldPipeline - Posts per distinct value of name, most frequent first.
func buildCountByFieldPipeline(f model.PostFilter, name string) mongo.Pipeline {
	return mongo.Pipeline{
		matchStage(f),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field(name)},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		countDescStage(),
	}
}

// buildAverageEngagementPipeline - Mean likes/shares/comments over matched posts.
func buildAverageEngagementPipeline(f model.PostFilter) mongo.Pipeline {
	return mongo.Pipeline{
		matchStage(f),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avgLikes", Value: bson.D{{Key: "$avg", Value: orZero(model.FieldLikes)}}},
			{Key: "avgShares", Value: bson.D{{Key: "$avg", Value: orZero(model.FieldShares)}}},
			{Key: "avgComments", Value: bson.D{{Key: "$avg", Value: orZero(model.FieldComments)}}},
		}}},
	}
}

// buildSentimentDistributionPipeline - Posts and mean confidence per sentiment,
// optionally split by source or by first topic.
func buildSentimentDistributionPipeline(opts repository.SentimentDistributionOptions) mongo.Pipeline {
	key := bson.D{{Key: "sentiment", Value: field(model.FieldSentiment)}}
	switch opts.GroupBy {
	case repository.SentimentGroupBySource:
		key = append(key, bson.E{Key: "sourceId", Value: field(model.FieldSourceID)})
	case repository.SentimentGroupByFirstTopic:
		key = append(key, bson.E{Key: "topic", Value: bson.D{
			{Key: "$arrayElemAt", Value: bson.A{field(model.FieldTopics), 0}},
		}})
	}

	return mongo.Pipeline{
		matchStage(opts.Filter),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: key},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avgConfidence", Value: bson.D{{Key: "$avg", Value: field(model.FieldSentimentConfidence)}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
}

// buildTopicDistributionPipeline - Unwinds topics so a post counts once per topic.
// Posts with no topics drop out at the unwind.
func buildTopicDistributionPipeline(f model.PostFilter) mongo.Pipeline {
	return mongo.Pipeline{
		matchStage(f),
		{{Key: "$unwind", Value: field(model.FieldTopics)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field(model.FieldTopics)},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avgEngagement", Value: bson.D{{Key: "$avg", Value: engagementExpr()}}},
		}}},
		countDescStage(),
	}
}

// buildInfluencersPipeline - Per-source engagement totals ranked by total engagement.
func buildInfluencersPipeline(opts repository.TopInfluencersOptions) mongo.Pipeline {
	return mongo.Pipeline{
		matchStage(opts.Filter),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field(model.FieldSourceID)},
			{Key: "totalPosts", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalLikes", Value: bson.D{{Key: "$sum", Value: orZero(model.FieldLikes)}}},
			{Key: "totalShares", Value: bson.D{{Key: "$sum", Value: orZero(model.FieldShares)}}},
			{Key: "totalComments", Value: bson.D{{Key: "$sum", Value: orZero(model.FieldComments)}}},
			{Key: "avgSentiment", Value: bson.D{{Key: "$avg", Value: polarityExpr()}}},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "totalEngagement", Value: bson.D{{Key: "$add", Value: bson.A{"$totalLikes", "$totalShares", "$totalComments"}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalEngagement", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: int64(opts.Limit)}},
	}
}

// buildTimelinePipeline - Posts per UTC day and sentiment, oldest day first.
func buildTimelinePipeline(f model.PostFilter) mongo.Pipeline {
	return mongo.Pipeline{
		matchStage(f),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "date", Value: bson.D{{Key: "$dateToString", Value: bson.D{
					{Key: "format", Value: "%Y-%m-%d"},
					{Key: "date", Value: field(model.FieldTime)},
				}}}},
				{Key: "sentiment", Value: field(model.FieldSentiment)},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.date", Value: 1}, {Key: "_id.sentiment", Value: 1}}}},
	}
}
