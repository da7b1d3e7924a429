package mongo

import (
	"regexp"

	"social-analytics-srv/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildFilter - Translate a PostFilter into a MongoDB query document.
// Top-level keys are implicitly ANDed by MongoDB.
func buildFilter(f model.PostFilter) bson.D {
	filter := bson.D{}

	// 1. Keyword: case-insensitive substring on text OR combinedText
	if f.Keyword != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(f.Keyword), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: model.FieldText, Value: rx}},
			bson.D{{Key: model.FieldCombinedText, Value: rx}},
		}})
	}

	// 2. Exact matches
	if f.Sentiment != "" {
		filter = append(filter, bson.E{Key: model.FieldSentiment, Value: f.Sentiment})
	}
	if f.Platform != "" {
		filter = append(filter, bson.E{Key: model.FieldPlatform, Value: f.Platform})
	}
	if f.SourceID != "" {
		filter = append(filter, bson.E{Key: model.FieldSourceID, Value: f.SourceID})
	}

	// 3. Topic: equality on an array field matches any element
	if f.Topic != "" {
		filter = append(filter, bson.E{Key: model.FieldTopics, Value: f.Topic})
	}

	// 4. Date range, each bound independent
	if f.StartDate != nil || f.EndDate != nil {
		rng := bson.D{}
		if f.StartDate != nil {
			rng = append(rng, bson.E{Key: "$gte", Value: *f.StartDate})
		}
		if f.EndDate != nil {
			rng = append(rng, bson.E{Key: "$lte", Value: *f.EndDate})
		}
		filter = append(filter, bson.E{Key: model.FieldTime, Value: rng})
	}

	return filter
}
