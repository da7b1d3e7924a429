package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post - One social-media post as stored in the posts collection.
// Engagement counters that are missing or null in the document decode to 0.
type Post struct {
	// Identity
	ObjectID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PostID   string             `bson:"postId" json:"postId"`
	Platform string             `bson:"platform" json:"platform"`
	SourceID string             `bson:"sourceId" json:"sourceId"`

	// Content
	Text         string `bson:"text" json:"text"`
	CombinedText string `bson:"combinedText" json:"combinedText"`

	// Classification
	Sentiment           string   `bson:"sentiment,omitempty" json:"sentiment,omitempty"`
	SentimentConfidence *float64 `bson:"sentimentConfidence,omitempty" json:"sentimentConfidence,omitempty"`
	Topics              []string `bson:"topics" json:"topics"`

	// Engagement
	Likes    int64 `bson:"likes" json:"likes"`
	Shares   int64 `bson:"shares" json:"shares"`
	Comments int64 `bson:"comments" json:"comments"`

	Time time.Time `bson:"time" json:"time"`
}

// Engagement returns likes + shares + comments.
func (p Post) Engagement() int64 {
	return p.Likes + p.Shares + p.Comments
}

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Document field names used by queries.
const (
	FieldPostID              = "postId"
	FieldPlatform            = "platform"
	FieldSourceID            = "sourceId"
	FieldText                = "text"
	FieldCombinedText        = "combinedText"
	FieldSentiment           = "sentiment"
	FieldSentimentConfidence = "sentimentConfidence"
	FieldTopics              = "topics"
	FieldLikes               = "likes"
	FieldShares              = "shares"
	FieldComments            = "comments"
	FieldTime                = "time"
)
