package model

// ValueCount - Number of posts sharing one field value.
type ValueCount struct {
	Value string `bson:"_id" json:"_id"`
	Count int64  `bson:"count" json:"count"`
}

// EngagementAverages - Mean engagement per post.
type EngagementAverages struct {
	AvgLikes    float64 `bson:"avgLikes" json:"avgLikes"`
	AvgShares   float64 `bson:"avgShares" json:"avgShares"`
	AvgComments float64 `bson:"avgComments" json:"avgComments"`
}

// SentimentKey - Grouping key of a sentiment bucket. SourceID or Topic is set
// only when the distribution is grouped by source or topic.
type SentimentKey struct {
	Sentiment string `bson:"sentiment"`
	SourceID  string `bson:"sourceId,omitempty"`
	Topic     string `bson:"topic,omitempty"`
}

// SentimentBucket - Posts per sentiment key with mean classifier confidence.
type SentimentBucket struct {
	Key           SentimentKey `bson:"_id"`
	Count         int64        `bson:"count"`
	AvgConfidence *float64     `bson:"avgConfidence"`
}

// TopicBucket - Posts per topic with mean engagement.
type TopicBucket struct {
	Topic         string  `bson:"_id" json:"_id"`
	Count         int64   `bson:"count" json:"count"`
	AvgEngagement float64 `bson:"avgEngagement" json:"avgEngagement"`
}

// InfluencerStats - Per-source engagement summary.
// TotalEngagement always equals TotalLikes + TotalShares + TotalComments.
type InfluencerStats struct {
	SourceID        string  `bson:"_id" json:"_id"`
	TotalPosts      int64   `bson:"totalPosts" json:"totalPosts"`
	TotalLikes      int64   `bson:"totalLikes" json:"totalLikes"`
	TotalShares     int64   `bson:"totalShares" json:"totalShares"`
	TotalComments   int64   `bson:"totalComments" json:"totalComments"`
	AvgSentiment    float64 `bson:"avgSentiment" json:"avgSentiment"`
	TotalEngagement int64   `bson:"totalEngagement" json:"totalEngagement"`
}

// TimelineKey - Day (YYYY-MM-DD, UTC) and sentiment of a timeline bucket.
type TimelineKey struct {
	Date      string `bson:"date" json:"date"`
	Sentiment string `bson:"sentiment" json:"sentiment"`
}

// TimelineBucket - Posts per day and sentiment.
type TimelineBucket struct {
	Key   TimelineKey `bson:"_id" json:"_id"`
	Count int64       `bson:"count" json:"count"`
}
