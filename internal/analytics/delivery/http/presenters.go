package http

import (
	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/model"
	"social-analytics-srv/pkg/util"
)

// =====================================================
// Request DTOs
// =====================================================

type dateRangeReq struct {
	StartDate string `form:"startDate" binding:"omitempty,isodate"`
	EndDate   string `form:"endDate" binding:"omitempty,isodate"`
}

type filterReq struct {
	dateRangeReq
	Keyword   string `form:"keyword"`
	Sentiment string `form:"sentiment"`
	Platform  string `form:"platform"`
	SourceID  string `form:"sourceId"`
	Topic     string `form:"topic"`
}

type listPostsReq struct {
	filterReq
	Limit int `form:"limit" binding:"omitempty,min=1,max=1000"`
	Skip  int `form:"skip" binding:"omitempty,min=0"`
}

type sentimentDistributionReq struct {
	dateRangeReq
	GroupBy string `form:"groupBy" binding:"omitempty,oneof=sentiment source topic"`
}

type influencersReq struct {
	dateRangeReq
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type timelineReq struct {
	dateRangeReq
	Platform string `form:"platform"`
	Topic    string `form:"topic"`
}

type keywordFrequencyReq struct {
	dateRangeReq
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

// toFilter parses the bounds. Both were checked by the isodate validator.
func (r dateRangeReq) toFilter() (model.PostFilter, error) {
	var f model.PostFilter
	if r.StartDate != "" {
		t, err := util.ParseISODate(r.StartDate)
		if err != nil {
			return f, err
		}
		f.StartDate = &t
	}
	if r.EndDate != "" {
		t, err := util.ParseISODateEnd(r.EndDate)
		if err != nil {
			return f, err
		}
		f.EndDate = &t
	}
	return f, nil
}

func (r filterReq) toFilter() (model.PostFilter, error) {
	f, err := r.dateRangeReq.toFilter()
	if err != nil {
		return f, err
	}
	f.Keyword = r.Keyword
	f.Sentiment = r.Sentiment
	f.Platform = r.Platform
	f.SourceID = r.SourceID
	f.Topic = r.Topic
	return f, nil
}

func (r timelineReq) toFilter() (model.PostFilter, error) {
	f, err := r.dateRangeReq.toFilter()
	if err != nil {
		return f, err
	}
	f.Platform = r.Platform
	f.Topic = r.Topic
	return f, nil
}

// =====================================================
// Response DTOs
// =====================================================

type valueCountResp struct {
	ID    string `json:"_id"`
	Count int64  `json:"count"`
}

type engagementResp struct {
	AvgLikes    float64 `json:"avgLikes"`
	AvgShares   float64 `json:"avgShares"`
	AvgComments float64 `json:"avgComments"`
}

type overviewResp struct {
	TotalPosts int64            `json:"totalPosts"`
	Sentiment  []valueCountResp `json:"sentiment"`
	Platforms  []valueCountResp `json:"platforms"`
	Engagement engagementResp   `json:"engagement"`
}

type postResp struct {
	ID                  string   `json:"_id,omitempty"`
	PostID              string   `json:"postId"`
	Platform            string   `json:"platform"`
	SourceID            string   `json:"sourceId"`
	Text                string   `json:"text"`
	CombinedText        string   `json:"combinedText"`
	Sentiment           string   `json:"sentiment,omitempty"`
	SentimentConfidence *float64 `json:"sentimentConfidence,omitempty"`
	Topics              []string `json:"topics"`
	Likes               int64    `json:"likes"`
	Shares              int64    `json:"shares"`
	Comments            int64    `json:"comments"`
	Time                string   `json:"time"`
}

type listPostsResp struct {
	Posts []postResp `json:"posts"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
}

type sentimentBucketResp struct {
	// ID is the sentiment label, or an object when grouped by source or topic.
	ID            any      `json:"_id"`
	Count         int64    `json:"count"`
	AvgConfidence *float64 `json:"avgConfidence"`
}

type sentimentSourceKeyResp struct {
	Sentiment string `json:"sentiment"`
	SourceID  string `json:"sourceId"`
}

type sentimentTopicKeyResp struct {
	Sentiment string `json:"sentiment"`
	Topic     string `json:"topic"`
}

type topicBucketResp struct {
	ID            string  `json:"_id"`
	Count         int64   `json:"count"`
	AvgEngagement float64 `json:"avgEngagement"`
}

type influencerResp struct {
	ID              string  `json:"_id"`
	TotalPosts      int64   `json:"totalPosts"`
	TotalLikes      int64   `json:"totalLikes"`
	TotalShares     int64   `json:"totalShares"`
	TotalComments   int64   `json:"totalComments"`
	AvgSentiment    float64 `json:"avgSentiment"`
	TotalEngagement int64   `json:"totalEngagement"`
}

type viralPostResp struct {
	postResp
	Velocity       float64 `json:"velocity"`
	HoursSincePost float64 `json:"hoursSincePost"`
}

type timelineKeyResp struct {
	Date      string `json:"date"`
	Sentiment string `json:"sentiment"`
}

type timelinePointResp struct {
	ID    timelineKeyResp `json:"_id"`
	Count int64           `json:"count"`
}

type keywordCountResp struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type filterOptionsResp struct {
	Sources    []string `json:"sources"`
	Platforms  []string `json:"platforms"`
	Sentiments []string `json:"sentiments"`
	Topics     []string `json:"topics"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func newValueCounts(in []model.ValueCount) []valueCountResp {
	out := make([]valueCountResp, len(in))
	for i, v := range in {
		out[i] = valueCountResp{ID: v.Value, Count: v.Count}
	}
	return out
}

func (h *handler) newOverviewResp(o analytics.OverviewOutput) overviewResp {
	return overviewResp{
		TotalPosts: o.TotalPosts,
		Sentiment:  newValueCounts(o.Sentiment),
		Platforms:  newValueCounts(o.Platforms),
		Engagement: engagementResp{
			AvgLikes:    o.Engagement.AvgLikes,
			AvgShares:   o.Engagement.AvgShares,
			AvgComments: o.Engagement.AvgComments,
		},
	}
}

func newPostResp(p model.Post) postResp {
	resp := postResp{
		PostID:              p.PostID,
		Platform:            p.Platform,
		SourceID:            p.SourceID,
		Text:                p.Text,
		CombinedText:        p.CombinedText,
		Sentiment:           p.Sentiment,
		SentimentConfidence: p.SentimentConfidence,
		Topics:              nonNil(p.Topics),
		Likes:               p.Likes,
		Shares:              p.Shares,
		Comments:            p.Comments,
	}
	if !p.ObjectID.IsZero() {
		resp.ID = p.ObjectID.Hex()
	}
	if !p.Time.IsZero() {
		resp.Time = util.FormatISOMillis(p.Time)
	}
	return resp
}

func (h *handler) newListPostsResp(o analytics.ListPostsOutput) listPostsResp {
	posts := make([]postResp, len(o.Posts))
	for i, p := range o.Posts {
		posts[i] = newPostResp(p)
	}
	return listPostsResp{Posts: posts, Total: o.Total, Page: o.Page}
}

func (h *handler) newSentimentDistributionResp(buckets []analytics.SentimentBucket) []sentimentBucketResp {
	out := make([]sentimentBucketResp, len(buckets))
	for i, b := range buckets {
		var id any
		switch b.GroupBy {
		case analytics.GroupBySource:
			id = sentimentSourceKeyResp{Sentiment: b.Key.Sentiment, SourceID: b.Key.SourceID}
		case analytics.GroupByTopic:
			id = sentimentTopicKeyResp{Sentiment: b.Key.Sentiment, Topic: b.Key.Topic}
		default:
			id = b.Key.Sentiment
		}
		out[i] = sentimentBucketResp{ID: id, Count: b.Count, AvgConfidence: b.AvgConfidence}
	}
	return out
}

func (h *handler) newTopicDistributionResp(buckets []analytics.TopicBucket) []topicBucketResp {
	out := make([]topicBucketResp, len(buckets))
	for i, b := range buckets {
		out[i] = topicBucketResp{ID: b.Topic, Count: b.Count, AvgEngagement: b.AvgEngagement}
	}
	return out
}

func (h *handler) newInfluencersResp(rows []analytics.Influencer) []influencerResp {
	out := make([]influencerResp, len(rows))
	for i, r := range rows {
		out[i] = influencerResp{
			ID:              r.SourceID,
			TotalPosts:      r.TotalPosts,
			TotalLikes:      r.TotalLikes,
			TotalShares:     r.TotalShares,
			TotalComments:   r.TotalComments,
			AvgSentiment:    r.AvgSentiment,
			TotalEngagement: r.TotalEngagement,
		}
	}
	return out
}

func (h *handler) newEarlySignalsResp(posts []analytics.ViralPost) []viralPostResp {
	out := make([]viralPostResp, len(posts))
	for i, p := range posts {
		out[i] = viralPostResp{
			postResp:       newPostResp(p.Post),
			Velocity:       p.Velocity,
			HoursSincePost: p.HoursSincePost,
		}
	}
	return out
}

func (h *handler) newTimelineResp(points []analytics.TimelinePoint) []timelinePointResp {
	out := make([]timelinePointResp, len(points))
	for i, p := range points {
		out[i] = timelinePointResp{
			ID:    timelineKeyResp{Date: p.Key.Date, Sentiment: p.Key.Sentiment},
			Count: p.Count,
		}
	}
	return out
}

func (h *handler) newKeywordFrequencyResp(counts []analytics.KeywordCount) []keywordCountResp {
	out := make([]keywordCountResp, len(counts))
	for i, c := range counts {
		out[i] = keywordCountResp{Word: c.Word, Count: c.Count}
	}
	return out
}

func (h *handler) newFilterOptionsResp(o analytics.FilterOptionsOutput) filterOptionsResp {
	return filterOptionsResp{
		Sources:    nonNil(o.Sources),
		Platforms:  nonNil(o.Platforms),
		Sentiments: nonNil(o.Sentiments),
		Topics:     nonNil(o.Topics),
	}
}
