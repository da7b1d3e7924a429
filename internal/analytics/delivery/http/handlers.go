package http

import (
	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Overview - Headline counts and engagement averages
// @Summary Overview stats
// @Description Total posts, posts per sentiment and platform, and mean likes/shares/comments
// @Tags Stats
// @Produce json
// @Param keyword query string false "Case-insensitive substring of text or combinedText"
// @Param sentiment query string false "Sentiment label"
// @Param platform query string false "Platform"
// @Param sourceId query string false "Source"
// @Param topic query string false "Topic"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} overviewResp
// @Failure 400 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/stats/overview [get]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	filter, err := h.processFilterRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.Overview: processFilterRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Overview(ctx, analytics.OverviewInput{Filter: filter})
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.Overview: usecase Overview failed: %v", err)
		response.Error(c, h.mapError(err, errOverviewFailed), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newOverviewResp(output))
}

// ListPosts - Filtered posts, newest first
// @Summary List posts
// @Tags Posts
// @Produce json
// @Param keyword query string false "Case-insensitive substring of text or combinedText"
// @Param sentiment query string false "Sentiment label"
// @Param platform query string false "Platform"
// @Param sourceId query string false "Source"
// @Param topic query string false "Topic"
// @Param startDate query string false "Inclusive lower bound"
// @Param endDate query string false "Inclusive upper bound"
// @Param limit query int false "Page size (default 50, max 1000)"
// @Param skip query int false "Offset (default 0)"
// @Success 200 {object} listPostsResp
// @Failure 400 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/posts [get]
func (h *handler) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()

	req, filter, err := h.processListPostsRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.ListPosts: processListPostsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.ListPosts(ctx, analytics.ListPostsInput{
		Filter: filter,
		Limit:  req.Limit,
		Skip:   req.Skip,
	})
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ListPosts: usecase ListPosts failed: %v", err)
		response.Error(c, h.mapError(err, errPostsFailed), h.discord)
		return
	}

	response.OK(c, h.newListPostsResp(output))
}

// ExportPosts - Filtered posts as a CSV attachment
// @Summary Export posts as CSV
// @Description At most 10000 rows in natural order
// @Tags Posts
// @Produce text/csv
// @Param keyword query string false "Case-insensitive substring of text or combinedText"
// @Param sentiment query string false "Sentiment label"
// @Param platform query string false "Platform"
// @Param sourceId query string false "Source"
// @Param startDate query string false "Inclusive lower bound"
// @Param endDate query string false "Inclusive upper bound"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/posts/export [get]
func (h *handler) ExportPosts(c *gin.Context) {
	ctx := c.Request.Context()

	filter, err := h.processFilterRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.ExportPosts: processFilterRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.ExportPosts(ctx, analytics.ExportInput{Filter: filter})
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ExportPosts: usecase ExportPosts failed: %v", err)
		response.Error(c, h.mapError(err, errExportFailed), h.discord)
		return
	}

	response.Attachment(c, response.ContentTypeCSV, output.Filename, output.Data)
}

// SentimentDistribution - Posts and mean confidence per sentiment
// @Summary Sentiment distribution
// @Tags Sentiment
// @Produce json
// @Param startDate query string false "Inclusive lower bound"
// @Param endDate query string false "Inclusive upper bound"
// @Param groupBy query string false "sentiment (default), source or topic"
// @Success 200 {array} sentimentBucketResp
// @Failure 400 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/sentiment/distribution [get]
func (h *handler) SentimentDistribution(c *gin.Context) {
	ctx := c.Request.Context()

	req, filter, err := h.processSentimentDistributionRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.SentimentDistribution: processSentimentDistributionRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.SentimentDistribution(ctx, analytics.SentimentDistributionInput{
		Filter:  filter,
		GroupBy: req.GroupBy,
	})
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.SentimentDistribution: usecase SentimentDistribution failed: %v", err)
		response.Error(c, h.mapError(err, errSentimentFailed), h.discord)
		return
	}

	response.OK(c, h.newSentimentDistributionResp(output))
}

// TopicDistribution - Posts and mean engagement per topic
// @Summary Topic distribution
// @Tags Topics
// @Produce json
// @Param startDate query string false "Inclusive lower bound"
// @Param endDate query string false "Inclusive upper bound"
// @Success 200 {array} topicBucketResp
// @Failure 400 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/topics/distribution [get]
func (h *handler) TopicDistribution(c *gin.Context) {
	ctx := c.Request.Context()

	filter, err := h.processDateRangeRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.TopicDistribution: processDateRangeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.TopicDistribution(ctx, analytics.TopicDistributionInput{Filter: filter})
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.TopicDistribution: usecase TopicDistribution failed: %v", err)
		response.Error(c, h.mapError(err, errTopicsFailed), h.discord)
		return
	}

	response.OK(c, h.newTopicDistributionResp(output))
}

// TopInfluencers - Sources ranked by total engagement
// @Summary Top influencers
// @Tags Influencers
// @Produce json
// @Param startDate query string false "Inclusive lower bound"
// @Param endDate query string false "Inclusive upper bound"
// @Param limit query int false "Number of sources (default 10, max 100)"
// @Success 200 {array} influencerResp
// @Failure 400 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/influencers [get]
func (h *handler) TopInfluencers(c *gin.Context) {
	ctx := c.Request.Context()

	req, filter, err := h.processInfluencersRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.TopInfluencers: processInfluencersRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.TopInfluencers(ctx, analytics.InfluencersInput{Filter: filter, Limit: req.Limit})
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.TopInfluencers: usecase TopInfluencers failed: %v", err)
		response.Error(c, h.mapError(err, errInfluencersFailed), h.discord)
		return
	}

	response.OK(c, h.newInfluencersResp(output))
}

// EarlySignals - Posts from the last 24h ranked by engagement velocity
// @Summary Virality early signals
// @Tags Virality
// @Produce json
// @Success 200 {array} viralPostResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/virality/early-signals [get]
func (h *handler) EarlySignals(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.EarlySignals(ctx)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.EarlySignals: usecase EarlySignals failed: %v", err)
		response.Error(c, h.mapError(err, errViralityFailed), h.discord)
		return
	}

	response.OK(c, h.newEarlySignalsResp(output))
}

// Timeline - Posts per day and sentiment
// @Summary Sentiment timeline
// @Tags Trends
// @Produce json
// @Param startDate query string false "Inclusive lower bound"
// @Param endDate query string false "Inclusive upper bound"
// @Param platform query string false "Platform"
// @Param topic query string false "Topic"
// @Success 200 {array} timelinePointResp
// @Failure 400 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/trends/timeline [get]
func (h *handler) Timeline(c *gin.Context) {
	ctx := c.Request.Context()

	filter, err := h.processTimelineRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.Timeline: processTimelineRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Timeline(ctx, analytics.TimelineInput{Filter: filter})
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.Timeline: usecase Timeline failed: %v", err)
		response.Error(c, h.mapError(err, errTimelineFailed), h.discord)
		return
	}

	response.OK(c, h.newTimelineResp(output))
}

// KeywordFrequency - Most frequent words across matching posts
// @Summary Keyword frequency
// @Tags Keywords
// @Produce json
// @Param startDate query string false "Inclusive lower bound"
// @Param endDate query string false "Inclusive upper bound"
// @Param limit query int false "Number of words (default 20, max 200)"
// @Success 200 {array} keywordCountResp
// @Failure 400 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/keywords/frequency [get]
func (h *handler) KeywordFrequency(c *gin.Context) {
	ctx := c.Request.Context()

	req, filter, err := h.processKeywordFrequencyRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.KeywordFrequency: processKeywordFrequencyRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.KeywordFrequency(ctx, analytics.KeywordFrequencyInput{Filter: filter, Limit: req.Limit})
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.KeywordFrequency: usecase KeywordFrequency failed: %v", err)
		response.Error(c, h.mapError(err, errKeywordsFailed), h.discord)
		return
	}

	response.OK(c, h.newKeywordFrequencyResp(output))
}

// FilterOptions - Distinct values for the dashboard filters
// @Summary Filter options
// @Tags Filters
// @Produce json
// @Success 200 {object} filterOptionsResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/filters/options [get]
func (h *handler) FilterOptions(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.FilterOptions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.FilterOptions: usecase FilterOptions failed: %v", err)
		response.Error(c, h.mapError(err, errFilterOptionsFailed), h.discord)
		return
	}

	response.OK(c, h.newFilterOptionsResp(output))
}
