package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"social-analytics-srv/config"
	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/analytics/mocks"
	"social-analytics-srv/internal/middleware"
	"social-analytics-srv/internal/model"
	"social-analytics-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.UseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	uc := mocks.NewUseCase(t)
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group(""), middleware.New(log.NewNop(), nil, config.CORSConfig{}))
	return r, uc
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestInvalidQueryParameters(t *testing.T) {
	tcs := map[string]struct {
		target  string
		wantErr string
	}{
		"malformed startDate": {
			target:  "/api/posts?startDate=yesterday",
			wantErr: "Invalid startDate",
		},
		"malformed endDate": {
			target:  "/api/stats/overview?endDate=2024-13-01",
			wantErr: "Invalid endDate",
		},
		"start after end": {
			target:  "/api/posts?startDate=2024-06-02&endDate=2024-06-01",
			wantErr: "startDate must not be after endDate",
		},
		"limit too large": {
			target:  "/api/posts?limit=5000",
			wantErr: "Invalid limit",
		},
		"negative skip": {
			target:  "/api/posts?skip=-1",
			wantErr: "Invalid skip",
		},
		"non-numeric limit": {
			target:  "/api/influencers?limit=ten",
			wantErr: "Invalid query parameters",
		},
		"unknown groupBy": {
			target:  "/api/sentiment/distribution?groupBy=platform",
			wantErr: "Invalid groupBy",
		},
		"keyword limit too large": {
			target:  "/api/keywords/frequency?limit=201",
			wantErr: "Invalid limit",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r, _ := newTestRouter(t)

			w := get(r, tc.target)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.wantErr, decode[map[string]string](t, w)["error"])
		})
	}
}

func TestListPosts(t *testing.T) {
	r, uc := newTestRouter(t)

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	posts := make([]model.Post, 5)
	for i := range posts {
		posts[i] = model.Post{PostID: "p", Platform: "twitter", Time: ts}
	}
	uc.On("ListPosts", mock.Anything, mock.MatchedBy(func(in analytics.ListPostsInput) bool {
		return in.Filter.Sentiment == "positive" && in.Filter.StartDate != nil && in.Limit == 0 && in.Skip == 0
	})).Return(analytics.ListPostsOutput{Posts: posts, Total: 5, Page: 1}, nil)

	w := get(r, "/api/posts?sentiment=positive&startDate=2024-05-01")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[listPostsResp](t, w)
	assert.EqualValues(t, 5, body.Total)
	assert.Equal(t, 1, body.Page)
	require.Len(t, body.Posts, 5)
	assert.Equal(t, "2024-05-01T12:00:00.000Z", body.Posts[0].Time)
	assert.Equal(t, []string{}, body.Posts[0].Topics)
}

func TestListPostsEndDateIsInclusive(t *testing.T) {
	r, uc := newTestRouter(t)

	uc.On("ListPosts", mock.Anything, mock.MatchedBy(func(in analytics.ListPostsInput) bool {
		want := time.Date(2024, 6, 1, 23, 59, 59, int(999*time.Millisecond), time.UTC)
		return in.Filter.EndDate != nil && in.Filter.EndDate.Equal(want)
	})).Return(analytics.ListPostsOutput{Page: 1}, nil)

	w := get(r, "/api/posts?endDate=2024-06-01")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExportPosts(t *testing.T) {
	t.Run("attachment", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("ExportPosts", mock.Anything, mock.Anything).Return(analytics.ExportOutput{
			Filename: analytics.ExportFilename,
			Data:     []byte("Post ID,Platform"),
			Rows:     0,
		}, nil)

		w := get(r, "/api/posts/export?platform=twitter")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "attachment; filename=social_media_posts.csv", w.Header().Get("Content-Disposition"))
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "Post ID,Platform", w.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("ExportPosts", mock.Anything, mock.Anything).
			Return(analytics.ExportOutput{}, analytics.ErrExportFailed)

		w := get(r, "/api/posts/export")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Export failed", decode[map[string]string](t, w)["error"])
	})
}

func TestSentimentDistributionKeyShapes(t *testing.T) {
	conf := 0.8
	tcs := map[string]struct {
		groupBy string
		bucket  analytics.SentimentBucket
		wantID  any
	}{
		"default groups by sentiment": {
			bucket: analytics.SentimentBucket{GroupBy: analytics.GroupBySentiment, Key: model.SentimentKey{Sentiment: "positive"}, Count: 5, AvgConfidence: &conf},
			wantID: "positive",
		},
		"source": {
			groupBy: "source",
			bucket:  analytics.SentimentBucket{GroupBy: analytics.GroupBySource, Key: model.SentimentKey{Sentiment: "negative", SourceID: "bob"}, Count: 3},
			wantID:  map[string]any{"sentiment": "negative", "sourceId": "bob"},
		},
		"topic": {
			groupBy: "topic",
			bucket:  analytics.SentimentBucket{GroupBy: analytics.GroupByTopic, Key: model.SentimentKey{Sentiment: "positive", Topic: "ai"}, Count: 5},
			wantID:  map[string]any{"sentiment": "positive", "topic": "ai"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r, uc := newTestRouter(t)
			uc.On("SentimentDistribution", mock.Anything, analytics.SentimentDistributionInput{GroupBy: tc.groupBy}).
				Return([]analytics.SentimentBucket{tc.bucket}, nil)

			target := "/api/sentiment/distribution"
			if tc.groupBy != "" {
				target += "?groupBy=" + tc.groupBy
			}
			w := get(r, target)

			require.Equal(t, http.StatusOK, w.Code)
			body := decode[[]map[string]any](t, w)
			require.Len(t, body, 1)
			assert.Equal(t, tc.wantID, body[0]["_id"])
			assert.Contains(t, body[0], "avgConfidence")
		})
	}
}

func TestUsecaseFailuresMapToEndpointMessages(t *testing.T) {
	boom := errors.New("boom")
	tcs := map[string]struct {
		target  string
		method  string
		ret     []any
		wantErr string
	}{
		"overview": {
			target: "/api/stats/overview", method: "Overview",
			ret: []any{analytics.OverviewOutput{}, boom}, wantErr: "Failed to fetch overview stats",
		},
		"posts": {
			target: "/api/posts", method: "ListPosts",
			ret: []any{analytics.ListPostsOutput{}, boom}, wantErr: "Failed to fetch posts",
		},
		"topics": {
			target: "/api/topics/distribution", method: "TopicDistribution",
			ret: []any{nil, boom}, wantErr: "Failed to fetch topic distribution",
		},
		"influencers": {
			target: "/api/influencers", method: "TopInfluencers",
			ret: []any{nil, boom}, wantErr: "Failed to fetch influencers",
		},
		"timeline": {
			target: "/api/trends/timeline", method: "Timeline",
			ret: []any{nil, boom}, wantErr: "Failed to fetch timeline",
		},
		"keywords": {
			target: "/api/keywords/frequency", method: "KeywordFrequency",
			ret: []any{nil, boom}, wantErr: "Failed to fetch keyword frequency",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r, uc := newTestRouter(t)
			uc.On(tc.method, mock.Anything, mock.Anything).Return(tc.ret...)

			w := get(r, tc.target)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tc.wantErr, decode[map[string]string](t, w)["error"])
		})
	}
}

func TestEarlySignals(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("EarlySignals", mock.Anything).Return([]analytics.ViralPost{
		{Post: model.Post{PostID: "p1", Likes: 10}, Velocity: 4.2, HoursSincePost: 2.5},
	}, nil)

	w := get(r, "/api/virality/early-signals")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[[]map[string]any](t, w)
	require.Len(t, body, 1)
	assert.Equal(t, "p1", body[0]["postId"])
	assert.Equal(t, 4.2, body[0]["velocity"])
	assert.Equal(t, 2.5, body[0]["hoursSincePost"])
}

func TestFilterOptionsNeverNull(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("FilterOptions", mock.Anything).Return(analytics.FilterOptionsOutput{
		Platforms: []string{"facebook", "twitter"},
	}, nil)

	w := get(r, "/api/filters/options")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sources":[],"platforms":["facebook","twitter"],"sentiments":[],"topics":[]}`, w.Body.String())
}

func TestKeywordFrequency(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("KeywordFrequency", mock.Anything, mock.MatchedBy(func(in analytics.KeywordFrequencyInput) bool {
		return in.Limit == 5
	})).Return([]analytics.KeywordCount{{Word: "great", Count: 2}}, nil)

	w := get(r, "/api/keywords/frequency?limit=5")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"word":"great","count":2}]`, w.Body.String())
}
