package usecase

import (
	"strings"
	"testing"
	"time"

	"social-analytics-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPostsCSV(t *testing.T) {
	conf := 0.85
	posts := []model.Post{
		{
			PostID: "p1", Platform: "twitter", SourceID: "alice",
			Text: `He said "hi"`, Sentiment: "positive", SentimentConfidence: &conf,
			Topics: []string{"ai", "policy"}, Likes: 3, Shares: 1, Comments: 0,
			Time: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			PostID: "p2", Platform: "facebook", SourceID: "acme, inc",
			Text: "plain",
			Time: time.Date(2024, 5, 2, 8, 30, 15, 250e6, time.UTC),
		},
	}

	lines := strings.Split(string(FormatPostsCSV(posts)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Post ID,Platform,Source,Text,Sentiment,Confidence,Topics,Likes,Shares,Comments,Date", lines[0])
	assert.Equal(t, `p1,twitter,alice,"He said ""hi""",positive,0.85,ai;policy,3,1,0,2024-05-01T12:00:00.000Z`, lines[1])
	assert.Equal(t, `p2,facebook,"acme, inc","plain",,,,0,0,0,2024-05-02T08:30:15.250Z`, lines[2])
}

func TestFormatPostsCSVEmpty(t *testing.T) {
	got := string(FormatPostsCSV(nil))
	assert.False(t, strings.HasSuffix(got, "\n"))
	assert.Equal(t, 1, len(strings.Split(got, "\n")))
}
