package usecase

import (
	"testing"

	"social-analytics-srv/internal/analytics"

	"github.com/stretchr/testify/assert"
)

func TestCountKeywords(t *testing.T) {
	texts := []string{
		"The AI launch was great, and the AI demo too!",
		"Great policy on AI? An ok idea.",
	}

	got := countKeywords(texts, 20)

	assert.Equal(t, []analytics.KeywordCount{
		{Word: "great", Count: 2},
		{Word: "launch", Count: 1},
		{Word: "demo", Count: 1},
		{Word: "policy", Count: 1},
		{Word: "idea", Count: 1},
	}, got)

	for _, kc := range got {
		assert.GreaterOrEqual(t, len(kc.Word), 3, "short token %q", kc.Word)
		_, stop := stopWords[kc.Word]
		assert.False(t, stop, "stop word %q", kc.Word)
	}
}

func TestCountKeywordsTiesKeepFirstSeenOrder(t *testing.T) {
	got := countKeywords([]string{"zebra apple mango apple zebra"}, 20)

	assert.Equal(t, []analytics.KeywordCount{
		{Word: "zebra", Count: 2},
		{Word: "apple", Count: 2},
		{Word: "mango", Count: 1},
	}, got)
}

func TestCountKeywordsLimit(t *testing.T) {
	got := countKeywords([]string{"alpha bravo charlie delta"}, 2)
	assert.Equal(t, []analytics.KeywordCount{
		{Word: "alpha", Count: 1},
		{Word: "bravo", Count: 1},
	}, got)
}

func TestCountKeywordsExcludesEveryStopWord(t *testing.T) {
	text := ""
	for w := range stopWords {
		text += w + " "
	}
	assert.Empty(t, countKeywords([]string{text}, 100))
}
