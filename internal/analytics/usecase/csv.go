package usecase

import (
	"bytes"
	"strconv"
	"strings"

	"social-analytics-srv/internal/model"
	"social-analytics-srv/pkg/util"
)

var csvHeader = []string{
	"Post ID", "Platform", "Source", "Text", "Sentiment", "Confidence",
	"Topics", "Likes", "Shares", "Comments", "Date",
}

// FormatPostsCSV renders posts as CSV. The Text column is always quoted;
// other cells are quoted only when they contain a comma, quote or line break.
// Rows are separated by "\n" with no trailing newline.
func FormatPostsCSV(posts []model.Post) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(csvHeader, ","))

	for _, p := range posts {
		buf.WriteByte('\n')

		confidence := ""
		if p.SentimentConfidence != nil {
			confidence = strconv.FormatFloat(*p.SentimentConfidence, 'f', -1, 64)
		}
		date := ""
		if !p.Time.IsZero() {
			date = util.FormatISOMillis(p.Time)
		}

		cells := []string{
			csvCell(p.PostID),
			csvCell(p.Platform),
			csvCell(p.SourceID),
			quoteCSV(p.Text),
			csvCell(p.Sentiment),
			confidence,
			csvCell(strings.Join(p.Topics, ";")),
			strconv.FormatInt(p.Likes, 10),
			strconv.FormatInt(p.Shares, 10),
			strconv.FormatInt(p.Comments, 10),
			date,
		}
		buf.WriteString(strings.Join(cells, ","))
	}
	return buf.Bytes()
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func csvCell(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quoteCSV(s)
	}
	return s
}
