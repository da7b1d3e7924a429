package model

import "time"

// PostFilter - Request-scoped match constraints over posts. Zero values contribute no constraint.
// All set fields are ANDed; Keyword matches text OR combinedText.
type PostFilter struct {
	Keyword   string
	Sentiment string
	Platform  string
	SourceID  string
	Topic     string
	StartDate *time.Time
	EndDate   *time.Time
}

// DateRange returns a filter carrying only the date bounds of f.
func (f PostFilter) DateRange() PostFilter {
	return PostFilter{StartDate: f.StartDate, EndDate: f.EndDate}
}
