package kafka

import "time"

// ExportFilterMessage - Filters applied to an export. Empty fields were not set.
type ExportFilterMessage struct {
	Keyword   string     `json:"keyword,omitempty"`
	Sentiment string     `json:"sentiment,omitempty"`
	Platform  string     `json:"platform,omitempty"`
	SourceID  string     `json:"source_id,omitempty"`
	Topic     string     `json:"topic,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// ExportCompletedMessage - Published after every successful CSV export.
type ExportCompletedMessage struct {
	ExportID   string              `json:"export_id"`
	Filters    ExportFilterMessage `json:"filters"`
	RowCount   int                 `json:"row_count"`
	Truncated  bool                `json:"truncated"`
	ExportedAt time.Time           `json:"exported_at"`
}
