package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"social-analytics-srv/internal/analytics"
	kafkaDelivery "social-analytics-srv/internal/analytics/delivery/kafka"
)

// PublishExportCompleted publishes an export audit event keyed by export ID
func (p *implProducer) PublishExportCompleted(ctx context.Context, event analytics.ExportCompletedEvent) error {
	// Convert to message DTO
	f := event.Filter
	msg := kafkaDelivery.ExportCompletedMessage{
		ExportID: event.ExportID,
		Filters: kafkaDelivery.ExportFilterMessage{
			Keyword:   f.Keyword,
			Sentiment: f.Sentiment,
			Platform:  f.Platform,
			SourceID:  f.SourceID,
			Topic:     f.Topic,
			StartDate: f.StartDate,
			EndDate:   f.EndDate,
		},
		RowCount:   event.RowCount,
		Truncated:  event.Truncated,
		ExportedAt: event.ExportedAt,
	}

	// Marshal to JSON
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal export event: %w", err)
	}

	// Publish to Kafka
	if err := p.producer.Publish([]byte(event.ExportID), body); err != nil {
		return fmt.Errorf("failed to publish export event: %w", err)
	}

	p.l.Infof(ctx, "Published export event %s: %d rows", event.ExportID, event.RowCount)
	return nil
}
