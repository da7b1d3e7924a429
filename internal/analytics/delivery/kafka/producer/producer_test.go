package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"social-analytics-srv/internal/analytics"
	kafkaDelivery "social-analytics-srv/internal/analytics/delivery/kafka"
	"social-analytics-srv/internal/model"
	"social-analytics-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	key, value []byte
	err        error
}

func (f *fakeProducer) Publish(key, value []byte) error {
	f.key, f.value = key, value
	return f.err
}
func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

func TestPublishExportCompleted(t *testing.T) {
	fp := &fakeProducer{}
	p := New(log.NewNop(), fp)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	at := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	err := p.PublishExportCompleted(context.Background(), analytics.ExportCompletedEvent{
		ExportID:   "exp-1",
		Filter:     model.PostFilter{Platform: "twitter", StartDate: &start},
		RowCount:   42,
		Truncated:  true,
		ExportedAt: at,
	})
	require.NoError(t, err)

	assert.Equal(t, "exp-1", string(fp.key))

	var msg kafkaDelivery.ExportCompletedMessage
	require.NoError(t, json.Unmarshal(fp.value, &msg))
	assert.Equal(t, 42, msg.RowCount)
	assert.True(t, msg.Truncated)
	assert.Equal(t, "twitter", msg.Filters.Platform)
	assert.True(t, msg.Filters.StartDate.Equal(start))
	assert.Nil(t, msg.Filters.EndDate)
	assert.True(t, msg.ExportedAt.Equal(at))
}

func TestPublishExportCompletedError(t *testing.T) {
	p := New(log.NewNop(), &fakeProducer{err: errors.New("no brokers")})
	err := p.PublishExportCompleted(context.Background(), analytics.ExportCompletedEvent{ExportID: "x"})
	assert.Error(t, err)
}
