package kafka

import (
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func TestNewProducerValidatesConfig(t *testing.T) {
	if _, err := NewProducer(Config{Topic: "t"}); err == nil {
		t.Error("expected error without brokers")
	}
	if _, err := NewProducer(Config{Brokers: []string{"localhost:9092"}}); err == nil {
		t.Error("expected error without topic")
	}
}

func TestPublish(t *testing.T) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	sp := mocks.NewSyncProducer(t, cfg)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"ok":true}` {
			return errors.New("unexpected payload " + string(val))
		}
		return nil
	})
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducerFrom(sp, "analytics.export.completed")
	if err := p.Publish([]byte("k"), []byte(`{"ok":true}`)); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := p.Publish([]byte("k"), []byte(`{}`)); err == nil {
		t.Error("expected publish failure")
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
