package kafka

import (
	"fmt"

	"social-analytics-srv/config"
	"social-analytics-srv/pkg/kafka"
)

// Connect creates the Kafka producer. It returns nil, nil when no brokers are configured.
func Connect(cfg config.KafkaConfig) (kafka.IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil
	}

	producer, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}
	return producer, nil
}

// Disconnect closes the producer if one was created.
func Disconnect(producer kafka.IProducer) error {
	if producer == nil {
		return nil
	}
	return producer.Close()
}
