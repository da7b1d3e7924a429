package kafka

import "github.com/IBM/sarama"

// IProducer defines the interface for Kafka producer.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a new Kafka producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

// NewProducerFrom wraps an existing sarama producer, e.g. a mock in tests.
func NewProducerFrom(producer sarama.SyncProducer, topic string) IProducer {
	return &producerImpl{producer: producer, topic: topic}
}
