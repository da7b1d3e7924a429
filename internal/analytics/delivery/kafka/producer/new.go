package producer

import (
	"social-analytics-srv/internal/analytics"
	pkgKafka "social-analytics-srv/pkg/kafka"
	"social-analytics-srv/pkg/log"
)

// implProducer implements analytics.Producer
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new analytics producer
func New(l log.Logger, producer pkgKafka.IProducer) analytics.Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
