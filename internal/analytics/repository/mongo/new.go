package mongo

import (
	"social-analytics-srv/internal/analytics/repository"
	"social-analytics-srv/pkg/log"

	"go.mongodb.org/mongo-driver/mongo"
)

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

// New - Factory
func New(coll *mongo.Collection, l log.Logger) repository.PostRepository {
	return &implRepository{
		coll: coll,
		l:    l,
	}
}
