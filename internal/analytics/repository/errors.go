package repository

import "errors"

var (
	ErrFailedToQuery     = errors.New("repository: failed to query posts")
	ErrFailedToAggregate = errors.New("repository: failed to aggregate posts")
	ErrFailedToDecode    = errors.New("repository: failed to decode result")
)
