package middleware

import (
	"social-analytics-srv/config"
	"social-analytics-srv/pkg/log"
	"social-analytics-srv/pkg/ratelimit"
)

type Middleware struct {
	l       log.Logger
	limiter ratelimit.Limiter
	cors    config.CORSConfig
}

// New - limiter may be nil to disable rate limiting.
func New(l log.Logger, limiter ratelimit.Limiter, cors config.CORSConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: limiter,
		cors:    cors,
	}
}
