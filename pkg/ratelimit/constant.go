package ratelimit

import "time"

const (
	DefaultKeyPrefix = "analytics:ratelimit:"

	// idleTTL is how long an unused local bucket is kept.
	idleTTL = 10 * time.Minute
	// sweepEvery bounds how often idle buckets are collected.
	sweepEvery = time.Minute
)
