package log

import "go.uber.org/zap"

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string // development | production
	Encoding     string // console | json
	ColorEnabled bool
}

// zapLogger implements Logger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// requestIDKey is the context key for the request ID set by the HTTP middleware.
type requestIDKey struct{}
