package log

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := SetRequestID(context.Background(), "req-123")
	if got := GetRequestID(ctx); got != "req-123" {
		t.Errorf("GetRequestID: got %q, want %q", got, "req-123")
	}
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID on empty context: got %q, want empty", got)
	}
}

func TestInitFallsBackOnUnknownLevel(t *testing.T) {
	l := Init(ZapConfig{Level: "verbose", Mode: ModeDevelopment, Encoding: EncodingJSON})
	if l == nil {
		t.Fatal("Init returned nil logger")
	}
	l.Infof(SetRequestID(context.Background(), "abc"), "logger initialized at %s", "info")
}
