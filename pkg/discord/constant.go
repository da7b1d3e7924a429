package discord

import (
	"errors"
	"time"
)

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	colorInfo    = 0x3498DB
	colorSuccess = 0x2ECC71
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C

	// maxDescriptionLength is Discord's embed description limit.
	maxDescriptionLength = 4096
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// DefaultConfig returns the default Discord configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "social-analytics-srv",
	}
}
