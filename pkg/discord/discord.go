package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// SendMessage posts a plain-text message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{Content: content, Username: d.config.DefaultUsername})
}

// SendEmbed posts a single embed built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	desc := options.Description
	if len(desc) > maxDescriptionLength {
		desc = desc[:maxDescriptionLength]
	}
	embed := Embed{
		Title:       options.Title,
		Description: desc,
		Color:       colorFor(options.Type),
		Timestamp:   ts.UTC().Format(time.RFC3339),
		Footer:      options.Footer,
		Fields:      options.Fields,
	}
	return d.send(ctx, WebhookPayload{Username: d.config.DefaultUsername, Embeds: []Embed{embed}})
}

// SendError posts an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	opts := MessageOptions{Type: MessageTypeError, Title: title, Description: description}
	if err != nil {
		opts.Fields = []EmbedField{{Name: "Error", Value: err.Error()}}
	}
	return d.SendEmbed(ctx, opts)
}

// SendInfo posts an info embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeInfo, Title: title, Description: description})
}

// Close releases idle connections.
func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}
	url := fmt.Sprintf("%s/%s/%s", d.baseURL, d.webhook.ID, d.webhook.Token)

	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}
		lastErr = d.post(ctx, url, body)
		if lastErr == nil {
			return nil
		}
	}
	d.l.Warnf(ctx, "pkg.discord.send: giving up after %d attempts: %v", d.config.RetryCount+1, lastErr)
	return lastErr
}

func (d *discordImpl) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("discord: webhook returned %d", resp.StatusCode)
	}
	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}
