package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sitekit-api/pkg/log"
)

// IDiscord sends operational messages to a Discord webhook.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// Webhook identifies a Discord webhook endpoint.
type Webhook struct {
	ID    string
	Token string
}

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryCount = 2
	defaultRetryDelay = 500 * time.Millisecond
	defaultUsername   = "sitekit-api"

	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"
	userAgent          = "sitekit-api/1.0"

	maxMessageLength = 2000
	reportBugTitle   = "Internal Server Error"
	reportBugDescLen = 4000

	colorError = 0xE74C3C
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// New creates a new Discord webhook client.
func New(l log.Logger, webhook *Webhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	return &implDiscord{
		l:       l,
		webhook: webhook,
		client:  newHTTPClient(defaultTimeout),
	}, nil
}

func (d *implDiscord) webhookURL() string {
	return fmt.Sprintf(webhookURLTemplate, d.webhook.ID, d.webhook.Token)
}

// SendMessage posts a plain content message to the webhook.
func (d *implDiscord) SendMessage(ctx context.Context, content string) error {
	if len(content) > maxMessageLength {
		return fmt.Errorf("discord: message too long: %d characters (max: %d)", len(content), maxMessageLength)
	}
	return d.sendWithRetry(ctx, &webhookPayload{
		Content:  content,
		Username: defaultUsername,
	})
}

// ReportBug posts an error report embed. Oversized reports are truncated
// rather than rejected so a bug never goes unreported for being verbose.
func (d *implDiscord) ReportBug(ctx context.Context, message string) error {
	if len(message) > reportBugDescLen {
		message = message[:reportBugDescLen-3] + "..."
	}
	return d.sendWithRetry(ctx, &webhookPayload{
		Username: defaultUsername,
		Embeds: []embed{{
			Title:       reportBugTitle,
			Description: fmt.Sprintf("```%s```", message),
			Color:       colorError,
			Timestamp:   time.Now().Format(time.RFC3339),
		}},
	})
}

func (d *implDiscord) Close() error {
	if d.client != nil {
		d.client.CloseIdleConnections()
	}
	return nil
}
