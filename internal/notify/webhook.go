// Package notify delivers maintenance reminders to an owner-configured
// webhook. Reminders are advisory; a failed delivery is logged and retried
// on the next reminder cycle, never escalated.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gentrackhq/gentrack/models"
)

// Reminder is the webhook payload for one generator due for service.
type Reminder struct {
	GeneratorID        int64   `json:"generatorId"`
	Name               string  `json:"name"`
	TotalHours         float64 `json:"totalHours"`
	HoursSinceService  float64 `json:"hoursSinceService"`
	MonthsSinceService int     `json:"monthsSinceService"`
}

// Sender delivers a single reminder.
type Sender interface {
	Send(ctx context.Context, reminder Reminder) error
}

// WebhookConfig configures the webhook client.
type WebhookConfig struct {
	URL     string
	Timeout time.Duration
}

type webhookSender struct {
	client *resty.Client
	url    string
}

// NewWebhookSender constructs a Sender posting JSON reminders to the
// configured URL.
func NewWebhookSender(cfg WebhookConfig) Sender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().SetTimeout(cfg.Timeout)

	return &webhookSender{client: cli, url: cfg.URL}
}

func (s *webhookSender) Send(ctx context.Context, reminder Reminder) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reminder).
		Post(s.url)
	if err != nil {
		return fmt.Errorf("reminder delivery: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("reminder delivery: webhook answered %d", resp.StatusCode())
	}

	return nil
}

// FromStatus builds the reminder payload for a generator whose maintenance
// figures say service is due.
func FromStatus(status models.GeneratorStatus) Reminder {
	return Reminder{
		GeneratorID:        status.GeneratorID,
		Name:               status.Name,
		TotalHours:         status.TotalHours,
		HoursSinceService:  status.HoursSinceService,
		MonthsSinceService: status.MonthsSinceService,
	}
}
