package models

import "time"

// ErrorResponse is the error body shape shared by all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RateLimitedResponse is the 429 body carrying the retry hint.
type RateLimitedResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

// ToggleResponse is returned by the toggle endpoint for both transitions.
// StartTime is set on start; DurationHours on stop.
type ToggleResponse struct {
	Status        string     `json:"status"`
	IsRunning     bool       `json:"isRunning"`
	StartTime     *time.Time `json:"startTime,omitempty"`
	DurationHours *float64   `json:"durationHours,omitempty"`
	TotalHours    float64    `json:"totalHours"`
}

// APIKeyCreated is returned by key create and key reset. Key holds the raw
// secret and is populated exactly once; listings use APIKeyListed instead.
type APIKeyCreated struct {
	KeyID     int64     `json:"id"`
	Name      string    `json:"name"`
	Key       string    `json:"key"`
	Hint      string    `json:"hint"`
	CreatedAt time.Time `json:"createdAt"`
}

// APIKeyListed is the read-only listing shape. Hint is pre-formatted as
// "<prefix>...<last4>"; the raw secret is never included.
type APIKeyListed struct {
	KeyID      int64      `json:"id"`
	Name       string     `json:"name"`
	Hint       string     `json:"hint"`
	LastUsedAt *time.Time `json:"lastUsedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// GeneratorStatus is the listing shape for a generator together with the
// derived maintenance figures.
type GeneratorStatus struct {
	Generator
	HoursSinceService  float64 `json:"hours_since_service"`
	MonthsSinceService int     `json:"months_since_service"`
	ServiceDue         bool    `json:"service_due"`
}
