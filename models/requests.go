package models

import "time"

// ToggleRequest is the toggle endpoint's body.
type ToggleRequest struct {
	GeneratorID int64 `json:"generatorId"`
}

// CreateAPIKeyRequest is the key-creation body.
type CreateAPIKeyRequest struct {
	Name string `json:"name"`
}

// CreateGeneratorRequest is the generator enrollment body.
type CreateGeneratorRequest struct {
	Name                  string     `json:"name"`
	InstallDate           *time.Time `json:"installDate,omitempty"`
	ServiceIntervalHours  float64    `json:"serviceIntervalHours,omitempty"`
	ServiceIntervalMonths int        `json:"serviceIntervalMonths,omitempty"`
}

// CorrectUsageLogRequest rewrites the time range of a historical usage-log
// entry. Duration is recomputed server-side; run state is never touched.
type CorrectUsageLogRequest struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Principal is the typed authenticated identity produced by the access
// middleware and threaded explicitly into service calls.
type Principal struct {
	UserID int64
	Login  string
}
