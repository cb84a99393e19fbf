package models

import "time"

// UsageLogEntry is one completed run of a generator.
// Entries are append-only; only authorized historical corrections may
// rewrite an entry, and those recompute the generator's TotalHours.
type UsageLogEntry struct {
	LogID       int64     `json:"id"`
	GeneratorID int64     `json:"generator_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`

	// DurationHours is (EndTime - StartTime) in hours, never negative.
	DurationHours float64 `json:"duration_hours"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the UsageLogEntry model.
func (e UsageLogEntry) TableName() string {
	return "usage_logs"
}
