package models

import "time"

// Generator is the tracked physical device with its binary run state and
// accumulated runtime.
//
// Run-state invariant: IsRunning == true ⇔ CurrentStartTime != nil.
// The pair is mutated only by the toggle operation; historical usage-log
// corrections recompute TotalHours but never touch the run state.
type Generator struct {
	// GeneratorID is the internal unique identifier of the generator.
	GeneratorID int64 `json:"id"`

	// UserID is the owner. Excluded from JSON.
	UserID int64 `json:"-"`

	// Name is a user-chosen label for the device.
	Name string `json:"name"`

	// IsRunning reports which half of the binary run state the device is in.
	IsRunning bool `json:"is_running"`

	// CurrentStartTime is the instant the current run began.
	// Nil whenever IsRunning is false.
	CurrentStartTime *time.Time `json:"current_start_time,omitempty"`

	// TotalHours is the accumulated runtime across all completed runs.
	TotalHours float64 `json:"total_hours"`

	// InstallDate is when the device was put in service. Optional.
	InstallDate *time.Time `json:"install_date,omitempty"`

	// LastServiceDate is when the device was last maintained. Optional.
	LastServiceDate *time.Time `json:"last_service_date,omitempty"`

	// LastServiceHours is the TotalHours reading at the last service.
	LastServiceHours float64 `json:"last_service_hours"`

	// ServiceIntervalHours is the runtime between services recommended by
	// the manufacturer. Zero means no hour-based interval is configured.
	ServiceIntervalHours float64 `json:"service_interval_hours"`

	// ServiceIntervalMonths is the calendar interval between services.
	// Zero means no month-based interval is configured.
	ServiceIntervalMonths int `json:"service_interval_months"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Generator model.
func (g Generator) TableName() string {
	return "generators"
}
