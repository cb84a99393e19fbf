package store

import "errors"

// Sentinel errors returned by the repositories. Services match against them
// with [errors.Is] and fold them into the outward error taxonomy.
var (
	// ErrLoginAlreadyExists indicates a unique-violation on users.login.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound indicates a lookup miss on the users table.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound indicates the session id is unknown. Expired and
	// never-issued ids are deliberately indistinguishable.
	ErrSessionNotFound = errors.New("session not found")

	// ErrAPIKeyNotFound indicates the key is absent or not owned by the
	// caller; the two cases are deliberately indistinguishable.
	ErrAPIKeyNotFound = errors.New("api key not found")

	// ErrGeneratorNotFound indicates the generator is absent or not owned
	// by the caller; the two cases are deliberately indistinguishable.
	ErrGeneratorNotFound = errors.New("generator not found")

	// ErrUsageLogNotFound indicates the usage-log entry is absent or does
	// not belong to the caller's generator.
	ErrUsageLogNotFound = errors.New("usage log entry not found")

	// ErrToggleConflict is returned when a conditional run-state update
	// matched zero rows: a concurrent toggle on the same generator won the
	// race between this caller's read and write.
	ErrToggleConflict = errors.New("run state changed concurrently")
)
