package service

import "errors"

var (
	// ErrInvalidDataProvided indicates a request shape violation
	// (empty login, missing password, non-positive id, ...).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password". The two causes are never distinguished outward, and the
	// miss path burns a full hash derivation so they cannot be told apart
	// by latency either.
	ErrInvalidCredentials = errors.New("invalid login/password")

	// ErrInvalidSession covers expired, revoked, and never-issued session
	// ids alike.
	ErrInvalidSession = errors.New("session is expired or invalid")

	// ErrInvalidAPIKey covers absent and mismatched bearer secrets alike.
	ErrInvalidAPIKey = errors.New("api key is invalid")

	// ErrNegativeDuration indicates a usage-log correction whose end
	// precedes its start.
	ErrNegativeDuration = errors.New("end time precedes start time")
)
