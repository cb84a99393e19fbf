package service

import (
	"context"
	"time"

	"github.com/gentrackhq/gentrack/models"
)

// AuthService owns enrollment and password verification.
type AuthService interface {
	// Register creates an owner account with a freshly derived credential.
	Register(ctx context.Context, login, name, password string) (models.User, error)

	// Login verifies the password against the stored credential. Unknown
	// logins and wrong passwords both yield [ErrInvalidCredentials] after
	// a full derivation.
	Login(ctx context.Context, login, password string) (models.User, error)
}

// SessionService owns the login session lifecycle.
type SessionService interface {
	// Create mints an opaque 256-bit session token for the user.
	Create(ctx context.Context, userID int64) (models.Session, error)

	// Resolve returns the user bound to an unexpired session, or
	// [ErrInvalidSession] for expired/revoked/unknown ids alike.
	Resolve(ctx context.Context, sessionID string) (models.User, error)

	// Revoke deletes the session. Idempotent.
	Revoke(ctx context.Context, sessionID string) error

	// Lifetime reports the configured session duration, mirrored into the
	// cookie's Max-Age by the transport layer.
	Lifetime() time.Duration
}

// APIKeyService owns the API key lifecycle: mint, list, reset, delete, and
// bearer authentication.
type APIKeyService interface {
	// Create mints a key for the user. The returned value carries the raw
	// secret; this is the only time it is ever revealed.
	Create(ctx context.Context, userID int64, name string) (models.APIKeyCreated, error)

	// List returns the user's keys without any secret material.
	List(ctx context.Context, userID int64) ([]models.APIKeyListed, error)

	// Reset rotates the key's secret, returning the new raw value once.
	// The previous raw value stops verifying the moment the reset commits.
	Reset(ctx context.Context, userID, keyID int64) (models.APIKeyCreated, error)

	// Delete removes the key.
	Delete(ctx context.Context, userID, keyID int64) error

	// Authenticate resolves a presented raw secret to its owner. Misses
	// and mismatches both yield [ErrInvalidAPIKey]. A successful match
	// records last-used asynchronously; that side effect never blocks or
	// fails the authorization decision.
	Authenticate(ctx context.Context, raw string) (models.User, error)
}

// GeneratorService owns the run-state machine and usage history.
type GeneratorService interface {
	// Create enrolls a generator in the Stopped state with zero hours.
	Create(ctx context.Context, userID int64, req models.CreateGeneratorRequest) (models.Generator, error)

	// Toggle flips the generator's binary run state. Stopping computes the
	// elapsed duration, adds it to the total, and appends a usage-log
	// entry atomically with the state change.
	Toggle(ctx context.Context, userID, generatorID int64) (models.ToggleResponse, error)

	// List returns the user's generators with derived maintenance figures.
	List(ctx context.Context, userID int64) ([]models.GeneratorStatus, error)

	// UsageLogs returns the generator's history, optionally bounded by
	// [from, to].
	UsageLogs(ctx context.Context, userID, generatorID int64, from, to *time.Time) ([]models.UsageLogEntry, error)

	// CorrectUsageLog rewrites a historical entry's time range, recomputing
	// its duration and the generator's total hours. Run state is untouched.
	CorrectUsageLog(ctx context.Context, userID, generatorID, logID int64, req models.CorrectUsageLogRequest) (models.UsageLogEntry, error)
}
