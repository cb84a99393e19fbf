package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/gentrackhq/gentrack/models"
)

// UserRepository persists owner accounts.
type UserRepository interface {
	// CreateUser persists user and returns it with server-assigned fields.
	// A duplicate login yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the account with the given login or
	// [ErrNoUserWasFound].
	FindUserByLogin(ctx context.Context, login string) (models.User, error)

	// FindUserByID returns the account with the given id or
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	// CreateSession persists the session record.
	CreateSession(ctx context.Context, session models.Session) error

	// FindSession returns the session with the given id or
	// [ErrSessionNotFound]. Expiry is the caller's concern.
	FindSession(ctx context.Context, sessionID string) (models.Session, error)

	// DeleteSession removes the session. Deleting an unknown id is a no-op.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteExpired removes every session whose expiry is at or before now
	// and reports how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// APIKeyRepository persists API key credentials. Raw secrets never reach
// this layer; only digests and hints are stored.
type APIKeyRepository interface {
	// CreateAPIKey persists key and returns it with server-assigned fields.
	CreateAPIKey(ctx context.Context, key models.APIKey) (models.APIKey, error)

	// ListAPIKeys returns all keys owned by userID, newest first.
	ListAPIKeys(ctx context.Context, userID int64) ([]models.APIKey, error)

	// FindAPIKeyByHash returns the key whose stored digest equals hashHex
	// or [ErrAPIKeyNotFound].
	FindAPIKeyByHash(ctx context.Context, hashHex string) (models.APIKey, error)

	// TouchAPIKey records a successful use of the key.
	TouchAPIKey(ctx context.Context, keyID int64, usedAt time.Time) error

	// ResetAPIKey atomically replaces the key's digest and hint and clears
	// last_used_at. A key not owned by userID yields [ErrAPIKeyNotFound].
	ResetAPIKey(ctx context.Context, userID, keyID int64, hashHex, hint string) (models.APIKey, error)

	// DeleteAPIKey removes the key. A key not owned by userID yields
	// [ErrAPIKeyNotFound].
	DeleteAPIKey(ctx context.Context, userID, keyID int64) error
}

// GeneratorRepository persists generators and their usage history.
//
// StartRun and StopRun carry run-state preconditions into the UPDATE's WHERE
// clause so that concurrent toggles on the same generator serialize at the
// database row; a precondition miss surfaces as [ErrToggleConflict].
type GeneratorRepository interface {
	// CreateGenerator persists g in the Stopped state with zero hours.
	CreateGenerator(ctx context.Context, g models.Generator) (models.Generator, error)

	// FindGenerator returns the generator owned by userID or
	// [ErrGeneratorNotFound].
	FindGenerator(ctx context.Context, userID, generatorID int64) (models.Generator, error)

	// ListGenerators returns all generators owned by userID.
	ListGenerators(ctx context.Context, userID int64) ([]models.Generator, error)

	// ListAllGenerators returns every generator. Used by the maintenance
	// reminder worker.
	ListAllGenerators(ctx context.Context) ([]models.Generator, error)

	// StartRun flips the generator to Running with the given start time,
	// guarded by "is currently stopped".
	StartRun(ctx context.Context, userID, generatorID int64, startTime time.Time) error

	// StopRun flips the generator to Stopped, adds durationHours to its
	// total, and appends the usage-log entry in the same transaction,
	// guarded by "is currently running since startTime". Returns the new
	// total hours.
	StopRun(ctx context.Context, userID, generatorID int64, startTime, endTime time.Time, durationHours float64) (float64, error)

	// ListUsageLogs returns usage entries for the generator, optionally
	// bounded by [from, to], newest first. A generator not owned by userID
	// yields [ErrGeneratorNotFound].
	ListUsageLogs(ctx context.Context, userID, generatorID int64, from, to *time.Time) ([]models.UsageLogEntry, error)

	// CorrectUsageLog rewrites an entry's time range and duration and
	// adjusts the generator's total hours by the duration delta in one
	// transaction. Run state is never touched.
	CorrectUsageLog(ctx context.Context, userID, generatorID, logID int64, start, end time.Time, durationHours float64) (models.UsageLogEntry, error)
}
