package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/models"
)

// apiKeyRepository is the PostgreSQL-backed implementation of
// [APIKeyRepository] over the "api_keys" table.
//
// Only digests and hints ever reach this layer; the raw secret is consumed
// at the service boundary.
type apiKeyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAPIKeyRepository constructs an [APIKeyRepository] backed by the
// provided database connection and logger.
func NewAPIKeyRepository(db *DB, logger *logger.Logger) APIKeyRepository {
	logger.Debug().Msg("creating api key repository")
	return &apiKeyRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAPIKey persists the key and returns it with server-assigned fields.
func (r *apiKeyRepository) CreateAPIKey(ctx context.Context, key models.APIKey) (models.APIKey, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAPIKey, key.UserID, key.Name, key.KeyHash, key.KeyHint)

	var created models.APIKey
	if err := row.Scan(&created.KeyID, &created.UserID, &created.Name, &created.KeyHash, &created.KeyHint, &created.LastUsedAt, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.CreateAPIKey").Msg("error creating api key")
		return models.APIKey{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListAPIKeys returns all keys owned by userID, newest first.
func (r *apiKeyRepository) ListAPIKeys(ctx context.Context, userID int64) ([]models.APIKey, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAPIKeys, userID)
	if err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.ListAPIKeys").Msg("error listing api keys")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	keys := make([]models.APIKey, 0)
	for rows.Next() {
		var key models.APIKey
		if err = rows.Scan(&key.KeyID, &key.UserID, &key.Name, &key.KeyHash, &key.KeyHint, &key.LastUsedAt, &key.CreatedAt); err != nil {
			log.Err(err).Str("func", "*apiKeyRepository.ListAPIKeys").Msg("error scanning api key row")
			return nil, err
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return keys, nil
}

// FindAPIKeyByHash retrieves the key whose stored digest equals hashHex.
// Lookup misses yield [ErrAPIKeyNotFound].
func (r *apiKeyRepository) FindAPIKeyByHash(ctx context.Context, hashHex string) (models.APIKey, error) {
	log := logger.FromContext(ctx)

	var found models.APIKey
	row := r.db.QueryRowContext(ctx, findAPIKeyByHash, hashHex)
	if err := row.Scan(&found.KeyID, &found.UserID, &found.Name, &found.KeyHash, &found.KeyHint, &found.LastUsedAt, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.APIKey{}, ErrAPIKeyNotFound
		}
		log.Err(err).Str("func", "*apiKeyRepository.FindAPIKeyByHash").Msg("error searching api key by hash")
		return models.APIKey{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// TouchAPIKey records a successful use of the key.
func (r *apiKeyRepository) TouchAPIKey(ctx context.Context, keyID int64, usedAt time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchAPIKey, keyID, usedAt); err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.TouchAPIKey").Msg("error touching api key")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ResetAPIKey atomically replaces the key's digest and hint and clears
// last_used_at. The single UPDATE makes the previous raw value irrecoverable
// the instant it commits.
func (r *apiKeyRepository) ResetAPIKey(ctx context.Context, userID, keyID int64, hashHex, hint string) (models.APIKey, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, resetAPIKey, userID, keyID, hashHex, hint)

	var renewed models.APIKey
	if err := row.Scan(&renewed.KeyID, &renewed.UserID, &renewed.Name, &renewed.KeyHash, &renewed.KeyHint, &renewed.LastUsedAt, &renewed.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.APIKey{}, ErrAPIKeyNotFound
		}
		log.Err(err).Str("func", "*apiKeyRepository.ResetAPIKey").Msg("error resetting api key")
		return models.APIKey{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return renewed, nil
}

// DeleteAPIKey removes the key; a key not owned by userID yields
// [ErrAPIKeyNotFound] so non-owners cannot distinguish existence.
func (r *apiKeyRepository) DeleteAPIKey(ctx context.Context, userID, keyID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteAPIKey, userID, keyID)
	if err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.DeleteAPIKey").Msg("error deleting api key")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAPIKeyNotFound
	}

	return nil
}
