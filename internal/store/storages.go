package store

import (
	"context"

	"github.com/gentrackhq/gentrack/internal/config"
	"github.com/gentrackhq/gentrack/internal/logger"
)

// Storages aggregates every repository over the shared database handle.
type Storages struct {
	UserRepository      UserRepository
	SessionRepository   SessionRepository
	APIKeyRepository    APIKeyRepository
	GeneratorRepository GeneratorRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories over the shared handle.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		SessionRepository:   NewSessionRepository(db, log),
		APIKeyRepository:    NewAPIKeyRepository(db, log),
		GeneratorRepository: NewGeneratorRepository(db, log),
		db:                  db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
