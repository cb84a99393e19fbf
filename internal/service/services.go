package service

import (
	"github.com/gentrackhq/gentrack/internal/config"
	"github.com/gentrackhq/gentrack/internal/crypto"
	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/store"
)

type Services struct {
	AuthService      AuthService
	SessionService   SessionService
	APIKeyService    APIKeyService
	GeneratorService GeneratorService
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, hasher, logger),
		SessionService:   NewSessionService(storages.SessionRepository, storages.UserRepository, cfg.SessionLifetime, logger),
		APIKeyService:    NewAPIKeyService(storages.APIKeyRepository, storages.UserRepository, crypto.NewKeySecrets(), logger),
		GeneratorService: NewGeneratorService(storages.GeneratorRepository, logger),
	}
}
