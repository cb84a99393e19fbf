package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gentrackhq/gentrack/internal/crypto"
	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/store"
	"github.com/gentrackhq/gentrack/models"
)

// apiKeyService is the concrete implementation of APIKeyService.
//
// Raw secrets exist only inside Create, Reset, and Authenticate; the
// repository ever sees digests and hints.
type apiKeyService struct {
	apiKeyRepository store.APIKeyRepository
	userRepository   store.UserRepository

	secrets crypto.KeySecrets

	// now stamps last-used recordings; injected for tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAPIKeyService constructs an APIKeyService over the given repositories
// and secret manager.
func NewAPIKeyService(apiKeyRepository store.APIKeyRepository, userRepository store.UserRepository, secrets crypto.KeySecrets, logger *logger.Logger) APIKeyService {
	return &apiKeyService{
		apiKeyRepository: apiKeyRepository,
		userRepository:   userRepository,
		secrets:          secrets,
		now:              time.Now,
		logger:           logger,
	}
}

// Create mints a key and persists its digest. The returned value is the
// only copy of the raw secret that will ever exist server-side.
func (s *apiKeyService) Create(ctx context.Context, userID int64, name string) (models.APIKeyCreated, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(name) == "" {
		return models.APIKeyCreated{}, ErrInvalidDataProvided
	}

	minted, err := s.secrets.Mint()
	if err != nil {
		log.Err(err).Msg("api key minting failed")
		return models.APIKeyCreated{}, fmt.Errorf("api key minting failed: %w", err)
	}

	created, err := s.apiKeyRepository.CreateAPIKey(ctx, models.APIKey{
		UserID:  userID,
		Name:    name,
		KeyHash: minted.HashHex,
		KeyHint: minted.Hint,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("api key creation ended with error")
		return models.APIKeyCreated{}, fmt.Errorf("api key creation ended with error: %w", err)
	}

	return models.APIKeyCreated{
		KeyID:     created.KeyID,
		Name:      created.Name,
		Key:       minted.Raw,
		Hint:      minted.Hint,
		CreatedAt: created.CreatedAt,
	}, nil
}

// List returns the user's keys in the read-only listing shape; the hint is
// pre-formatted and no secret material is included.
func (s *apiKeyService) List(ctx context.Context, userID int64) ([]models.APIKeyListed, error) {
	log := logger.FromContext(ctx)

	keys, err := s.apiKeyRepository.ListAPIKeys(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("api key listing ended with error")
		return nil, fmt.Errorf("api key listing ended with error: %w", err)
	}

	listed := make([]models.APIKeyListed, 0, len(keys))
	for _, key := range keys {
		listed = append(listed, models.APIKeyListed{
			KeyID:      key.KeyID,
			Name:       key.Name,
			Hint:       crypto.FormatHint(key.KeyHint),
			LastUsedAt: key.LastUsedAt,
			CreatedAt:  key.CreatedAt,
		})
	}

	return listed, nil
}

// Reset rotates the key's secret in a single repository update, so the
// previous raw value is invalidated the instant the new digest lands.
func (s *apiKeyService) Reset(ctx context.Context, userID, keyID int64) (models.APIKeyCreated, error) {
	log := logger.FromContext(ctx)

	minted, err := s.secrets.Mint()
	if err != nil {
		log.Err(err).Msg("api key minting failed")
		return models.APIKeyCreated{}, fmt.Errorf("api key minting failed: %w", err)
	}

	renewed, err := s.apiKeyRepository.ResetAPIKey(ctx, userID, keyID, minted.HashHex, minted.Hint)
	if err != nil {
		if errors.Is(err, store.ErrAPIKeyNotFound) {
			return models.APIKeyCreated{}, err
		}
		log.Err(err).Int64("key_id", keyID).Msg("api key reset ended with error")
		return models.APIKeyCreated{}, fmt.Errorf("api key reset ended with error: %w", err)
	}

	return models.APIKeyCreated{
		KeyID:     renewed.KeyID,
		Name:      renewed.Name,
		Key:       minted.Raw,
		Hint:      minted.Hint,
		CreatedAt: renewed.CreatedAt,
	}, nil
}

// Delete removes the key.
func (s *apiKeyService) Delete(ctx context.Context, userID, keyID int64) error {
	return s.apiKeyRepository.DeleteAPIKey(ctx, userID, keyID)
}

// Authenticate resolves a presented raw secret to its owner.
//
// The lookup keys on the secret's digest; the stored digest is then
// re-verified with a constant-time comparison. On success the key's
// last-used timestamp is recorded in a detached goroutine — the side effect
// must never block or fail the authorization decision.
func (s *apiKeyService) Authenticate(ctx context.Context, raw string) (models.User, error) {
	log := logger.FromContext(ctx)

	if raw == "" {
		return models.User{}, ErrInvalidAPIKey
	}

	key, err := s.apiKeyRepository.FindAPIKeyByHash(ctx, crypto.DigestHex(raw))
	if err != nil {
		return models.User{}, ErrInvalidAPIKey
	}

	if !s.secrets.Verify(raw, key.KeyHash) {
		return models.User{}, ErrInvalidAPIKey
	}

	user, err := s.userRepository.FindUserByID(ctx, key.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", key.UserID).Msg("api key owner lookup failed")
		return models.User{}, ErrInvalidAPIKey
	}

	usedAt := s.now()
	bg := s.logger.GetChildLogger()
	go func() {
		touchCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.apiKeyRepository.TouchAPIKey(touchCtx, key.KeyID, usedAt); err != nil {
			bg.Err(err).Int64("key_id", key.KeyID).Msg("recording api key use failed")
		}
	}()

	return user, nil
}
