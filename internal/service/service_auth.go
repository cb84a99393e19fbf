package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gentrackhq/gentrack/internal/crypto"
	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/store"
	"github.com/gentrackhq/gentrack/models"
)

// authService is the concrete implementation of AuthService.
// It handles enrollment and credential verification using a UserRepository
// for persistence and an scrypt-based [crypto.PasswordHasher].
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies stored credentials. Its precomputed dummy
	// credential keeps lookup misses as slow as real verifications.
	hasher crypto.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and password hasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Register creates a new owner account.
//
// It validates that both login and password are non-empty, derives a fresh
// credential, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login
//     already taken — see store.ErrLoginAlreadyExists).
func (a *authService) Register(ctx context.Context, login, name, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Str("login", login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	stored, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Msg("credential derivation failed")
		return models.User{}, fmt.Errorf("credential derivation failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Login:        login,
		Name:         name,
		PasswordHash: stored,
	})
	if err != nil {
		log.Err(err).Str("login", login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing owner.
//
// It looks up the account by login and verifies the password against the
// stored credential. When the account does not exist, the password is
// verified against the hasher's dummy credential anyway, so the miss costs
// a full derivation and cannot be distinguished from a wrong password by
// response latency.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - ErrInvalidCredentials for unknown logins and wrong passwords alike.
func (a *authService) Login(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Str("login", login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// burn the full derivation so "no such account" is not faster
			// than "wrong password"
			a.hasher.Verify(password, a.hasher.DummyCredential())
			log.Warn().Str("login", login).Msg("login attempt for unknown account")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !a.hasher.Verify(password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.UserID).Str("login", login).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
