package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/store"
	"github.com/gentrackhq/gentrack/models"
)

// sessionService is the concrete implementation of SessionService.
//
// Session identifiers are 256-bit random tokens stored server-side, so any
// session can be revoked instantly and resolution of expired, revoked, and
// never-issued ids is uniformly [ErrInvalidSession].
type sessionService struct {
	sessionRepository store.SessionRepository
	userRepository    store.UserRepository

	lifetime time.Duration

	// now is injected for deterministic expiry tests.
	now func() time.Time

	logger *logger.Logger
}

// NewSessionService constructs a SessionService issuing sessions valid for
// lifetime.
func NewSessionService(sessionRepository store.SessionRepository, userRepository store.UserRepository, lifetime time.Duration, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		userRepository:    userRepository,
		lifetime:          lifetime,
		now:               time.Now,
		logger:            logger,
	}
}

// Create mints a session for the user: 32 bytes from the OS CSPRNG,
// hex-encoded, expiring after the configured lifetime.
func (s *sessionService) Create(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	token := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, token); err != nil {
		log.Err(err).Msg("error generating session token")
		return models.Session{}, fmt.Errorf("error generating session token: %w", err)
	}

	session := models.Session{
		SessionID: hex.EncodeToString(token),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.lifetime),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}

// Resolve looks the session up and requires it to be unexpired. Unknown and
// expired ids are both normalised to [ErrInvalidSession] so callers cannot
// learn why resolution failed.
func (s *sessionService) Resolve(ctx context.Context, sessionID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return models.User{}, ErrInvalidSession
	}

	session, err := s.sessionRepository.FindSession(ctx, sessionID)
	if err != nil {
		return models.User{}, ErrInvalidSession
	}

	if session.Expired(s.now()) {
		// passive expiry: the sweeper removes the record later
		return models.User{}, ErrInvalidSession
	}

	user, err := s.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", session.UserID).Msg("session user lookup failed")
		return models.User{}, ErrInvalidSession
	}

	return user, nil
}

// Revoke deletes the session record. Revoking an unknown id is a no-op.
func (s *sessionService) Revoke(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	return s.sessionRepository.DeleteSession(ctx, sessionID)
}

// Lifetime implements SessionService.
func (s *sessionService) Lifetime() time.Duration {
	return s.lifetime
}
