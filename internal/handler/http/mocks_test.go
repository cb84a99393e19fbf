package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/ratelimit"
	"github.com/gentrackhq/gentrack/internal/service"
	"github.com/gentrackhq/gentrack/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn func(ctx context.Context, login, name, password string) (models.User, error)
	loginFn    func(ctx context.Context, login, password string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, login, name, password string) (models.User, error) {
	return m.registerFn(ctx, login, name, password)
}

func (m *mockAuthService) Login(ctx context.Context, login, password string) (models.User, error) {
	return m.loginFn(ctx, login, password)
}

// mockSessionService implements service.SessionService for unit tests.
type mockSessionService struct {
	createFn  func(ctx context.Context, userID int64) (models.Session, error)
	resolveFn func(ctx context.Context, sessionID string) (models.User, error)
	revokeFn  func(ctx context.Context, sessionID string) error
	lifetime  time.Duration
}

func (m *mockSessionService) Create(ctx context.Context, userID int64) (models.Session, error) {
	return m.createFn(ctx, userID)
}

func (m *mockSessionService) Resolve(ctx context.Context, sessionID string) (models.User, error) {
	return m.resolveFn(ctx, sessionID)
}

func (m *mockSessionService) Revoke(ctx context.Context, sessionID string) error {
	return m.revokeFn(ctx, sessionID)
}

func (m *mockSessionService) Lifetime() time.Duration {
	return m.lifetime
}

// mockAPIKeyService implements service.APIKeyService for unit tests.
type mockAPIKeyService struct {
	createFn       func(ctx context.Context, userID int64, name string) (models.APIKeyCreated, error)
	listFn         func(ctx context.Context, userID int64) ([]models.APIKeyListed, error)
	resetFn        func(ctx context.Context, userID, keyID int64) (models.APIKeyCreated, error)
	deleteFn       func(ctx context.Context, userID, keyID int64) error
	authenticateFn func(ctx context.Context, raw string) (models.User, error)
}

func (m *mockAPIKeyService) Create(ctx context.Context, userID int64, name string) (models.APIKeyCreated, error) {
	return m.createFn(ctx, userID, name)
}

func (m *mockAPIKeyService) List(ctx context.Context, userID int64) ([]models.APIKeyListed, error) {
	return m.listFn(ctx, userID)
}

func (m *mockAPIKeyService) Reset(ctx context.Context, userID, keyID int64) (models.APIKeyCreated, error) {
	return m.resetFn(ctx, userID, keyID)
}

func (m *mockAPIKeyService) Delete(ctx context.Context, userID, keyID int64) error {
	return m.deleteFn(ctx, userID, keyID)
}

func (m *mockAPIKeyService) Authenticate(ctx context.Context, raw string) (models.User, error) {
	return m.authenticateFn(ctx, raw)
}

// mockGeneratorService implements service.GeneratorService for unit tests.
type mockGeneratorService struct {
	createFn          func(ctx context.Context, userID int64, req models.CreateGeneratorRequest) (models.Generator, error)
	toggleFn          func(ctx context.Context, userID, generatorID int64) (models.ToggleResponse, error)
	listFn            func(ctx context.Context, userID int64) ([]models.GeneratorStatus, error)
	usageLogsFn       func(ctx context.Context, userID, generatorID int64, from, to *time.Time) ([]models.UsageLogEntry, error)
	correctUsageLogFn func(ctx context.Context, userID, generatorID, logID int64, req models.CorrectUsageLogRequest) (models.UsageLogEntry, error)
}

func (m *mockGeneratorService) Create(ctx context.Context, userID int64, req models.CreateGeneratorRequest) (models.Generator, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockGeneratorService) Toggle(ctx context.Context, userID, generatorID int64) (models.ToggleResponse, error) {
	return m.toggleFn(ctx, userID, generatorID)
}

func (m *mockGeneratorService) List(ctx context.Context, userID int64) ([]models.GeneratorStatus, error) {
	return m.listFn(ctx, userID)
}

func (m *mockGeneratorService) UsageLogs(ctx context.Context, userID, generatorID int64, from, to *time.Time) ([]models.UsageLogEntry, error) {
	return m.usageLogsFn(ctx, userID, generatorID, from, to)
}

func (m *mockGeneratorService) CorrectUsageLog(ctx context.Context, userID, generatorID, logID int64, req models.CorrectUsageLogRequest) (models.UsageLogEntry, error) {
	return m.correctUsageLogFn(ctx, userID, generatorID, logID, req)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// resolveAsUser7 is a session mock that accepts any non-empty session id as
// user 7. Most owner-API tests only need to get past the guard.
func resolveAsUser7() *mockSessionService {
	return &mockSessionService{
		resolveFn: func(_ context.Context, sessionID string) (models.User, error) {
			if sessionID == "" {
				return models.User{}, service.ErrInvalidSession
			}
			return models.User{UserID: 7, Login: "owner@farm.example"}, nil
		},
		lifetime: time.Hour,
	}
}

// newTestHandler builds a Handler over the given mocks with a generous rate
// limit so throttling never interferes unless a test wants it to.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	limiter := ratelimit.NewLimiter(1000, time.Second, time.Now, logger.Nop())
	return NewHandler(svcs, limiter, false, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
