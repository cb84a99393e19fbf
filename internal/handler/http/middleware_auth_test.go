package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/ratelimit"
	"github.com/gentrackhq/gentrack/internal/service"
	"github.com/gentrackhq/gentrack/internal/utils"
	"github.com/gentrackhq/gentrack/models"
)

// principalProbe is a terminal handler recording the principal the guard
// put into the context.
type principalProbe struct {
	called    bool
	principal models.Principal
	found     bool
}

func (p *principalProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.principal, p.found = utils.GetPrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// ─────────────────────────────────────────────
// sessionAuth
// ─────────────────────────────────────────────

func TestSessionAuth_PassesPrincipal(t *testing.T) {
	h := newTestHandler(t, &service.Services{SessionService: resolveAsUser7()})

	probe := &principalProbe{}
	guarded := h.sessionAuth(probe.handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "active-session"})
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, probe.called)
	require.True(t, probe.found)
	assert.Equal(t, int64(7), probe.principal.UserID)
	assert.Equal(t, "owner@farm.example", probe.principal.Login)
}

func TestSessionAuth_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		request func() *http.Request
	}{
		{
			name: "no cookie",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/", nil)
			},
		},
		{
			name: "unresolvable session",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: ""})
				return req
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{SessionService: resolveAsUser7()})

			probe := &principalProbe{}
			guarded := h.sessionAuth(probe.handler())

			rec := httptest.NewRecorder()
			guarded.ServeHTTP(rec, tt.request())

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, probe.called, "guard must not delegate")
		})
	}
}

// ─────────────────────────────────────────────
// apiKeyAuth
// ─────────────────────────────────────────────

func TestAPIKeyAuth_PassesPrincipal(t *testing.T) {
	keys := &mockAPIKeyService{
		authenticateFn: func(_ context.Context, raw string) (models.User, error) {
			assert.Equal(t, "gsk_device-secret", raw)
			return models.User{UserID: 7, Login: "owner@farm.example"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{APIKeyService: keys})

	probe := &principalProbe{}
	guarded := h.apiKeyAuth(probe.handler())

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("x-api-key", "gsk_device-secret")
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, probe.found)
	assert.Equal(t, int64(7), probe.principal.UserID)
}

func TestAPIKeyAuth_Rejections(t *testing.T) {
	keys := &mockAPIKeyService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidAPIKey
		},
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "unknown key", header: "gsk_unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{APIKeyService: keys})

			probe := &principalProbe{}
			guarded := h.apiKeyAuth(probe.handler())

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("x-api-key", tt.header)
			}
			rec := httptest.NewRecorder()
			guarded.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid api key", "missing and wrong keys share one body")
			assert.False(t, probe.called)
		})
	}
}

// ─────────────────────────────────────────────
// withRateLimit
// ─────────────────────────────────────────────

func TestWithRateLimit_DeniesOverLimit(t *testing.T) {
	limiter := ratelimit.NewLimiter(1, time.Minute, time.Now, logger.Nop())
	h := NewHandler(&service.Services{}, limiter, false, logger.Nop())

	probe := &principalProbe{}
	throttled := h.withRateLimit(probe.handler())

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "203.0.113.9:41000"
		return req
	}

	rec := httptest.NewRecorder()
	throttled.ServeHTTP(rec, newReq())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	throttled.ServeHTTP(rec, newReq())
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "retryAfter")
}

// Two clients on the same host but different source ports share a bucket;
// a different host does not.
func TestWithRateLimit_KeyedByHost(t *testing.T) {
	limiter := ratelimit.NewLimiter(1, time.Minute, time.Now, logger.Nop())
	h := NewHandler(&service.Services{}, limiter, false, logger.Nop())

	probe := &principalProbe{}
	throttled := h.withRateLimit(probe.handler())

	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		throttled.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.9:41000"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.9:52000"))
	assert.Equal(t, http.StatusOK, send("198.51.100.4:41000"))
}
