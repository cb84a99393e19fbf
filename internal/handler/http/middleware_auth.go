package http

import (
	"net"
	"net/http"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/utils"
	"github.com/gentrackhq/gentrack/models"
)

// sessionAuth enforces cookie-based session authentication for the owner
// API.
//
// It reads the session cookie, resolves it via the session service, and on
// success stores the authenticated identity in the request context under
// [utils.PrincipalCtxKey] before delegating to the next handler.
//
// Missing cookies and expired, revoked, or never-issued tokens are all
// rejected with the same HTTP 401 so a caller probing session ids learns
// nothing about which case it hit.
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Warn().Err(ErrNoSessionCookie).Send()
			utils.WriteError(w, "authentication required", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.SessionService.Resolve(ctx, cookie.Value)
		if err != nil {
			log.Warn().Err(err).Msg("session resolution failed")
			utils.WriteError(w, "authentication required", http.StatusUnauthorized)
			return
		}

		ctx = utils.WithPrincipal(ctx, models.Principal{UserID: user.UserID, Login: user.Login})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// apiKeyAuth enforces bearer authentication for the device-facing API via
// the "x-api-key" header.
//
// A missing header, an unknown secret, and a digest mismatch are all
// rejected with the same HTTP 401 body.
func (h *Handler) apiKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		raw := r.Header.Get("x-api-key")
		if raw == "" {
			log.Warn().Err(ErrEmptyAPIKeyHeader).Send()
			utils.WriteError(w, "invalid api key", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.APIKeyService.Authenticate(ctx, raw)
		if err != nil {
			log.Warn().Err(err).Msg("api key rejected")
			utils.WriteError(w, "invalid api key", http.StatusUnauthorized)
			return
		}

		ctx = utils.WithPrincipal(ctx, models.Principal{UserID: user.UserID, Login: user.Login})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientID derives the throttling key from the request's remote address.
// The port changes per connection, so only the host part is used.
func clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
