package http

import (
	"net/http"
	"strconv"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/utils"
	"github.com/gentrackhq/gentrack/models"
)

// withRateLimit throttles the device-facing API per client address.
//
// It runs before authentication, so over-limit clients are turned away
// without paying for a digest lookup. Denied requests get HTTP 429 with a
// Retry-After header and a matching JSON hint.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		result := h.limiter.Check(clientID(r))
		if !result.Allowed {
			log.Warn().
				Str("client", clientID(r)).
				Int("retry_after", result.RetryAfter).
				Msg("rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
			utils.WriteJSON(w, models.RateLimitedResponse{
				Error:      "rate limit exceeded",
				RetryAfter: result.RetryAfter,
			}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
