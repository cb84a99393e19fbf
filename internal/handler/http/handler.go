package http

import (
	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/ratelimit"
	"github.com/gentrackhq/gentrack/internal/service"
)

// sessionCookieName is the cookie carrying the opaque session token.
const sessionCookieName = "gentrack_session"

type Handler struct {
	services *service.Services

	limiter *ratelimit.Limiter

	// production switches the Secure attribute on the session cookie.
	production bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter *ratelimit.Limiter, production bool, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		limiter:    limiter,
		production: production,
		logger:     logger,
	}
}
