package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization; logout answers 204 no matter what the
	// cookie holds, so it sits here and revokes best-effort
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/logout", h.logout)
	})

	// routes behind the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.sessionAuth)

		r.Post("/api/keys", h.createKey)
		r.Get("/api/keys", h.listKeys)
		r.Post("/api/keys/{keyID}/reset", h.resetKey)
		r.Delete("/api/keys/{keyID}", h.deleteKey)

		r.Post("/api/generators", h.createGenerator)
		r.Get("/api/generators", h.listGenerators)
		r.Get("/api/generators/{generatorID}/logs", h.listUsageLogs)
		r.Patch("/api/generators/{generatorID}/logs/{logID}", h.correctUsageLog)
	})

	// the device-facing route behind the API key, throttled per client
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Use(h.apiKeyAuth)

		r.Post("/api/generator/toggle", h.toggle)
	})

	return router
}
