package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/utils"
	"github.com/gentrackhq/gentrack/models"
)

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req models.ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.GeneratorService.Toggle(ctx, principal.UserID, req.GeneratorID)
	if err != nil {
		log.Err(err).Int64("generator_id", req.GeneratorID).Msg("toggle failed")
		utils.WriteError(w, "toggle failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) createGenerator(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req models.CreateGeneratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.GeneratorService.Create(ctx, principal.UserID, req)
	if err != nil {
		log.Err(err).Msg("generator creation failed")
		utils.WriteError(w, "generator creation failed", statusFromError(err))
		return
	}

	log.Info().Int64("generator_id", created.GeneratorID).Msg("generator created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listGenerators(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	statuses, err := h.services.GeneratorService.List(ctx, principal.UserID)
	if err != nil {
		log.Err(err).Msg("generator listing failed")
		utils.WriteError(w, "generator listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, statuses, http.StatusOK)
}

func (h *Handler) listUsageLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	generatorID, err := pathID(r, "generatorID")
	if err != nil {
		utils.WriteError(w, "invalid generator id", http.StatusBadRequest)
		return
	}

	from, err := queryTime(r, "from")
	if err != nil {
		utils.WriteError(w, "invalid `from` timestamp", http.StatusBadRequest)
		return
	}
	to, err := queryTime(r, "to")
	if err != nil {
		utils.WriteError(w, "invalid `to` timestamp", http.StatusBadRequest)
		return
	}

	entries, err := h.services.GeneratorService.UsageLogs(ctx, principal.UserID, generatorID, from, to)
	if err != nil {
		log.Err(err).Int64("generator_id", generatorID).Msg("usage log listing failed")
		utils.WriteError(w, "usage log listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) correctUsageLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	generatorID, err := pathID(r, "generatorID")
	if err != nil {
		utils.WriteError(w, "invalid generator id", http.StatusBadRequest)
		return
	}
	logID, err := pathID(r, "logID")
	if err != nil {
		utils.WriteError(w, "invalid log id", http.StatusBadRequest)
		return
	}

	var req models.CorrectUsageLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	corrected, err := h.services.GeneratorService.CorrectUsageLog(ctx, principal.UserID, generatorID, logID, req)
	if err != nil {
		log.Err(err).Int64("log_id", logID).Msg("usage log correction failed")
		utils.WriteError(w, "usage log correction failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, corrected, http.StatusOK)
}

// queryTime parses an optional RFC 3339 query parameter, returning nil when
// the parameter is absent.
func queryTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
