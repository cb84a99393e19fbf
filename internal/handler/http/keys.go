package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/utils"
	"github.com/gentrackhq/gentrack/models"
)

func (h *Handler) createKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req models.CreateAPIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.APIKeyService.Create(ctx, principal.UserID, req.Name)
	if err != nil {
		log.Err(err).Msg("api key creation failed")
		utils.WriteError(w, "api key creation failed", statusFromError(err))
		return
	}

	log.Info().Int64("key_id", created.KeyID).Msg("api key created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	listed, err := h.services.APIKeyService.List(ctx, principal.UserID)
	if err != nil {
		log.Err(err).Msg("api key listing failed")
		utils.WriteError(w, "api key listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, listed, http.StatusOK)
}

func (h *Handler) resetKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	keyID, err := pathID(r, "keyID")
	if err != nil {
		utils.WriteError(w, "invalid key id", http.StatusBadRequest)
		return
	}

	renewed, err := h.services.APIKeyService.Reset(ctx, principal.UserID, keyID)
	if err != nil {
		log.Err(err).Int64("key_id", keyID).Msg("api key reset failed")
		utils.WriteError(w, "api key reset failed", statusFromError(err))
		return
	}

	log.Info().Int64("key_id", keyID).Msg("api key reset")
	utils.WriteJSON(w, renewed, http.StatusOK)
}

func (h *Handler) deleteKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	keyID, err := pathID(r, "keyID")
	if err != nil {
		utils.WriteError(w, "invalid key id", http.StatusBadRequest)
		return
	}

	if err := h.services.APIKeyService.Delete(ctx, principal.UserID, keyID); err != nil {
		log.Err(err).Int64("key_id", keyID).Msg("api key deletion failed")
		utils.WriteError(w, "api key deletion failed", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a positive int64 route parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
