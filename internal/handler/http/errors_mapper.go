package http

import (
	"errors"
	"net/http"

	"github.com/gentrackhq/gentrack/internal/service"
	"github.com/gentrackhq/gentrack/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrNegativeDuration:    http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrInvalidSession:      http.StatusUnauthorized,
	service.ErrInvalidAPIKey:       http.StatusUnauthorized,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrAPIKeyNotFound:     http.StatusNotFound,
	store.ErrGeneratorNotFound:  http.StatusNotFound,
	store.ErrUsageLogNotFound:   http.StatusNotFound,
	store.ErrToggleConflict:     http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
