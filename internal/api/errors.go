package api

import (
	"errors"
	"net/http"
	"time"

	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/constants"
	"charter-ops/hangar/internal/logging"
	"charter-ops/hangar/internal/services"
)

// statusForError maps a service error kind to its HTTP status. Unknown errors are 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrReferentialConflict),
		errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrAccountExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrCostEstimationFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes err with its mapped status. Internal errors are logged and hidden.
func respondServiceError(w http.ResponseWriter, r *http.Request, initTime time.Time, err error) {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		logging.Error("Request failed",
			"request_id", requestID(r),
			"path", r.URL.Path,
			"error", err.Error(),
		)
		common.RespondError(w, initTime, nil, constants.MsgInternalError, code)
		return
	}
	common.RespondError(w, initTime, err, "", code)
}
