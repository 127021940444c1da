package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/syncer"
	"github.com/arslanameen227/Malik-MoneyFlow/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		// Use context logger if encoding fails
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", e.Message)

	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", e.Message)

	case *errs.UnauthorizedError:
		log.Warn("unauthorized", "error", e.Message)
		h.WriteError(w, r, http.StatusUnauthorized, "unauthorized", e.Message)

	case *errs.RemoteRejectedError:
		log.Warn("remote store rejected request",
			"status", e.Status,
			"error", e.Message)
		status := e.Status
		if status < 400 || status >= 500 {
			status = http.StatusConflict
		}
		h.WriteError(w, r, status, "remote_rejected", e.Message)

	case *errs.RemoteUnavailableError:
		log.Warn("remote store unreachable", "error", e.Message)
		h.WriteError(w, r, http.StatusServiceUnavailable, "remote_unavailable",
			"Remote store unreachable; changes are queued locally")

	case *errs.StorageUnavailableError:
		log.Error("local store error", "error", e.Message)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An error occurred")

	default:
		if errors.Is(err, syncer.ErrSyncInProgress) {
			log.Warn("sync already running")
			h.WriteError(w, r, http.StatusConflict, "sync_in_progress",
				"A sync cycle is already running")
			return
		}
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
