package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/middleware"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/response"
)

type SyncService interface {
	Status(ctx context.Context) (*dto.SyncStatus, error)
	Sync(ctx context.Context, uid string) (*dto.SyncAudit, error)
	RetryFailed(ctx context.Context) (*dto.SyncAudit, error)
	SetForcedOffline(ctx context.Context, v bool)
	ClearLocal(ctx context.Context) error
}

type syncHandlers struct {
	ResponseHandler response.ResponseHandler
	SyncSvc         SyncService
}

func NewSyncHandlers(deps *Deps) *syncHandlers {
	return &syncHandlers{
		ResponseHandler: deps.ResponseHandler,
		SyncSvc:         deps.SyncSvc,
	}
}

func (h *syncHandlers) SyncRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/status", h.Status)
	r.Post("/", h.Sync)
	r.Post("/retry-failed", h.RetryFailed)
	r.Put("/offline-mode", h.SetOfflineMode)
	r.Post("/clear-local", h.ClearLocal)
	return r
}

func (h *syncHandlers) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.SyncSvc.Status(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, status)
}

func (h *syncHandlers) Sync(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	audit, err := h.SyncSvc.Sync(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, audit)
}

func (h *syncHandlers) RetryFailed(w http.ResponseWriter, r *http.Request) {
	audit, err := h.SyncSvc.RetryFailed(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, audit)
}

func (h *syncHandlers) SetOfflineMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ForcedOffline bool `json:"forced_offline"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	h.SyncSvc.SetForcedOffline(r.Context(), req.ForcedOffline)
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

// ClearLocal wipes the cache and the outbox, including entries that never
// reached the remote store. The confirm flag keeps a stray click from
// destroying unsynced work.
func (h *syncHandlers) ClearLocal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if !req.Confirm {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("clearing local data requires confirm: true"))
		return
	}
	if err := h.SyncSvc.ClearLocal(r.Context()); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
