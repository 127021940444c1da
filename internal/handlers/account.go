package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/middleware"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/response"
)

type AccountService interface {
	ListAccounts(ctx context.Context, activeOnly bool) ([]*models.Account, error)
	CreateAccount(ctx context.Context, uid string, req dto.CreateAccountRequest) (*models.Account, error)
	UpdateAccount(ctx context.Context, id models.RecordID, req dto.UpdateAccountRequest) (*models.Account, error)
	DeleteAccount(ctx context.Context, id models.RecordID) error
}

type accountHandlers struct {
	ResponseHandler response.ResponseHandler
	AccountSvc      AccountService
}

func NewAccountHandlers(deps *Deps) *accountHandlers {
	return &accountHandlers{
		ResponseHandler: deps.ResponseHandler,
		AccountSvc:      deps.AccountSvc,
	}
}

func (h *accountHandlers) AccountRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListAccounts)
	r.Post("/", h.CreateAccount)
	r.Put("/{accountId}", h.UpdateAccount)
	r.Delete("/{accountId}", h.DeleteAccount)
	return r
}

func (h *accountHandlers) ListAccounts(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	accounts, err := h.AccountSvc.ListAccounts(r.Context(), activeOnly)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, accounts)
}

func (h *accountHandlers) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	account, err := h.AccountSvc.CreateAccount(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, account)
}

func (h *accountHandlers) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id := models.RecordID(chi.URLParam(r, "accountId"))
	var req dto.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	account, err := h.AccountSvc.UpdateAccount(r.Context(), id, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, account)
}

func (h *accountHandlers) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id := models.RecordID(chi.URLParam(r, "accountId"))
	if err := h.AccountSvc.DeleteAccount(r.Context(), id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
