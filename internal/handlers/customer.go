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

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	CreateCustomer(ctx context.Context, uid string, req dto.CreateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id models.RecordID) error
	ListCustomerAccounts(ctx context.Context, customerID models.RecordID) ([]*models.CustomerAccount, error)
	CreateCustomerAccount(ctx context.Context, customerID models.RecordID, req dto.CreateCustomerAccountRequest) (*models.CustomerAccount, error)
}

type customerHandlers struct {
	ResponseHandler response.ResponseHandler
	CustomerSvc     CustomerService
}

func NewCustomerHandlers(deps *Deps) *customerHandlers {
	return &customerHandlers{
		ResponseHandler: deps.ResponseHandler,
		CustomerSvc:     deps.CustomerSvc,
	}
}

func (h *customerHandlers) CustomerRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListCustomers)
	r.Post("/", h.CreateCustomer)
	r.Delete("/{customerId}", h.DeleteCustomer)
	r.Get("/{customerId}/accounts", h.ListCustomerAccounts)
	r.Post("/{customerId}/accounts", h.CreateCustomerAccount)
	return r
}

func (h *customerHandlers) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.CustomerSvc.ListCustomers(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, customers)
}

func (h *customerHandlers) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	customer, err := h.CustomerSvc.CreateCustomer(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, customer)
}

func (h *customerHandlers) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := models.RecordID(chi.URLParam(r, "customerId"))
	if err := h.CustomerSvc.DeleteCustomer(r.Context(), id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *customerHandlers) ListCustomerAccounts(w http.ResponseWriter, r *http.Request) {
	id := models.RecordID(chi.URLParam(r, "customerId"))
	accounts, err := h.CustomerSvc.ListCustomerAccounts(r.Context(), id)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, accounts)
}

func (h *customerHandlers) CreateCustomerAccount(w http.ResponseWriter, r *http.Request) {
	id := models.RecordID(chi.URLParam(r, "customerId"))
	var req dto.CreateCustomerAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	account, err := h.CustomerSvc.CreateCustomerAccount(r.Context(), id, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, account)
}
