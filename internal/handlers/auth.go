package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/response"
)

type AuthService interface {
	SignIn(ctx context.Context, req dto.SignInRequest) (*models.Session, error)
	SignUp(ctx context.Context, req dto.SignUpRequest) (*models.Session, error)
	SignOut(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (*models.Session, error)
}

type authHandlers struct {
	ResponseHandler response.ResponseHandler
	AuthSvc         AuthService
}

func NewAuthHandlers(deps *Deps) *authHandlers {
	return &authHandlers{
		ResponseHandler: deps.ResponseHandler,
		AuthSvc:         deps.AuthSvc,
	}
}

func (h *authHandlers) AuthRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/signin", h.SignIn)
	r.Post("/signup", h.SignUp)
	r.Post("/signout", h.SignOut)
	r.Get("/session", h.Session)
	r.Post("/forgot-password", h.ForgotPassword)
	r.Post("/reset-password", h.ResetPassword)
	return r
}

// sessionView strips the tokens: they stay between this process and the
// remote store, the browser only needs identity.
type sessionView struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

func viewOf(s *models.Session) sessionView {
	return sessionView{UID: s.UID, Email: s.Email}
}

func (h *authHandlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	sess, err := h.AuthSvc.SignIn(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, viewOf(sess))
}

func (h *authHandlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	sess, err := h.AuthSvc.SignUp(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, viewOf(sess))
}

func (h *authHandlers) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthSvc.SignOut(r.Context()); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *authHandlers) Session(w http.ResponseWriter, r *http.Request) {
	sess, err := h.AuthSvc.Current(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, viewOf(sess))
}

func (h *authHandlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if err := h.AuthSvc.ForgotPassword(r.Context(), req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *authHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	sess, err := h.AuthSvc.ResetPassword(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, viewOf(sess))
}
