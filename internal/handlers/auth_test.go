package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
)

type stubAuthService struct {
	signInReq dto.SignInRequest
	session   *models.Session
	err       error
}

func (s *stubAuthService) SignIn(ctx context.Context, req dto.SignInRequest) (*models.Session, error) {
	s.signInReq = req
	return s.session, s.err
}

func (s *stubAuthService) SignUp(ctx context.Context, req dto.SignUpRequest) (*models.Session, error) {
	return s.session, s.err
}

func (s *stubAuthService) SignOut(ctx context.Context) error { return s.err }

func (s *stubAuthService) Current(ctx context.Context) (*models.Session, error) {
	return s.session, s.err
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	return s.err
}

func (s *stubAuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (*models.Session, error) {
	return s.session, s.err
}

func TestSignInStripsTokensFromResponse(t *testing.T) {
	svc := &stubAuthService{session: &models.Session{
		UID: "u-1", Email: "shop@example.com",
		AccessToken: "secret-access", RefreshToken: "secret-refresh",
	}}
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{ResponseHandler: resp, AuthSvc: svc})

	body := `{"email":"shop@example.com","password":"Pa55word!"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.SignIn(rr, req)

	if svc.signInReq.Email != "shop@example.com" {
		t.Fatalf("request decoded wrong: %+v", svc.signInReq)
	}
	view, ok := resp.writeSuccessData.(sessionView)
	if !ok {
		t.Fatalf("expected sessionView payload, got %T", resp.writeSuccessData)
	}
	if view.UID != "u-1" || view.Email != "shop@example.com" {
		t.Fatalf("view wrong: %+v", view)
	}
}

func TestSessionUnauthorized(t *testing.T) {
	svc := &stubAuthService{err: errs.NewUnauthorizedError("not signed in")}
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{ResponseHandler: resp, AuthSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rr := httptest.NewRecorder()

	h.Session(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError called")
	}
	if _, ok := resp.handleError.(*errs.UnauthorizedError); !ok {
		t.Fatalf("expected UnauthorizedError, got %v", resp.handleError)
	}
}
