package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/middleware"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
)

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

type stubAccountService struct {
	created    bool
	createdUID string
	createdReq dto.CreateAccountRequest
	deletedID  models.RecordID
	err        error
}

func (s *stubAccountService) ListAccounts(ctx context.Context, activeOnly bool) ([]*models.Account, error) {
	return []*models.Account{{ID: "acc-1", Name: "Cash Box"}}, s.err
}

func (s *stubAccountService) CreateAccount(ctx context.Context, uid string, req dto.CreateAccountRequest) (*models.Account, error) {
	s.created = true
	s.createdUID = uid
	s.createdReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.Account{ID: "acc-1", Name: req.Name}, nil
}

func (s *stubAccountService) UpdateAccount(ctx context.Context, id models.RecordID, req dto.UpdateAccountRequest) (*models.Account, error) {
	return &models.Account{ID: id}, s.err
}

func (s *stubAccountService) DeleteAccount(ctx context.Context, id models.RecordID) error {
	s.deletedID = id
	return s.err
}

func withUID(req *http.Request, uid string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UIDKey, uid)
	return req.WithContext(ctx)
}

func TestCreateAccountSuccess(t *testing.T) {
	svc := &stubAccountService{}
	resp := &stubResponseHandler{}
	h := NewAccountHandlers(&Deps{ResponseHandler: resp, AccountSvc: svc})

	body := `{"name":"Cash Box","type":"cash","opening_balance":5000}`
	req := withUID(httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(body)), "uid-123")
	rr := httptest.NewRecorder()

	h.CreateAccount(rr, req)

	if !svc.created {
		t.Fatal("expected CreateAccount called on service")
	}
	if svc.createdUID != "uid-123" {
		t.Fatalf("service received wrong uid: %s", svc.createdUID)
	}
	if svc.createdReq.Name != "Cash Box" || svc.createdReq.OpeningBalance != 5000 {
		t.Fatalf("service received wrong request: %+v", svc.createdReq)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatal("WriteSuccess not called with status 201")
	}
}

func TestCreateAccountInvalidJSON(t *testing.T) {
	svc := &stubAccountService{}
	resp := &stubResponseHandler{}
	h := NewAccountHandlers(&Deps{ResponseHandler: resp, AccountSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader("not-json"))
	rr := httptest.NewRecorder()

	h.CreateAccount(rr, req)

	if svc.created {
		t.Fatal("CreateAccount should not be called when JSON invalid")
	}
	if !resp.handleErrorCalled {
		t.Fatal("HandleError should be called on invalid JSON")
	}
	if _, ok := resp.handleError.(*errs.ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", resp.handleError)
	}
}

func TestCreateAccountServiceError(t *testing.T) {
	svc := &stubAccountService{err: errs.NewRemoteUnavailableError("connection refused")}
	resp := &stubResponseHandler{}
	h := NewAccountHandlers(&Deps{ResponseHandler: resp, AccountSvc: svc})

	body := `{"name":"Cash Box","type":"cash"}`
	req := withUID(httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(body)), "uid-123")
	rr := httptest.NewRecorder()

	h.CreateAccount(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("HandleError should surface the service error")
	}
	if _, ok := resp.handleError.(*errs.RemoteUnavailableError); !ok {
		t.Fatalf("expected RemoteUnavailableError, got %v", resp.handleError)
	}
}

func TestDeleteAccountPassesID(t *testing.T) {
	svc := &stubAccountService{}
	resp := &stubResponseHandler{}
	h := NewAccountHandlers(&Deps{ResponseHandler: resp, AccountSvc: svc})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/acc-9", nil)

	router := h.AccountRoutes()
	router.ServeHTTP(rr, req)

	if svc.deletedID != models.RecordID("acc-9") {
		t.Fatalf("expected acc-9 deleted, got %q", svc.deletedID)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected success response")
	}
}
