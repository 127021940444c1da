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

type stubTransactionService struct {
	created    bool
	createdUID string
	createdReq dto.CreateTransactionRequest

	listDate  string
	listLimit int
	err       error
}

func (s *stubTransactionService) ListTransactions(ctx context.Context, date string, limit int) ([]*models.Transaction, error) {
	s.listDate = date
	s.listLimit = limit
	return []*models.Transaction{{ID: "tx-1"}}, s.err
}

func (s *stubTransactionService) CreateTransaction(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	s.created = true
	s.createdUID = uid
	s.createdReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.Transaction{ID: "tx-1", Type: req.Type, Amount: req.Amount}, nil
}

func TestCreateTransactionSuccess(t *testing.T) {
	svc := &stubTransactionService{}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	body := `{"type":"cash_in","customer_id":"cust-1","from_account_id":"acc-1","amount":10000,"fee_amount":150}`
	req := withUID(httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body)), "uid-123")
	rr := httptest.NewRecorder()

	h.CreateTransaction(rr, req)

	if !svc.created || svc.createdUID != "uid-123" {
		t.Fatalf("service call wrong: created=%v uid=%s", svc.created, svc.createdUID)
	}
	if svc.createdReq.Type != models.CashIn || svc.createdReq.Amount != 10000 {
		t.Fatalf("request decoded wrong: %+v", svc.createdReq)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatal("WriteSuccess not called with status 201")
	}
}

func TestListTransactionsParsesQuery(t *testing.T) {
	svc := &stubTransactionService{}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/transactions?date=2026-08-29&limit=20", nil)
	rr := httptest.NewRecorder()

	h.ListTransactions(rr, req)

	if svc.listDate != "2026-08-29" || svc.listLimit != 20 {
		t.Fatalf("query parsed wrong: date=%s limit=%d", svc.listDate, svc.listLimit)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected success response")
	}
}

func TestListTransactionsRejectsBadLimit(t *testing.T) {
	svc := &stubTransactionService{}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/transactions?limit=lots", nil)
	rr := httptest.NewRecorder()

	h.ListTransactions(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError for a bad limit")
	}
	if _, ok := resp.handleError.(*errs.ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", resp.handleError)
	}
}
