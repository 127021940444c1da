package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
)

type stubSyncService struct {
	syncUID      string
	cleared      bool
	retried      bool
	forcedValues []bool
	err          error
}

func (s *stubSyncService) Status(ctx context.Context) (*dto.SyncStatus, error) {
	return &dto.SyncStatus{Online: true, Pending: 3}, s.err
}

func (s *stubSyncService) Sync(ctx context.Context, uid string) (*dto.SyncAudit, error) {
	s.syncUID = uid
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SyncAudit{Delivered: 2}, nil
}

func (s *stubSyncService) RetryFailed(ctx context.Context) (*dto.SyncAudit, error) {
	s.retried = true
	return &dto.SyncAudit{}, s.err
}

func (s *stubSyncService) SetForcedOffline(ctx context.Context, v bool) {
	s.forcedValues = append(s.forcedValues, v)
}

func (s *stubSyncService) ClearLocal(ctx context.Context) error {
	s.cleared = true
	return s.err
}

func TestSyncUsesSessionUID(t *testing.T) {
	svc := &stubSyncService{}
	resp := &stubResponseHandler{}
	h := NewSyncHandlers(&Deps{ResponseHandler: resp, SyncSvc: svc})

	req := withUID(httptest.NewRequest(http.MethodPost, "/sync", nil), "uid-123")
	rr := httptest.NewRecorder()

	h.Sync(rr, req)

	if svc.syncUID != "uid-123" {
		t.Fatalf("expected session uid passed, got %q", svc.syncUID)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected success response")
	}
}

func TestSetOfflineModeDecodesFlag(t *testing.T) {
	svc := &stubSyncService{}
	resp := &stubResponseHandler{}
	h := NewSyncHandlers(&Deps{ResponseHandler: resp, SyncSvc: svc})

	req := httptest.NewRequest(http.MethodPut, "/sync/offline-mode", strings.NewReader(`{"forced_offline":true}`))
	rr := httptest.NewRecorder()

	h.SetOfflineMode(rr, req)

	if len(svc.forcedValues) != 1 || !svc.forcedValues[0] {
		t.Fatalf("expected forced offline set, got %v", svc.forcedValues)
	}
}

func TestClearLocalRequiresConfirmation(t *testing.T) {
	svc := &stubSyncService{}
	resp := &stubResponseHandler{}
	h := NewSyncHandlers(&Deps{ResponseHandler: resp, SyncSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/sync/clear-local", strings.NewReader(`{"confirm":false}`))
	rr := httptest.NewRecorder()

	h.ClearLocal(rr, req)

	if svc.cleared {
		t.Fatal("ClearLocal must not run without confirmation")
	}
	if _, ok := resp.handleError.(*errs.ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", resp.handleError)
	}

	resp2 := &stubResponseHandler{}
	h2 := NewSyncHandlers(&Deps{ResponseHandler: resp2, SyncSvc: svc})
	req2 := httptest.NewRequest(http.MethodPost, "/sync/clear-local", strings.NewReader(`{"confirm":true}`))
	h2.ClearLocal(httptest.NewRecorder(), req2)

	if !svc.cleared {
		t.Fatal("expected ClearLocal to run with confirmation")
	}
}
