package services

import (
	"context"
	"testing"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/syncer"
	"github.com/arslanameen227/Malik-MoneyFlow/pkg/helpers"
)

type fakeSyncEngine struct {
	report  syncer.DrainReport
	pulled  int
	syncErr error

	syncCalls  int
	drainCalls int
}

func (f *fakeSyncEngine) SyncAll(context.Context, string) (syncer.DrainReport, int, error) {
	f.syncCalls++
	return f.report, f.pulled, f.syncErr
}

func (f *fakeSyncEngine) DrainOutbox(context.Context) (syncer.DrainReport, error) {
	f.drainCalls++
	return f.report, f.syncErr
}

type fakeSyncOutbox struct {
	pending []*models.PendingTransaction
	failed  []*models.PendingTransaction
	retried []models.RecordID
}

func (f *fakeSyncOutbox) List() ([]*models.PendingTransaction, error)       { return f.pending, nil }
func (f *fakeSyncOutbox) ListFailed() ([]*models.PendingTransaction, error) { return f.failed, nil }
func (f *fakeSyncOutbox) Retry(id models.RecordID) error {
	f.retried = append(f.retried, id)
	return nil
}

type fakeSyncOracle struct {
	online bool
	forced bool
	probes int
}

func (f *fakeSyncOracle) IsOnline() bool          { return f.online && !f.forced }
func (f *fakeSyncOracle) ForcedOffline() bool     { return f.forced }
func (f *fakeSyncOracle) SetForcedOffline(v bool) { f.forced = v }
func (f *fakeSyncOracle) Probe(context.Context) bool {
	f.probes++
	return f.online
}

type fakeWiper struct {
	cleared bool
}

func (f *fakeWiper) ClearAll() error {
	f.cleared = true
	return nil
}

func TestSyncStatusCountsOutbox(t *testing.T) {
	ctx := helpers.TestCtx()
	ob := &fakeSyncOutbox{
		pending: []*models.PendingTransaction{{}, {}, {}},
		failed:  []*models.PendingTransaction{{}},
	}
	svc := NewSyncService(&fakeSyncEngine{}, ob, &fakeSyncOracle{online: true}, &fakeWiper{})

	status, err := svc.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !status.Online || status.ForcedOffline {
		t.Fatalf("connectivity wrong: %+v", status)
	}
	if status.Pending != 3 || status.Failed != 1 {
		t.Fatalf("expected pending=3 failed=1, got %+v", status)
	}
	if status.LastSync != nil {
		t.Fatal("no sync ran yet, LastSync must be nil")
	}
}

func TestSyncRecordsAudit(t *testing.T) {
	ctx := helpers.TestCtx()
	engine := &fakeSyncEngine{report: syncer.DrainReport{Attempted: 3, Delivered: 2, Remaining: 1}, pulled: 14}
	svc := NewSyncService(engine, &fakeSyncOutbox{}, &fakeSyncOracle{online: true}, &fakeWiper{})

	audit, err := svc.Sync(ctx, "user-1")
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if audit.Delivered != 2 || audit.Remaining != 1 || audit.Pulled != 14 {
		t.Fatalf("audit wrong: %+v", audit)
	}

	status, _ := svc.Status(ctx)
	if status.LastSync == nil || status.LastSync.Delivered != 2 {
		t.Fatalf("expected last sync recorded, got %+v", status.LastSync)
	}
}

func TestSyncErrorStillRecorded(t *testing.T) {
	ctx := helpers.TestCtx()
	engine := &fakeSyncEngine{syncErr: errs.NewRemoteUnavailableError("connection refused")}
	svc := NewSyncService(engine, &fakeSyncOutbox{}, &fakeSyncOracle{}, &fakeWiper{})

	audit, err := svc.Sync(ctx, "user-1")
	if err == nil {
		t.Fatal("expected error surfaced")
	}
	if audit == nil || audit.Error == "" {
		t.Fatalf("expected audit carrying the error, got %+v", audit)
	}

	status, _ := svc.Status(ctx)
	if status.LastSync == nil || status.LastSync.Error == "" {
		t.Fatal("failed sync must still show up in status")
	}
}

func TestRetryFailedResetsAndDrains(t *testing.T) {
	ctx := helpers.TestCtx()
	engine := &fakeSyncEngine{report: syncer.DrainReport{Attempted: 2, Delivered: 2}}
	ob := &fakeSyncOutbox{failed: []*models.PendingTransaction{
		{Transaction: models.Transaction{ID: "temp-a"}, Failed: true},
		{Transaction: models.Transaction{ID: "temp-b"}, Failed: true},
	}}
	svc := NewSyncService(engine, ob, &fakeSyncOracle{online: true}, &fakeWiper{})

	audit, err := svc.RetryFailed(ctx)
	if err != nil {
		t.Fatalf("RetryFailed: %v", err)
	}
	if len(ob.retried) != 2 {
		t.Fatalf("expected both entries reset, got %v", ob.retried)
	}
	if engine.drainCalls != 1 {
		t.Fatalf("expected one drain, got %d", engine.drainCalls)
	}
	if audit.Delivered != 2 {
		t.Fatalf("expected delivered=2, got %+v", audit)
	}
}

func TestSetForcedOfflineProbesOnRelease(t *testing.T) {
	ctx := helpers.TestCtx()
	oracle := &fakeSyncOracle{online: true}
	svc := NewSyncService(&fakeSyncEngine{}, &fakeSyncOutbox{}, oracle, &fakeWiper{})

	svc.SetForcedOffline(ctx, true)
	if !oracle.forced || oracle.probes != 0 {
		t.Fatalf("forcing offline must not probe, got %+v", oracle)
	}

	svc.SetForcedOffline(ctx, false)
	if oracle.forced || oracle.probes != 1 {
		t.Fatalf("releasing must probe once, got %+v", oracle)
	}
}

func TestClearLocalWipesEverything(t *testing.T) {
	ctx := helpers.TestCtx()
	wiper := &fakeWiper{}
	svc := NewSyncService(&fakeSyncEngine{}, &fakeSyncOutbox{}, &fakeSyncOracle{}, wiper)

	if err := svc.ClearLocal(ctx); err != nil {
		t.Fatalf("ClearLocal: %v", err)
	}
	if !wiper.cleared {
		t.Fatal("expected store cleared")
	}
}
