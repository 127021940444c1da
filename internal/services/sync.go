package services

import (
	"context"
	"sync"
	"time"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/syncer"
	"github.com/arslanameen227/Malik-MoneyFlow/pkg/logger"
)

type syncEngine interface {
	SyncAll(ctx context.Context, uid string) (syncer.DrainReport, int, error)
	DrainOutbox(ctx context.Context) (syncer.DrainReport, error)
}

type syncOutbox interface {
	List() ([]*models.PendingTransaction, error)
	ListFailed() ([]*models.PendingTransaction, error)
	Retry(id models.RecordID) error
}

type syncOracle interface {
	IsOnline() bool
	ForcedOffline() bool
	SetForcedOffline(bool)
	Probe(ctx context.Context) bool
}

type localWiper interface {
	ClearAll() error
}

type syncService struct {
	engine syncEngine
	outbox syncOutbox
	oracle syncOracle
	wiper  localWiper

	mu   sync.Mutex
	last *dto.SyncAudit
}

func NewSyncService(engine syncEngine, ob syncOutbox, oracle syncOracle, wiper localWiper) *syncService {
	return &syncService{engine: engine, outbox: ob, oracle: oracle, wiper: wiper}
}

// Status reports connectivity and outbox depth. The failed count is listed
// separately so entries that gave up are visible instead of silently parked.
func (s *syncService) Status(ctx context.Context) (*dto.SyncStatus, error) {
	status := &dto.SyncStatus{
		Online:        s.oracle.IsOnline(),
		ForcedOffline: s.oracle.ForcedOffline(),
	}
	if pending, err := s.outbox.List(); err == nil {
		status.Pending = len(pending)
	}
	if failed, err := s.outbox.ListFailed(); err == nil {
		status.Failed = len(failed)
	}
	s.mu.Lock()
	status.LastSync = s.last
	s.mu.Unlock()
	return status, nil
}

// Sync runs a full cycle (drain then pull) and records the outcome for
// Status. A cycle already in flight surfaces as syncer.ErrSyncInProgress.
func (s *syncService) Sync(ctx context.Context, uid string) (*dto.SyncAudit, error) {
	audit := &dto.SyncAudit{StartedAt: time.Now().UTC().Format(time.RFC3339)}

	report, pulled, err := s.engine.SyncAll(ctx, uid)
	audit.Delivered = report.Delivered
	audit.Remaining = report.Remaining
	audit.Pulled = pulled
	if err != nil {
		audit.Error = err.Error()
	}

	s.mu.Lock()
	s.last = audit
	s.mu.Unlock()

	if err != nil {
		return audit, err
	}
	logger.FromContext(ctx).Info("sync cycle finished",
		"delivered", audit.Delivered, "remaining", audit.Remaining, "pulled", audit.Pulled)
	return audit, nil
}

// RetryFailed resets the retry budget of every given-up entry and drains
// the outbox again.
func (s *syncService) RetryFailed(ctx context.Context) (*dto.SyncAudit, error) {
	failed, err := s.outbox.ListFailed()
	if err != nil {
		return nil, err
	}
	for _, p := range failed {
		if err := s.outbox.Retry(p.ID); err != nil {
			return nil, err
		}
	}

	audit := &dto.SyncAudit{StartedAt: time.Now().UTC().Format(time.RFC3339)}
	report, err := s.engine.DrainOutbox(ctx)
	audit.Delivered = report.Delivered
	audit.Remaining = report.Remaining
	if err != nil {
		audit.Error = err.Error()
	}

	s.mu.Lock()
	s.last = audit
	s.mu.Unlock()

	if err != nil {
		return audit, err
	}
	return audit, nil
}

// SetForcedOffline flips the operator's manual offline switch. Turning it
// off re-probes immediately so the next request sees fresh connectivity.
func (s *syncService) SetForcedOffline(ctx context.Context, v bool) {
	s.oracle.SetForcedOffline(v)
	if !v {
		s.oracle.Probe(ctx)
	}
	logger.FromContext(ctx).Info("forced offline changed", "forced_offline", v)
}

// ClearLocal wipes the cache, including any pending outbox entries. This
// drops unsynced work, so the handler asks for explicit confirmation.
func (s *syncService) ClearLocal(ctx context.Context) error {
	if err := s.wiper.ClearAll(); err != nil {
		return err
	}
	logger.FromContext(ctx).Warn("local cache cleared")
	return nil
}
