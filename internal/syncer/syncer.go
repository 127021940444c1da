package syncer

import (
	"context"
	"errors"
	"sync"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/localstore"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/outbox"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/remote"
	"github.com/arslanameen227/Malik-MoneyFlow/pkg/logger"
)

// ErrSyncInProgress is returned when a drain is requested while another one
// is still running. Without this guard two drains could both deliver the
// same outbox entry before either removes it.
var ErrSyncInProgress = errors.New("sync already in progress")

// Strategy controls how a pull lands in the local store.
type Strategy int

const (
	// Replace clears the local collection and repopulates it from the
	// remote rows. For small, fully re-pullable sets: accounts, cash
	// positions.
	Replace Strategy = iota
	// Merge upserts each remote row and leaves everything else alone, so
	// unsynced local records survive. For transactions, customers and
	// customer accounts.
	Merge
)

type remoteStore interface {
	Select(ctx context.Context, collection string, filters map[string]string, order string, desc bool, out any) error
	Insert(ctx context.Context, collection string, payload any, out any) error
}

type connectivityOracle interface {
	IsOnline() bool
	MarkOffline()
}

// Syncer reconciles the local record store with the remote store: pulls
// authoritative rows down, and drains the outbox up. It is the only writer
// allowed to replace a record's temporary id with a server-assigned one.
type Syncer struct {
	local  *localstore.Registry
	outbox *outbox.Outbox
	remote remoteStore
	oracle connectivityOracle

	draining sync.Mutex
}

func New(local *localstore.Registry, ob *outbox.Outbox, rc remoteStore, oracle connectivityOracle) *Syncer {
	return &Syncer{
		local:  local,
		outbox: ob,
		remote: rc,
		oracle: oracle,
	}
}

// pull fetches remote rows and lands them in the local collection. The fetch
// happens first: any remote error aborts the pull with local state untouched.
func pull[T any](ctx context.Context, s *Syncer, collection string, filters map[string]string,
	local *localstore.Collection[T], strategy Strategy) ([]*T, error) {

	var rows []T
	if err := s.remote.Select(ctx, collection, filters, "created_at", true, &rows); err != nil {
		s.oracle.MarkOffline()
		return nil, err
	}

	if strategy == Replace {
		if err := local.Clear(); err != nil {
			return nil, err
		}
	}

	out := make([]*T, 0, len(rows))
	for i := range rows {
		if err := local.Put(&rows[i]); err != nil {
			return nil, err
		}
		out = append(out, &rows[i])
	}
	return out, nil
}

// PullAccounts refreshes the full account list for uid. Replace semantics:
// afterwards the local collection holds exactly the remote rows.
func (s *Syncer) PullAccounts(ctx context.Context, uid string) ([]*models.Account, error) {
	return pull(ctx, s, remote.CollAccounts,
		map[string]string{"user_id": uid},
		s.local.Accounts, Replace)
}

func (s *Syncer) PullCustomers(ctx context.Context, uid string) ([]*models.Customer, error) {
	return pull(ctx, s, remote.CollCustomers,
		map[string]string{"user_id": uid},
		s.local.Customers, Merge)
}

func (s *Syncer) PullCustomerAccounts(ctx context.Context, customerID models.RecordID) ([]*models.CustomerAccount, error) {
	id, ok := customerID.ForRemote()
	if !ok {
		// customer only exists locally, nothing remote to pull
		return nil, nil
	}
	return pull(ctx, s, remote.CollCustomerAccounts,
		map[string]string{"customer_id": id},
		s.local.CustomerAccounts, Merge)
}

// PullTransactions merges remote transactions into the cache; date narrows
// the pull to one calendar day, empty pulls full history.
func (s *Syncer) PullTransactions(ctx context.Context, uid, date string) ([]*models.Transaction, error) {
	filters := map[string]string{"user_id": uid}
	if date != "" {
		filters["transaction_date"] = date
	}
	return pull(ctx, s, remote.CollTransactions, filters, s.local.Transactions, Merge)
}

func (s *Syncer) PullCashPositions(ctx context.Context, uid string) ([]*models.CashPosition, error) {
	return pull(ctx, s, remote.CollCashPositions,
		map[string]string{"user_id": uid},
		s.local.CashPositions, Replace)
}

// DrainReport summarizes one outbox drain.
type DrainReport struct {
	Attempted int
	Delivered int
	Remaining int
	GaveUp    int // entries that hit the retry cap during this drain
}

// DrainOutbox replays queued transactions oldest-first. Each entry is
// independent: a failure records a retry and moves on, it never aborts the
// drain. The guard makes concurrent drains impossible; a second caller gets
// ErrSyncInProgress instead of double-delivering entries.
func (s *Syncer) DrainOutbox(ctx context.Context) (DrainReport, error) {
	if !s.draining.TryLock() {
		return DrainReport{}, ErrSyncInProgress
	}
	defer s.draining.Unlock()

	log := logger.FromContext(ctx)

	var report DrainReport
	entries, err := s.outbox.List()
	if err != nil {
		return report, err
	}

	if !s.oracle.IsOnline() {
		// don't burn retry budget while the oracle says unreachable
		report.Remaining = len(entries)
		return report, nil
	}

	for _, entry := range entries {
		report.Attempted++

		var rows []models.Transaction
		err := s.remote.Insert(ctx, remote.CollTransactions, dto.NewTransactionInsert(entry.Transaction), &rows)
		if err != nil {
			log.Warn("outbox delivery failed",
				"id", entry.ID.String(),
				"retry_count", entry.RetryCount+1,
				"error", err)
			if recErr := s.outbox.RecordFailure(entry); recErr != nil {
				log.Error("failed to record outbox retry", "id", entry.ID.String(), "error", recErr)
			}
			if entry.Failed {
				report.GaveUp++
			}
			report.Remaining++
			continue
		}

		// the local cache row moves from its temporary id to the
		// server-assigned one
		if len(rows) > 0 {
			if putErr := s.local.Transactions.Put(&rows[0]); putErr != nil {
				log.Error("failed to cache synced transaction", "error", putErr)
			}
		}
		if delErr := s.local.Transactions.Delete(entry.ID.String()); delErr != nil {
			log.Error("failed to drop temp transaction", "id", entry.ID.String(), "error", delErr)
		}
		if err := s.outbox.Remove(entry.ID); err != nil {
			log.Error("failed to remove delivered outbox entry", "id", entry.ID.String(), "error", err)
			continue
		}
		report.Delivered++
	}

	return report, nil
}

// SyncAll drains the outbox first so freshly delivered rows come back with
// their server ids in the pulls that follow.
func (s *Syncer) SyncAll(ctx context.Context, uid string) (DrainReport, int, error) {
	report, err := s.DrainOutbox(ctx)
	if err != nil {
		return report, 0, err
	}

	pulled := 0
	accounts, err := s.PullAccounts(ctx, uid)
	if err != nil {
		return report, pulled, err
	}
	pulled += len(accounts)

	customers, err := s.PullCustomers(ctx, uid)
	if err != nil {
		return report, pulled, err
	}
	pulled += len(customers)

	txs, err := s.PullTransactions(ctx, uid, "")
	if err != nil {
		return report, pulled, err
	}
	pulled += len(txs)

	positions, err := s.PullCashPositions(ctx, uid)
	if err != nil {
		return report, pulled, err
	}
	pulled += len(positions)

	return report, pulled, nil
}
