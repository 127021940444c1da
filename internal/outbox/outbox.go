package outbox

import (
	"sort"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
)

// MaxRetries is how many delivery attempts an entry gets before it is marked
// failed and left for the operator to inspect.
const MaxRetries = 5

type pendingStore interface {
	GetAll() ([]*models.PendingTransaction, error)
	Put(*models.PendingTransaction) error
	Delete(id string) error
	Clear() error
}

// Outbox queues transactions authored while offline until the synchronizer
// delivers them. Entries stay put until explicitly removed; there is no
// expiry.
type Outbox struct {
	store pendingStore
}

func New(store pendingStore) *Outbox {
	return &Outbox{store: store}
}

// Enqueue appends a transaction to the queue. The transaction must carry a
// locally generated id; anything the remote store already knows about has no
// business in the outbox.
func (o *Outbox) Enqueue(tx models.Transaction) (*models.PendingTransaction, error) {
	if !tx.ID.IsLocal() {
		return nil, errs.NewValidationError("outbox entries must carry a local id, got " + tx.ID.String())
	}
	p := &models.PendingTransaction{
		Transaction: tx,
		Synced:      false,
		RetryCount:  0,
	}
	if err := o.store.Put(p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns deliverable entries oldest-first, so a drain replays them in
// submission order. Entries that exhausted their retries are excluded.
func (o *Outbox) List() ([]*models.PendingTransaction, error) {
	all, err := o.store.GetAll()
	if err != nil {
		return nil, err
	}
	pending := make([]*models.PendingTransaction, 0, len(all))
	for _, p := range all {
		if !p.Failed {
			pending = append(pending, p)
		}
	}
	sortByCreation(pending)
	return pending, nil
}

// ListFailed returns entries that gave up after MaxRetries attempts.
func (o *Outbox) ListFailed() ([]*models.PendingTransaction, error) {
	all, err := o.store.GetAll()
	if err != nil {
		return nil, err
	}
	var failed []*models.PendingTransaction
	for _, p := range all {
		if p.Failed {
			failed = append(failed, p)
		}
	}
	sortByCreation(failed)
	return failed, nil
}

// Remove deletes an entry after successful remote delivery.
func (o *Outbox) Remove(id models.RecordID) error {
	return o.store.Delete(id.String())
}

// RecordFailure bumps the entry's retry count, marking it failed once the
// cap is reached.
func (o *Outbox) RecordFailure(p *models.PendingTransaction) error {
	p.RetryCount++
	if p.RetryCount >= MaxRetries {
		p.Failed = true
	}
	return o.store.Put(p)
}

// Retry puts a failed entry back in rotation with a fresh attempt budget.
func (o *Outbox) Retry(id models.RecordID) error {
	all, err := o.store.GetAll()
	if err != nil {
		return err
	}
	for _, p := range all {
		if p.ID == id {
			p.Failed = false
			p.RetryCount = 0
			return o.store.Put(p)
		}
	}
	return errs.NewNotFoundError("outbox entry " + id.String() + " not found")
}

func sortByCreation(entries []*models.PendingTransaction) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
}
