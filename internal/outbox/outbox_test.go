package outbox

import (
	"testing"
	"time"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
)

// fakePendingStore is an in-memory stand-in for the bbolt collection.
type fakePendingStore struct {
	records map[string]*models.PendingTransaction
	putErr  error
}

func newFakePendingStore() *fakePendingStore {
	return &fakePendingStore{records: map[string]*models.PendingTransaction{}}
}

func (f *fakePendingStore) GetAll() ([]*models.PendingTransaction, error) {
	out := make([]*models.PendingTransaction, 0, len(f.records))
	for _, p := range f.records {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePendingStore) Put(p *models.PendingTransaction) error {
	if f.putErr != nil {
		return f.putErr
	}
	cp := *p
	f.records[p.ID.String()] = &cp
	return nil
}

func (f *fakePendingStore) Delete(id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakePendingStore) Clear() error {
	f.records = map[string]*models.PendingTransaction{}
	return nil
}

func pendingTx(created time.Time) models.Transaction {
	return models.Transaction{
		ID:              models.NewLocalID(),
		Type:            models.CashInPhysical,
		Amount:          100,
		TransactionDate: created.Format("2006-01-02"),
		CreatedAt:       created,
	}
}

func TestEnqueueRejectsRemoteID(t *testing.T) {
	ob := New(newFakePendingStore())

	_, err := ob.Enqueue(models.Transaction{ID: models.RemoteID("srv-1")})
	if _, ok := err.(*errs.ValidationError); !ok {
		t.Fatalf("expected ValidationError for remote id, got %v", err)
	}
}

func TestListOrdersOldestFirst(t *testing.T) {
	ob := New(newFakePendingStore())

	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	newer := pendingTx(base.Add(2 * time.Hour))
	older := pendingTx(base)
	mid := pendingTx(base.Add(time.Hour))
	for _, tx := range []models.Transaction{newer, older, mid} {
		if _, err := ob.Enqueue(tx); err != nil {
			t.Fatalf("Enqueue returned error: %v", err)
		}
	}

	got, err := ob.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].ID != older.ID || got[1].ID != mid.ID || got[2].ID != newer.ID {
		t.Fatalf("entries not in submission order: %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestRemoveThenListExcludesEntry(t *testing.T) {
	ob := New(newFakePendingStore())

	tx := pendingTx(time.Now())
	if _, err := ob.Enqueue(tx); err != nil {
		t.Fatalf("Enqueue returned error: %v", err)
	}
	if err := ob.Remove(tx.ID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	got, err := ob.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty outbox, got %d entries", len(got))
	}
}

func TestRecordFailureCapsAtMaxRetries(t *testing.T) {
	store := newFakePendingStore()
	ob := New(store)

	tx := pendingTx(time.Now())
	p, err := ob.Enqueue(tx)
	if err != nil {
		t.Fatalf("Enqueue returned error: %v", err)
	}

	for i := 0; i < MaxRetries; i++ {
		if p.Failed {
			t.Fatalf("entry failed after only %d attempts", i)
		}
		if err := ob.RecordFailure(p); err != nil {
			t.Fatalf("RecordFailure returned error: %v", err)
		}
	}
	if !p.Failed {
		t.Fatalf("entry should be failed after %d attempts, retry count %d", MaxRetries, p.RetryCount)
	}

	deliverable, _ := ob.List()
	if len(deliverable) != 0 {
		t.Fatal("failed entry must not be deliverable")
	}
	failed, _ := ob.ListFailed()
	if len(failed) != 1 {
		t.Fatalf("expected 1 failed entry, got %d", len(failed))
	}
}

func TestRetryResetsFailedEntry(t *testing.T) {
	ob := New(newFakePendingStore())

	tx := pendingTx(time.Now())
	p, _ := ob.Enqueue(tx)
	for i := 0; i < MaxRetries; i++ {
		ob.RecordFailure(p)
	}

	if err := ob.Retry(tx.ID); err != nil {
		t.Fatalf("Retry returned error: %v", err)
	}
	deliverable, _ := ob.List()
	if len(deliverable) != 1 {
		t.Fatalf("expected retried entry deliverable again, got %d", len(deliverable))
	}
	if deliverable[0].RetryCount != 0 {
		t.Fatalf("expected retry count reset, got %d", deliverable[0].RetryCount)
	}
}
