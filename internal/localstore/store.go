package localstore

import (
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
)

// Entity names one local collection. Each entity gets its own bucket.
type Entity string

const (
	EntityAccounts         Entity = "accounts"
	EntityCustomers        Entity = "customers"
	EntityCustomerAccounts Entity = "customer_accounts"
	EntityTransactions     Entity = "transactions"
	EntityPending          Entity = "pending_transactions"
	EntityCashPositions    Entity = "cash_positions"
	EntitySessions         Entity = "sessions"
)

var entities = []Entity{
	EntityAccounts,
	EntityCustomers,
	EntityCustomerAccounts,
	EntityTransactions,
	EntityPending,
	EntityCashPositions,
	EntitySessions,
}

// Store is the durable local record store: one bbolt bucket per entity type,
// records JSON-encoded and keyed by id. It works with the network completely
// absent; that is the point.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store under dataDir and ensures every entity
// bucket exists.
func Open(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, "moneyflow.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, errs.NewStorageUnavailableError("open local store: " + err.Error())
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, e := range entities {
			if _, err := tx.CreateBucketIfNotExists([]byte(e)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, errs.NewStorageUnavailableError("create buckets: " + err.Error())
	}

	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Clear removes every record of one entity type. Used before a full
// replace-style remote refresh.
func (s *Store) Clear(entity Entity) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(entity)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(entity))
		return err
	})
	if err != nil {
		return errs.NewStorageUnavailableError("clear " + string(entity) + ": " + err.Error())
	}
	return nil
}

// ClearAll wipes every entity collection, the full local reset.
func (s *Store) ClearAll() error {
	for _, e := range entities {
		if err := s.Clear(e); err != nil {
			return err
		}
	}
	return nil
}
