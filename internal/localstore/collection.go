package localstore

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
)

// Collection is a typed view over one entity bucket. The same get/put/delete
// code serves every entity type; only the key function differs.
type Collection[T any] struct {
	store  *Store
	entity Entity
	key    func(*T) string
}

func NewCollection[T any](store *Store, entity Entity, key func(*T) string) *Collection[T] {
	return &Collection[T]{store: store, entity: entity, key: key}
}

// GetAll returns every record in the collection. Order is whatever the
// bucket iterates in; callers sort.
func (c *Collection[T]) GetAll() ([]*T, error) {
	var records []*T
	err := c.store.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(c.entity))
		return b.ForEach(func(k, v []byte) error {
			var rec T
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			records = append(records, &rec)
			return nil
		})
	})
	if err != nil {
		return nil, errs.NewStorageUnavailableError("list " + string(c.entity) + ": " + err.Error())
	}
	return records, nil
}

func (c *Collection[T]) Get(id string) (*T, error) {
	var rec T
	found := false
	err := c.store.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(c.entity))
		data := b.Get([]byte(id))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &rec)
	})
	if err != nil {
		return nil, errs.NewStorageUnavailableError("get " + string(c.entity) + ": " + err.Error())
	}
	if !found {
		return nil, errs.NewNotFoundError(string(c.entity) + ": " + id + " not found")
	}
	return &rec, nil
}

// Put upserts by id. No schema validation happens here; that is the entity
// service's job before anything is persisted.
func (c *Collection[T]) Put(rec *T) error {
	err := c.store.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(c.entity))
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put([]byte(c.key(rec)), data)
	})
	if err != nil {
		return errs.NewStorageUnavailableError("put " + string(c.entity) + ": " + err.Error())
	}
	return nil
}

// Delete removes a record; deleting an absent id is a no-op.
func (c *Collection[T]) Delete(id string) error {
	err := c.store.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(c.entity))
		return b.Delete([]byte(id))
	})
	if err != nil {
		return errs.NewStorageUnavailableError("delete " + string(c.entity) + ": " + err.Error())
	}
	return nil
}

// Clear removes every record in the collection.
func (c *Collection[T]) Clear() error {
	return c.store.Clear(c.entity)
}
