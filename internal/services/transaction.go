package services

import (
	"context"
	"sort"
	"time"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/remote"
	"github.com/arslanameen227/Malik-MoneyFlow/pkg/logger"
)

const dateLayout = "2006-01-02"

type transactionCache interface {
	GetAll() ([]*models.Transaction, error)
	Put(*models.Transaction) error
}

type transactionRemote interface {
	Insert(ctx context.Context, collection string, payload any, out any) error
}

type transactionOutbox interface {
	Enqueue(tx models.Transaction) (*models.PendingTransaction, error)
	Remove(id models.RecordID) error
}

type transactionOracle interface {
	IsOnline() bool
}

type transactionService struct {
	cache  transactionCache
	outbox transactionOutbox
	remote transactionRemote
	oracle transactionOracle
}

func NewTransactionService(cache transactionCache, ob transactionOutbox, rc transactionRemote, oracle transactionOracle) *transactionService {
	return &transactionService{
		cache:  cache,
		outbox: ob,
		remote: rc,
		oracle: oracle,
	}
}

// ListTransactions returns cached transactions newest-first. date filters to
// one calendar day when non-empty; limit > 0 caps the result.
func (s *transactionService) ListTransactions(ctx context.Context, date string, limit int) ([]*models.Transaction, error) {
	txs, err := cachedOrEmpty(ctx, s.cache.GetAll)
	if err != nil {
		return nil, err
	}
	if date != "" {
		filtered := txs[:0]
		for _, tx := range txs {
			if tx.TransactionDate == date {
				filtered = append(filtered, tx)
			}
		}
		txs = filtered
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}

// CreateTransaction is the write path of the offline-first design. Online,
// the transaction goes straight to the remote store and the returned row
// (with its server id) lands in the cache. Offline, it is cached under a
// temporary id and queued in the outbox for a later drain. A failed online
// write is surfaced as-is: nothing is cached, nothing is queued, the caller
// keeps the form state and retries.
func (s *transactionService) CreateTransaction(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	tx := models.Transaction{
		UserID:            uid,
		Type:              req.Type,
		Subcategory:       req.Subcategory,
		FromAccountID:     req.FromAccountID,
		ToAccountID:       req.ToAccountID,
		CustomerID:        req.CustomerID,
		CustomerAccountID: req.CustomerAccountID,
		Amount:            req.Amount,
		FeeAmount:         req.FeeAmount,
		Description:       req.Description,
		TransactionDate:   req.TransactionDate,
	}
	if tx.TransactionDate == "" {
		tx.TransactionDate = time.Now().Format(dateLayout)
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)

	if s.oracle.IsOnline() {
		var rows []models.Transaction
		if err := s.remote.Insert(ctx, remote.CollTransactions, dto.NewTransactionInsert(tx), &rows); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, errs.NewRemoteRejectedError("remote insert returned no row", 0)
		}
		created := rows[0]
		if err := s.cache.Put(&created); err != nil {
			log.Warn("failed to cache created transaction", "error", err)
		}
		log.Info("transaction created",
			"transaction_id", created.ID.String(),
			"type", string(created.Type),
			"amount", created.Amount)
		return &created, nil
	}

	tx.ID = models.NewLocalID()
	tx.CreatedAt = time.Now()
	// queue before caching: a cached row with no outbox entry would never sync
	if _, err := s.outbox.Enqueue(tx); err != nil {
		return nil, err
	}
	if err := s.cache.Put(&tx); err != nil {
		if remErr := s.outbox.Remove(tx.ID); remErr != nil {
			log.Error("failed to remove orphaned outbox entry", "transaction_id", tx.ID.String(), "error", remErr)
		}
		return nil, err
	}
	log.Info("transaction queued offline",
		"transaction_id", tx.ID.String(),
		"type", string(tx.Type),
		"amount", tx.Amount)
	return &tx, nil
}
