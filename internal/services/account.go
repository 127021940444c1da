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

type accountCache interface {
	GetAll() ([]*models.Account, error)
	Get(id string) (*models.Account, error)
	Put(*models.Account) error
	Delete(id string) error
}

type accountRemote interface {
	Insert(ctx context.Context, collection string, payload any, out any) error
	Update(ctx context.Context, collection, id string, payload any, out any) error
}

type accountOracle interface {
	IsOnline() bool
}

type accountService struct {
	cache  accountCache
	remote accountRemote
	oracle accountOracle
}

func NewAccountService(cache accountCache, rc accountRemote, oracle accountOracle) *accountService {
	return &accountService{cache: cache, remote: rc, oracle: oracle}
}

// ListAccounts returns cached accounts newest-first. A broken local store is
// not fatal: the caller gets an empty list and the session continues in
// memory.
func (s *accountService) ListAccounts(ctx context.Context, activeOnly bool) ([]*models.Account, error) {
	accounts, err := cachedOrEmpty(ctx, s.cache.GetAll)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		filtered := accounts[:0]
		for _, a := range accounts {
			if a.IsActive {
				filtered = append(filtered, a)
			}
		}
		accounts = filtered
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
	})
	return accounts, nil
}

// CreateAccount writes through to the remote store when online; offline it
// caches the account under a temporary id. A failed online write surfaces
// the error and leaves local state alone so the caller can retry.
func (s *accountService) CreateAccount(ctx context.Context, uid string, req dto.CreateAccountRequest) (*models.Account, error) {
	account := models.Account{
		UserID:         uid,
		Name:           req.Name,
		Type:           req.Type,
		OpeningBalance: req.OpeningBalance,
		CurrentBalance: req.OpeningBalance,
		AccountNumber:  req.AccountNumber,
		Provider:       req.Provider,
		IsActive:       true,
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)

	if s.oracle.IsOnline() {
		var rows []models.Account
		if err := s.remote.Insert(ctx, remote.CollAccounts, dto.NewAccountInsert(account), &rows); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, errs.NewRemoteRejectedError("remote insert returned no row", 0)
		}
		created := rows[0]
		if err := s.cache.Put(&created); err != nil {
			log.Warn("failed to cache created account", "error", err)
		}
		log.Info("account created", "account_id", created.ID.String())
		return &created, nil
	}

	account.ID = models.NewLocalID()
	account.CreatedAt = time.Now()
	if err := s.cache.Put(&account); err != nil {
		return nil, err
	}
	log.Info("account created offline", "account_id", account.ID.String())
	return &account, nil
}

// UpdateAccount patches the cached record and, when online and the account
// has a server id, the remote row as well.
func (s *accountService) UpdateAccount(ctx context.Context, id models.RecordID, req dto.UpdateAccountRequest) (*models.Account, error) {
	account, err := s.cache.Get(id.String())
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountNumber != nil {
		account.AccountNumber = *req.AccountNumber
	}
	if req.Provider != nil {
		account.Provider = *req.Provider
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	if req.Balance != nil {
		account.CurrentBalance = *req.Balance
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	if remoteID, ok := id.ForRemote(); ok && s.oracle.IsOnline() {
		if err := s.remote.Update(ctx, remote.CollAccounts, remoteID, req, nil); err != nil {
			return nil, err
		}
	}

	if err := s.cache.Put(account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeleteAccount soft-deletes: the remote row keeps its history with the
// active flag cleared, the local cache forgets the record. An account that
// never reached the remote store needs no remote call at all.
func (s *accountService) DeleteAccount(ctx context.Context, id models.RecordID) error {
	if remoteID, ok := id.ForRemote(); ok && s.oracle.IsOnline() {
		payload := map[string]bool{"is_active": false}
		if err := s.remote.Update(ctx, remote.CollAccounts, remoteID, payload, nil); err != nil {
			return err
		}
	}

	if err := s.cache.Delete(id.String()); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("account deleted", "account_id", id.String())
	return nil
}
