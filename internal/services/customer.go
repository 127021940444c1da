package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/remote"
	"github.com/arslanameen227/Malik-MoneyFlow/pkg/logger"
)

type customerCache interface {
	GetAll() ([]*models.Customer, error)
	Get(id string) (*models.Customer, error)
	Put(*models.Customer) error
	Delete(id string) error
}

type customerAccountCache interface {
	GetAll() ([]*models.CustomerAccount, error)
	Put(*models.CustomerAccount) error
	Delete(id string) error
}

type customerRemote interface {
	Insert(ctx context.Context, collection string, payload any, out any) error
	Delete(ctx context.Context, collection, id string) error
}

type customerOracle interface {
	IsOnline() bool
}

type customerService struct {
	customers customerCache
	accounts  customerAccountCache
	remote    customerRemote
	oracle    customerOracle
}

func NewCustomerService(customers customerCache, accounts customerAccountCache, rc customerRemote, oracle customerOracle) *customerService {
	return &customerService{
		customers: customers,
		accounts:  accounts,
		remote:    rc,
		oracle:    oracle,
	}
}

// ListCustomers returns cached customers ordered by name.
func (s *customerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	customers, err := cachedOrEmpty(ctx, s.customers.GetAll)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(customers, func(i, j int) bool {
		return strings.ToLower(customers[i].Name) < strings.ToLower(customers[j].Name)
	})
	return customers, nil
}

// CreateCustomer creates the customer and, when the request nests one, their
// first bank/wallet account in the same call.
func (s *customerService) CreateCustomer(ctx context.Context, uid string, req dto.CreateCustomerRequest) (*models.Customer, error) {
	customer := models.Customer{
		UserID:   uid,
		Name:     req.Name,
		Phone:    req.Phone,
		FeeType:  req.FeeType,
		FeeValue: req.FeeValue,
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)

	if s.oracle.IsOnline() {
		var rows []models.Customer
		if err := s.remote.Insert(ctx, remote.CollCustomers, dto.NewCustomerInsert(customer), &rows); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, errs.NewRemoteRejectedError("remote insert returned no row", 0)
		}
		customer = rows[0]
	} else {
		customer.ID = models.NewLocalID()
		customer.CreatedAt = time.Now()
	}

	if err := s.customers.Put(&customer); err != nil {
		if s.oracle.IsOnline() {
			log.Warn("failed to cache created customer", "error", err)
		} else {
			return nil, err
		}
	}

	if req.Account != nil {
		if _, err := s.CreateCustomerAccount(ctx, customer.ID, *req.Account); err != nil {
			// customer exists either way; account creation reports its own error
			return &customer, err
		}
	}

	log.Info("customer created", "customer_id", customer.ID.String())
	return &customer, nil
}

// CreateCustomerAccount attaches a bank/wallet account to a customer.
func (s *customerService) CreateCustomerAccount(ctx context.Context, customerID models.RecordID, req dto.CreateCustomerAccountRequest) (*models.CustomerAccount, error) {
	account := models.CustomerAccount{
		CustomerID:    customerID,
		AccountTitle:  req.AccountTitle,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		Type:          req.Type,
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	// a customer that only exists locally cannot get a remote child row
	_, customerSynced := customerID.ForRemote()

	if s.oracle.IsOnline() && customerSynced {
		var rows []models.CustomerAccount
		if err := s.remote.Insert(ctx, remote.CollCustomerAccounts, dto.NewCustomerAccountInsert(account), &rows); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, errs.NewRemoteRejectedError("remote insert returned no row", 0)
		}
		account = rows[0]
	} else {
		account.ID = models.NewLocalID()
		account.CreatedAt = time.Now()
	}

	if err := s.accounts.Put(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

// ListCustomerAccounts returns the cached accounts belonging to one customer.
func (s *customerService) ListCustomerAccounts(ctx context.Context, customerID models.RecordID) ([]*models.CustomerAccount, error) {
	all, err := cachedOrEmpty(ctx, s.accounts.GetAll)
	if err != nil {
		return nil, err
	}
	accounts := make([]*models.CustomerAccount, 0, len(all))
	for _, a := range all {
		if a.CustomerID == customerID {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

// DeleteCustomer hard-deletes the customer remotely and locally, along with
// their cached accounts.
func (s *customerService) DeleteCustomer(ctx context.Context, id models.RecordID) error {
	if remoteID, ok := id.ForRemote(); ok && s.oracle.IsOnline() {
		if err := s.remote.Delete(ctx, remote.CollCustomers, remoteID); err != nil {
			return err
		}
	}

	if err := s.customers.Delete(id.String()); err != nil {
		return err
	}

	// drop the customer's cached accounts too
	accounts, err := s.accounts.GetAll()
	if err == nil {
		for _, a := range accounts {
			if a.CustomerID == id {
				s.accounts.Delete(a.ID.String())
			}
		}
	}

	log := logger.FromContext(ctx)
	log.Info("customer deleted", "customer_id", id.String())
	return nil
}
