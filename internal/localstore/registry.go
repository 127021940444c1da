package localstore

import (
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
)

// Registry holds the typed collection for every entity, built once at
// startup and handed to whoever needs it. There is exactly one instance per
// store; nothing else constructs collections.
type Registry struct {
	Store            *Store
	Accounts         *Collection[models.Account]
	Customers        *Collection[models.Customer]
	CustomerAccounts *Collection[models.CustomerAccount]
	Transactions     *Collection[models.Transaction]
	Pending          *Collection[models.PendingTransaction]
	CashPositions    *Collection[models.CashPosition]
	Sessions         *Collection[models.Session]
}

func NewRegistry(s *Store) *Registry {
	return &Registry{
		Store: s,
		Accounts: NewCollection(s, EntityAccounts, func(a *models.Account) string {
			return a.ID.String()
		}),
		Customers: NewCollection(s, EntityCustomers, func(c *models.Customer) string {
			return c.ID.String()
		}),
		CustomerAccounts: NewCollection(s, EntityCustomerAccounts, func(ca *models.CustomerAccount) string {
			return ca.ID.String()
		}),
		Transactions: NewCollection(s, EntityTransactions, func(t *models.Transaction) string {
			return t.ID.String()
		}),
		Pending: NewCollection(s, EntityPending, func(p *models.PendingTransaction) string {
			return p.ID.String()
		}),
		// cash positions are keyed by date, one row per calendar day
		CashPositions: NewCollection(s, EntityCashPositions, func(cp *models.CashPosition) string {
			return cp.Date
		}),
		Sessions: NewCollection(s, EntitySessions, func(*models.Session) string {
			return "current"
		}),
	}
}
