package export

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
)

// Row is one exported transaction, already resolved against the cached
// customers and accounts so the file shows names instead of identifiers.
type Row struct {
	Date        string
	Type        string
	Customer    string
	Amount      float64
	Fee         float64
	FromAccount string
	ToAccount   string
	Description string
}

var headers = []string{"Date", "Type", "Customer", "Amount", "Fee", "From Account", "To Account", "Description"}

func (r Row) strings() []string {
	return []string{
		r.Date,
		r.Type,
		r.Customer,
		strconv.FormatFloat(r.Amount, 'f', 2, 64),
		strconv.FormatFloat(r.Fee, 'f', 2, 64),
		r.FromAccount,
		r.ToAccount,
		r.Description,
	}
}

type transactionSource interface {
	GetAll() ([]*models.Transaction, error)
}

type customerSource interface {
	GetAll() ([]*models.Customer, error)
}

type accountSource interface {
	GetAll() ([]*models.Account, error)
}

type Exporter struct {
	transactions transactionSource
	customers    customerSource
	accounts     accountSource
}

func NewExporter(transactions transactionSource, customers customerSource, accounts accountSource) *Exporter {
	return &Exporter{
		transactions: transactions,
		customers:    customers,
		accounts:     accounts,
	}
}

// Build assembles the report rows from the local cache, newest first. from
// and to bound the date range; either may be empty.
func (e *Exporter) Build(ctx context.Context, from, to string) ([]Row, error) {
	transactions, err := e.transactions.GetAll()
	if err != nil {
		return nil, err
	}

	customerNames := map[models.RecordID]string{}
	if customers, err := e.customers.GetAll(); err == nil {
		for _, c := range customers {
			customerNames[c.ID] = c.Name
		}
	}
	accountNames := map[models.RecordID]string{}
	if accounts, err := e.accounts.GetAll(); err == nil {
		for _, a := range accounts {
			accountNames[a.ID] = a.Name
		}
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		if transactions[i].TransactionDate != transactions[j].TransactionDate {
			return transactions[i].TransactionDate > transactions[j].TransactionDate
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})

	rows := make([]Row, 0, len(transactions))
	for _, t := range transactions {
		if from != "" && t.TransactionDate < from {
			continue
		}
		if to != "" && t.TransactionDate > to {
			continue
		}
		rows = append(rows, Row{
			Date:        t.TransactionDate,
			Type:        humanType(t.Type),
			Customer:    customerNames[t.CustomerID],
			Amount:      t.Amount,
			Fee:         t.FeeAmount,
			FromAccount: accountNames[t.FromAccountID],
			ToAccount:   accountNames[t.ToAccountID],
			Description: t.Description,
		})
	}
	return rows, nil
}

// humanType turns "cash_in_physical" into "cash in physical" for display.
func humanType(t models.TransactionType) string {
	return strings.ReplaceAll(string(t), "_", " ")
}
