package dto

import (
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
)

// Remote insert payloads. None of them has an id field: the remote store
// assigns identifiers, and a locally generated temporary id must never reach
// the wire. Foreign keys go through RecordID.ForRemote, which drops local
// ids instead of leaking them as real references.

type AccountInsert struct {
	UserID         string             `json:"user_id"`
	Name           string             `json:"name"`
	Type           models.AccountType `json:"type"`
	OpeningBalance float64            `json:"opening_balance"`
	CurrentBalance float64            `json:"current_balance"`
	AccountNumber  string             `json:"account_number,omitempty"`
	Provider       string             `json:"provider,omitempty"`
	IsActive       bool               `json:"is_active"`
}

func NewAccountInsert(a models.Account) AccountInsert {
	return AccountInsert{
		UserID:         a.UserID,
		Name:           a.Name,
		Type:           a.Type,
		OpeningBalance: a.OpeningBalance,
		CurrentBalance: a.CurrentBalance,
		AccountNumber:  a.AccountNumber,
		Provider:       a.Provider,
		IsActive:       a.IsActive,
	}
}

type CustomerInsert struct {
	UserID   string         `json:"user_id"`
	Name     string         `json:"name"`
	Phone    string         `json:"phone,omitempty"`
	FeeType  models.FeeType `json:"fee_type"`
	FeeValue float64        `json:"fee_value"`
}

func NewCustomerInsert(c models.Customer) CustomerInsert {
	return CustomerInsert{
		UserID:   c.UserID,
		Name:     c.Name,
		Phone:    c.Phone,
		FeeType:  c.FeeType,
		FeeValue: c.FeeValue,
	}
}

type CustomerAccountInsert struct {
	CustomerID    string             `json:"customer_id,omitempty"`
	AccountTitle  string             `json:"account_title"`
	AccountNumber string             `json:"account_number"`
	BankName      string             `json:"bank_name"`
	Type          models.AccountType `json:"type"`
}

func NewCustomerAccountInsert(ca models.CustomerAccount) CustomerAccountInsert {
	p := CustomerAccountInsert{
		AccountTitle:  ca.AccountTitle,
		AccountNumber: ca.AccountNumber,
		BankName:      ca.BankName,
		Type:          ca.Type,
	}
	if id, ok := ca.CustomerID.ForRemote(); ok {
		p.CustomerID = id
	}
	return p
}

type TransactionInsert struct {
	UserID            string                 `json:"user_id"`
	Type              models.TransactionType `json:"type"`
	Subcategory       models.Subcategory     `json:"subcategory,omitempty"`
	FromAccountID     string                 `json:"from_account_id,omitempty"`
	ToAccountID       string                 `json:"to_account_id,omitempty"`
	CustomerID        string                 `json:"customer_id,omitempty"`
	CustomerAccountID string                 `json:"customer_account_id,omitempty"`
	Amount            float64                `json:"amount"`
	FeeAmount         float64                `json:"fee_amount"`
	Description       string                 `json:"description,omitempty"`
	TransactionDate   string                 `json:"transaction_date"`
}

func NewTransactionInsert(t models.Transaction) TransactionInsert {
	p := TransactionInsert{
		UserID:          t.UserID,
		Type:            t.Type,
		Subcategory:     t.Subcategory,
		Amount:          t.Amount,
		FeeAmount:       t.FeeAmount,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
	}
	if id, ok := t.FromAccountID.ForRemote(); ok {
		p.FromAccountID = id
	}
	if id, ok := t.ToAccountID.ForRemote(); ok {
		p.ToAccountID = id
	}
	if id, ok := t.CustomerID.ForRemote(); ok {
		p.CustomerID = id
	}
	if id, ok := t.CustomerAccountID.ForRemote(); ok {
		p.CustomerAccountID = id
	}
	return p
}
