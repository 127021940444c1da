package models

import "time"

type AccountType string

const (
	AccountCash   AccountType = "cash"
	AccountBank   AccountType = "bank"
	AccountWallet AccountType = "wallet"
)

func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountCash, AccountBank, AccountWallet:
		return true
	}
	return false
}

type Account struct {
	ID             RecordID    `json:"id"`
	UserID         string      `json:"user_id"`
	Name           string      `json:"name"`
	Type           AccountType `json:"type"`
	OpeningBalance float64     `json:"opening_balance"`
	CurrentBalance float64     `json:"current_balance"`
	AccountNumber  string      `json:"account_number,omitempty"`
	Provider       string      `json:"provider,omitempty"`
	IsActive       bool        `json:"is_active"`
	CreatedAt      time.Time   `json:"created_at"`
}
