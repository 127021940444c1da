package models

import "time"

type FeeType string

const (
	FeePercentage FeeType = "percentage"
	FeeFixed      FeeType = "fixed"
)

func ValidFeeType(t FeeType) bool {
	return t == FeePercentage || t == FeeFixed
}

type Customer struct {
	ID        RecordID  `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	FeeType   FeeType   `json:"fee_type"`
	FeeValue  float64   `json:"fee_value"`
	CreatedAt time.Time `json:"created_at"`
}

// Fee computes the fee this customer's policy charges on amount.
func (c *Customer) Fee(amount float64) float64 {
	if c.FeeType == FeePercentage {
		return amount * c.FeeValue / 100
	}
	return c.FeeValue
}

// CustomerAccount is a bank or wallet account belonging to a customer, used
// as the counterpart of cash-in/out transfers.
type CustomerAccount struct {
	ID            RecordID    `json:"id"`
	CustomerID    RecordID    `json:"customer_id"`
	AccountTitle  string      `json:"account_title"`
	AccountNumber string      `json:"account_number"`
	BankName      string      `json:"bank_name"`
	Type          AccountType `json:"type"`
	CreatedAt     time.Time   `json:"created_at"`
}
