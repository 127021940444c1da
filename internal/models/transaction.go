package models

import "time"

type TransactionType string

const (
	CashIn          TransactionType = "cash_in"           // receive cash, send to customer's bank/wallet
	CashOut         TransactionType = "cash_out"          // receive in bank/wallet, hand out cash
	CashInPhysical  TransactionType = "cash_in_physical"  // add physical cash to the cash box
	CashOutPhysical TransactionType = "cash_out_physical" // remove physical cash from the cash box
	CashInPersonal  TransactionType = "cash_in_personal"
	CashOutPersonal TransactionType = "cash_out_personal"
	AccountTransfer TransactionType = "account_transfer" // between own accounts
	LoanGiven       TransactionType = "loan_given"
	LoanReceived    TransactionType = "loan_received"
	Expense         TransactionType = "expense"
	Income          TransactionType = "income"
)

var transactionTypes = map[TransactionType]bool{
	CashIn: true, CashOut: true,
	CashInPhysical: true, CashOutPhysical: true,
	CashInPersonal: true, CashOutPersonal: true,
	AccountTransfer: true,
	LoanGiven:       true, LoanReceived: true,
	Expense: true, Income: true,
}

func ValidTransactionType(t TransactionType) bool {
	return transactionTypes[t]
}

type Subcategory string

const (
	SubPhysical Subcategory = "physical"
	SubDigital  Subcategory = "digital"
)

// IsPersonal reports whether t carries a physical/digital subcategory.
func (t TransactionType) IsPersonal() bool {
	return t == CashInPersonal || t == CashOutPersonal
}

type Transaction struct {
	ID                RecordID        `json:"id"`
	UserID            string          `json:"user_id"`
	Type              TransactionType `json:"type"`
	Subcategory       Subcategory     `json:"subcategory,omitempty"`
	FromAccountID     RecordID        `json:"from_account_id,omitempty"`
	ToAccountID       RecordID        `json:"to_account_id,omitempty"`
	CustomerID        RecordID        `json:"customer_id,omitempty"`
	CustomerAccountID RecordID        `json:"customer_account_id,omitempty"`
	Amount            float64         `json:"amount"`
	FeeAmount         float64         `json:"fee_amount"`
	Description       string          `json:"description,omitempty"`
	TransactionDate   string          `json:"transaction_date"` // YYYY-MM-DD
	CreatedAt         time.Time       `json:"created_at"`
}

// PendingTransaction is an outbox entry: a transaction authored offline,
// waiting to be delivered to the remote store.
type PendingTransaction struct {
	Transaction
	Synced     bool `json:"synced"`
	RetryCount int  `json:"retry_count"`
	Failed     bool `json:"failed"` // gave up after MaxRetries attempts
}
