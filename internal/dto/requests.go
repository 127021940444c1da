package dto

import (
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
)

type CreateAccountRequest struct {
	Name           string             `json:"name"`
	Type           models.AccountType `json:"type"`
	OpeningBalance float64            `json:"opening_balance"`
	AccountNumber  string             `json:"account_number,omitempty"`
	Provider       string             `json:"provider,omitempty"`
}

type UpdateAccountRequest struct {
	Name          *string  `json:"name,omitempty"`
	AccountNumber *string  `json:"account_number,omitempty"`
	Provider      *string  `json:"provider,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
	Balance       *float64 `json:"current_balance,omitempty"`
}

type CreateCustomerRequest struct {
	Name     string                        `json:"name"`
	Phone    string                        `json:"phone,omitempty"`
	FeeType  models.FeeType                `json:"fee_type"`
	FeeValue float64                       `json:"fee_value"`
	Account  *CreateCustomerAccountRequest `json:"account,omitempty"`
}

type CreateCustomerAccountRequest struct {
	AccountTitle  string             `json:"account_title"`
	AccountNumber string             `json:"account_number"`
	BankName      string             `json:"bank_name"`
	Type          models.AccountType `json:"type"`
}

type CreateTransactionRequest struct {
	Type              models.TransactionType `json:"type"`
	Subcategory       models.Subcategory     `json:"subcategory,omitempty"`
	FromAccountID     models.RecordID        `json:"from_account_id,omitempty"`
	ToAccountID       models.RecordID        `json:"to_account_id,omitempty"`
	CustomerID        models.RecordID        `json:"customer_id,omitempty"`
	CustomerAccountID models.RecordID        `json:"customer_account_id,omitempty"`
	Amount            float64                `json:"amount"`
	FeeAmount         float64                `json:"fee_amount"`
	Description       string                 `json:"description,omitempty"`
	TransactionDate   string                 `json:"transaction_date,omitempty"` // defaults to today
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// SyncStatus is what the sync endpoints report: the connectivity hint plus
// the outbox depth, so a stuck queue is visible to the operator.
type SyncStatus struct {
	Online        bool       `json:"online"`
	ForcedOffline bool       `json:"forced_offline"`
	Pending       int        `json:"pending"`
	Failed        int        `json:"failed"`
	LastSync      *SyncAudit `json:"last_sync,omitempty"`
}

type SyncAudit struct {
	StartedAt string `json:"started_at"`
	Delivered int    `json:"delivered"`
	Remaining int    `json:"remaining"`
	Pulled    int    `json:"pulled"`
	Error     string `json:"error,omitempty"`
}

type DashboardSummary struct {
	TotalBalance  float64              `json:"total_balance"`
	CashInHand    float64              `json:"cash_in_hand"`
	AccountCount  int                  `json:"account_count"`
	TodayCount    int                  `json:"today_count"`
	TodayVolume   float64              `json:"today_volume"`
	TodayFees     float64              `json:"today_fees"`
	CashPosition  *models.CashPosition `json:"cash_position,omitempty"`
	PendingOutbox int                  `json:"pending_outbox"`
	Date          string               `json:"date"`
}
