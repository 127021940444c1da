package models

import "time"

// CashPosition is the remote store's per-day cash summary. One row per
// calendar date; this service only caches and displays it, it never
// recomputes one.
type CashPosition struct {
	ID                RecordID  `json:"id"`
	UserID            string    `json:"user_id"`
	Date              string    `json:"date"` // YYYY-MM-DD
	OpeningBalance    float64   `json:"opening_balance"`
	ClosingBalance    float64   `json:"closing_balance"`
	TotalCashReceived float64   `json:"total_cash_received"`
	TotalCashGiven    float64   `json:"total_cash_given"`
	CreatedAt         time.Time `json:"created_at"`
}
