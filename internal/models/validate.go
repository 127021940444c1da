package models

import (
	"regexp"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
)

const (
	maxAmount      = 999999999
	maxNameLen     = 100
	maxNumberLen   = 50
	maxPhoneLen    = 20
	maxDescription = 500
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9\s\-\(\)]+$`)
)

func (a *Account) Validate() error {
	if a.Name == "" {
		return errs.NewValidationError("account name is required")
	}
	if len(a.Name) > maxNameLen {
		return errs.NewValidationError("account name too long")
	}
	if !ValidAccountType(a.Type) {
		return errs.NewValidationError("invalid account type: " + string(a.Type))
	}
	if a.OpeningBalance < 0 || a.OpeningBalance > maxAmount {
		return errs.NewValidationError("opening balance must be between 0 and 999999999")
	}
	if len(a.AccountNumber) > maxNumberLen {
		return errs.NewValidationError("account number too long")
	}
	if len(a.Provider) > maxNameLen {
		return errs.NewValidationError("provider name too long")
	}
	return nil
}

func (c *Customer) Validate() error {
	if c.Name == "" {
		return errs.NewValidationError("customer name is required")
	}
	if len(c.Name) > maxNameLen {
		return errs.NewValidationError("customer name too long")
	}
	if c.Phone != "" {
		if len(c.Phone) > maxPhoneLen {
			return errs.NewValidationError("phone number too long")
		}
		if !phoneRe.MatchString(c.Phone) {
			return errs.NewValidationError("invalid phone number")
		}
	}
	if !ValidFeeType(c.FeeType) {
		return errs.NewValidationError("invalid fee type: " + string(c.FeeType))
	}
	if c.FeeValue < 0 {
		return errs.NewValidationError("fee value must be non-negative")
	}
	if c.FeeType == FeePercentage && c.FeeValue > 100 {
		return errs.NewValidationError("percentage fee cannot exceed 100")
	}
	return nil
}

func (ca *CustomerAccount) Validate() error {
	if ca.AccountTitle == "" {
		return errs.NewValidationError("account title is required")
	}
	if len(ca.AccountTitle) > maxNameLen {
		return errs.NewValidationError("account title too long")
	}
	if ca.AccountNumber == "" {
		return errs.NewValidationError("account number is required")
	}
	if len(ca.AccountNumber) > maxNumberLen {
		return errs.NewValidationError("account number too long")
	}
	if ca.BankName == "" {
		return errs.NewValidationError("bank name is required")
	}
	if ca.Type != AccountBank && ca.Type != AccountWallet {
		return errs.NewValidationError("customer account type must be bank or wallet")
	}
	return nil
}

// Validate checks field bounds and the per-type counterpart requirements:
// which of from-account, to-account and customer a transaction must name is
// a function of its type.
func (t *Transaction) Validate() error {
	if !ValidTransactionType(t.Type) {
		return errs.NewValidationError("invalid transaction type: " + string(t.Type))
	}
	if t.Amount <= 0 {
		return errs.NewValidationError("amount must be greater than 0")
	}
	if t.Amount > maxAmount {
		return errs.NewValidationError("amount too large")
	}
	if t.FeeAmount < 0 || t.FeeAmount > maxAmount {
		return errs.NewValidationError("fee must be between 0 and 999999999")
	}
	if len(t.Description) > maxDescription {
		return errs.NewValidationError("description too long")
	}
	if !dateRe.MatchString(t.TransactionDate) {
		return errs.NewValidationError("transaction date must be YYYY-MM-DD")
	}

	if t.Type.IsPersonal() {
		if t.Subcategory != SubPhysical && t.Subcategory != SubDigital {
			return errs.NewValidationError("personal transactions require a physical or digital subcategory")
		}
	} else if t.Subcategory != "" {
		return errs.NewValidationError("subcategory is only valid for personal transactions")
	}

	return t.validateCounterparts()
}

func (t *Transaction) validateCounterparts() error {
	needFrom, needTo, needCustomer := false, false, false

	switch t.Type {
	case CashIn:
		needCustomer, needFrom = true, true
	case CashOut:
		needCustomer, needTo = true, true
	case CashInPhysical, CashOutPhysical:
		// cash box only, no counterpart accounts
	case CashInPersonal:
		needTo = t.Subcategory == SubDigital
	case CashOutPersonal:
		needFrom = t.Subcategory == SubPhysical
	case AccountTransfer:
		needFrom, needTo = true, true
	case LoanGiven:
		needCustomer, needFrom = true, true
	case LoanReceived:
		needCustomer, needTo = true, true
	case Expense:
		needFrom = true
	case Income:
		needTo = true
	}

	if needFrom && t.FromAccountID.IsZero() {
		return errs.NewValidationError(string(t.Type) + " requires a from account")
	}
	if needTo && t.ToAccountID.IsZero() {
		return errs.NewValidationError(string(t.Type) + " requires a to account")
	}
	if needCustomer && t.CustomerID.IsZero() {
		return errs.NewValidationError(string(t.Type) + " requires a customer")
	}
	if t.Type == AccountTransfer && t.FromAccountID == t.ToAccountID {
		return errs.NewValidationError("cannot transfer between the same account")
	}
	return nil
}
