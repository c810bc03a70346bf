package account

import (
	"errors"
	"time"
)

// Account types supported by the application.
const (
	TypeChequing = "chequing"
	TypeSavings  = "savings"
	TypeCredit   = "credit"
)

var accountTypes = map[string]struct{}{
	TypeChequing: {},
	TypeSavings:  {},
	TypeCredit:   {},
}

// Common ISO 4217 currency codes
var validCurrencies = map[string]struct{}{
	"CAD": {}, "USD": {}, "EUR": {}, "GBP": {}, "JPY": {},
	"CHF": {}, "AUD": {}, "NZD": {}, "CNY": {}, "INR": {},
	"MXN": {}, "BRL": {}, "SEK": {}, "NOK": {}, "DKK": {},
	"PLN": {}, "TRY": {}, "KRW": {}, "SGD": {}, "HKD": {},
}

// Domain errors
var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCurrency    = errors.New("valid ISO 4217 currency is required")
)

// Account represents a bank account owned by a user. Chequing and savings
// balances count as liquid assets; the savings balance alone feeds the
// emergency-fund metric.
type Account struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"userId"`
	Name        string    `json:"name"`
	AccountType string    `json:"accountType"`
	Balance     float64   `json:"balance"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsLiquid reports whether the account's balance counts toward liquid assets.
func (a *Account) IsLiquid() bool {
	return a.AccountType == TypeChequing || a.AccountType == TypeSavings
}

// CreateParams contains parameters for creating a new account
type CreateParams struct {
	ID          string
	UserID      int64
	Name        string
	AccountType string
	Balance     float64
	Currency    string
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.UserID <= 0 {
		return errors.New("valid user ID is required")
	}
	if p.Name == "" {
		return errors.New("account name is required")
	}
	if !IsValidAccountType(p.AccountType) {
		return ErrInvalidAccountType
	}
	if p.Currency == "" || !IsValidCurrency(p.Currency) {
		return ErrInvalidCurrency
	}
	return nil
}

// IsValidAccountType checks if the provided account type is valid.
func IsValidAccountType(t string) bool {
	_, ok := accountTypes[t]
	return ok
}

// IsValidCurrency checks if the provided currency is a valid ISO 4217 code.
func IsValidCurrency(c string) bool {
	if len(c) != 3 {
		return false
	}
	_, ok := validCurrencies[c]
	return ok
}
