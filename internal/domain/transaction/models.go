package transaction

import (
	"errors"
	"time"
)

// Transaction types. Debit reduces cash flow; credit increases it.
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"
)

// Domain errors
var (
	ErrInvalidType         = errors.New("transaction type must be debit or credit")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Transaction represents a single posted cash movement. Transactions are
// immutable once aggregated over; engines only ever read them.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"userId"`
	AccountID   string    `json:"accountId"`
	Amount      float64   `json:"amount"` // always positive; Type carries the sign
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsDebit reports whether the transaction reduces cash flow.
func (t *Transaction) IsDebit() bool {
	return t.Type == TypeDebit
}

// IsCredit reports whether the transaction increases cash flow.
func (t *Transaction) IsCredit() bool {
	return t.Type == TypeCredit
}

// CreateParams contains parameters for recording a new transaction
type CreateParams struct {
	ID          string
	UserID      int64
	AccountID   string
	Amount      float64
	Type        string
	Category    string
	Description string
	Date        time.Time
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.UserID <= 0 {
		return errors.New("valid user ID is required")
	}
	if p.AccountID == "" {
		return errors.New("account ID is required")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if p.Type != TypeDebit && p.Type != TypeCredit {
		return ErrInvalidType
	}
	if p.Date.IsZero() {
		return errors.New("transaction date is required")
	}
	return nil
}
