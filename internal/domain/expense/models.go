package expense

import (
	"errors"
	"time"
)

// Recurrence frequencies for recurring expense definitions.
const (
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
	FrequencyYearly   = "yearly"
)

// Domain errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// Expense represents a recurring bill definition, not an actual cash
// movement. Actual payments show up as debit transactions.
type Expense struct {
	ID          string     `json:"id"`
	UserID      int64      `json:"userId"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	IsRecurring bool       `json:"isRecurring"`
	Frequency   string     `json:"frequency,omitempty"`
	NextDueDate *time.Time `json:"nextDueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// CreateParams contains parameters for creating a new expense definition
type CreateParams struct {
	ID          string
	UserID      int64
	Category    string
	Description string
	Amount      float64
	IsRecurring bool
	Frequency   string
	NextDueDate *time.Time
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.UserID <= 0 {
		return errors.New("valid user ID is required")
	}
	if p.Category == "" {
		return errors.New("expense category is required")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}
