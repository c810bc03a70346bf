package investment

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrInvestmentNotFound = errors.New("investment not found")
)

// Investment represents an investment holding. CurrentValue contributes to
// total assets; BookValue is only used for gain/loss reporting.
type Investment struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"userId"`
	Name         string    `json:"name"`
	CurrentValue float64   `json:"currentValue"`
	BookValue    float64   `json:"bookValue"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TotalValue sums the current values across holdings.
func TotalValue(investments []*Investment) float64 {
	var total float64
	for _, i := range investments {
		total += i.CurrentValue
	}
	return total
}

// CreateParams contains parameters for creating a new investment
type CreateParams struct {
	ID           string
	UserID       int64
	Name         string
	CurrentValue float64
	BookValue    float64
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.UserID <= 0 {
		return errors.New("valid user ID is required")
	}
	if p.Name == "" {
		return errors.New("investment name is required")
	}
	if p.CurrentValue < 0 {
		return errors.New("current value cannot be negative")
	}
	return nil
}
