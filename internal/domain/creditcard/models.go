package creditcard

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrCardNotFound = errors.New("credit card not found")
)

// CreditCard represents a credit card with a running balance against a limit.
type CreditCard struct {
	ID             string    `json:"id"`
	UserID         int64     `json:"userId"`
	Name           string    `json:"name"`
	CurrentBalance float64   `json:"currentBalance"`
	CreditLimit    float64   `json:"creditLimit"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Ratio returns the card's balance/limit ratio, 0 when the limit is 0.
func (c *CreditCard) Ratio() float64 {
	if c.CreditLimit <= 0 {
		return 0
	}
	return c.CurrentBalance / c.CreditLimit
}

// Utilization returns the aggregate utilization percentage across cards:
// total balance / total limit * 100, 0 when the total limit is 0.
func Utilization(cards []*CreditCard) float64 {
	var balance, limit float64
	for _, c := range cards {
		balance += c.CurrentBalance
		limit += c.CreditLimit
	}
	if limit <= 0 {
		return 0
	}
	return balance / limit * 100
}

// TotalBalance sums the current balances across cards.
func TotalBalance(cards []*CreditCard) float64 {
	var total float64
	for _, c := range cards {
		total += c.CurrentBalance
	}
	return total
}

// WorstCard returns the card with the highest balance/limit ratio, or nil for
// an empty slice. Ties resolve to the first card encountered in input order.
func WorstCard(cards []*CreditCard) *CreditCard {
	var worst *CreditCard
	for _, c := range cards {
		if worst == nil || c.Ratio() > worst.Ratio() {
			worst = c
		}
	}
	return worst
}

// CreateParams contains parameters for creating a new credit card
type CreateParams struct {
	ID             string
	UserID         int64
	Name           string
	CurrentBalance float64
	CreditLimit    float64
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.UserID <= 0 {
		return errors.New("valid user ID is required")
	}
	if p.Name == "" {
		return errors.New("card name is required")
	}
	if p.CreditLimit < 0 {
		return errors.New("credit limit cannot be negative")
	}
	return nil
}
