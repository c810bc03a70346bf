package installment

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrPlanNotFound = errors.New("installment plan not found")
)

// Plan represents a fixed-payment installment plan. The remaining liability
// is monthly payment times remaining payments.
type Plan struct {
	ID                string    `json:"id"`
	UserID            int64     `json:"userId"`
	Description       string    `json:"description"`
	MonthlyPayment    float64   `json:"monthlyPayment"`
	RemainingPayments int       `json:"remainingPayments"`
	CreatedAt         time.Time `json:"createdAt"`
}

// RemainingLiability returns the outstanding amount on the plan.
func (p *Plan) RemainingLiability() float64 {
	return p.MonthlyPayment * float64(p.RemainingPayments)
}

// TotalRemaining sums the outstanding liability across plans.
func TotalRemaining(plans []*Plan) float64 {
	var total float64
	for _, p := range plans {
		total += p.RemainingLiability()
	}
	return total
}

// CreateParams contains parameters for creating a new installment plan
type CreateParams struct {
	ID                string
	UserID            int64
	Description       string
	MonthlyPayment    float64
	RemainingPayments int
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.UserID <= 0 {
		return errors.New("valid user ID is required")
	}
	if p.MonthlyPayment <= 0 {
		return errors.New("monthly payment must be positive")
	}
	if p.RemainingPayments < 0 {
		return errors.New("remaining payments cannot be negative")
	}
	return nil
}
