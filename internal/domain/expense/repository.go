package expense

import "context"

// Repository defines the interface for expense data access.
// Defined in the domain layer, implemented in the infrastructure layer.
type Repository interface {
	// Create creates a new expense definition
	Create(ctx context.Context, params CreateParams) (*Expense, error)

	// ListByUserID retrieves all expense definitions for a specific user
	ListByUserID(ctx context.Context, userID int64) ([]*Expense, error)

	// Delete removes an expense definition
	Delete(ctx context.Context, id string, userID int64) error
}
