package installment

import "context"

// Repository defines the interface for installment plan data access.
// Defined in the domain layer, implemented in the infrastructure layer.
type Repository interface {
	// Create creates a new installment plan
	Create(ctx context.Context, params CreateParams) (*Plan, error)

	// ListByUserID retrieves all installment plans for a specific user
	ListByUserID(ctx context.Context, userID int64) ([]*Plan, error)
}
