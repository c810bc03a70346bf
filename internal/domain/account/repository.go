package account

import "context"

// Repository defines the interface for account data access.
// Defined in the domain layer, implemented in the infrastructure layer.
type Repository interface {
	// Create creates a new account
	Create(ctx context.Context, params CreateParams) (*Account, error)

	// GetByID retrieves an account by its ID
	GetByID(ctx context.Context, id string) (*Account, error)

	// ListByUserID retrieves all accounts for a specific user
	ListByUserID(ctx context.Context, userID int64) ([]*Account, error)
}
