package investment

import "context"

// Repository defines the interface for investment data access.
// Defined in the domain layer, implemented in the infrastructure layer.
type Repository interface {
	// Create creates a new investment
	Create(ctx context.Context, params CreateParams) (*Investment, error)

	// ListByUserID retrieves all investments for a specific user
	ListByUserID(ctx context.Context, userID int64) ([]*Investment, error)
}
