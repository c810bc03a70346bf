package goal

import "context"

// Repository defines the interface for goal data access.
// Defined in the domain layer, implemented in the infrastructure layer.
type Repository interface {
	// Create creates a new goal
	Create(ctx context.Context, params CreateParams) (*Goal, error)

	// ListByUserID retrieves all goals for a specific user
	ListByUserID(ctx context.Context, userID int64) ([]*Goal, error)
}
