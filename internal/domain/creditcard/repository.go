package creditcard

import "context"

// Repository defines the interface for credit card data access.
// Defined in the domain layer, implemented in the infrastructure layer.
type Repository interface {
	// Create creates a new credit card
	Create(ctx context.Context, params CreateParams) (*CreditCard, error)

	// ListByUserID retrieves all credit cards for a specific user
	ListByUserID(ctx context.Context, userID int64) ([]*CreditCard, error)
}
