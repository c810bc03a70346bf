package transaction

import (
	"context"
	"time"
)

// Repository defines the interface for transaction data access.
// Defined in the domain layer, implemented in the infrastructure layer.
type Repository interface {
	// Create records a new transaction
	Create(ctx context.Context, params CreateParams) (*Transaction, error)

	// ListByUserID retrieves transactions for a user, newest first
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*Transaction, error)

	// ListByDateRange retrieves a user's transactions with a date in the
	// inclusive range [from, to], in stable (date, created_at) order
	ListByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]*Transaction, error)

	// ListRecent retrieves up to limit transactions ordered by
	// transaction date desc, then creation time desc
	ListRecent(ctx context.Context, userID int64, limit int) ([]*Transaction, error)
}
