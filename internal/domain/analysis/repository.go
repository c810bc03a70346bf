package analysis

import (
	"context"
	"time"
)

// Repository defines the interface for analysis result persistence.
// Defined in the domain layer, implemented in the infrastructure layer.
type Repository interface {
	// Create persists a new analysis result
	Create(ctx context.Context, params CreateParams) (*Result, error)

	// GetLatestBefore retrieves the most recent result for the user with
	// snapshot_date strictly before the given date, or nil when none exists
	GetLatestBefore(ctx context.Context, userID int64, before time.Time) (*Result, error)

	// GetLatest retrieves the user's most recent result regardless of date,
	// or nil when none exists
	GetLatest(ctx context.Context, userID int64) (*Result, error)
}
