package review

import (
	"context"
	"time"
)

// Repository defines the interface for weekly review data access.
// Defined in the domain layer, implemented in the infrastructure layer.
type Repository interface {
	// Create persists a new review. The store enforces uniqueness on
	// (user_id, week_start) and returns ErrAlreadyExists when a review for
	// that week was inserted concurrently.
	Create(ctx context.Context, params CreateParams) (*WeeklyReview, error)

	// GetByID retrieves a review by id, scoped to the user.
	// Returns ErrReviewNotFound if it does not exist or belongs to someone else.
	GetByID(ctx context.Context, id string, userID int64) (*WeeklyReview, error)

	// GetByUserAndWeekStart retrieves the review for a specific week,
	// or (nil, nil) when none exists.
	GetByUserAndWeekStart(ctx context.Context, userID int64, weekStart time.Time) (*WeeklyReview, error)

	// GetLatestBefore retrieves the most recent review with week_start
	// strictly before the given date, or (nil, nil) when none exists.
	GetLatestBefore(ctx context.Context, userID int64, weekStart time.Time) (*WeeklyReview, error)

	// ListRecentBefore retrieves up to limit reviews with week_start strictly
	// before the given date, most recent first.
	ListRecentBefore(ctx context.Context, userID int64, weekStart time.Time, limit int) ([]*WeeklyReview, error)

	// ListByUserID retrieves up to limit reviews, most recent first.
	ListByUserID(ctx context.Context, userID int64, limit int) ([]*WeeklyReview, error)

	// UpdateStatus sets the action status and completion time on a review.
	UpdateStatus(ctx context.Context, id string, status string, completedAt time.Time) error
}
