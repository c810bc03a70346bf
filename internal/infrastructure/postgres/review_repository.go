package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Ammar30113/finpulse/internal/domain/review"
)

// ReviewRepository implements the review.Repository interface for
// PostgreSQL. Snapshots and changes are stored as JSONB columns; a unique
// constraint on (user_id, week_start) guarantees one review per week.
type ReviewRepository struct {
	db *DB
}

// NewReviewRepository creates a new PostgreSQL weekly review repository
func NewReviewRepository(db *DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `id, user_id, week_start, week_end, snapshot, prev_snapshot, changes,
	action_type, action_title, action_detail, action_target_amount, action_target_name,
	action_status, action_completed_at, created_at`

// Create persists a new review. Returns review.ErrAlreadyExists when a
// review for the same user and week start was inserted concurrently.
func (r *ReviewRepository) Create(ctx context.Context, params review.CreateParams) (*review.WeeklyReview, error) {
	snapshot, err := json.Marshal(params.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	var prevSnapshot, changes []byte
	if params.PrevSnapshot != nil {
		if prevSnapshot, err = json.Marshal(params.PrevSnapshot); err != nil {
			return nil, fmt.Errorf("failed to marshal previous snapshot: %w", err)
		}
	}
	if params.Changes != nil {
		if changes, err = json.Marshal(params.Changes); err != nil {
			return nil, fmt.Errorf("failed to marshal changes: %w", err)
		}
	}

	var targetAmount sql.NullFloat64
	if params.Action.TargetAmount != nil {
		targetAmount = sql.NullFloat64{Float64: *params.Action.TargetAmount, Valid: true}
	}

	query := `
		INSERT INTO weekly_reviews (
			id, user_id, week_start, week_end, snapshot, prev_snapshot, changes,
			action_type, action_title, action_detail, action_target_amount, action_target_name,
			action_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + reviewColumns

	row := r.db.QueryRowContext(
		ctx, query,
		params.ID, params.UserID, params.WeekStart, params.WeekEnd,
		snapshot, prevSnapshot, changes,
		params.Action.Type, params.Action.Title, nullString(params.Action.Detail),
		targetAmount, nullString(params.Action.TargetName), params.Action.Status,
	)

	rev, err := scanReview(row)
	if isUniqueViolation(err) {
		return nil, review.ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return rev, nil
}

// GetByID retrieves a review by id, scoped to the user
func (r *ReviewRepository) GetByID(ctx context.Context, id string, userID int64) (*review.WeeklyReview, error) {
	query := `SELECT ` + reviewColumns + ` FROM weekly_reviews WHERE id = $1 AND user_id = $2`

	rev, err := scanReview(r.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return nil, review.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return rev, nil
}

// GetByUserAndWeekStart retrieves the review for a specific week, or
// (nil, nil) when none exists
func (r *ReviewRepository) GetByUserAndWeekStart(ctx context.Context, userID int64, weekStart time.Time) (*review.WeeklyReview, error) {
	query := `SELECT ` + reviewColumns + ` FROM weekly_reviews WHERE user_id = $1 AND week_start = $2`

	rev, err := scanReview(r.db.QueryRowContext(ctx, query, userID, weekStart))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review for week: %w", err)
	}

	return rev, nil
}

// GetLatestBefore retrieves the most recent review with week_start strictly
// before the given date, or (nil, nil) when none exists
func (r *ReviewRepository) GetLatestBefore(ctx context.Context, userID int64, weekStart time.Time) (*review.WeeklyReview, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM weekly_reviews
		WHERE user_id = $1 AND week_start < $2
		ORDER BY week_start DESC
		LIMIT 1
	`

	rev, err := scanReview(r.db.QueryRowContext(ctx, query, userID, weekStart))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest review: %w", err)
	}

	return rev, nil
}

// ListRecentBefore retrieves up to limit reviews before the given week
// start, most recent first
func (r *ReviewRepository) ListRecentBefore(ctx context.Context, userID int64, weekStart time.Time, limit int) ([]*review.WeeklyReview, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM weekly_reviews
		WHERE user_id = $1 AND week_start < $2
		ORDER BY week_start DESC
		LIMIT $3
	`
	return r.queryReviews(ctx, query, userID, weekStart, limit)
}

// ListByUserID retrieves up to limit reviews, most recent first
func (r *ReviewRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]*review.WeeklyReview, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM weekly_reviews
		WHERE user_id = $1
		ORDER BY week_start DESC
		LIMIT $2
	`
	return r.queryReviews(ctx, query, userID, limit)
}

// UpdateStatus sets the action status and completion time on a review
func (r *ReviewRepository) UpdateStatus(ctx context.Context, id string, status string, completedAt time.Time) error {
	query := `
		UPDATE weekly_reviews
		SET action_status = $1, action_completed_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, completedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update review status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

func (r *ReviewRepository) queryReviews(ctx context.Context, query string, args ...any) ([]*review.WeeklyReview, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*review.WeeklyReview
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

// scanner covers both *sql.Rows and the traced row wrapper.
type scanner interface {
	Scan(dest ...any) error
}

func scanReview(row scanner) (*review.WeeklyReview, error) {
	var rev review.WeeklyReview
	var snapshot, prevSnapshot, changes []byte
	var detail, targetName sql.NullString
	var targetAmount sql.NullFloat64
	var completedAt sql.NullTime

	err := row.Scan(
		&rev.ID, &rev.UserID, &rev.WeekStart, &rev.WeekEnd,
		&snapshot, &prevSnapshot, &changes,
		&rev.Action.Type, &rev.Action.Title, &detail, &targetAmount, &targetName,
		&rev.Action.Status, &completedAt, &rev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(snapshot, &rev.Snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	if len(prevSnapshot) > 0 {
		rev.PrevSnapshot = &review.Snapshot{}
		if err := json.Unmarshal(prevSnapshot, rev.PrevSnapshot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal previous snapshot: %w", err)
		}
	}
	if len(changes) > 0 {
		rev.Changes = &review.Changes{}
		if err := json.Unmarshal(changes, rev.Changes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal changes: %w", err)
		}
	}

	if detail.Valid {
		rev.Action.Detail = detail.String
	}
	if targetAmount.Valid {
		rev.Action.TargetAmount = &targetAmount.Float64
	}
	if targetName.Valid {
		rev.Action.TargetName = targetName.String
	}
	if completedAt.Valid {
		rev.Action.CompletedAt = &completedAt.Time
	}

	return &rev, nil
}
