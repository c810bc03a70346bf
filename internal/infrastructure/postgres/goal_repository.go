package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Ammar30113/finpulse/internal/domain/goal"
)

// GoalRepository implements the goal.Repository interface for PostgreSQL
type GoalRepository struct {
	db *DB
}

// NewGoalRepository creates a new PostgreSQL goal repository
func NewGoalRepository(db *DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create creates a new goal
func (r *GoalRepository) Create(ctx context.Context, params goal.CreateParams) (*goal.Goal, error) {
	query := `
		INSERT INTO goals (id, user_id, title, target_amount, current_amount, target_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, title, target_amount, current_amount, target_date, created_at
	`

	var targetDate sql.NullTime
	if params.TargetDate != nil {
		targetDate = sql.NullTime{Time: *params.TargetDate, Valid: true}
	}

	var g goal.Goal
	var targetDateOut sql.NullTime
	err := r.db.QueryRowContext(
		ctx, query,
		params.ID, params.UserID, params.Title, params.TargetAmount, params.CurrentAmount, targetDate,
	).Scan(
		&g.ID, &g.UserID, &g.Title, &g.TargetAmount, &g.CurrentAmount,
		&targetDateOut, &g.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	if targetDateOut.Valid {
		g.TargetDate = &targetDateOut.Time
	}

	return &g, nil
}

// ListByUserID retrieves all goals for a specific user
func (r *GoalRepository) ListByUserID(ctx context.Context, userID int64) ([]*goal.Goal, error) {
	query := `
		SELECT id, user_id, title, target_amount, current_amount, target_date, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []*goal.Goal
	for rows.Next() {
		var g goal.Goal
		var targetDate sql.NullTime
		err := rows.Scan(
			&g.ID, &g.UserID, &g.Title, &g.TargetAmount, &g.CurrentAmount,
			&targetDate, &g.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		if targetDate.Valid {
			g.TargetDate = &targetDate.Time
		}
		goals = append(goals, &g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}

	return goals, nil
}
