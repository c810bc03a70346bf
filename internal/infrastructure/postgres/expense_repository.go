package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Ammar30113/finpulse/internal/domain/expense"
)

// ExpenseRepository implements the expense.Repository interface for PostgreSQL
type ExpenseRepository struct {
	db *DB
}

// NewExpenseRepository creates a new PostgreSQL expense repository
func NewExpenseRepository(db *DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create creates a new expense definition
func (r *ExpenseRepository) Create(ctx context.Context, params expense.CreateParams) (*expense.Expense, error) {
	query := `
		INSERT INTO expenses (id, user_id, category, description, amount, is_recurring, frequency, next_due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, category, description, amount, is_recurring, frequency, next_due_date, created_at
	`

	var nextDue sql.NullTime
	if params.NextDueDate != nil {
		nextDue = sql.NullTime{Time: *params.NextDueDate, Valid: true}
	}

	var e expense.Expense
	var description, frequency sql.NullString
	var nextDueOut sql.NullTime
	err := r.db.QueryRowContext(
		ctx, query,
		params.ID, params.UserID, params.Category, nullString(params.Description),
		params.Amount, params.IsRecurring, nullString(params.Frequency), nextDue,
	).Scan(
		&e.ID, &e.UserID, &e.Category, &description, &e.Amount,
		&e.IsRecurring, &frequency, &nextDueOut, &e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if description.Valid {
		e.Description = description.String
	}
	if frequency.Valid {
		e.Frequency = frequency.String
	}
	if nextDueOut.Valid {
		e.NextDueDate = &nextDueOut.Time
	}

	return &e, nil
}

// ListByUserID retrieves all expense definitions for a specific user
func (r *ExpenseRepository) ListByUserID(ctx context.Context, userID int64) ([]*expense.Expense, error) {
	query := `
		SELECT id, user_id, category, description, amount, is_recurring, frequency, next_due_date, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense
	for rows.Next() {
		var e expense.Expense
		var description, frequency sql.NullString
		var nextDue sql.NullTime
		err := rows.Scan(
			&e.ID, &e.UserID, &e.Category, &description, &e.Amount,
			&e.IsRecurring, &frequency, &nextDue, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if description.Valid {
			e.Description = description.String
		}
		if frequency.Valid {
			e.Frequency = frequency.String
		}
		if nextDue.Valid {
			e.NextDueDate = &nextDue.Time
		}
		expenses = append(expenses, &e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// Delete removes an expense definition
func (r *ExpenseRepository) Delete(ctx context.Context, id string, userID int64) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}
