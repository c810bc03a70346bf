package postgres

import (
	"context"
	"fmt"

	"github.com/Ammar30113/finpulse/internal/domain/investment"
)

// InvestmentRepository implements the investment.Repository interface for PostgreSQL
type InvestmentRepository struct {
	db *DB
}

// NewInvestmentRepository creates a new PostgreSQL investment repository
func NewInvestmentRepository(db *DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// Create creates a new investment
func (r *InvestmentRepository) Create(ctx context.Context, params investment.CreateParams) (*investment.Investment, error) {
	query := `
		INSERT INTO investments (id, user_id, name, current_value, book_value)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, current_value, book_value, created_at, updated_at
	`

	var inv investment.Investment
	err := r.db.QueryRowContext(
		ctx, query,
		params.ID, params.UserID, params.Name, params.CurrentValue, params.BookValue,
	).Scan(
		&inv.ID, &inv.UserID, &inv.Name, &inv.CurrentValue, &inv.BookValue,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	return &inv, nil
}

// ListByUserID retrieves all investments for a specific user
func (r *InvestmentRepository) ListByUserID(ctx context.Context, userID int64) ([]*investment.Investment, error) {
	query := `
		SELECT id, user_id, name, current_value, book_value, created_at, updated_at
		FROM investments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	var investments []*investment.Investment
	for rows.Next() {
		var inv investment.Investment
		err := rows.Scan(
			&inv.ID, &inv.UserID, &inv.Name, &inv.CurrentValue, &inv.BookValue,
			&inv.CreatedAt, &inv.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		investments = append(investments, &inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investments: %w", err)
	}

	return investments, nil
}
