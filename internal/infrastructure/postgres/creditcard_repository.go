package postgres

import (
	"context"
	"fmt"

	"github.com/Ammar30113/finpulse/internal/domain/creditcard"
)

// CreditCardRepository implements the creditcard.Repository interface for PostgreSQL
type CreditCardRepository struct {
	db *DB
}

// NewCreditCardRepository creates a new PostgreSQL credit card repository
func NewCreditCardRepository(db *DB) *CreditCardRepository {
	return &CreditCardRepository{db: db}
}

// Create creates a new credit card
func (r *CreditCardRepository) Create(ctx context.Context, params creditcard.CreateParams) (*creditcard.CreditCard, error) {
	query := `
		INSERT INTO credit_cards (id, user_id, name, current_balance, credit_limit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, current_balance, credit_limit, created_at, updated_at
	`

	var c creditcard.CreditCard
	err := r.db.QueryRowContext(
		ctx, query,
		params.ID, params.UserID, params.Name, params.CurrentBalance, params.CreditLimit,
	).Scan(
		&c.ID, &c.UserID, &c.Name, &c.CurrentBalance, &c.CreditLimit,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}

	return &c, nil
}

// ListByUserID retrieves all credit cards for a specific user
func (r *CreditCardRepository) ListByUserID(ctx context.Context, userID int64) ([]*creditcard.CreditCard, error) {
	query := `
		SELECT id, user_id, name, current_balance, credit_limit, created_at, updated_at
		FROM credit_cards
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	defer rows.Close()

	var cards []*creditcard.CreditCard
	for rows.Next() {
		var c creditcard.CreditCard
		err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.CurrentBalance, &c.CreditLimit,
			&c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit card: %w", err)
		}
		cards = append(cards, &c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit cards: %w", err)
	}

	return cards, nil
}
