package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Ammar30113/finpulse/internal/domain/transaction"
)

// TransactionRepository implements the transaction.Repository interface for PostgreSQL
type TransactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new PostgreSQL transaction repository
func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create records a new transaction
func (r *TransactionRepository) Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	query := `
		INSERT INTO transactions (id, user_id, account_id, amount, transaction_type, category, description, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, account_id, amount, transaction_type, category, description, date, created_at
	`

	var t transaction.Transaction
	var accountID, description sql.NullString
	err := r.db.QueryRowContext(
		ctx, query,
		params.ID, params.UserID, nullString(params.AccountID), params.Amount,
		params.Type, params.Category, nullString(params.Description), params.Date,
	).Scan(
		&t.ID, &t.UserID, &accountID, &t.Amount, &t.Type,
		&t.Category, &description, &t.Date, &t.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if accountID.Valid {
		t.AccountID = accountID.String
	}
	if description.Valid {
		t.Description = description.String
	}

	return &t, nil
}

// ListByUserID retrieves transactions for a user, newest first
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*transaction.Transaction, error) {
	query := `
		SELECT id, user_id, account_id, amount, transaction_type, category, description, date, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.queryTransactions(ctx, query, userID, limit, offset)
}

// ListByDateRange retrieves a user's transactions with a date in the
// inclusive range [from, to]
func (r *TransactionRepository) ListByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]*transaction.Transaction, error) {
	query := `
		SELECT id, user_id, account_id, amount, transaction_type, category, description, date, created_at
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, created_at
	`
	return r.queryTransactions(ctx, query, userID, from, to)
}

// ListRecent retrieves up to limit transactions, most recent first
func (r *TransactionRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]*transaction.Transaction, error) {
	query := `
		SELECT id, user_id, account_id, amount, transaction_type, category, description, date, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2
	`
	return r.queryTransactions(ctx, query, userID, limit)
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]*transaction.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*transaction.Transaction
	for rows.Next() {
		var t transaction.Transaction
		var accountID, description sql.NullString
		err := rows.Scan(
			&t.ID, &t.UserID, &accountID, &t.Amount, &t.Type,
			&t.Category, &description, &t.Date, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if accountID.Valid {
			t.AccountID = accountID.String
		}
		if description.Valid {
			t.Description = description.String
		}
		transactions = append(transactions, &t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}
