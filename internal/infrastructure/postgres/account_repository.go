package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Ammar30113/finpulse/internal/domain/account"
)

// AccountRepository implements the account.Repository interface for PostgreSQL
type AccountRepository struct {
	db *DB
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, params account.CreateParams) (*account.Account, error) {
	query := `
		INSERT INTO accounts (id, user_id, name, account_type, balance, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, account_type, balance, currency, created_at, updated_at
	`

	var acc account.Account
	err := r.db.QueryRowContext(
		ctx, query,
		params.ID, params.UserID, params.Name, params.AccountType, params.Balance, params.Currency,
	).Scan(
		&acc.ID, &acc.UserID, &acc.Name, &acc.AccountType,
		&acc.Balance, &acc.Currency, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &acc, nil
}

// GetByID retrieves an account by its ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*account.Account, error) {
	query := `
		SELECT id, user_id, name, account_type, balance, currency, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var acc account.Account
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&acc.ID, &acc.UserID, &acc.Name, &acc.AccountType,
		&acc.Balance, &acc.Currency, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, account.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &acc, nil
}

// ListByUserID retrieves all accounts for a specific user
func (r *AccountRepository) ListByUserID(ctx context.Context, userID int64) ([]*account.Account, error) {
	query := `
		SELECT id, user_id, name, account_type, balance, currency, created_at, updated_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account
	for rows.Next() {
		var acc account.Account
		err := rows.Scan(
			&acc.ID, &acc.UserID, &acc.Name, &acc.AccountType,
			&acc.Balance, &acc.Currency, &acc.CreatedAt, &acc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}

// Helper functions

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
