package postgres

import (
	"context"
	"fmt"

	"github.com/Ammar30113/finpulse/internal/domain/installment"
)

// InstallmentRepository implements the installment.Repository interface for PostgreSQL
type InstallmentRepository struct {
	db *DB
}

// NewInstallmentRepository creates a new PostgreSQL installment plan repository
func NewInstallmentRepository(db *DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

// Create creates a new installment plan
func (r *InstallmentRepository) Create(ctx context.Context, params installment.CreateParams) (*installment.Plan, error) {
	query := `
		INSERT INTO installment_plans (id, user_id, description, monthly_payment, remaining_payments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, description, monthly_payment, remaining_payments, created_at
	`

	var p installment.Plan
	err := r.db.QueryRowContext(
		ctx, query,
		params.ID, params.UserID, params.Description, params.MonthlyPayment, params.RemainingPayments,
	).Scan(
		&p.ID, &p.UserID, &p.Description, &p.MonthlyPayment, &p.RemainingPayments, &p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create installment plan: %w", err)
	}

	return &p, nil
}

// ListByUserID retrieves all installment plans for a specific user
func (r *InstallmentRepository) ListByUserID(ctx context.Context, userID int64) ([]*installment.Plan, error) {
	query := `
		SELECT id, user_id, description, monthly_payment, remaining_payments, created_at
		FROM installment_plans
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installment plans: %w", err)
	}
	defer rows.Close()

	var plans []*installment.Plan
	for rows.Next() {
		var p installment.Plan
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Description, &p.MonthlyPayment, &p.RemainingPayments, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan installment plan: %w", err)
		}
		plans = append(plans, &p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating installment plans: %w", err)
	}

	return plans, nil
}
