package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Ammar30113/finpulse/internal/domain/notification"
)

// DeviceTokenRepository implements the notification.Repository interface for PostgreSQL
type DeviceTokenRepository struct {
	db *DB
}

// NewDeviceTokenRepository creates a new PostgreSQL device token repository
func NewDeviceTokenRepository(db *DB) *DeviceTokenRepository {
	return &DeviceTokenRepository{db: db}
}

// UpsertDeviceToken registers a token, reassigning it to the given user and
// reactivating it if it already exists.
func (r *DeviceTokenRepository) UpsertDeviceToken(ctx context.Context, params notification.CreateDeviceTokenParams) (*notification.DeviceToken, error) {
	query := `
		INSERT INTO device_tokens (id, user_id, token, device_type, is_active, last_used)
		VALUES ($1, $2, $3, $4, TRUE, CURRENT_TIMESTAMP)
		ON CONFLICT (token)
		DO UPDATE SET
			user_id = EXCLUDED.user_id,
			device_type = EXCLUDED.device_type,
			is_active = TRUE,
			last_used = CURRENT_TIMESTAMP
		RETURNING id, user_id, token, device_type, is_active, created_at, last_used
	`

	var t notification.DeviceToken
	err := r.db.QueryRowContext(
		ctx, query,
		uuid.NewString(), params.UserID, params.Token, params.DeviceType,
	).Scan(
		&t.ID, &t.UserID, &t.Token, &t.DeviceType, &t.IsActive, &t.CreatedAt, &t.LastUsed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert device token: %w", err)
	}

	return &t, nil
}

// GetActiveTokensByUserID retrieves all active tokens for a user
func (r *DeviceTokenRepository) GetActiveTokensByUserID(ctx context.Context, userID int64) ([]*notification.DeviceToken, error) {
	query := `
		SELECT id, user_id, token, device_type, is_active, created_at, last_used
		FROM device_tokens
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY last_used DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []*notification.DeviceToken
	for rows.Next() {
		var t notification.DeviceToken
		err := rows.Scan(&t.ID, &t.UserID, &t.Token, &t.DeviceType, &t.IsActive, &t.CreatedAt, &t.LastUsed)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		tokens = append(tokens, &t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating device tokens: %w", err)
	}

	return tokens, nil
}

// DeactivateToken marks a token inactive
func (r *DeviceTokenRepository) DeactivateToken(ctx context.Context, token string) error {
	query := `UPDATE device_tokens SET is_active = FALSE WHERE token = $1`

	result, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("failed to deactivate device token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return notification.ErrDeviceTokenNotFound
	}

	return nil
}
