package notification

import "context"

// Repository defines the interface for device token data access.
// Defined in the domain layer, implemented in the infrastructure layer.
type Repository interface {
	// UpsertDeviceToken registers a token, reassigning it if it already
	// belongs to another user.
	UpsertDeviceToken(ctx context.Context, params CreateDeviceTokenParams) (*DeviceToken, error)

	// GetActiveTokensByUserID retrieves all active tokens for a user.
	GetActiveTokensByUserID(ctx context.Context, userID int64) ([]*DeviceToken, error)

	// DeactivateToken marks a token inactive, e.g. after FCM rejects it.
	DeactivateToken(ctx context.Context, token string) error
}
