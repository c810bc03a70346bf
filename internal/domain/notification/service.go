package notification

import (
	"context"
	"log"
)

// Service contains the business logic for notification operations
type Service struct {
	repo      Repository
	messenger Messenger
}

// NewService creates a new notification service. messenger may be nil when
// FCM is not configured; sends then become no-ops.
func NewService(repo Repository, messenger Messenger) *Service {
	return &Service{repo: repo, messenger: messenger}
}

// RegisterDevice registers a device token for the authenticated user.
// If the token already belongs to another user, it is reassigned.
func (s *Service) RegisterDevice(ctx context.Context, params CreateDeviceTokenParams) (*DeviceToken, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpsertDeviceToken(ctx, params)
}

// UnregisterDevice deactivates a device token
func (s *Service) UnregisterDevice(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}
	return s.repo.DeactivateToken(ctx, token)
}

// SendToUser sends a push notification to all of a user's active devices.
// Delivery is best-effort: a user with no registered devices is not an
// error, and FCM failures are logged rather than propagated.
func (s *Service) SendToUser(ctx context.Context, userID int64, title, body string) error {
	tokens, err := s.repo.GetActiveTokensByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		log.Printf("No active device tokens for user %d", userID)
		return nil
	}
	if s.messenger == nil {
		return nil
	}

	tokenStrings := make([]string, len(tokens))
	for i, t := range tokens {
		tokenStrings[i] = t.Token
	}

	if err := s.messenger.SendMulticast(ctx, tokenStrings, title, body, nil); err != nil {
		log.Printf("Error sending notification to user %d: %v", userID, err)
	}
	return nil
}
