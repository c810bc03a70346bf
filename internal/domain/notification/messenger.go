package notification

import "context"

// Messenger delivers push notifications to registered devices.
// The production implementation wraps the Firebase Cloud Messaging client;
// tests substitute a stub.
type Messenger interface {
	Send(ctx context.Context, token string, title, body string, data map[string]string) error
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) error
}
