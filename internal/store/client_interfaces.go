package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository is the low-level key/value store for client session
// state. Values are plain text.
type SessionRepository interface {
	// Get returns the value stored under key, or [ErrSessionValueNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
}
