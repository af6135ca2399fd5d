package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/internal/store"
)

// SessionTokenKey is the storage key of the persisted bearer credential.
const SessionTokenKey = "sb_token"

// SessionStore is the process-wide holder of the bearer credential. It is
// created once at startup by [LoadSessionStore] and injected into the server
// adapter as its token source.
type SessionStore struct {
	repo store.SessionRepository

	mu    sync.RWMutex
	token string
}

// LoadSessionStore reads the persisted credential. A missing row yields an
// empty credential, which is a valid state.
func LoadSessionStore(ctx context.Context, repo store.SessionRepository) (*SessionStore, error) {
	s := &SessionStore{repo: repo}

	token, err := repo.Get(ctx, SessionTokenKey)
	if err != nil && !errors.Is(err, store.ErrSessionValueNotFound) {
		return nil, fmt.Errorf("error loading session token: %w", err)
	}

	s.token = token
	return s, nil
}

// Token implements [ClientSessionService].
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken implements [ClientSessionService]. Memory is updated first, so a
// persistence failure still leaves the new credential in effect for this
// process.
func (s *SessionStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if token == "" {
		return nil
	}

	if err := s.repo.Set(ctx, SessionTokenKey, token); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "SessionStore.SetToken").
			Msg("failed to persist session token")
		return fmt.Errorf("error persisting session token: %w", err)
	}

	return nil
}
