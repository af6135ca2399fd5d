package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/mindcraft-client/internal/mock"
	"github.com/MKhiriev/mindcraft-client/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoadSessionStore_ReadsPersistedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, SessionTokenKey).Return("abc", nil)

	s, err := LoadSessionStore(ctx, repo)

	require.NoError(t, err)
	assert.Equal(t, "abc", s.Token())
}

func TestLoadSessionStore_MissingTokenIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, SessionTokenKey).Return("", store.ErrSessionValueNotFound)

	s, err := LoadSessionStore(ctx, repo)

	require.NoError(t, err)
	assert.Empty(t, s.Token())
}

func TestLoadSessionStore_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, SessionTokenKey).Return("", assert.AnError)

	s, err := LoadSessionStore(ctx, repo)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, s)
}

func TestSessionStore_SetToken_Persists(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Get(ctx, SessionTokenKey).Return("", store.ErrSessionValueNotFound),
		repo.EXPECT().Set(ctx, SessionTokenKey, "abc").Return(nil),
	)

	s, err := LoadSessionStore(ctx, repo)
	require.NoError(t, err)

	require.NoError(t, s.SetToken(ctx, "abc"))
	assert.Equal(t, "abc", s.Token())
}

func TestSessionStore_SetToken_EmptyIsNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, SessionTokenKey).Return("old", nil)
	// no Set expectation: an empty credential only clears memory

	s, err := LoadSessionStore(ctx, repo)
	require.NoError(t, err)

	require.NoError(t, s.SetToken(ctx, ""))
	assert.Empty(t, s.Token())
}

func TestSessionStore_SetToken_PersistFailureKeepsMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, SessionTokenKey).Return("", store.ErrSessionValueNotFound)
	repo.EXPECT().Set(ctx, SessionTokenKey, "abc").Return(assert.AnError)

	s, err := LoadSessionStore(ctx, repo)
	require.NoError(t, err)

	err = s.SetToken(ctx, "abc")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "abc", s.Token())
}

// memorySessionRepository is a map-backed SessionRepository used to check
// that a token written by one store is seen by a freshly loaded one.
type memorySessionRepository struct {
	values map[string]string
}

func (m *memorySessionRepository) Get(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", store.ErrSessionValueNotFound
	}
	return v, nil
}

func (m *memorySessionRepository) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func TestSessionStore_FreshLoadSeesPersistedToken(t *testing.T) {
	ctx := context.Background()
	repo := &memorySessionRepository{values: map[string]string{}}

	first, err := LoadSessionStore(ctx, repo)
	require.NoError(t, err)
	require.NoError(t, first.SetToken(ctx, "abc"))

	second, err := LoadSessionStore(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, "abc", second.Token())
}
