package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (SessionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := NewSessionRepository(&DB{DB: db, logger: l}, l)
	return repo, mock, db
}

func TestSessionRepository_Get_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM session WHERE key = ?")).
		WithArgs("sb_token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc"))

	got, err := repo.Get(context.Background(), "sb_token")

	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Get_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs("sb_token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	got, err := repo.Get(context.Background(), "sb_token")

	assert.ErrorIs(t, err, ErrSessionValueNotFound)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Get_QueryError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs("sb_token").
		WillReturnError(assert.AnError)

	_, err := repo.Get(context.Background(), "sb_token")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSessionRepository_Set_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO session").
		WithArgs("sb_token", "abc").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Set(context.Background(), "sb_token", "abc")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Set_ExecError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO session").
		WithArgs("sb_token", "abc").
		WillReturnError(assert.AnError)

	err := repo.Set(context.Background(), "sb_token", "abc")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestBuildSessionQueries(t *testing.T) {
	query, args, err := buildGetSessionValueQuery("sb_token")
	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM session WHERE key = ?", query)
	assert.Equal(t, []any{"sb_token"}, args)

	query, args, err = buildUpsertSessionValueQuery("sb_token", "abc")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO session (key,value,updated_at) VALUES (?,?,CURRENT_TIMESTAMP) "+
		"ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at", query)
	assert.Equal(t, []any{"sb_token", "abc"}, args)
}
