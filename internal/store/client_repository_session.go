package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/mindcraft-client/internal/logger"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSessionValueQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Get").Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionValueNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Get").
			Str("key", key).
			Msg("failed to query session value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sessionRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSessionValueQuery(key, value)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Set").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Set").
			Str("key", key).
			Msg("failed to upsert session value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
