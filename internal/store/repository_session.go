// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/session"
	"github.com/medtrack/medtrack/models"
)

// sessionStore is the SQL-backed implementation of [session.Store].
// Unlike the in-memory store, sessions persisted here survive restarts of
// the server process.
type sessionStore struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionStore constructs a persistent [session.Store] backed by the
// sessions table.
func NewSessionStore(db *DB, logger *logger.Logger) session.Store {
	logger.Debug().Msg("creating session store")
	return &sessionStore{
		db:     db,
		logger: logger,
	}
}

func (s *sessionStore) Create(ctx context.Context, userID int64, username string) (string, error) {
	log := logger.FromContext(ctx)

	token := uuid.NewString()

	query, args, err := s.db.builder.
		Insert(models.Session{}.TableName()).
		Columns("token", "user_id", "username").
		Values(token, userID, username).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*sessionStore.Create").
			Int64("user_id", userID).
			Msg("failed to insert session")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return token, nil
}

func (s *sessionStore) Get(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Select("token", "user_id", "username", "created_at").
		From(models.Session{}.TableName()).
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Session
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.Token, &found.UserID, &found.Username, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, session.ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionStore.Get").Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

func (s *sessionStore) Delete(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// deleting an unknown token is not an error: logout always succeeds
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionStore.Delete").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
