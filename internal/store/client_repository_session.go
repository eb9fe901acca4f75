package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/models"
)

type sessionRepository struct {
	*ClientDB
	logger *logger.Logger
}

func NewSessionRepository(db *ClientDB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		ClientDB: db,
		logger:   logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, username, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSessionQuery(username, token)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveSession").Msg("failed to build upsert session query")
		return fmt.Errorf("failed to build upsert session query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("username", username).
			Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *sessionRepository) LastSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLastSessionQuery()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.LastSession").Msg("failed to build select session query")
		return models.Session{}, fmt.Errorf("failed to build select session query: %w", err)
	}

	var session models.Session
	row := s.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&session.Username, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		log.Err(err).Str("func", "sessionRepository.LastSession").Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to scan session row: %w", err)
	}

	return session, nil
}

func (s *sessionRepository) DeleteSessions(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionsQuery()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSessions").Msg("failed to build delete sessions query")
		return fmt.Errorf("failed to build delete sessions query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSessions").Msg("failed to delete sessions")
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	return nil
}
