package store

import (
	"context"
	"fmt"

	"github.com/jasonyi-dev/ganttrack/internal/config"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
)

// ClientStorages groups the client-side repositories backed by the local
// SQLite cache database.
type ClientStorages struct {
	// SessionRepository persists the last login session for resume.
	SessionRepository SessionRepository

	// CacheRepository mirrors the last fetched projects and tasks for
	// offline viewing.
	CacheRepository CacheRepository

	db *ClientDB
}

// NewClientStorages initialises the client storage layer. It opens (creating
// if necessary) the SQLite file from cfg.Cache.Path, applies pending schema
// migrations, and wires the repositories.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, logger),
		CacheRepository:   NewCacheRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.DB.Close()
}
