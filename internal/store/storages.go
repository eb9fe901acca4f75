package store

import (
	"context"
	"fmt"

	"github.com/jasonyi-dev/ganttrack/internal/config"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
)

// Storages groups all server-side repositories into a single value passed
// to the service layer.
type Storages struct {
	UserRepository    UserRepository
	ProjectRepository ProjectRepository
	TaskRepository    TaskRepository

	db *DB
}

// NewStorages initialises the server storage layer:
//  1. Connects to the configured MongoDB cluster.
//  2. Ensures the collection indexes exist.
//  3. Wires the user, project, and task repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		return nil, fmt.Errorf("mongo connection error: %w", err)
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensuring indexes failed: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ProjectRepository: NewProjectRepository(db, logger),
		TaskRepository:    NewTaskRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}
