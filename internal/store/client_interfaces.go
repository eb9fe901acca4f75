package store

import (
	"context"

	"github.com/jasonyi-dev/ganttrack/models"
)

// SessionRepository persists the last authenticated session locally so the
// client can resume without prompting for credentials again.
type SessionRepository interface {
	SaveSession(ctx context.Context, username, token string) error
	LastSession(ctx context.Context) (models.Session, error)
	DeleteSessions(ctx context.Context) error
}

// CacheRepository is the local mirror of server-side projects and tasks.
// Save operations replace the cached snapshot wholesale; reads serve the
// offline view when the server is unreachable.
type CacheRepository interface {
	SaveProjects(ctx context.Context, username string, projects map[string]models.Project) error
	GetProjects(ctx context.Context, username string) (map[string]models.Project, error)
	SaveTasks(ctx context.Context, projectUUID string, tasks map[string]models.Task) error
	GetTasks(ctx context.Context, projectUUID string) (map[string]models.Task, error)
}
