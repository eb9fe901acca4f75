package service

import (
	"context"
	"fmt"

	"github.com/jasonyi-dev/ganttrack/internal/adapter"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/store"
	"github.com/jasonyi-dev/ganttrack/models"
)

type clientBoardService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	auth       ClientAuthService
	logger     *logger.Logger
}

func NewClientBoardService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, auth ClientAuthService, logger *logger.Logger) ClientBoardService {
	return &clientBoardService{localStore: localStore, adapter: serverAdapter, auth: auth, logger: logger}
}

// Projects fetches the user's projects from the server and refreshes the
// local cache. When the server is unreachable the cached snapshot is served
// instead and offline is reported as true.
func (b *clientBoardService) Projects(ctx context.Context) (map[string]models.Project, bool, error) {
	projects, err := b.adapter.FetchProjects(ctx)
	if err != nil {
		if !isTransportError(err) {
			return nil, false, fmt.Errorf("fetch projects: %w", err)
		}

		cached, cacheErr := b.localStore.CacheRepository.GetProjects(ctx, b.auth.Username())
		if cacheErr != nil {
			return nil, false, fmt.Errorf("server unreachable and cache read failed: %w", cacheErr)
		}
		return cached, true, nil
	}

	b.cacheProjects(ctx, projects)
	b.persistSession(ctx)

	return projects, false, nil
}

func (b *clientBoardService) CreateProject(ctx context.Context, name string) (models.Project, error) {
	project, err := b.adapter.NewProject(ctx, name)
	if err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}
	b.persistSession(ctx)
	return project, nil
}

func (b *clientBoardService) RenameProject(ctx context.Context, uuid, name string) (models.Project, error) {
	project, err := b.adapter.RenameProject(ctx, uuid, name)
	if err != nil {
		return models.Project{}, fmt.Errorf("rename project: %w", err)
	}
	b.persistSession(ctx)
	return project, nil
}

func (b *clientBoardService) DeleteProject(ctx context.Context, uuid string) error {
	if err := b.adapter.DeleteProject(ctx, uuid); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	b.persistSession(ctx)
	return nil
}

func (b *clientBoardService) Invite(ctx context.Context, uuid, invitee string) (models.Project, error) {
	project, err := b.adapter.Invite(ctx, uuid, invitee)
	if err != nil {
		return models.Project{}, fmt.Errorf("invite user: %w", err)
	}
	b.persistSession(ctx)
	return project, nil
}

// Tasks fetches a project's tasks from the server and refreshes the local
// cache, falling back to the cached snapshot when the server is unreachable.
func (b *clientBoardService) Tasks(ctx context.Context, projectUUID string) (map[string]models.Task, bool, error) {
	tasks, err := b.adapter.FetchTasks(ctx, projectUUID)
	if err != nil {
		if !isTransportError(err) {
			return nil, false, fmt.Errorf("fetch tasks: %w", err)
		}

		cached, cacheErr := b.localStore.CacheRepository.GetTasks(ctx, projectUUID)
		if cacheErr != nil {
			return nil, false, fmt.Errorf("server unreachable and cache read failed: %w", cacheErr)
		}
		return cached, true, nil
	}

	if cacheErr := b.localStore.CacheRepository.SaveTasks(ctx, projectUUID, tasks); cacheErr != nil {
		b.logger.Err(cacheErr).Str("func", "clientBoardService.Tasks").Msg("failed to cache tasks")
	}
	b.persistSession(ctx)

	return tasks, false, nil
}

func (b *clientBoardService) CreateTask(ctx context.Context, projectUUID string, draft models.TaskDraft) (models.Task, error) {
	task, err := b.adapter.NewTask(ctx, projectUUID, draft)
	if err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}
	b.persistSession(ctx)
	return task, nil
}

func (b *clientBoardService) UpdateTask(ctx context.Context, projectUUID string, task models.Task) (models.Task, error) {
	updated, err := b.adapter.UpdateTask(ctx, projectUUID, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task: %w", err)
	}
	b.persistSession(ctx)
	return updated, nil
}

func (b *clientBoardService) DeleteTask(ctx context.Context, projectUUID, taskUUID string) error {
	if err := b.adapter.DeleteTask(ctx, projectUUID, taskUUID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	b.persistSession(ctx)
	return nil
}

// cacheProjects refreshes the cached project snapshot. Cache failures are
// logged, not surfaced: the server data was already obtained.
func (b *clientBoardService) cacheProjects(ctx context.Context, projects map[string]models.Project) {
	if err := b.localStore.CacheRepository.SaveProjects(ctx, b.auth.Username(), projects); err != nil {
		b.logger.Err(err).Str("func", "clientBoardService.cacheProjects").Msg("failed to cache projects")
	}
}

// persistSession saves the adapter's current token after a successful call.
// The server renews tokens close to expiry, so the persisted session must
// track the latest echoed value.
func (b *clientBoardService) persistSession(ctx context.Context) {
	username := b.auth.Username()
	if username == "" {
		return
	}
	if err := b.localStore.SessionRepository.SaveSession(ctx, username, b.adapter.Token()); err != nil {
		b.logger.Err(err).Str("func", "clientBoardService.persistSession").Msg("failed to persist session")
	}
}
