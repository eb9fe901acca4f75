package service

import (
	"context"
	"fmt"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/store"
	"github.com/jasonyi-dev/ganttrack/internal/utils"
	"github.com/jasonyi-dev/ganttrack/internal/validators"
	"github.com/jasonyi-dev/ganttrack/models"
)

// taskService is the concrete implementation of [TaskService].
//
// Task updates are whole-document replacements with last-write-wins
// semantics: two collaborators editing the same task concurrently resolve
// to whichever write lands second. Clients converge by polling the project
// state, keyed off the updated_at timestamp bumped here on every change.
type taskService struct {
	taskRepository    store.TaskRepository
	projectRepository store.ProjectRepository

	taskValidator validators.Validator
	uuidGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewTaskService constructs a [TaskService] wired to the task and project
// repositories.
func NewTaskService(taskRepository store.TaskRepository, projectRepository store.ProjectRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository:    taskRepository,
		projectRepository: projectRepository,
		taskValidator:     validators.NewTaskValidator(),
		uuidGenerator:     utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// Create validates the draft, places it on the next free row, and persists
// it.
func (t *taskService) Create(ctx context.Context, requester, projectUUID string, draft models.TaskDraft) (models.Task, error) {
	log := logger.FromContext(ctx)

	if err := t.taskValidator.Validate(ctx, draft); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := t.requireAccess(ctx, requester, projectUUID); err != nil {
		return models.Task{}, err
	}

	totalTasks, err := t.taskRepository.CountByProject(ctx, projectUUID)
	if err != nil {
		log.Err(err).Str("project_uuid", projectUUID).Msg("task count ended with error")
		return models.Task{}, fmt.Errorf("task count ended with error: %w", err)
	}

	taskUUID := t.uuidGenerator.Generate()
	dependencies := draft.Dependencies
	if dependencies == nil {
		dependencies = []string{}
	}

	task := models.Task{
		ID:           taskUUID + ":" + projectUUID,
		TaskUUID:     taskUUID,
		ProjectUUID:  projectUUID,
		Type:         draft.Type,
		Row:          int(totalTasks),
		Name:         draft.Name,
		Description:  draft.Description,
		StartDate:    draft.StartDate,
		EndDate:      draft.EndDate,
		Completed:    draft.Completed,
		Colour:       draft.Colour,
		Dependencies: dependencies,
	}

	if err = t.taskRepository.Save(ctx, task); err != nil {
		log.Err(err).Str("task_uuid", taskUUID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	t.touchProject(ctx, projectUUID)

	return task, nil
}

// Update replaces the whole task document.
func (t *taskService) Update(ctx context.Context, requester, projectUUID string, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	if task.ProjectUUID != projectUUID {
		return models.Task{}, ErrInvalidDataProvided
	}
	if err := t.taskValidator.Validate(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := t.requireAccess(ctx, requester, projectUUID); err != nil {
		return models.Task{}, err
	}

	if task.Dependencies == nil {
		task.Dependencies = []string{}
	}

	if err := t.taskRepository.Save(ctx, task); err != nil {
		log.Err(err).Str("task_uuid", task.TaskUUID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	t.touchProject(ctx, projectUUID)

	return task, nil
}

// Delete removes the task, re-packs the remaining rows, and prunes the
// deleted uuid from every dependencies array in the project.
func (t *taskService) Delete(ctx context.Context, requester, projectUUID, taskUUID string) error {
	log := logger.FromContext(ctx)

	if _, err := t.requireAccess(ctx, requester, projectUUID); err != nil {
		return err
	}

	task, err := t.taskRepository.FindByUUID(ctx, projectUUID, taskUUID)
	if err != nil {
		log.Err(err).Str("task_uuid", taskUUID).Msg("task lookup ended with error")
		return fmt.Errorf("task lookup ended with error: %w", err)
	}

	if err = t.taskRepository.Delete(ctx, projectUUID, taskUUID); err != nil {
		log.Err(err).Str("task_uuid", taskUUID).Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	if err = t.taskRepository.ShiftRowsAfter(ctx, projectUUID, task.Row); err != nil {
		log.Err(err).Str("project_uuid", projectUUID).Msg("row shift ended with error")
		return fmt.Errorf("row shift ended with error: %w", err)
	}

	if err = t.taskRepository.PruneDependency(ctx, projectUUID, taskUUID); err != nil {
		log.Err(err).Str("project_uuid", projectUUID).Msg("dependency prune ended with error")
		return fmt.Errorf("dependency prune ended with error: %w", err)
	}

	t.touchProject(ctx, projectUUID)

	return nil
}

// ListForProject returns every task of the project, keyed by task uuid.
func (t *taskService) ListForProject(ctx context.Context, requester, projectUUID string) (map[string]models.Task, error) {
	log := logger.FromContext(ctx)

	if _, err := t.requireAccess(ctx, requester, projectUUID); err != nil {
		return nil, err
	}

	tasks, err := t.taskRepository.FindAllByProject(ctx, projectUUID)
	if err != nil {
		log.Err(err).Str("project_uuid", projectUUID).Msg("task listing ended with error")
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	byUUID := make(map[string]models.Task, len(tasks))
	for _, task := range tasks {
		byUUID[task.TaskUUID] = task
	}

	t.touchProject(ctx, projectUUID)

	return byUUID, nil
}

// requireAccess fetches the project and verifies the requester is its
// admin or an invitee.
func (t *taskService) requireAccess(ctx context.Context, requester, projectUUID string) (models.Project, error) {
	if projectUUID == "" {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyProjectUUID)
	}

	project, err := t.projectRepository.FindByUUID(ctx, projectUUID)
	if err != nil {
		return models.Project{}, fmt.Errorf("project lookup failed: %w", err)
	}

	if !project.HasAccess(requester) {
		return models.Project{}, ErrNotPermitted
	}

	return project, nil
}

// touchProject bumps updated_at; a failed touch is logged but never fails
// the operation that caused it.
func (t *taskService) touchProject(ctx context.Context, projectUUID string) {
	if err := t.projectRepository.Touch(ctx, projectUUID, unixNow()); err != nil {
		logger.FromContext(ctx).Err(err).Str("project_uuid", projectUUID).Msg("touching project ended with error")
	}
}
