package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/models"
)

type cacheRepository struct {
	*ClientDB
	logger *logger.Logger
}

func NewCacheRepository(db *ClientDB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		ClientDB: db,
		logger:   logger,
	}
}

// SaveProjects replaces the cached project snapshot for username inside a
// single transaction, so a crash mid-write never leaves a half-updated view.
func (c *cacheRepository) SaveProjects(ctx context.Context, username string, projects map[string]models.Project) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "cacheRepository.SaveProjects").Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteProjectsQuery(username)
	if err != nil {
		return fmt.Errorf("failed to build delete projects query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.SaveProjects").
			Str("username", username).
			Msg("failed to clear cached projects")
		return fmt.Errorf("failed to clear cached projects: %w", err)
	}

	for _, project := range projects {
		inviteesJSON, marshalErr := json.Marshal(project.Invitees)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode invitees (uuid=%s): %w", project.UUID, marshalErr)
		}

		query, args, err = buildInsertProjectQuery(username, project.UUID, project.Name, project.Admin, project.CreatedAt, project.UpdatedAt, string(inviteesJSON))
		if err != nil {
			return fmt.Errorf("failed to build insert project query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "cacheRepository.SaveProjects").
				Str("uuid", project.UUID).
				Msg("failed to cache project")
			return fmt.Errorf("failed to cache project (uuid=%s): %w", project.UUID, err)
		}
	}

	return tx.Commit()
}

func (c *cacheRepository) GetProjects(ctx context.Context, username string) (map[string]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProjectsQuery(username)
	if err != nil {
		return nil, fmt.Errorf("failed to build select projects query: %w", err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.GetProjects").
			Str("username", username).
			Msg("failed to query cached projects")
		return nil, fmt.Errorf("failed to query cached projects: %w", err)
	}
	defer rows.Close()

	projects := make(map[string]models.Project)

	for rows.Next() {
		var project models.Project
		var inviteesJSON string

		scanErr := rows.Scan(
			&project.UUID,
			&project.Name,
			&project.Admin,
			&project.CreatedAt,
			&project.UpdatedAt,
			&inviteesJSON,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "cacheRepository.GetProjects").Msg("failed to scan project row")
			return nil, fmt.Errorf("failed to scan project row: %w", scanErr)
		}

		if err = json.Unmarshal([]byte(inviteesJSON), &project.Invitees); err != nil {
			return nil, fmt.Errorf("failed to decode invitees (uuid=%s): %w", project.UUID, err)
		}

		projects[project.UUID] = project
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "cacheRepository.GetProjects").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating project rows: %w", rowsErr)
	}

	return projects, nil
}

// SaveTasks replaces the cached task snapshot of a project inside a single
// transaction.
func (c *cacheRepository) SaveTasks(ctx context.Context, projectUUID string, tasks map[string]models.Task) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "cacheRepository.SaveTasks").Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteTasksQuery(projectUUID)
	if err != nil {
		return fmt.Errorf("failed to build delete tasks query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.SaveTasks").
			Str("project_uuid", projectUUID).
			Msg("failed to clear cached tasks")
		return fmt.Errorf("failed to clear cached tasks: %w", err)
	}

	for _, task := range tasks {
		dependenciesJSON, marshalErr := json.Marshal(task.Dependencies)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode dependencies (task_uuid=%s): %w", task.TaskUUID, marshalErr)
		}

		query, args, err = buildInsertTaskQuery(
			task.ID,
			task.TaskUUID,
			projectUUID,
			task.Type,
			task.Row,
			task.Name,
			task.Description,
			task.StartDate,
			task.EndDate,
			task.Completed,
			task.Colour,
			string(dependenciesJSON),
		)
		if err != nil {
			return fmt.Errorf("failed to build insert task query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "cacheRepository.SaveTasks").
				Str("task_uuid", task.TaskUUID).
				Msg("failed to cache task")
			return fmt.Errorf("failed to cache task (task_uuid=%s): %w", task.TaskUUID, err)
		}
	}

	return tx.Commit()
}

func (c *cacheRepository) GetTasks(ctx context.Context, projectUUID string) (map[string]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTasksQuery(projectUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to build select tasks query: %w", err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.GetTasks").
			Str("project_uuid", projectUUID).
			Msg("failed to query cached tasks")
		return nil, fmt.Errorf("failed to query cached tasks: %w", err)
	}
	defer rows.Close()

	tasks := make(map[string]models.Task)

	for rows.Next() {
		task := models.Task{ProjectUUID: projectUUID}
		var dependenciesJSON string

		scanErr := rows.Scan(
			&task.ID,
			&task.TaskUUID,
			&task.Type,
			&task.Row,
			&task.Name,
			&task.Description,
			&task.StartDate,
			&task.EndDate,
			&task.Completed,
			&task.Colour,
			&dependenciesJSON,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "cacheRepository.GetTasks").Msg("failed to scan task row")
			return nil, fmt.Errorf("failed to scan task row: %w", scanErr)
		}

		if err = json.Unmarshal([]byte(dependenciesJSON), &task.Dependencies); err != nil {
			return nil, fmt.Errorf("failed to decode dependencies (task_uuid=%s): %w", task.TaskUUID, err)
		}

		tasks[task.TaskUUID] = task
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "cacheRepository.GetTasks").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating task rows: %w", rowsErr)
	}

	return tasks, nil
}
