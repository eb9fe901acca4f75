package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/models"
)

// taskRepository is the MongoDB-backed implementation of [TaskRepository]
// working against projects/tasks. Task documents are replaced whole on
// update; the only partial updates are the row shift and dependency prune
// that follow a deletion.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database handle and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// Save upserts the whole task document keyed by its composite id.
func (r *taskRepository) Save(ctx context.Context, task models.Task) error {
	log := logger.FromContext(ctx)

	_, err := r.db.projectTasks().ReplaceOne(
		ctx,
		bson.M{"_id": task.ID},
		task,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.Save").Msg("error: upsert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Delete removes a single task document.
func (r *taskRepository) Delete(ctx context.Context, projectUUID, taskUUID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.projectTasks().DeleteOne(ctx, bson.M{
		"project_uuid": projectUUID,
		"task_uuid":    taskUUID,
	})
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.Delete").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// FindByUUID fetches a task by uuid within a project.
func (r *taskRepository) FindByUUID(ctx context.Context, projectUUID, taskUUID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	var task models.Task
	err := r.db.projectTasks().FindOne(ctx, bson.M{
		"project_uuid": projectUUID,
		"task_uuid":    taskUUID,
	}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.FindByUUID").Msg("error: lookup failed")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// FindAllByProject lists every task of the project.
func (r *taskRepository) FindAllByProject(ctx context.Context, projectUUID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.db.projectTasks().Find(ctx, bson.M{"project_uuid": projectUUID})
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindAllByProject").Msg("error: find failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		log.Err(err).Str("func", "*taskRepository.FindAllByProject").Msg("error: cursor decode failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tasks, nil
}

// CountByProject returns the task count for the project. New tasks take
// their row from this value.
func (r *taskRepository) CountByProject(ctx context.Context, projectUUID string) (int64, error) {
	log := logger.FromContext(ctx)

	count, err := r.db.projectTasks().CountDocuments(ctx, bson.M{"project_uuid": projectUUID})
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CountByProject").Msg("error: count failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

// ShiftRowsAfter closes the row gap left by a deleted task: every task in
// the project with a row greater than the given one moves up by one.
func (r *taskRepository) ShiftRowsAfter(ctx context.Context, projectUUID string, row int) error {
	log := logger.FromContext(ctx)

	_, err := r.db.projectTasks().UpdateMany(
		ctx,
		bson.M{"project_uuid": projectUUID, "row": bson.M{"$gt": row}},
		bson.M{"$inc": bson.M{"row": -1}},
	)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ShiftRowsAfter").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// PruneDependency drops taskUUID from the dependencies array of every task
// in the project, so deleted tasks never dangle as dependencies.
func (r *taskRepository) PruneDependency(ctx context.Context, projectUUID, taskUUID string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.projectTasks().UpdateMany(
		ctx,
		bson.M{"project_uuid": projectUUID},
		bson.M{"$pull": bson.M{"dependencies": taskUUID}},
	)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.PruneDependency").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
