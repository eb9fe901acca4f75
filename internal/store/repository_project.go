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

// projectRepository is the MongoDB-backed implementation of
// [ProjectRepository] working against projects/project_data.
type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database handle and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

// Save upserts the whole project document keyed by uuid. Renames and
// invitee changes go through full-document replacement, the same
// last-write-wins discipline the task collection uses.
func (r *projectRepository) Save(ctx context.Context, project models.Project) error {
	log := logger.FromContext(ctx)

	_, err := r.db.projectData().ReplaceOne(
		ctx,
		bson.M{"_id": project.UUID},
		project,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.Save").Msg("error: upsert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Delete removes the project document and cascades to its tasks.
func (r *projectRepository) Delete(ctx context.Context, uuid string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.projectData().DeleteOne(ctx, bson.M{"_id": uuid}); err != nil {
		log.Err(err).Str("func", "*projectRepository.Delete").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if _, err := r.db.projectTasks().DeleteMany(ctx, bson.M{"project_uuid": uuid}); err != nil {
		log.Err(err).Str("func", "*projectRepository.Delete").Msg("error: cascade delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindByUUID fetches a single project document.
func (r *projectRepository) FindByUUID(ctx context.Context, uuid string) (models.Project, error) {
	log := logger.FromContext(ctx)

	var project models.Project
	err := r.db.projectData().FindOne(ctx, bson.M{"_id": uuid}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Project{}, ErrProjectNotFound
		}

		log.Err(err).Str("func", "*projectRepository.FindByUUID").Msg("error: lookup failed")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return project, nil
}

// FindForUser lists projects the user administers or was invited to.
func (r *projectRepository) FindForUser(ctx context.Context, username string) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	filter := bson.M{"$or": bson.A{
		bson.M{"admin": username},
		bson.M{"invitees": username},
	}}

	cursor, err := r.db.projectData().Find(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.FindForUser").Msg("error: find failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err = cursor.All(ctx, &projects); err != nil {
		log.Err(err).Str("func", "*projectRepository.FindForUser").Msg("error: cursor decode failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return projects, nil
}

// AddInvitee appends username to the invitees array unless already present.
func (r *projectRepository) AddInvitee(ctx context.Context, uuid, username string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.projectData().UpdateOne(
		ctx,
		bson.M{"_id": uuid},
		bson.M{"$addToSet": bson.M{"invitees": username}},
	)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.AddInvitee").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// Touch bumps the project's updated_at timestamp.
func (r *projectRepository) Touch(ctx context.Context, uuid string, at float64) error {
	log := logger.FromContext(ctx)

	_, err := r.db.projectData().UpdateOne(
		ctx,
		bson.M{"_id": uuid},
		bson.M{"$set": bson.M{"updated_at": at}},
	)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.Touch").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
