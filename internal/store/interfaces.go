package store

import (
	"context"

	"github.com/jasonyi-dev/ganttrack/models"
)

// UserRepository persists account documents in users/accounts.
type UserRepository interface {
	// CreateUser inserts a new account. Returns ErrUserAlreadyExists when
	// the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername fetches the account document for username.
	// Returns ErrNoUserWasFound when it does not exist.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ProjectRepository persists project documents in projects/project_data.
type ProjectRepository interface {
	// Save upserts the whole project document keyed by its uuid.
	Save(ctx context.Context, project models.Project) error

	// Delete removes the project document and every task that belongs to it.
	Delete(ctx context.Context, uuid string) error

	// FindByUUID fetches a project by its uuid.
	FindByUUID(ctx context.Context, uuid string) (models.Project, error)

	// FindForUser lists every project the user administers or is invited to.
	FindForUser(ctx context.Context, username string) ([]models.Project, error)

	// AddInvitee appends username to the project's invitees set.
	AddInvitee(ctx context.Context, uuid, username string) error

	// Touch sets the project's updated_at to the given unix timestamp.
	Touch(ctx context.Context, uuid string, at float64) error
}

// TaskRepository persists task documents in projects/tasks.
type TaskRepository interface {
	// Save upserts the whole task document keyed by its composite id.
	Save(ctx context.Context, task models.Task) error

	// Delete removes a single task from the project.
	Delete(ctx context.Context, projectUUID, taskUUID string) error

	// FindByUUID fetches a task by uuid within a project.
	// Returns ErrTaskNotFound when it does not exist.
	FindByUUID(ctx context.Context, projectUUID, taskUUID string) (models.Task, error)

	// FindAllByProject lists all tasks of a project.
	FindAllByProject(ctx context.Context, projectUUID string) ([]models.Task, error)

	// CountByProject returns the number of tasks in the project.
	CountByProject(ctx context.Context, projectUUID string) (int64, error)

	// ShiftRowsAfter decrements the row of every task whose row is greater
	// than the given one, keeping rows dense after a deletion.
	ShiftRowsAfter(ctx context.Context, projectUUID string, row int) error

	// PruneDependency removes taskUUID from the dependencies array of every
	// task in the project.
	PruneDependency(ctx context.Context, projectUUID, taskUUID string) error
}
