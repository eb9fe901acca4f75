package service

import (
	"context"

	"github.com/jasonyi-dev/ganttrack/models"
)

// AuthService handles account registration, credential checks, and the JWT
// lifecycle. Tokens are signed with per-user secret keys.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns the decoded
	// token. When the token is inside the renewal window, the returned
	// token is a freshly issued replacement and callers must hand its
	// SignedString back to the client.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProjectService implements project lifecycle operations. Rename, Delete,
// and Invite are admin-only; reads are open to admin and invitees.
type ProjectService interface {
	Create(ctx context.Context, admin, name string) (models.Project, error)
	Rename(ctx context.Context, requester, uuid, name string) (models.Project, error)
	Delete(ctx context.Context, requester, uuid string) error
	ListForUser(ctx context.Context, username string) (map[string]models.Project, error)
	Invite(ctx context.Context, requester, uuid, invitee string) (models.Project, error)
}

// TaskService implements timeline task operations within a project. Every
// operation checks that the requester is the project admin or an invitee,
// and bumps the project's updated_at so other clients notice the change.
type TaskService interface {
	Create(ctx context.Context, requester, projectUUID string, draft models.TaskDraft) (models.Task, error)
	Update(ctx context.Context, requester, projectUUID string, task models.Task) (models.Task, error)
	Delete(ctx context.Context, requester, projectUUID, taskUUID string) error
	ListForProject(ctx context.Context, requester, projectUUID string) (map[string]models.Task, error)
}
