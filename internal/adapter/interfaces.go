// Package adapter provides the transport layer for communicating with the
// timeline server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the wire protocol. The HTTP implementation
// ([NewHTTPServerAdapter]) serialises requests as JSON, carries the access
// token inside each request body, and adopts the refreshed token that the
// server echoes back in every authenticated response envelope.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrAccessExpired] for 410, [ErrNoAccess] for 403).
package adapter

import (
	"context"

	"github.com/jasonyi-dev/ganttrack/models"
)

// ServerAdapter defines transport-agnostic communication with the timeline
// server. Implementations are responsible for serialisation, access-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the access token that will be embedded in all
	// subsequent authenticated request bodies. Implementations also call it
	// internally whenever a response envelope carries a refreshed token.
	SetToken(token string)

	// Token returns the access token currently held by the adapter, or an
	// empty string if none has been set yet.
	Token() string

	// Register creates a new account on the server. It does not authenticate;
	// callers follow up with Login.
	Register(ctx context.Context, creds models.Credentials) (string, error)

	// Login authenticates with the server and stores the returned access
	// token via SetToken.
	Login(ctx context.Context, creds models.Credentials) error

	// NewProject creates a project owned by the authenticated user and
	// returns the server-side record including its generated UUID.
	NewProject(ctx context.Context, name string) (models.Project, error)

	// RenameProject changes the name of a project the user administers.
	RenameProject(ctx context.Context, uuid, name string) (models.Project, error)

	// DeleteProject removes a project the user administers along with all of
	// its tasks.
	DeleteProject(ctx context.Context, uuid string) error

	// FetchProjects returns every project the user administers or is invited
	// to, keyed by project UUID.
	FetchProjects(ctx context.Context) (map[string]models.Project, error)

	// Invite grants another registered user access to a project the caller
	// administers and returns the updated project record.
	Invite(ctx context.Context, uuid, invitee string) (models.Project, error)

	// NewTask creates a task on the given project's timeline and returns the
	// server-side record including its generated identifiers and row.
	NewTask(ctx context.Context, projectUUID string, draft models.TaskDraft) (models.Task, error)

	// UpdateTask replaces an existing task's data.
	UpdateTask(ctx context.Context, projectUUID string, task models.Task) (models.Task, error)

	// DeleteTask removes a task; the server compacts rows and prunes
	// dependency references to the removed task.
	DeleteTask(ctx context.Context, projectUUID, taskUUID string) error

	// FetchTasks returns all tasks of a project, keyed by task UUID.
	FetchTasks(ctx context.Context, projectUUID string) (map[string]models.Task, error)
}
