package service

import (
	"context"
	"time"

	"github.com/jasonyi-dev/ganttrack/models"
)

// ClientAuthService defines the client-side contract for account management
// and session handling. Session state (username and access token) lives in
// the server adapter and is mirrored into the local cache so a restart can
// resume without prompting for credentials.
type ClientAuthService interface {
	// Register creates a new account on the server. Credentials are
	// validated server-side; the caller follows up with Login.
	Register(ctx context.Context, creds models.Credentials) error

	// Login authenticates against the server, stores the issued access
	// token in the adapter, and persists the session locally.
	Login(ctx context.Context, creds models.Credentials) error

	// Resume restores the last persisted session into the adapter and
	// returns its username. Returns [store.ErrLocalSessionNotFound] when no
	// session was saved. The token may have expired server-side; the first
	// request after resume surfaces that.
	Resume(ctx context.Context) (models.Session, error)

	// Logout clears the adapter token and deletes persisted sessions.
	Logout(ctx context.Context) error

	// Username returns the username of the active session, or an empty
	// string when nobody is logged in.
	Username() string
}

// ClientBoardService defines the client-side contract for working with
// projects and timeline tasks. All reads try the server first and fall back
// to the local cache when the server is unreachable; the boolean result
// reports whether cached (offline) data was served. Mutations always require
// the server.
type ClientBoardService interface {
	Projects(ctx context.Context) (projects map[string]models.Project, offline bool, err error)
	CreateProject(ctx context.Context, name string) (models.Project, error)
	RenameProject(ctx context.Context, uuid, name string) (models.Project, error)
	DeleteProject(ctx context.Context, uuid string) error
	Invite(ctx context.Context, uuid, invitee string) (models.Project, error)

	Tasks(ctx context.Context, projectUUID string) (tasks map[string]models.Task, offline bool, err error)
	CreateTask(ctx context.Context, projectUUID string, draft models.TaskDraft) (models.Task, error)
	UpdateTask(ctx context.Context, projectUUID string, task models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, projectUUID, taskUUID string) error
}

// ClientRefreshJob defines the contract for a background worker that
// periodically re-fetches the open project's tasks so collaborators' edits
// become visible without manual refreshes.
type ClientRefreshJob interface {
	// Start launches the background goroutine polling projectUUID every
	// interval, defaulting to 10 seconds if interval is zero or negative.
	// Fresh snapshots are delivered through onUpdate; failed polls are
	// skipped silently. Any previously running job is stopped first.
	Start(ctx context.Context, projectUUID string, interval time.Duration, onUpdate func(map[string]models.Task))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
