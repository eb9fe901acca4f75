package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should match them with [errors.Is].
var (
	// ErrUserAlreadyExists is returned when registering a username that is
	// already present in the accounts collection.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a lookup by username matches no
	// account document.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProjectNotFound is returned when a project uuid matches no
	// document, or the document exists but the requester filter excluded it.
	ErrProjectNotFound = errors.New("project not found")

	// ErrTaskNotFound is returned when a task uuid matches no document
	// inside the given project.
	ErrTaskNotFound = errors.New("task not found")

	// ErrLocalSessionNotFound is returned by the client session repository
	// when no saved session exists in the local cache.
	ErrLocalSessionNotFound = errors.New("local session not found")
)
