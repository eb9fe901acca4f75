package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/store"
	"github.com/jasonyi-dev/ganttrack/internal/utils"
	"github.com/jasonyi-dev/ganttrack/internal/validators"
	"github.com/jasonyi-dev/ganttrack/models"
)

const maxProjectNameLength = 50

// projectService is the concrete implementation of [ProjectService].
type projectService struct {
	projectRepository store.ProjectRepository
	userRepository    store.UserRepository

	uuidGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewProjectService constructs a [ProjectService] wired to the project and
// user repositories.
func NewProjectService(projectRepository store.ProjectRepository, userRepository store.UserRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		userRepository:    userRepository,
		uuidGenerator:     utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// Create builds and persists a new project with the given admin and name.
func (p *projectService) Create(ctx context.Context, admin, name string) (models.Project, error) {
	log := logger.FromContext(ctx)

	if err := validateProjectName(name); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := unixNow()
	project := models.Project{
		UUID:      p.uuidGenerator.Generate(),
		Name:      name,
		Admin:     admin,
		CreatedAt: now,
		UpdatedAt: now,
		Invitees:  []string{},
	}

	if err := p.projectRepository.Save(ctx, project); err != nil {
		log.Err(err).Str("admin", admin).Msg("project creation ended with error")
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	return project, nil
}

// Rename changes the project name. Admin only.
func (p *projectService) Rename(ctx context.Context, requester, uuid, name string) (models.Project, error) {
	log := logger.FromContext(ctx)

	if uuid == "" {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyProjectUUID)
	}
	if err := validateProjectName(name); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	project, err := p.requireAdmin(ctx, requester, uuid)
	if err != nil {
		return models.Project{}, err
	}

	project.Name = name
	project.UpdatedAt = unixNow()

	if err = p.projectRepository.Save(ctx, project); err != nil {
		log.Err(err).Str("uuid", uuid).Msg("project rename ended with error")
		return models.Project{}, fmt.Errorf("project rename ended with error: %w", err)
	}

	return project, nil
}

// Delete removes the project and all its tasks. Admin only.
func (p *projectService) Delete(ctx context.Context, requester, uuid string) error {
	log := logger.FromContext(ctx)

	if uuid == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyProjectUUID)
	}

	if _, err := p.requireAdmin(ctx, requester, uuid); err != nil {
		return err
	}

	if err := p.projectRepository.Delete(ctx, uuid); err != nil {
		log.Err(err).Str("uuid", uuid).Msg("project deletion ended with error")
		return fmt.Errorf("project deletion ended with error: %w", err)
	}

	return nil
}

// ListForUser returns every project the user can open, keyed by uuid.
func (p *projectService) ListForUser(ctx context.Context, username string) (map[string]models.Project, error) {
	log := logger.FromContext(ctx)

	projects, err := p.projectRepository.FindForUser(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("project listing ended with error")
		return nil, fmt.Errorf("project listing ended with error: %w", err)
	}

	byUUID := make(map[string]models.Project, len(projects))
	for _, project := range projects {
		byUUID[project.UUID] = project
	}

	return byUUID, nil
}

// Invite grants an existing user access to the project. Admin only. The
// invitee must be a registered account and cannot be the admin.
func (p *projectService) Invite(ctx context.Context, requester, uuid, invitee string) (models.Project, error) {
	log := logger.FromContext(ctx)

	if uuid == "" || invitee == "" || invitee == requester {
		return models.Project{}, ErrInvalidDataProvided
	}

	if _, err := p.requireAdmin(ctx, requester, uuid); err != nil {
		return models.Project{}, err
	}

	if _, err := p.userRepository.FindUserByUsername(ctx, invitee); err != nil {
		log.Err(err).Str("invitee", invitee).Msg("invitee lookup failed")
		return models.Project{}, fmt.Errorf("invitee lookup failed: %w", err)
	}

	if err := p.projectRepository.AddInvitee(ctx, uuid, invitee); err != nil {
		log.Err(err).Str("uuid", uuid).Msg("adding invitee ended with error")
		return models.Project{}, fmt.Errorf("adding invitee ended with error: %w", err)
	}
	if err := p.projectRepository.Touch(ctx, uuid, unixNow()); err != nil {
		log.Err(err).Str("uuid", uuid).Msg("touching project ended with error")
	}

	project, err := p.projectRepository.FindByUUID(ctx, uuid)
	if err != nil {
		return models.Project{}, fmt.Errorf("re-reading project ended with error: %w", err)
	}

	return project, nil
}

// requireAdmin fetches the project and verifies the requester administers
// it. A project that exists but belongs to someone else surfaces as
// ErrNotPermitted, never as a different error than the admin would see.
func (p *projectService) requireAdmin(ctx context.Context, requester, uuid string) (models.Project, error) {
	project, err := p.projectRepository.FindByUUID(ctx, uuid)
	if err != nil {
		return models.Project{}, fmt.Errorf("project lookup failed: %w", err)
	}

	if project.Admin != requester {
		return models.Project{}, ErrNotPermitted
	}

	return project, nil
}

func validateProjectName(name string) error {
	switch {
	case name == "":
		return validators.ErrEmptyProjectName
	case len([]rune(name)) > maxProjectNameLength:
		return validators.ErrProjectNameTooLong
	}
	return nil
}

// unixNow returns the current time as fractional unix seconds, the
// timestamp format stored in project documents.
func unixNow() float64 {
	return float64(time.Now().UTC().UnixNano()) / float64(time.Second)
}
