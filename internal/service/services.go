package service

import (
	"github.com/jasonyi-dev/ganttrack/internal/config"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProjectService ProjectService
	TaskService    TaskService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		ProjectService: NewProjectService(storages.ProjectRepository, storages.UserRepository, logger),
		TaskService:    NewTaskService(storages.TaskRepository, storages.ProjectRepository, logger),
	}
}
