package service

import (
	"github.com/jasonyi-dev/ganttrack/internal/adapter"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/store"
)

type ClientServices struct {
	AuthService  ClientAuthService
	BoardService ClientBoardService
	RefreshJob   ClientRefreshJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore, serverAdapter, logger)
	boardSvc := NewClientBoardService(localStore, serverAdapter, authSvc, logger)

	return &ClientServices{
		AuthService:  authSvc,
		BoardService: boardSvc,
		RefreshJob:   NewClientRefreshJob(boardSvc),
	}
}
