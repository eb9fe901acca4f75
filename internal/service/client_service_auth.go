package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jasonyi-dev/ganttrack/internal/adapter"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/store"
	"github.com/jasonyi-dev/ganttrack/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger

	mu       sync.RWMutex
	username string
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, creds models.Credentials) error {
	if _, err := a.adapter.Register(ctx, creds); err != nil {
		return fmt.Errorf("register on server: %w", err)
	}
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) error {
	if err := a.adapter.Login(ctx, creds); err != nil {
		return fmt.Errorf("login on server: %w", err)
	}

	a.setUsername(creds.Username)

	// Session persistence is best-effort: a broken cache file must not block
	// an otherwise successful login.
	if err := a.localStore.SessionRepository.SaveSession(ctx, creds.Username, a.adapter.Token()); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Msg("failed to persist session")
	}

	return nil
}

func (a *clientAuthService) Resume(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.SessionRepository.LastSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.adapter.SetToken(session.Token)
	a.setUsername(session.Username)

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	a.setUsername("")

	if err := a.localStore.SessionRepository.DeleteSessions(ctx); err != nil {
		return fmt.Errorf("delete persisted sessions: %w", err)
	}
	return nil
}

func (a *clientAuthService) Username() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.username
}

func (a *clientAuthService) setUsername(username string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.username = username
}
