// Package client wires the TUI, services and local cache into the
// interactive application loop.
package client

import (
	"context"
	"errors"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/service"
	"github.com/jasonyi-dev/ganttrack/internal/store"
	"github.com/jasonyi-dev/ganttrack/internal/tui"
)

var errNoTUIProvided = errors.New("no tui provided")

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoTUIProvided
	}
	return &App{services: services, ui: ui, log: log}, nil
}

// Run resumes the last saved session or walks the user through the login
// flow, then hands control to the main loop. A logout returns to the login
// flow; closing the program ends Run.
func (a *App) Run(ctx context.Context) error {
	log := a.log.GetChildLogger()

	session, err := a.services.AuthService.Resume(ctx)
	switch {
	case err == nil:
		log.Info().Str("username", session.Username).Msg("resumed saved session")
	case errors.Is(err, store.ErrLocalSessionNotFound):
		if err = a.ui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	default:
		return err
	}
	defer a.services.RefreshJob.Stop()

	logout, err := a.ui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if !logout {
		return nil
	}

	if err = a.services.AuthService.Logout(ctx); err != nil {
		log.Err(err).Str("func", "App.Run").Msg("logout failed")
	}
	return a.Run(ctx)
}
