// Package tui renders the terminal user interface: the login flow and the
// projects/timeline screens, built on bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/service"
)

var (
	errNoServicesProvided = errors.New("no client services provided")
	errUnexpectedModel    = errors.New("unexpected final model")
)

type TUI struct {
	services        *service.ClientServices
	refreshInterval time.Duration
	log             *logger.Logger
}

func New(services *service.ClientServices, refreshInterval time.Duration, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServicesProvided
	}
	return &TUI{services: services, refreshInterval: refreshInterval, log: log}, nil
}

// LoginFlow runs the welcome/login/register screens until a session is
// established. Returns [ErrUserQuit] when the user closes the program
// without logging in.
func (t *TUI) LoginFlow(ctx context.Context) error {
	root := newAppModel(ctx, t.services, t.refreshInterval, t.log, modeLogin)
	final, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run login flow: %w", err)
	}
	model, ok := final.(appModel)
	if !ok {
		return errUnexpectedModel
	}
	if !model.authenticated {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the projects and timeline screens until the user quits or
// logs out. The logout result tells the caller to run the login flow again
// instead of exiting.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	root := newAppModel(ctx, t.services, t.refreshInterval, t.log, modeMain)
	final, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("run main loop: %w", err)
	}
	model, ok := final.(appModel)
	if !ok {
		return false, errUnexpectedModel
	}
	return model.logout, nil
}
