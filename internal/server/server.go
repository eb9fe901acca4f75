package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jasonyi-dev/ganttrack/internal/config"
	"github.com/jasonyi-dev/ganttrack/internal/handler"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
)

type server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer wires the HTTP handler tree into a listening server for
// cfg.HTTPAddress.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoListenAddress
	}

	return &server{
		httpServer: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handlers.HTTP.Init(),
		},
		logger: logger,
	}, nil
}

// RunServer serves requests until SIGINT/SIGTERM/SIGQUIT, then drains open
// connections before returning.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	drained := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(drained)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("Launching HTTP server")
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	<-drained
	s.logger.Info().Msg("server shut down gracefully")
}

// Shutdown stops accepting new requests and waits for in-flight ones.
func (s *server) Shutdown() {
	if err := s.httpServer.Shutdown(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
