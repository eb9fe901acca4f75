package main

import (
	"context"
	"fmt"

	"github.com/jasonyi-dev/ganttrack/internal/config"
	"github.com/jasonyi-dev/ganttrack/internal/handler"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/server"
	"github.com/jasonyi-dev/ganttrack/internal/service"
	"github.com/jasonyi-dev/ganttrack/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

func main() {
	printBuildInfo()

	log := logger.NewLogger("ganttrack-server")
	ctx := context.Background()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting config")
	}
	if err = cfg.RequireMongo(); err != nil {
		log.Fatal().Err(err).Msg("mongo connection settings are incomplete")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error init storages")
	}
	defer storages.Close(ctx)

	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error init handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error init server")
	}

	srv.RunServer()
}
