package main

import (
	"context"
	"fmt"

	"github.com/jasonyi-dev/ganttrack/internal/adapter"
	"github.com/jasonyi-dev/ganttrack/internal/client"
	"github.com/jasonyi-dev/ganttrack/internal/config"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/service"
	"github.com/jasonyi-dev/ganttrack/internal/store"
	"github.com/jasonyi-dev/ganttrack/internal/tui"
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

	log := logger.NewClientLogger("ganttrack-client")
	ctx := context.Background()

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting config")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error init server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error init local storages")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serverAdapter, log)

	ui, err := tui.New(services, cfg.Workers.RefreshInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error init tui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error init app")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("app stopped with error")
	}
}
