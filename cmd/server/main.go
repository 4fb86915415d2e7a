package main

import (
	"context"
	"fmt"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/handler"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/server"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/service"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/utils"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fcs-content-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	utils.InitHasherPool(cfg.App.HashKey)

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers(storages, cfg.Workers, log)
	jobs.StartAll(ctx)
	defer jobs.StopAll()

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

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
