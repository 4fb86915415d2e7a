package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/adapter"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// the console owns the terminal, so logs go to a file
	log := logger.NewFileLogger("fcs-envelope-doctor", "envelope-doctor.log")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// optional connectivity probe; the doctor works offline either way
	if cfg.Adapter.HTTPAddress != "" {
		probeServer(cfg, log)
	}

	doctor, err := tui.NewDoctor(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating envelope doctor")
	}

	ui, err := tui.New(doctor, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(buildVersion); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("console run error")
	}
}

func probeServer(cfg *config.ClientConfig, log *logger.Logger) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Warn().Err(err).Msg("create server adapter")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	version, err := serverAdapter.Version(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("target service unreachable")
		return
	}
	log.Info().Str("server_version", version).Msg("target service reachable")
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
