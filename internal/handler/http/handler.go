package http

import (
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/service"
)

type Handler struct {
	services *service.Services

	// hashKey enables the transport integrity check on mutating routes.
	// Empty means the platform did not configure one and the check is off.
	hashKey string
	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  cfg.HashKey,
		version:  cfg.Version,
		logger:   logger,
	}
}
