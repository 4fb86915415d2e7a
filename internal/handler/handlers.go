package handler

import (
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/handler/grpc"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/handler/http"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
