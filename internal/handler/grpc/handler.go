// Package grpc exposes the service's gRPC surface.
//
// The only service registered today is the standard gRPC health protocol,
// which the platform's orchestrator probes to decide whether this instance
// may receive traffic.
package grpc

import (
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance. The health service starts in
// the SERVING state.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// Register attaches all gRPC services to srv.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
}

// SetNotServing flips the health status so that orchestrator probes drain
// traffic away during shutdown.
func (h *Handler) SetNotServing() {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
}
