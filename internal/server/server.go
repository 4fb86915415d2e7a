// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/handler"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer assembles the transports that have both an address and a
// handler configured. At least one transport must come up, otherwise
// construction fails.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		s.gRPCServer = grpcSrv
	}

	if s.httpServer == nil && s.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts the
// transports down and returns once in-flight work has drained.
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

	if s.httpServer != nil {
		s.logger.Info().Str("func", "server.RunServer").Msg("starting HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("func", "server.RunServer").Msg("starting gRPC server")
		go s.gRPCServer.RunServer()
	}

	<-drained
	s.logger.Info().Str("func", "server.RunServer").Msg("server stopped gracefully")
}

// Shutdown stops whichever transports are running.
func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}
