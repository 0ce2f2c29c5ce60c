// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net"

	"google.golang.org/grpc"

	"github.com/provenart/go-art-registry/internal/config"
	myGRPC "github.com/provenart/go-art-registry/internal/handler/grpc"
	"github.com/provenart/go-art-registry/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	return &grpcServer{
		handler: handler,
		server:  grpc.NewServer(),
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Listen")
		return
	}

	// No services are registered yet; the listener still comes up so the
	// configured address is reserved and health tooling can probe it.
	if err = g.server.Serve(listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
