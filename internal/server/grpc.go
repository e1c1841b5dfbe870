package server

import (
	"net"

	"github.com/MKhiriev/go-engineer-hub/internal/config"
	myGRPC "github.com/MKhiriev/go-engineer-hub/internal/handler/grpc"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

// Shutdown flips the health status to NOT_SERVING before draining calls.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
