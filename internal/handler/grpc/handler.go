// Package grpc holds the gRPC transport of the server: the standard health
// service used by orchestration probes, server reflection and a logging
// interceptor.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

const traceIDMetadataKey = "x-trace-id"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status follows the server lifecycle.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register installs the health service and reflection on s and marks the
// server as serving.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Str("service", healthpb.Health_ServiceDesc.ServiceName).Msg("gRPC services registered")
}

// Shutdown reports NOT_SERVING to every watcher so that probes stop routing
// traffic before the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging is a unary interceptor that attaches a trace-scoped logger to
// the call context and writes one access log entry per call.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	traceID := uuid.NewString()
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 && values[0] != "" {
			traceID = values[0]
		}
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	resp, err := next(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
