package handler

import (
	"github.com/MKhiriev/go-engineer-hub/internal/config"
	"github.com/MKhiriev/go-engineer-hub/internal/handler/grpc"
	"github.com/MKhiriev/go-engineer-hub/internal/handler/http"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured address.
// The HTTP handler takes its cookie, upload and timeout settings from cfg.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
