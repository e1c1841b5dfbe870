package http

import (
	"time"

	"github.com/MKhiriev/go-engineer-hub/internal/config"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/service"
)

// Handler serves the REST API on top of the service layer.
type Handler struct {
	services *service.Services

	settings settings

	logger *logger.Logger
}

// settings are the transport-level knobs taken from the configuration.
type settings struct {
	requestTimeout time.Duration

	maxUploadSize int64
	uploadDir     string

	secureCookies        bool
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings{
			requestTimeout:       cfg.Server.RequestTimeout,
			maxUploadSize:        cfg.Server.MaxUploadSize,
			uploadDir:            cfg.Storage.Files.UploadDir,
			secureCookies:        !cfg.Server.InsecureCookies,
			accessTokenDuration:  cfg.App.AccessTokenDuration,
			refreshTokenDuration: cfg.App.RefreshTokenDuration,
		},
		logger: logger,
	}
}
