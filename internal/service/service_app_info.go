package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-engineer-hub/internal/config"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
)

// appInfoService reports the running build to GET /api/version/.
type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("creating app info service")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
