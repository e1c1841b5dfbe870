package service

import (
	"fmt"

	"github.com/MKhiriev/go-engineer-hub/internal/adapter"
	"github.com/MKhiriev/go-engineer-hub/internal/config"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	AuthService    AuthService
	UserService    UserService
	PostService    PostService
}

// NewServices wires the services over storages and media. Auth, user and
// post services are wrapped with their validation decorators.
func NewServices(storages *store.Storages, media adapter.MediaUploader, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	credentials := NewCredentialStore(storages.UserRepository, logger)
	tokens := NewTokenService(cfg.App)

	return &Services{
		AppInfoService: appInfo,
		AuthService:    NewAuthValidationService().Wrap(NewAuthService(credentials, tokens, media, logger)),
		UserService:    NewUserValidationService().Wrap(NewUserService(storages.UserRepository, media, logger)),
		PostService:    NewPostValidationService().Wrap(NewPostService(storages.PostRepository, credentials, media, logger)),
	}, nil
}
