// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

const (
	defaultAccessTokenDuration  = time.Hour
	defaultRefreshTokenDuration = 10 * 24 * time.Hour
	defaultTokenIssuer          = "go-engineer-hub"
	defaultVersion              = "dev"
	defaultRequestTimeout       = 30 * time.Second
	defaultMaxUploadSize        = 10 << 20
	defaultMediaBaseURL         = "https://api.cloudinary.com"
	defaultMediaTimeout         = 30 * time.Second
	defaultUploadTTL            = time.Hour
)

// applyDefaults fills optional settings that no source provided.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.AccessTokenDuration == 0 {
		cfg.App.AccessTokenDuration = defaultAccessTokenDuration
	}
	if cfg.App.RefreshTokenDuration == 0 {
		cfg.App.RefreshTokenDuration = defaultRefreshTokenDuration
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.MaxUploadSize == 0 {
		cfg.Server.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Storage.Files.UploadDir == "" {
		cfg.Storage.Files.UploadDir = os.TempDir()
	}
	if cfg.Storage.Files.UploadTTL == 0 {
		cfg.Storage.Files.UploadTTL = defaultUploadTTL
	}
	if cfg.Adapter.Media.BaseURL == "" {
		cfg.Adapter.Media.BaseURL = defaultMediaBaseURL
	}
	if cfg.Adapter.Media.Timeout == 0 {
		cfg.Adapter.Media.Timeout = defaultMediaTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AccessTokenSecret == "" || cfg.App.RefreshTokenSecret == "" ||
		cfg.App.AccessTokenSecret == cfg.App.RefreshTokenSecret {
		return ErrInvalidAppConfigs
	}

	if cfg.App.AccessTokenDuration < 0 || cfg.App.RefreshTokenDuration < cfg.App.AccessTokenDuration {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	media := cfg.Adapter.Media
	if media.CloudName != "" && (media.APIKey == "" || media.APISecret == "") {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
