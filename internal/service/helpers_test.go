package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-engineer-hub/internal/config"
	"github.com/MKhiriev/go-engineer-hub/internal/utils"
	"github.com/MKhiriev/go-engineer-hub/models"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func testAppConfig() config.App {
	return config.App{
		AccessTokenSecret:    "access-secret",
		AccessTokenDuration:  time.Hour,
		RefreshTokenSecret:   "refresh-secret",
		RefreshTokenDuration: 240 * time.Hour,
		TokenIssuer:          "go-engineer-hub",
		Version:              "test",
	}
}

// newTestTokenService returns a token service whose clock is frozen at testNow.
func newTestTokenService(t *testing.T) *tokenService {
	t.Helper()
	svc := NewTokenService(testAppConfig()).(*tokenService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func userWithPassword(t *testing.T, id, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{
		UserID:       id,
		Username:     "alice",
		Email:        "alice@example.com",
		FullName:     "Alice",
		PasswordHash: hash,
	}
}

// tempUpload writes a small temporary file and returns it as an upload.
func tempUpload(t *testing.T, name string) *models.Upload {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))
	return &models.Upload{Path: path, Filename: name}
}

func requireRemoved(t *testing.T, upload *models.Upload) {
	t.Helper()
	_, err := os.Stat(upload.Path)
	require.ErrorIs(t, err, os.ErrNotExist, "temporary upload %s must be removed", upload.Path)
}
