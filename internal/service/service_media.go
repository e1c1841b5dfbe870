package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-engineer-hub/internal/adapter"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/models"
)

// uploadMedia pushes upload to folder on the media host and returns its URL.
// The local temporary file is removed whatever the outcome. A nil upload
// yields "" and no error.
func uploadMedia(ctx context.Context, uploader adapter.MediaUploader, upload *models.Upload, folder string) (string, error) {
	if upload == nil {
		return "", nil
	}
	defer removeUpload(ctx, upload)

	url, err := uploader.Upload(ctx, upload.Path, folder)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMediaUploadFailed, folder, err)
	}

	return url, nil
}

// removeUpload deletes the temporary file behind upload, if any.
func removeUpload(ctx context.Context, upload *models.Upload) {
	if upload == nil || upload.Path == "" {
		return
	}

	if err := os.Remove(upload.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Warn().Err(err).Str("path", upload.Path).Msg("error removing temporary upload")
	}
}
