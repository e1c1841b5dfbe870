// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound integrations of go-engineer-hub.
//
// The only integration today is [MediaUploader], which pushes avatars, cover
// images, resumes and post attachments to the media host (Cloudinary) and
// returns their public URLs. Non-2xx answers from the host are mapped by
// mapHTTPError to [ErrUploadRejected] so callers can match them with
// [errors.Is].
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/media_uploader_mock.go -package=mock

// Media host folders used by the services.
const (
	FolderAvatars     = "avatars"
	FolderCoverImages = "cover_images"
	FolderResumes     = "resumes"
	FolderPosts       = "engineer_posts"
)

// MediaUploader stores a local file on the media host.
type MediaUploader interface {
	// Upload sends the file at localPath into folder and returns its public
	// HTTPS URL. The local file is left in place; removing it is the
	// caller's job.
	Upload(ctx context.Context, localPath, folder string) (string, error)
}
