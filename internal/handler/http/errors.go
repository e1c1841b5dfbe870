// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Messages answered by the auth middleware with HTTP 401.
const (
	msgAccessTokenMissing = "access token is missing"
	msgInvalidAccessToken = "invalid access token"
	msgUserNotFound       = "user not found"
)

// Sentinel errors produced while reading requests. Callers can match against
// them with [errors.Is].
var (
	// ErrAccessTokenMissing is reported when neither the accessToken cookie
	// nor the "Authorization" header carries a token.
	ErrAccessTokenMissing = errors.New(msgAccessTokenMissing)

	// ErrInvalidRequestBody is returned when the JSON or multipart body of a
	// request cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrUploadTooLarge is returned when a request body exceeds the
	// configured maximum upload size.
	ErrUploadTooLarge = errors.New("request body is too large")

	// ErrSavingUpload is returned when an uploaded file cannot be written to
	// the temporary upload directory.
	ErrSavingUpload = errors.New("error saving uploaded file")

	// ErrNoAuthenticatedUser is returned by handlers behind the auth
	// middleware when the request context carries no user.
	ErrNoAuthenticatedUser = errors.New("no authenticated user in request context")
)
