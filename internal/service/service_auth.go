// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-engineer-hub/internal/adapter"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/models"
)

// authService is the concrete implementation of AuthService.
// It combines the credential store, the token service and the media
// uploader into the register/login/refresh/logout/change-password flow.
type authService struct {
	// credentials is the only path to password hashes and refresh tokens.
	credentials CredentialStore

	// tokens issues and verifies the access/refresh pair.
	tokens TokenService

	// media receives avatar and cover image uploads on registration.
	media adapter.MediaUploader

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(credentials CredentialStore, tokens TokenService, media adapter.MediaUploader, logger *logger.Logger) AuthService {
	return &authService{
		credentials: credentials,
		tokens:      tokens,
		media:       media,
		logger:      logger,
	}
}

// Register creates a new account.
//
// Optional uploads are pushed to the media host first: a failed avatar
// upload is logged and the avatar stays empty, a failed cover image upload
// aborts the registration. Temporary files are removed in every case.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if a required field is blank.
//   - ErrMediaUploadFailed if the cover image could not be uploaded.
//   - a wrapped store.ErrUserAlreadyExists on a username/email collision.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)
	defer removeUpload(ctx, req.Avatar)
	defer removeUpload(ctx, req.CoverImage)

	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Password) == "" {
		log.Error().Str("username", req.Username).Str("email", req.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	avatarURL, err := uploadMedia(ctx, a.media, req.Avatar, adapter.FolderAvatars)
	if err != nil {
		log.Warn().Err(err).Msg("avatar upload failed, registering without avatar")
		avatarURL = ""
	}

	coverURL, err := uploadMedia(ctx, a.media, req.CoverImage, adapter.FolderCoverImages)
	if err != nil {
		log.Err(err).Msg("cover image upload failed")
		return models.User{}, err
	}

	user := models.User{
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Avatar:     avatarURL,
		CoverImage: coverURL,
	}

	return a.credentials.CreateUser(ctx, user, req.Password)
}

// Login checks the credentials and opens a session.
//
// Returns the session (user plus both tokens) or:
//   - ErrInvalidDataProvided if the email is blank.
//   - a wrapped store.ErrNoUserWasFound for an unknown email.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.Email) == "" {
		log.Error().Msg("login without email")
		return models.Session{}, ErrInvalidDataProvided
	}

	user, err := a.credentials.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.Session{}, err
	}

	ok, err := a.credentials.VerifyPassword(user, req.Password)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("password verification failed")
		return models.Session{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Str("user_id", user.UserID).Msg("wrong password")
		return models.Session{}, ErrWrongPassword
	}

	accessToken, refreshToken, err := a.issuePair(user)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("token issuing failed")
		return models.Session{}, err
	}

	if err = a.credentials.SetRefreshToken(ctx, user.UserID, refreshToken.String()); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("storing refresh token failed")
		return models.Session{}, err
	}
	user.RefreshToken = refreshToken.String()

	return models.Session{
		User:         user,
		AccessToken:  accessToken.String(),
		RefreshToken: refreshToken.String(),
	}, nil
}

func (a *authService) issuePair(user models.User) (models.Token, models.Token, error) {
	accessToken, err := a.tokens.IssueAccessToken(user)
	if err != nil {
		return models.Token{}, models.Token{}, err
	}

	refreshToken, err := a.tokens.IssueRefreshToken(user.UserID)
	if err != nil {
		return models.Token{}, models.Token{}, err
	}

	return accessToken, refreshToken, nil
}

// Refresh issues a new access token for a valid refresh token. The token
// must still be the one stored on the user row, so tokens revoked by
// logout or a password change are refused.
//
// Every failure except token signing is reported as ErrInvalidRefreshToken.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return models.Token{}, ErrInvalidRefreshToken
	}

	parsed, err := a.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token verification failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidRefreshToken, err)
	}

	user, err := a.credentials.FindByID(ctx, parsed.Claims.UserID())
	if err != nil {
		log.Warn().Err(err).Str("user_id", parsed.Claims.UserID()).Msg("refresh token owner lookup failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidRefreshToken, err)
	}

	if user.RefreshToken != refreshToken {
		log.Warn().Str("user_id", user.UserID).Msg("refresh token is revoked or superseded")
		return models.Token{}, ErrInvalidRefreshToken
	}

	return a.tokens.IssueAccessToken(user)
}

func (a *authService) Logout(ctx context.Context, userID string) error {
	return a.credentials.SetRefreshToken(ctx, userID, "")
}

// ChangePassword replaces the password of userID after checking the old
// one. The stored refresh token is cleared together with the hash.
func (a *authService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.OldPassword == "" || strings.TrimSpace(req.NewPassword) == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.credentials.FindByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user search by id failed")
		return err
	}

	ok, err := a.credentials.VerifyPassword(user, req.OldPassword)
	if err != nil {
		return fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		return ErrWrongOldPassword
	}

	return a.credentials.SetPassword(ctx, userID, req.NewPassword)
}

// Authenticate resolves the user behind an access token: one signature
// check and one store lookup.
//
// Returns ErrInvalidToken when verification fails and a wrapped
// store.ErrNoUserWasFound when the identity no longer exists.
func (a *authService) Authenticate(ctx context.Context, accessToken string) (models.User, error) {
	parsed, err := a.tokens.VerifyAccessToken(accessToken)
	if err != nil {
		return models.User{}, err
	}

	return a.credentials.FindByID(ctx, parsed.Claims.UserID())
}
