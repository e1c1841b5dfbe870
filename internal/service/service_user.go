package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-engineer-hub/internal/adapter"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/store"
	"github.com/MKhiriev/go-engineer-hub/models"
)

type userService struct {
	userRepository store.UserRepository
	media          adapter.MediaUploader

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, media adapter.MediaUploader, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		media:          media,
		logger:         logger,
	}
}

func (u *userService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of req. A resume upload is
// pushed to the media host first and its URL stored on the profile.
//
// Errors:
//   - ErrNothingToUpdate if req carries no change.
//   - ErrMediaUploadFailed if the resume could not be uploaded.
//   - a wrapped store.ErrUserAlreadyExists if the new username is taken.
func (u *userService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.IsEmpty() {
		return models.User{}, ErrNothingToUpdate
	}

	if req.Username != nil {
		username := normalize(*req.Username)
		req.Username = &username
	}
	req.FullName = trimmed(req.FullName)
	req.Bio = trimmed(req.Bio)
	req.Location = trimmed(req.Location)
	req.Website = trimmed(req.Website)

	if req.Resume != nil {
		url, err := uploadMedia(ctx, u.media, req.Resume, adapter.FolderResumes)
		if err != nil {
			log.Err(err).Str("user_id", userID).Msg("resume upload failed")
			return models.User{}, err
		}
		req.ResumeURL = &url
		req.Resume = nil
	}

	user, err := u.userRepository.UpdateProfile(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user, nil
}

// Follow makes followerID follow followeeID. Following an already followed
// user succeeds without change.
func (u *userService) Follow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	if err := u.userRepository.Follow(ctx, followerID, followeeID); err != nil {
		return fmt.Errorf("follow failed: %w", err)
	}

	return nil
}

// Unfollow removes the relation. Unfollowing a user that is not followed
// succeeds without change.
func (u *userService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	if err := u.userRepository.Unfollow(ctx, followerID, followeeID); err != nil {
		return fmt.Errorf("unfollow failed: %w", err)
	}

	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
