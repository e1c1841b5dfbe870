package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-engineer-hub/internal/validators"
	"github.com/MKhiriev/go-engineer-hub/models"
)

// AuthValidationService rejects malformed session forms before they reach
// the wrapped AuthService. Every validation error matches
// ErrInvalidDataProvided.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		removeUpload(ctx, req.Avatar)
		removeUpload(ctx, req.CoverImage)
		return models.User{}, invalid(err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	// only the email: an empty password is a wrong password
	if err := v.validator.Validate(ctx, req, validators.FieldEmail); err != nil {
		return models.Session{}, invalid(err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Refresh(ctx context.Context, refreshToken string) (models.Token, error) {
	return v.inner.Refresh(ctx, refreshToken)
}

func (v *AuthValidationService) Logout(ctx context.Context, userID string) error {
	return v.inner.Logout(ctx, userID)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return invalid(err)
	}

	return v.inner.ChangePassword(ctx, userID, req)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, accessToken string) (models.User, error) {
	return v.inner.Authenticate(ctx, accessToken)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// UserValidationService checks profile updates.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return v.inner.GetProfile(ctx, userID)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	if req.IsEmpty() {
		return models.User{}, ErrNothingToUpdate
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		removeUpload(ctx, req.Resume)
		return models.User{}, invalid(err)
	}

	return v.inner.UpdateProfile(ctx, userID, req)
}

func (v *UserValidationService) Follow(ctx context.Context, followerID, followeeID string) error {
	return v.inner.Follow(ctx, followerID, followeeID)
}

func (v *UserValidationService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	return v.inner.Unfollow(ctx, followerID, followeeID)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// PostValidationService checks new posts and comments.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewPostValidator(),
	}
}

func (v *PostValidationService) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		removeUpload(ctx, req.Media)
		return models.Post{}, invalid(err)
	}

	return v.inner.CreatePost(ctx, req)
}

func (v *PostValidationService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	return v.inner.GetPost(ctx, postID)
}

func (v *PostValidationService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return v.inner.ListPosts(ctx)
}

func (v *PostValidationService) ListUserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	return v.inner.ListUserPosts(ctx, userID)
}

func (v *PostValidationService) LikePost(ctx context.Context, postID, userID string) (models.Post, error) {
	return v.inner.LikePost(ctx, postID, userID)
}

func (v *PostValidationService) CommentOnPost(ctx context.Context, req models.CommentRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldContent); err != nil {
		return models.Post{}, invalid(err)
	}

	return v.inner.CommentOnPost(ctx, req)
}

func (v *PostValidationService) Feed(ctx context.Context, userID string) ([]models.Post, error) {
	return v.inner.Feed(ctx, userID)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
