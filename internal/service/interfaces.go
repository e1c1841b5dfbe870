package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-engineer-hub/models"
)

// CredentialStore owns every password hash in the system. It is the only
// component that calls bcrypt and the only one that normalises usernames
// and emails before they reach storage.
type CredentialStore interface {
	// CreateUser lower-cases and trims username and email, hashes password
	// and persists user.
	CreateUser(ctx context.Context, user models.User, password string) (models.User, error)

	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, userID string) (models.User, error)

	// VerifyPassword reports whether candidate matches the stored hash.
	// A mismatch is (false, nil); an error means the hash could not be checked.
	VerifyPassword(user models.User, candidate string) (bool, error)

	// SetPassword hashes and stores newPassword and clears the stored
	// refresh token.
	SetPassword(ctx context.Context, userID, newPassword string) error

	// SetRefreshToken mirrors token on the user row; "" clears it.
	SetRefreshToken(ctx context.Context, userID, token string) error
}

// TokenService issues and verifies the access/refresh JWT pair.
type TokenService interface {
	IssueAccessToken(user models.User) (models.Token, error)
	IssueRefreshToken(userID string) (models.Token, error)

	VerifyAccessToken(token string) (models.Token, error)
	VerifyRefreshToken(token string) (models.Token, error)

	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// AuthService drives the session flow.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Refresh exchanges a refresh token for a new access token. The refresh
	// token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (models.Token, error)

	// Logout revokes the stored refresh token of userID.
	Logout(ctx context.Context, userID string) error

	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error

	// Authenticate verifies an access token and resolves its user.
	Authenticate(ctx context.Context, accessToken string) (models.User, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error)
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
}

type PostService interface {
	CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListUserPosts(ctx context.Context, userID string) ([]models.Post, error)

	// LikePost adds userID to the likers of postID and returns the post.
	// Liking twice leaves the post unchanged.
	LikePost(ctx context.Context, postID, userID string) (models.Post, error)

	CommentOnPost(ctx context.Context, req models.CommentRequest) (models.Post, error)

	// Feed returns the posts of everyone userID follows, newest first.
	Feed(ctx context.Context, userID string) ([]models.Post, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper, UserServiceWrapper and PostServiceWrapper decorate a
// service with additional behaviour such as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
