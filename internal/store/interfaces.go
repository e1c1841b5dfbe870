package store

import (
	"context"

	"github.com/MKhiriev/go-engineer-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

// UserRepository persists accounts, profiles and the follow graph.
type UserRepository interface {
	// CreateUser inserts user and returns it with its generated id and
	// timestamps. A taken username or email yields ErrUserAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpdatePassword stores a new password hash and clears the stored
	// refresh token in the same statement.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// SetRefreshToken stores refreshToken on the user row; "" clears it.
	SetRefreshToken(ctx context.Context, userID, refreshToken string) error

	// UpdateProfile writes the non-nil fields of update and returns the
	// resulting user.
	UpdateProfile(ctx context.Context, userID string, update models.UpdateProfileRequest) (models.User, error)

	// Follow and Unfollow are idempotent.
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
}

// PostRepository persists posts, likes and comments. Every read returns
// posts enriched with their author summary.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, postID string) (models.Post, error)

	// FindAllPosts, FindPostsByUser and FindPostsByAuthors return posts
	// newest first.
	FindAllPosts(ctx context.Context) ([]models.Post, error)
	FindPostsByUser(ctx context.Context, userID string) ([]models.Post, error)
	FindPostsByAuthors(ctx context.Context, authorIDs []string) ([]models.Post, error)

	// AddLike is idempotent: liking twice leaves a single like.
	AddLike(ctx context.Context, postID, userID string) error
	AddComment(ctx context.Context, postID string, comment models.Comment) (models.Comment, error)
}

// IDGenerator produces identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
