package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-engineer-hub/models"
	sq "github.com/Masterminds/squirrel"
)

// userColumns is the projection shared by every user lookup. Followers and
// following are aggregated from user_follows in follow order.
const userColumns = `u.user_id, u.username, u.email, u.full_name, u.password_hash, u.refresh_token,
		u.avatar, u.cover_image, u.skills, u.experience, u.education, u.projects,
		u.bio, u.location, u.website, u.resume,
		COALESCE((SELECT json_agg(f.follower_id ORDER BY f.created_at, f.follower_id)
			FROM user_follows f WHERE f.followee_id = u.user_id), '[]') AS followers,
		COALESCE((SELECT json_agg(f.followee_id ORDER BY f.created_at, f.followee_id)
			FROM user_follows f WHERE f.follower_id = u.user_id), '[]') AS following,
		u.created_at, u.updated_at`

const (
	createUser = `INSERT INTO users (user_id, username, email, full_name, password_hash, avatar, cover_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at;`

	findUserByID = `SELECT ` + userColumns + `
		FROM users u
		WHERE u.user_id = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
		FROM users u
		WHERE u.email = $1;`

	updatePassword = `UPDATE users
		SET password_hash = $2, refresh_token = '', updated_at = NOW()
		WHERE user_id = $1;`

	setRefreshToken = `UPDATE users
		SET refresh_token = $2, updated_at = NOW()
		WHERE user_id = $1;`

	followUser = `INSERT INTO user_follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;`

	unfollowUser = `DELETE FROM user_follows
		WHERE follower_id = $1 AND followee_id = $2;`

	createPost = `INSERT INTO posts (post_id, user_id, text, file)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at;`

	likePost = `INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;`

	commentPost = `INSERT INTO post_comments (comment_id, post_id, user_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at;`
)

// postColumns is the projection shared by every post read: the post, its
// author card, likes in like order and comments in comment order.
var postColumns = []string{
	"p.post_id", "p.user_id", "p.text", "p.file", "p.created_at", "p.updated_at",
	"a.username", "a.full_name", "a.avatar",
	`COALESCE((SELECT json_agg(l.user_id ORDER BY l.created_at, l.user_id)
		FROM post_likes l WHERE l.post_id = p.post_id), '[]') AS likes`,
	`COALESCE((SELECT json_agg(json_build_object(
			'id', c.comment_id, 'userId', c.user_id, 'content', c.content, 'createdAt', c.created_at)
			ORDER BY c.created_at, c.comment_id)
		FROM post_comments c WHERE c.post_id = p.post_id), '[]') AS comments`,
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func selectPosts() sq.SelectBuilder {
	return psql.Select(postColumns...).
		From(models.Post{}.TableName() + " p").
		Join(models.User{}.TableName() + " a ON a.user_id = p.user_id")
}

func newestFirst(b sq.SelectBuilder) sq.SelectBuilder {
	return b.OrderBy("p.created_at DESC", "p.post_id DESC")
}

// buildFindPostByIDQuery selects a single post.
func buildFindPostByIDQuery(ctx context.Context, postID string) (string, []any, error) {
	return selectPosts().Where(sq.Eq{"p.post_id": postID}).ToSql()
}

// buildFindPostsQuery selects posts newest first, optionally restricted to
// the given authors. A nil authorIDs means no author filter; an empty
// non-nil slice matches nothing.
func buildFindPostsQuery(ctx context.Context, authorIDs []string) (string, []any, error) {
	b := selectPosts()
	if authorIDs != nil {
		b = b.Where(sq.Eq{"p.user_id": authorIDs})
	}

	return newestFirst(b).ToSql()
}

// buildUpdateProfileQuery builds the partial profile UPDATE for the non-nil
// fields of update. updated_at is always refreshed.
func buildUpdateProfileQuery(ctx context.Context, userID string, update models.UpdateProfileRequest) (string, []any, error) {
	set := make(map[string]any, 11)

	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.FullName != nil {
		set["full_name"] = *update.FullName
	}
	if update.Skills != nil {
		set["skills"] = *update.Skills
	}
	if update.Experience != nil {
		set["experience"] = *update.Experience
	}
	if update.Education != nil {
		set["education"] = *update.Education
	}
	if update.Projects != nil {
		set["projects"] = *update.Projects
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Website != nil {
		set["website"] = *update.Website
	}
	if update.ResumeURL != nil {
		set["resume"] = *update.ResumeURL
	}

	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: no profile fields to update", ErrBuildingSQLQuery)
	}

	set["updated_at"] = sq.Expr("NOW()")

	return psql.Update(models.User{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
