package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/models"
)

type postRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, ids IDGenerator, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreatePost inserts post with a fresh id. The author summary is not
// filled; read the post back for that. An unknown author →
// [ErrNoUserWasFound].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	post.PostID = r.ids.Generate()
	row := r.db.QueryRowContext(ctx, createPost, post.PostID, post.UserID, post.Text, post.File)
	if err := row.Err(); err != nil {
		if isMissingReference(err) {
			return models.Post{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&post.CreatedAt, &post.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	post.Likes = models.IDList{}
	post.Comments = models.Comments{}

	return post, nil
}

func (r *postRepository) FindPostByID(ctx context.Context, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPostByIDQuery(ctx, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

func (r *postRepository) FindAllPosts(ctx context.Context) ([]models.Post, error) {
	return r.findPosts(ctx, "*postRepository.FindAllPosts", nil)
}

func (r *postRepository) FindPostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	return r.findPosts(ctx, "*postRepository.FindPostsByUser", []string{userID})
}

// FindPostsByAuthors returns the posts of all authorIDs in one query. An
// empty author list returns an empty slice without touching the database.
func (r *postRepository) FindPostsByAuthors(ctx context.Context, authorIDs []string) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, nil
	}
	return r.findPosts(ctx, "*postRepository.FindPostsByAuthors", authorIDs)
}

func (r *postRepository) findPosts(ctx context.Context, funcName string, authorIDs []string) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPostsQuery(ctx, authorIDs)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		if isMalformedID(err) {
			return []models.Post{}, nil
		}
		log.Err(err).Str("func", funcName).Msg("error querying posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// AddLike records userID's like on postID; a repeated like is a no-op.
// Unknown post → [ErrPostNotFound].
func (r *postRepository) AddLike(ctx context.Context, postID, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, likePost, postID, userID); err != nil {
		if isMissingReference(err) {
			return ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.AddLike").Msg("error inserting like")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// AddComment appends comment to postID and returns it with its id and
// creation time. Unknown post → [ErrPostNotFound].
func (r *postRepository) AddComment(ctx context.Context, postID string, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	comment.CommentID = r.ids.Generate()
	row := r.db.QueryRowContext(ctx, commentPost, comment.CommentID, postID, comment.UserID, comment.Content)
	if err := row.Err(); err != nil {
		if isMissingReference(err) {
			return models.Comment{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.AddComment").Msg("error inserting comment")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&comment.CreatedAt); err != nil {
		log.Err(err).Str("func", "*postRepository.AddComment").Msg("error: scanning error")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return comment, nil
}

func scanPost(row scanner) (models.Post, error) {
	var (
		p      models.Post
		author models.UserSummary
	)
	err := row.Scan(
		&p.PostID, &p.UserID, &p.Text, &p.File, &p.CreatedAt, &p.UpdatedAt,
		&author.Username, &author.FullName, &author.Avatar,
		&p.Likes, &p.Comments,
	)
	if err != nil {
		return models.Post{}, err
	}

	author.UserID = p.UserID
	p.Author = &author
	return p, nil
}
