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

type postService struct {
	postRepository store.PostRepository

	// credentials resolves the requester for the feed.
	credentials CredentialStore

	media adapter.MediaUploader

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, credentials CredentialStore, media adapter.MediaUploader, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		credentials:    credentials,
		media:          media,
		logger:         logger,
	}
}

// CreatePost uploads the optional media to the posts folder and stores the
// post. A failed upload aborts with ErrMediaUploadFailed. The returned post
// carries its author summary.
func (p *postService) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	fileURL := req.FileURL
	if req.Media != nil {
		url, err := uploadMedia(ctx, p.media, req.Media, adapter.FolderPosts)
		if err != nil {
			log.Err(err).Str("user_id", req.UserID).Msg("post media upload failed")
			return models.Post{}, err
		}
		fileURL = url
	}

	text := strings.TrimSpace(req.Text)
	if text == "" && fileURL == "" {
		return models.Post{}, ErrInvalidDataProvided
	}

	created, err := p.postRepository.CreatePost(ctx, models.Post{
		UserID: req.UserID,
		Text:   text,
		File:   fileURL,
	})
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return p.GetPost(ctx, created.PostID)
}

func (p *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	return post, nil
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.FindAllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("post listing failed: %w", err)
	}

	return posts, nil
}

func (p *postService) ListUserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	posts, err := p.postRepository.FindPostsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user post listing failed: %w", err)
	}

	return posts, nil
}

func (p *postService) LikePost(ctx context.Context, postID, userID string) (models.Post, error) {
	if err := p.postRepository.AddLike(ctx, postID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("post_id", postID).Msg("like failed")
		return models.Post{}, fmt.Errorf("like failed: %w", err)
	}

	return p.GetPost(ctx, postID)
}

func (p *postService) CommentOnPost(ctx context.Context, req models.CommentRequest) (models.Post, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return models.Post{}, ErrInvalidDataProvided
	}

	_, err := p.postRepository.AddComment(ctx, req.PostID, models.Comment{
		UserID:  req.UserID,
		Content: content,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("post_id", req.PostID).Msg("comment failed")
		return models.Post{}, fmt.Errorf("comment failed: %w", err)
	}

	return p.GetPost(ctx, req.PostID)
}

// Feed loads the requester and returns the posts of the users it follows,
// newest first. Following nobody yields an empty, non-nil slice.
func (p *postService) Feed(ctx context.Context, userID string) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	user, err := p.credentials.FindByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("feed owner lookup failed")
		return nil, err
	}

	if len(user.Following) == 0 {
		return []models.Post{}, nil
	}

	posts, err := p.postRepository.FindPostsByAuthors(ctx, []string(user.Following))
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("feed query failed")
		return nil, fmt.Errorf("feed query failed: %w", err)
	}

	return posts, nil
}
