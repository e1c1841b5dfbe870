package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-engineer-hub/models"
)

const (
	// FieldAuthor targets the author id of a post or comment.
	FieldAuthor = "author"

	// FieldPostBody requires text or an attached file.
	FieldPostBody = "post_body"

	// FieldPostID targets the post a comment is attached to.
	FieldPostID = "post_id"

	// FieldContent targets the comment text.
	FieldContent = "content"
)

type PostValidator struct{}

func NewPostValidator() Validator {
	return &PostValidator{}
}

func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreatePostRequest:
		return v.validateCreatePostRequest(ctx, value, fields...)
	case *models.CreatePostRequest:
		return v.validateCreatePostRequest(ctx, *value, fields...)

	case models.CommentRequest:
		return v.validateCommentRequest(ctx, value, fields...)
	case *models.CommentRequest:
		return v.validateCommentRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validateCreatePostRequest(ctx context.Context, req models.CreatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAuthor, FieldPostBody}
	}

	for _, f := range fields {
		switch f {
		case FieldAuthor:
			if isBlank(req.UserID) {
				return ErrInvalidUserID
			}
		case FieldPostBody:
			if isBlank(req.Text) && req.Media == nil && req.FileURL == "" {
				return ErrEmptyPost
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *PostValidator) validateCommentRequest(ctx context.Context, req models.CommentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPostID, FieldAuthor, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldPostID:
			if isBlank(req.PostID) {
				return ErrInvalidPostID
			}
		case FieldAuthor:
			if isBlank(req.UserID) {
				return ErrInvalidUserID
			}
		case FieldContent:
			if isBlank(req.Content) {
				return ErrEmptyComment
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
