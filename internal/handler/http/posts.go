package http

import (
	"net/http"

	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/utils"
	"github.com/MKhiriev/go-engineer-hub/models"
	"github.com/go-chi/chi/v5"
)

// createPost accepts a JSON body {"text": ...} or a multipart form with a
// text field and an optional file.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	req, err := h.readCreatePostRequest(w, r)
	defer releaseMultipart(r)
	if err != nil {
		h.writeError(w, r, err, "error reading post")
		return
	}
	req.UserID = user.UserID

	post, err := h.services.PostService.CreatePost(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "post creation failed")
		return
	}

	logger.FromRequest(r).Info().Str("post_id", post.PostID).Msg("post created")
	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) readCreatePostRequest(w http.ResponseWriter, r *http.Request) (models.CreatePostRequest, error) {
	var req models.CreatePostRequest
	if !isMultipart(r) {
		err := h.decodeJSON(w, r, &req)
		return req, err
	}

	if err := h.parseMultipart(w, r); err != nil {
		return req, err
	}

	req.Text = r.FormValue("text")

	var err error
	req.Media, err = h.saveUpload(r, "file")
	return req, err
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		h.writeError(w, r, err, "error listing posts")
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) userPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListUserPosts(r.Context(), chi.URLParam(r, userIDParam))
	if err != nil {
		h.writeError(w, r, err, "error listing user posts")
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	posts, err := h.services.PostService.Feed(r.Context(), user.UserID)
	if err != nil {
		h.writeError(w, r, err, "error building feed")
		return
	}

	utils.WriteJSON(w, models.FeedResponse{Posts: posts, Length: len(posts)}, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, postIDParam))
	if err != nil {
		h.writeError(w, r, err, "error getting post")
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) likePost(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	post, err := h.services.PostService.LikePost(r.Context(), chi.URLParam(r, postIDParam), user.UserID)
	if err != nil {
		h.writeError(w, r, err, "like failed")
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) commentOnPost(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	var req models.CommentRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, "invalid JSON was passed")
		return
	}
	req.PostID = chi.URLParam(r, postIDParam)
	req.UserID = user.UserID

	post, err := h.services.PostService.CommentOnPost(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "comment failed")
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}
