package http

import (
	"net/http"

	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/utils"
	"github.com/MKhiriev/go-engineer-hub/models"
	"github.com/go-chi/chi/v5"
)

const (
	userIDParam = "userID"
	postIDParam = "postID"
)

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) viewProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetProfile(r.Context(), chi.URLParam(r, userIDParam))
	if err != nil {
		h.writeError(w, r, err, "error getting profile")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateProfile accepts a JSON body or a multipart form. In the multipart
// form the list fields (skills, experience, education, projects) are
// JSON-encoded values and the resume is sent as a file.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	req, err := h.readUpdateProfileRequest(w, r)
	defer releaseMultipart(r)
	if err != nil {
		h.writeError(w, r, err, "error reading profile update")
		return
	}

	updated, err := h.services.UserService.UpdateProfile(ctx, user.UserID, req)
	if err != nil {
		h.writeError(w, r, err, "profile update failed")
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.UserID).Msg("profile updated")
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) readUpdateProfileRequest(w http.ResponseWriter, r *http.Request) (models.UpdateProfileRequest, error) {
	var req models.UpdateProfileRequest
	if !isMultipart(r) {
		err := h.decodeJSON(w, r, &req)
		return req, err
	}

	if err := h.parseMultipart(w, r); err != nil {
		return req, err
	}

	form := r.MultipartForm.Value
	req.Username = optionalFormValue(form, "username")
	req.FullName = optionalFormValue(form, "fullName")
	req.Bio = optionalFormValue(form, "bio")
	req.Location = optionalFormValue(form, "location")
	req.Website = optionalFormValue(form, "website")

	var err error
	if req.Skills, err = optionalFormJSON[models.StringList](form, "skills"); err != nil {
		return req, err
	}
	if req.Experience, err = optionalFormJSON[models.Experiences](form, "experience"); err != nil {
		return req, err
	}
	if req.Education, err = optionalFormJSON[models.Educations](form, "education"); err != nil {
		return req, err
	}
	if req.Projects, err = optionalFormJSON[models.Projects](form, "projects"); err != nil {
		return req, err
	}

	req.Resume, err = h.saveUpload(r, "resume")
	return req, err
}

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.Follow(r.Context(), user.UserID, chi.URLParam(r, userIDParam)); err != nil {
		h.writeError(w, r, err, "follow failed")
		return
	}

	utils.WriteMessage(w, "followed successfully", http.StatusOK)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.Unfollow(r.Context(), user.UserID, chi.URLParam(r, userIDParam)); err != nil {
		h.writeError(w, r, err, "unfollow failed")
		return
	}

	utils.WriteMessage(w, "unfollowed successfully", http.StatusOK)
}
