package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/utils"
	"github.com/MKhiriev/go-engineer-hub/models"
)

// register accepts either a JSON body or a multipart form carrying the
// optional avatar and coverImage files.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := h.readRegisterRequest(w, r)
	defer releaseMultipart(r)
	if err != nil {
		h.writeError(w, r, err, "error reading registration request")
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "user registration failed")
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.UserID).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) readRegisterRequest(w http.ResponseWriter, r *http.Request) (models.RegisterRequest, error) {
	var req models.RegisterRequest
	if !isMultipart(r) {
		err := h.decodeJSON(w, r, &req)
		return req, err
	}

	if err := h.parseMultipart(w, r); err != nil {
		return req, err
	}

	req.Username = r.FormValue("username")
	req.Email = r.FormValue("email")
	req.FullName = r.FormValue("fullName")
	req.Password = r.FormValue("password")

	avatar, err := h.saveUpload(r, "avatar")
	if err != nil {
		return req, err
	}
	cover, err := h.saveUpload(r, "coverImage")
	if err != nil {
		discardUploads(avatar)
		return req, err
	}
	req.Avatar, req.CoverImage = avatar, cover

	return req, nil
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, "invalid JSON was passed")
		return
	}

	session, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "login failed")
		return
	}

	h.setSessionCookies(w, session.AccessToken, session.RefreshToken)
	utils.WriteJSON(w, session, http.StatusOK)
}

// refresh takes the refresh token from the refreshToken cookie, falling back
// to the JSON body.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	refreshToken := cookieValue(r, refreshTokenCookie)
	if refreshToken == "" {
		var req models.RefreshRequest
		if err := h.decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
			h.writeError(w, r, err, "invalid JSON was passed")
			return
		}
		refreshToken = req.RefreshToken
	}

	token, err := h.services.AuthService.Refresh(ctx, refreshToken)
	if err != nil {
		h.writeError(w, r, err, "token refresh failed")
		return
	}

	h.setTokenCookie(w, accessTokenCookie, token.SignedString, h.settings.accessTokenDuration)
	utils.WriteJSON(w, models.RefreshResponse{AccessToken: token.SignedString}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.Logout(ctx, user.UserID); err != nil {
		h.writeError(w, r, err, "logout failed")
		return
	}

	h.clearSessionCookies(w)
	utils.WriteMessage(w, "logged out successfully", http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, "invalid JSON was passed")
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, user.UserID, req); err != nil {
		h.writeError(w, r, err, "password change failed")
		return
	}

	h.clearSessionCookies(w)
	utils.WriteMessage(w, "password changed successfully", http.StatusOK)
}
