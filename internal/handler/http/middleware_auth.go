package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/service"
	"github.com/MKhiriev/go-engineer-hub/internal/store"
	"github.com/MKhiriev/go-engineer-hub/internal/utils"
	"github.com/MKhiriev/go-engineer-hub/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The access token is read from the accessToken cookie and, when the cookie
// is absent, from an "Authorization: Bearer <token>" header. It is verified
// and resolved to a user via [service.AuthService.Authenticate]; on success
// the user is stored in the request context under [utils.UserCtxKey].
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - no token is supplied ("access token is missing");
//   - the token fails verification ("invalid access token");
//   - the token owner no longer exists ("user not found").
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		tokenString := accessTokenFromRequest(r)
		if tokenString == "" {
			log.Warn().Err(ErrAccessTokenMissing).Send()
			utils.WriteMessage(w, msgAccessTokenMissing, http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidToken):
				log.Warn().Err(err).Msg("access token rejected")
				utils.WriteMessage(w, msgInvalidAccessToken, http.StatusUnauthorized)
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Warn().Err(err).Msg("token owner not found")
				utils.WriteMessage(w, msgUserNotFound, http.StatusUnauthorized)
			default:
				h.writeError(w, r, err, "error authenticating request")
			}
			return
		}

		l := log.WithUserID(user.UserID)
		ctx = l.WithContext(utils.WithUser(ctx, user))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accessTokenFromRequest returns the token from the accessToken cookie or,
// failing that, from the bearer "Authorization" header. An empty string
// means no usable token was sent.
func accessTokenFromRequest(r *http.Request) string {
	if token := cookieValue(r, accessTokenCookie); token != "" {
		return token
	}

	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return ""
	}
	return token
}

// authenticatedUser returns the user stored by the auth middleware. When the
// context carries none it answers 500 and reports false.
func (h *Handler) authenticatedUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoAuthenticatedUser, "handler reached without authentication")
	}
	return user, ok
}
