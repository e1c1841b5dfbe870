package http

import (
	"net/http"
	"time"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

func (h *Handler) setTokenCookie(w http.ResponseWriter, name, value string, lifetime time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(lifetime.Seconds()),
		HttpOnly: true,
		Secure:   h.settings.secureCookies,
		SameSite: h.sameSite(),
	})
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	h.setTokenCookie(w, accessTokenCookie, accessToken, h.settings.accessTokenDuration)
	h.setTokenCookie(w, refreshTokenCookie, refreshToken, h.settings.refreshTokenDuration)
}

// clearSessionCookies expires both session cookies on the client.
func (h *Handler) clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.settings.secureCookies,
			SameSite: h.sameSite(),
		})
	}
}

// sameSite allows cross-site cookies only over TLS; browsers reject
// SameSite=None without Secure.
func (h *Handler) sameSite() http.SameSite {
	if h.settings.secureCookies {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// cookieValue returns the value of the named cookie or "" when absent.
func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
