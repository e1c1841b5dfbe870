package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, middleware.StripSlashes, withGZip)
	if h.settings.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)
		r.Post("/api/users/refresh-token", h.refresh)
		r.Get("/api/users/{userID}", h.viewProfile)

		r.Get("/api/posts", h.listPosts)
		r.Get("/api/posts/{postID}", h.getPost)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/users/logout", h.logout)
		r.Post("/api/users/change-password", h.changePassword)
		r.Get("/api/users/me", h.currentUser)
		r.Patch("/api/users/profile", h.updateProfile)
		r.Get("/api/users/{userID}/posts", h.userPosts)
		r.Post("/api/users/{userID}/follow", h.follow)
		r.Delete("/api/users/{userID}/follow", h.unfollow)

		r.Post("/api/posts", h.createPost)
		r.Get("/api/posts/feed", h.feed)
		r.Post("/api/posts/{postID}/like", h.likePost)
		r.Post("/api/posts/{postID}/comment", h.commentOnPost)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
