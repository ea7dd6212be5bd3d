package web

import (
	"github.com/go-chi/chi/v5"

	"Quill/internal/api/middleware"
)

// RegisterRoutes mounts the web surface on the router. Mutating routes
// are gated by RequireAuth; read routes are public. Static segments
// (/group, /profile, /new, /follow, /media, /auth) take priority over
// the /{username}/... wildcards.
func RegisterRoutes(r chi.Router, h *Handlers, auth *middleware.SessionAuth) {
	r.Get("/", h.Home)
	r.Get("/group/{slug}", h.GroupFeed)
	r.Get("/profile/{username}", h.Profile)

	r.With(auth.RequireAuth).Get("/follow", h.FollowedFeed)

	r.With(auth.RequireAuth).Get("/new", h.NewPostForm)
	r.With(auth.RequireAuth).Post("/new", h.CreatePost)

	r.Get("/auth/login", h.LoginForm)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)
	r.Get("/auth/signup", h.SignupForm)
	r.Post("/auth/signup", h.Signup)

	r.Get("/media/posts/{postID}", h.ServeImage)
	r.Get("/media/posts/{postID}/thumb", h.ServeThumbnail)

	r.Get("/{username}/{postID}", h.ViewPost)
	r.With(auth.RequireAuth).Get("/{username}/{postID}/edit", h.EditPostForm)
	r.With(auth.RequireAuth).Post("/{username}/{postID}/edit", h.EditPost)
	r.With(auth.RequireAuth).Post("/{username}/{postID}/comment", h.AddComment)
	r.With(auth.RequireAuth).Get("/{username}/follow", h.Follow)
	r.With(auth.RequireAuth).Get("/{username}/unfollow", h.Unfollow)
}
