package web

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"Quill/internal/core/users"
)

// AuthPageData renders the login and signup forms
type AuthPageData struct {
	Next     string
	Username string
	Error    string
}

// safeNext only honors local redirect targets; anything else falls back
// to the home feed
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

// LoginForm handles GET /auth/login
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", AuthPageData{Next: r.URL.Query().Get("next")})
}

// Login handles POST /auth/login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	next := r.FormValue("next")

	user, err := h.users.Authenticate(r.Context(), username, r.FormValue("password"))
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			h.render(w, "login.html", AuthPageData{
				Next:     next,
				Username: username,
				Error:    err.Error(),
			})
			return
		}
		log.Printf("Failed to authenticate %s: %v", username, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.auth.SignIn(w, r, user.ID, user.Username); err != nil {
		log.Printf("Failed to write session for %s: %v", username, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, safeNext(next), http.StatusFound)
}

// Logout handles POST /auth/logout
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.SignOut(w, r); err != nil {
		log.Printf("Failed to clear session: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// SignupForm handles GET /auth/signup
func (h *Handlers) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "signup.html", AuthPageData{Next: r.URL.Query().Get("next")})
}

// Signup handles POST /auth/signup
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	next := r.FormValue("next")

	user, err := h.users.Register(r.Context(), users.RegisterRequest{
		Username: username,
		Password: r.FormValue("password"),
	})
	if err != nil {
		var invalidName *users.InvalidUsernameError
		var weakPass *users.WeakPasswordError
		if errors.Is(err, users.ErrUsernameTaken) || errors.As(err, &invalidName) || errors.As(err, &weakPass) {
			h.render(w, "signup.html", AuthPageData{
				Next:     next,
				Username: username,
				Error:    err.Error(),
			})
			return
		}
		log.Printf("Failed to register %s: %v", username, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.auth.SignIn(w, r, user.ID, user.Username); err != nil {
		log.Printf("Failed to write session for %s: %v", username, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, safeNext(next), http.StatusFound)
}
