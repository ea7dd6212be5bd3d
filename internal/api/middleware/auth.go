package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gorilla/sessions"
)

// Context keys for storing user information
type contextKey string

const currentUserKey contextKey = "current_user"

// SessionName is the cookie the signed session rides in
const SessionName = "quill_session"

// LoginPath is where unauthenticated writes are redirected, with the
// original path carried in the next parameter
const LoginPath = "/auth/login"

// CurrentUser identifies the authenticated requester. It is resolved
// once per request from the session cookie and carried in the request
// context; services receive it as explicit arguments, never as ambient
// state.
type CurrentUser struct {
	Username string
	ID       int64
}

// SessionAuth gates mutating routes behind a signed session cookie
type SessionAuth struct {
	store  sessions.Store
	logger *slog.Logger
}

// NewSessionAuth creates session-backed auth middleware
func NewSessionAuth(store sessions.Store, logger *slog.Logger) *SessionAuth {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionAuth{store: store, logger: logger}
}

// LoadUser resolves the session cookie into a CurrentUser and injects it
// into the request context. Requests without a valid session continue
// anonymously; gating happens in RequireAuth.
func (m *SessionAuth) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			// A tampered or stale cookie decodes as anonymous
			m.logger.Debug("failed to decode session cookie", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		userID, okID := session.Values["user_id"].(int64)
		username, okName := session.Values["username"].(string)
		if !okID || !okName || username == "" {
			next.ServeHTTP(w, r)
			return
		}

		user := &CurrentUser{ID: userID, Username: username}
		ctx := context.WithValue(r.Context(), currentUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth redirects anonymous requests to the login page with a
// next parameter carrying the original path. Must be mounted inside
// LoadUser.
func (m *SessionAuth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetCurrentUser(r) == nil {
			v := url.Values{"next": {r.URL.Path}}
			http.Redirect(w, r, LoginPath+"?"+v.Encode(), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetCurrentUser returns the authenticated user, or nil for anonymous
// requests
func GetCurrentUser(r *http.Request) *CurrentUser {
	user, _ := r.Context().Value(currentUserKey).(*CurrentUser)
	return user
}

// SignIn writes the user into a fresh session cookie
func (m *SessionAuth) SignIn(w http.ResponseWriter, r *http.Request, userID int64, username string) error {
	session, _ := m.store.New(r, SessionName)
	session.Values["user_id"] = userID
	session.Values["username"] = username
	return session.Save(r, w)
}

// SignOut expires the session cookie
func (m *SessionAuth) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
