package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth() *SessionAuth {
	return NewSessionAuth(sessions.NewCookieStore([]byte("test-secret-key")), nil)
}

// okHandler records whether the chain reached it and which user it saw.
type okHandler struct {
	called bool
	user   *CurrentUser
}

func (h *okHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.user = GetCurrentUser(r)
	w.WriteHeader(http.StatusOK)
}

func TestRequireAuth_RedirectsAnonymousToLogin(t *testing.T) {
	auth := newTestAuth()
	final := &okHandler{}
	handler := auth.LoadUser(auth.RequireAuth(final))

	req := httptest.NewRequest(http.MethodGet, "/new", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login?next=%2Fnew", rec.Header().Get("Location"))
	assert.False(t, final.called)
}

func TestRequireAuth_NextCarriesOriginalPath(t *testing.T) {
	auth := newTestAuth()
	handler := auth.LoadUser(auth.RequireAuth(&okHandler{}))

	req := httptest.NewRequest(http.MethodGet, "/alice/follow", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	loc, err := rec.Result().Location()
	require.NoError(t, err)
	assert.Equal(t, LoginPath, loc.Path)
	assert.Equal(t, "/alice/follow", loc.Query().Get("next"))
}

func TestRequireAuth_PassesSignedInUser(t *testing.T) {
	auth := newTestAuth()

	// sign in to capture a session cookie
	signInRec := httptest.NewRecorder()
	signInReq := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	require.NoError(t, auth.SignIn(signInRec, signInReq, 42, "alice"))
	cookies := signInRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	final := &okHandler{}
	handler := auth.LoadUser(auth.RequireAuth(final))

	req := httptest.NewRequest(http.MethodGet, "/new", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, final.called)
	require.NotNil(t, final.user)
	assert.Equal(t, int64(42), final.user.ID)
	assert.Equal(t, "alice", final.user.Username)
}

func TestLoadUser_AnonymousWithoutCookie(t *testing.T) {
	auth := newTestAuth()
	final := &okHandler{}
	handler := auth.LoadUser(final)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, final.called)
	assert.Nil(t, final.user)
}

func TestLoadUser_TamperedCookieIsAnonymous(t *testing.T) {
	auth := newTestAuth()
	final := &okHandler{}
	handler := auth.LoadUser(final)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionName, Value: "not-a-real-session"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, final.user)
}

func TestSignOut_ExpiresCookie(t *testing.T) {
	auth := newTestAuth()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	require.NoError(t, auth.SignOut(rec, req))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, SessionName, cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
}
