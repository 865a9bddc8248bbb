package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"knowledgepulse-web/internal/api"
	"knowledgepulse-web/internal/config"
	"knowledgepulse-web/internal/pkg/session"
)

func newGuardedRouter(t *testing.T) (*gin.Engine, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	// The backend is never reached by guard decisions.
	client := api.NewClient("http://127.0.0.1:1", zap.NewNop())
	sessions := session.NewService(store, client, zap.NewNop())

	cfg := config.AppConfig{
		SessionCookie: "kp_session",
		SessionTTL:    time.Hour,
	}
	m := NewAuthMiddleware(sessions, cfg)

	r := gin.New()
	r.Use(m.LoadSession())

	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/my-courses", m.RequireAuth(), ok)
	r.GET("/admin/dashboard", append(m.AdminOnly(), ok)...)
	return r, store
}

func seedSession(t *testing.T, store *session.MemoryStore, sid, role string) {
	t.Helper()
	err := store.Set(context.Background(), sid, "tok", &session.CachedIdentity{
		Email: "jane@example.com",
		Role:  role,
	})
	require.NoError(t, err)
}

func get(r *gin.Engine, path, sid string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "kp_session", Value: sid})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFirstVisitMintsSessionCookie(t *testing.T) {
	r, _ := newGuardedRouter(t)

	w := get(r, "/my-courses", "")
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "kp_session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestRequireAuthRedirectsSignedOut(t *testing.T) {
	r, _ := newGuardedRouter(t)

	w := get(r, "/my-courses", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/signin", w.Header().Get("Location"))
}

func TestRequireAuthPassesSignedIn(t *testing.T) {
	r, store := newGuardedRouter(t)
	seedSession(t, store, "sid-student", "student")

	w := get(r, "/my-courses", "sid-student")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRouteSignedOutGoesToSignIn(t *testing.T) {
	r, _ := newGuardedRouter(t)

	// The authentication check wins over the role check.
	w := get(r, "/admin/dashboard", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/signin", w.Header().Get("Location"))
}

func TestAdminRouteBouncesStudentHome(t *testing.T) {
	r, store := newGuardedRouter(t)
	seedSession(t, store, "sid-student", "student")

	w := get(r, "/admin/dashboard", "sid-student")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestAdminRoutePassesAdmin(t *testing.T) {
	r, store := newGuardedRouter(t)
	seedSession(t, store, "sid-admin", "admin")

	w := get(r, "/admin/dashboard", "sid-admin")
	assert.Equal(t, http.StatusOK, w.Code)
}
