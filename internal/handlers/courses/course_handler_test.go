package courses

import (
	"context"
	"html/template"
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
	"knowledgepulse-web/internal/middleware"
	"knowledgepulse-web/internal/pkg/session"
)

func newTestRouter(t *testing.T, backend http.Handler) (*gin.Engine, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	client := api.NewClient(srv.URL, zap.NewNop())
	sessions := session.NewService(store, client, zap.NewNop())

	cfg := config.AppConfig{
		SessionCookie: "kp_session",
		SessionTTL:    time.Hour,
	}
	m := middleware.NewAuthMiddleware(sessions, cfg)
	h := NewCourseHandler(client, zap.NewNop())

	tmpl := template.Must(template.New("course_detail.tmpl").Parse(`{{.Course.CourseName}} enrolled={{.Enrolled}}`))
	template.Must(tmpl.New("error.tmpl").Parse(`{{.Status}}: {{.Message}}`))

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(m.LoadSession())
	r.GET("/course/:id", h.Detail)
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

func courseBackend(enrollments string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /courses/7", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"courseCode":"CS101","courseName":"Intro to Go"}`))
	})
	mux.HandleFunc("GET /students/me/courses", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(enrollments))
	})
	return mux
}

func TestDetailMarksEnrolledStudent(t *testing.T) {
	r, store := newTestRouter(t, courseBackend(`[{"id":7,"courseCode":"CS101"}]`))
	seedSession(t, store, "sid-student", "student")

	w := get(r, "/course/7", "sid-student")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Intro to Go")
	assert.Contains(t, w.Body.String(), "enrolled=true")
}

func TestDetailUnenrolledStudent(t *testing.T) {
	r, store := newTestRouter(t, courseBackend(`[]`))
	seedSession(t, store, "sid-student", "student")

	w := get(r, "/course/7", "sid-student")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "enrolled=false")
}

func TestDetailSkipsEnrollmentLookupForAdmin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /courses/7", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"courseName":"Intro to Go"}`))
	})
	lookups := 0
	mux.HandleFunc("GET /students/me/courses", func(w http.ResponseWriter, r *http.Request) {
		lookups++
		w.Write([]byte(`[]`))
	})

	r, store := newTestRouter(t, mux)
	seedSession(t, store, "sid-admin", "admin")

	w := get(r, "/course/7", "sid-admin")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "enrolled=false")
	assert.Zero(t, lookups)
}

func TestDetailInvalidIDIsNotFound(t *testing.T) {
	r, _ := newTestRouter(t, http.NewServeMux())

	w := get(r, "/course/not-a-number", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "page not found")
}
