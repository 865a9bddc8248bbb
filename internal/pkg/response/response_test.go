package response

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"knowledgepulse-web/internal/api"
	xerrors "knowledgepulse-web/internal/pkg/errors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.SetHTMLTemplate(template.Must(template.New("error.tmpl").Parse(`{{.Status}}: {{.Message}}`)))
	c.Request = httptest.NewRequest(http.MethodGet, "/profile", nil)
	return c, w
}

func TestHandleErrorUnauthorizedRedirectsToSignIn(t *testing.T) {
	c, w := newTestContext(t)

	HandleError(c, xerrors.ErrUnauthorized)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/signin", w.Header().Get("Location"))
}

func TestHandleErrorNotFoundRendersErrorPage(t *testing.T) {
	c, w := newTestContext(t)

	HandleError(c, xerrors.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "page not found")
}

func TestHandleErrorRendersBackendMessage(t *testing.T) {
	c, w := newTestContext(t)

	HandleError(c, &api.APIError{Status: http.StatusNotFound, Message: "course not found"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "course not found")
}

func TestHandleErrorWrapsTransportFailure(t *testing.T) {
	c, w := newTestContext(t)

	HandleError(c, errors.New("connection refused"))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestMessagePrefersBackendPayload(t *testing.T) {
	err := &api.APIError{Status: 400, Message: "email already registered"}
	assert.Equal(t, "email already registered", Message(err))
	assert.Equal(t, "plain failure", Message(errors.New("plain failure")))
}
