// internal/pkg/response/response.go
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"knowledgepulse-web/internal/api"
	xerrors "knowledgepulse-web/internal/pkg/errors"
)

// HTML renders a page template, attaching the signed-in identity (cached by
// the session middleware) so the shared navigation reflects session state.
func HTML(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["User"]; !ok {
		if user, exists := c.Get("user"); exists {
			data["User"] = user
		}
	}
	c.HTML(status, tmpl, data)
}

// ErrorPage renders the shared error view.
func ErrorPage(c *gin.Context, status int, message string) {
	c.Abort()
	HTML(c, status, "error.tmpl", gin.H{
		"Status":  status,
		"Message": message,
	})
}

// HandleError translates a backend failure into navigation. A rejected
// token sends the visitor to the sign-in view (the session was already
// purged by the API client); a backend validation failure is rendered
// verbatim; anything else gets the generic error view.
func HandleError(c *gin.Context, err error) {
	if errors.Is(err, xerrors.ErrUnauthorized) {
		c.Redirect(http.StatusFound, "/signin")
		c.Abort()
		return
	}
	if errors.Is(err, xerrors.ErrNotFound) {
		ErrorPage(c, http.StatusNotFound, "page not found")
		return
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		ErrorPage(c, apiErr.Status, apiErr.Message)
		return
	}
	ErrorPage(c, http.StatusBadGateway, err.Error())
}

// Message extracts the text a form should show for a failed submission: the
// backend's error payload when present, the transport error otherwise.
func Message(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
