// internal/handlers/pages/pages_handler.go
package pages

import (
	"net/http"

	"knowledgepulse-web/internal/api"
	"knowledgepulse-web/internal/domain/course"
	"knowledgepulse-web/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PagesHandler struct {
	client *api.Client
	logger *zap.Logger
}

func NewPagesHandler(client *api.Client, logger *zap.Logger) *PagesHandler {
	return &PagesHandler{
		client: client,
		logger: logger,
	}
}

// Home renders the landing page with a shelf of featured courses. A backend
// outage degrades to an empty shelf instead of an error page.
func (h *PagesHandler) Home(c *gin.Context) {
	featured := []course.Course{}
	if list, err := h.client.ListCourses(c.Request.Context()); err != nil {
		h.logger.Warn("home page course shelf unavailable", zap.Error(err))
	} else {
		if len(list) > 6 {
			list = list[:6]
		}
		featured = list
	}

	response.HTML(c, http.StatusOK, "home.tmpl", gin.H{
		"Featured": featured,
	})
}

// About renders the static about page
func (h *PagesHandler) About(c *gin.Context) {
	response.HTML(c, http.StatusOK, "about.tmpl", gin.H{})
}

// FAQ renders the static FAQ page
func (h *PagesHandler) FAQ(c *gin.Context) {
	response.HTML(c, http.StatusOK, "faq.tmpl", gin.H{})
}
