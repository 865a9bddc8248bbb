// internal/handlers/courses/course_handler.go
package courses

import (
	"net/http"
	"strconv"
	"strings"

	"knowledgepulse-web/internal/api"
	"knowledgepulse-web/internal/middleware"
	xerrors "knowledgepulse-web/internal/pkg/errors"
	"knowledgepulse-web/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CourseHandler struct {
	client *api.Client
	logger *zap.Logger
}

func NewCourseHandler(client *api.Client, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		client: client,
		logger: logger,
	}
}

// List renders the course catalog (public endpoint)
func (h *CourseHandler) List(c *gin.Context) {
	list, err := h.client.ListCourses(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list courses", zap.Error(err))
		response.HandleError(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "courses.tmpl", gin.H{
		"Courses": list,
	})
}

// Detail renders one course. For a signed-in student the view also shows
// whether they are already enrolled; that lookup is best-effort and never
// blocks the page.
func (h *CourseHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(c, xerrors.ErrNotFound)
		return
	}

	course, err := h.client.GetCourse(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to load course",
			zap.Int64("course_id", id),
			zap.Error(err),
		)
		response.HandleError(c, err)
		return
	}

	enrolled := false
	if user := middleware.CurrentUser(c); user != nil && !strings.EqualFold(user.Role, "admin") {
		if mine, err := h.client.MyCourses(c.Request.Context()); err == nil {
			for _, m := range mine {
				if m.ID == course.ID {
					enrolled = true
					break
				}
			}
		}
	}

	response.HTML(c, http.StatusOK, "course_detail.tmpl", gin.H{
		"Course":   course,
		"Enrolled": enrolled,
	})
}
